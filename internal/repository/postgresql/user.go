package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	u.id, u.name, u.email, u.password_hash, u.role, u.employee_code,
	u.department, u.position, u.phone, u.hire_date, u.salary,
	u.manager_id, u.status, u.created_at, u.updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.EmployeeCode,
		&u.Department, &u.Position, &u.Phone, &u.HireDate, &u.Salary,
		&u.ManagerID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO users (
			id, name, email, password_hash, role, employee_code,
			department, position, phone, hire_date, salary, manager_id, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.EmployeeCode,
		u.Department,
		u.Position,
		u.Phone,
		u.HireDate,
		u.Salary,
		u.ManagerID,
		u.Status,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + userColumns + `, m.name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		WHERE u.id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.EmployeeCode,
		&u.Department, &u.Position, &u.Phone, &u.HireDate, &u.Salary,
		&u.ManagerID, &u.Status, &u.CreatedAt, &u.UpdatedAt, &u.ManagerName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrEmployeeNotFound
		}
		return user.User{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + userColumns + `
		FROM users u
		WHERE LOWER(u.email) = LOWER($1)
	`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrEmployeeNotFound
		}
		return user.User{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name = $1, email = $2, password_hash = $3, role = $4,
			employee_code = $5, department = $6, position = $7, phone = $8,
			hire_date = $9, salary = $10, manager_id = $11, status = $12,
			updated_at = $13
		WHERE id = $14
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.EmployeeCode,
		u.Department,
		u.Position,
		u.Phone,
		u.HireDate,
		u.Salary,
		u.ManagerID,
		u.Status,
		time.Now(),
		u.ID,
	).Scan(&u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrEmployeeNotFound
		}
		return user.User{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return u, nil
}

// UpdateStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := q.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrEmployeeNotFound
	}

	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.EmployeeFilter, scope user.Scope) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		if len(scope.UserIDs) == 0 {
			return []user.User{}, 0, nil
		}
		where += fmt.Sprintf(" AND u.id = ANY($%d)", argIdx)
		args = append(args, scope.UserIDs)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(
			" AND (u.name ILIKE $%d OR u.email ILIKE $%d OR u.employee_code ILIKE $%d OR u.department ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.Department != nil && *filter.Department != "" {
		where += fmt.Sprintf(" AND u.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	if filter.Role != nil && *filter.Role != "" {
		where += fmt.Sprintf(" AND u.role = $%d", argIdx)
		args = append(args, *filter.Role)
		argIdx++
	}

	// Listings default to active employees unless a status is requested.
	status := string(user.StatusActive)
	if filter.Status != nil && *filter.Status != "" {
		status = *filter.Status
	}
	where += fmt.Sprintf(" AND u.status = $%d", argIdx)
	args = append(args, status)
	argIdx++

	countQuery := "SELECT COUNT(*) FROM users u WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+userColumns+`, m.name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		WHERE %s
		ORDER BY u.hire_date DESC NULLS LAST, u.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.EmployeeCode,
			&u.Department, &u.Position, &u.Phone, &u.HireDate, &u.Salary,
			&u.ManagerID, &u.Status, &u.CreatedAt, &u.UpdatedAt, &u.ManagerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read employees: %w", err)
	}

	return users, total, nil
}

// ListReportIDs implements user.UserRepository.
func (r *userRepositoryImpl) ListReportIDs(ctx context.Context, managerID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM users WHERE manager_id = $1 AND id <> $1`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query report ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan report id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report ids: %w", err)
	}

	return ids, nil
}

// ListActiveByManager implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveByManager(ctx context.Context, managerID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + userColumns + `
		FROM users u
		WHERE u.manager_id = $1
		  AND u.id <> $1
		  AND u.status = 'active'
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.EmployeeCode,
			&u.Department, &u.Position, &u.Phone, &u.HireDate, &u.Salary,
			&u.ManagerID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read team members: %w", err)
	}

	return users, nil
}

// ListDepartments implements user.UserRepository.
func (r *userRepositoryImpl) ListDepartments(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT department
		FROM users
		WHERE department IS NOT NULL AND status = 'active'
		ORDER BY department ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}

	return departments, nil
}

// EmailExists implements user.UserRepository.
func (r *userRepositoryImpl) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id <> $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// EmployeeCodeExists implements user.UserRepository.
func (r *userRepositoryImpl) EmployeeCodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE employee_code = $1 AND id <> $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee code existence: %w", err)
	}

	return exists, nil
}
