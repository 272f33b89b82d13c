package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.user_id, l.type, l.start_date, l.end_date, l.days_requested,
	l.reason, l.status, l.approved_by, l.approved_at, l.comments,
	l.created_at, l.updated_at`

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO leave_requests (
			id, user_id, type, start_date, end_date, days_requested, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, 'pending'
		) RETURNING status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID,
		l.UserID,
		l.Type,
		l.StartDate,
		l.EndDate,
		l.DaysRequested,
		l.Reason,
	).Scan(&l.Status, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `, u.name, ap.name
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		LEFT JOIN users ap ON ap.id = l.approved_by
		WHERE l.id = $1
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.DaysRequested,
		&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.Comments,
		&l.CreatedAt, &l.UpdatedAt, &l.UserName, &l.ApproverName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter, scope user.Scope) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		if len(scope.UserIDs) == 0 {
			return []leave.LeaveRequest{}, 0, nil
		}
		where += fmt.Sprintf(" AND l.user_id = ANY($%d)", argIdx)
		args = append(args, scope.UserIDs)
		argIdx++
	}

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND l.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.Type != nil && *filter.Type != "" {
		where += fmt.Sprintf(" AND l.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+leaveColumns+`, u.name, ap.name
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		LEFT JOIN users ap ON ap.id = l.approved_by
		WHERE %s
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanLeaveRows(rows, true)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests l
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC, l.id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRows(rows, false)
}

// ListRecentByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListRecentByEmployee(ctx context.Context, userID string, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `, u.name, ap.name
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		LEFT JOIN users ap ON ap.id = l.approved_by
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRows(rows, true)
}

// Decide implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Decide(ctx context.Context, decision leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Only a pending request can be decided. The status guard keeps two
	// approvers from processing the same request twice.
	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, comments = $4, updated_at = $5
		WHERE id = $6
		  AND status = 'pending'
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		decision.Status,
		decision.ApprovedBy,
		decision.ApprovedAt,
		decision.Comments,
		time.Now(),
		decision.ID,
	).Scan(&decision.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	return decision, nil
}

func scanLeaveRows(rows pgx.Rows, withNames bool) ([]leave.LeaveRequest, error) {
	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var l leave.LeaveRequest
		dest := []interface{}{
			&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.DaysRequested,
			&l.Reason, &l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.Comments,
			&l.CreatedAt, &l.UpdatedAt,
		}
		if withNames {
			dest = append(dest, &l.UserName, &l.ApproverName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}
	return requests, nil
}
