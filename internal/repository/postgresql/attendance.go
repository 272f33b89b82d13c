package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date, a.clock_in, a.clock_out, a.break_minutes,
	a.hours_worked, a.status, a.notes, a.created_at, a.updated_at`

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.ClockIn, &att.ClockOut, &att.BreakMinutes,
		&att.HoursWorked, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.ClockIn, &att.ClockOut, &att.BreakMinutes,
		&att.HoursWorked, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return att, nil
}

// CreateClockIn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateClockIn(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.Must(uuid.NewV7()).String()
	}

	// The unique (user_id, date) index makes concurrent first punches
	// race-safe: the loser sees no returned row and re-reads.
	query := `
		INSERT INTO attendances (id, user_id, date, clock_in, break_minutes, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.UserID,
		a.Date,
		a.ClockIn,
		a.BreakMinutes,
		a.Status,
		a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, getErr := r.GetByUserAndDate(ctx, a.UserID, a.Date)
			if getErr != nil {
				return attendance.Attendance{}, false, getErr
			}
			return existing, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to create clock-in: %w", err)
	}

	return a, true, nil
}

// CompleteDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CompleteDay(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// The clock_out IS NULL guard makes the close transition atomic. A
	// concurrent close wins once, everyone else gets zero rows.
	query := `
		UPDATE attendances
		SET clock_out = $1, hours_worked = $2, notes = COALESCE($3, notes), updated_at = $4
		WHERE id = $5
		  AND clock_out IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ClockOut,
		a.HoursWorked,
		a.Notes,
		time.Now(),
		a.ID,
	).Scan(&a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrDayCompleted
		}
		return attendance.Attendance{}, fmt.Errorf("failed to complete attendance day: %w", err)
	}

	return a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $1, clock_out = $2, break_minutes = $3, hours_worked = $4,
		    status = $5, notes = $6, updated_at = $7
		WHERE id = $8
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ClockIn,
		a.ClockOut,
		a.BreakMinutes,
		a.HoursWorked,
		a.Status,
		a.Notes,
		time.Now(),
		a.ID,
	).Scan(&a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return a, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter, scope user.Scope) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		if len(scope.UserIDs) == 0 {
			return []attendance.Attendance{}, 0, nil
		}
		where += fmt.Sprintf(" AND a.user_id = ANY($%d)", argIdx)
		args = append(args, scope.UserIDs)
		argIdx++
	}

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.DateFrom != nil && *filter.DateFrom != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != nil && *filter.DateTo != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+attendanceColumns+`, u.name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	records, err := scanAttendanceRows(rows, true)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM attendances a WHERE a.user_id = $1`
	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.UserID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance history: %w", err)
	}

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		ORDER BY a.date DESC, a.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, filter.UserID, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	records, err := scanAttendanceRows(rows, false)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListRecentByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListRecentByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		ORDER BY a.date DESC, a.id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows, false)
}

func scanAttendanceRows(rows pgx.Rows, withUserName bool) ([]attendance.Attendance, error) {
	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		dest := []interface{}{
			&att.ID, &att.UserID, &att.Date, &att.ClockIn, &att.ClockOut, &att.BreakMinutes,
			&att.HoursWorked, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		}
		if withUserName {
			dest = append(dest, &att.UserName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}
	return records, nil
}
