package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/appdotbuilder/hrd-manager/internal/domain/dashboard"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) dashboard.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

func (r *statsRepositoryImpl) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountActiveEmployees implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users WHERE status = 'active'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return n, nil
}

// CountAttendanceOn implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountAttendanceOn(ctx context.Context, date time.Time) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance for date: %w", err)
	}
	return n, nil
}

// CountPendingLeaves implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return n, nil
}

// CountPublishedPostings implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountPublishedPostings(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM job_postings WHERE status = 'published'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count published job postings: %w", err)
	}
	return n, nil
}

// CountDraftReviews implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountDraftReviews(ctx context.Context, reviewerID *string) (int64, error) {
	query := `SELECT COUNT(*) FROM performance_reviews WHERE status = 'draft'`
	args := []interface{}{}
	if reviewerID != nil {
		query += ` AND reviewer_id = $1`
		args = append(args, *reviewerID)
	}

	n, err := r.count(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count draft reviews: %w", err)
	}
	return n, nil
}

// DepartmentHeadcounts implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) DepartmentHeadcounts(ctx context.Context) ([]dashboard.DepartmentHeadcount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*)
		FROM users
		WHERE status = 'active' AND department IS NOT NULL
		GROUP BY department
		ORDER BY department ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query department headcounts: %w", err)
	}
	defer rows.Close()

	headcounts := make([]dashboard.DepartmentHeadcount, 0)
	for rows.Next() {
		var h dashboard.DepartmentHeadcount
		if err := rows.Scan(&h.Department, &h.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department headcount: %w", err)
		}
		headcounts = append(headcounts, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department headcounts: %w", err)
	}

	return headcounts, nil
}

// CountHiresSince implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountHiresSince(ctx context.Context, date time.Time) (int64, error) {
	n, err := r.count(ctx,
		`SELECT COUNT(*) FROM users WHERE status = 'active' AND hire_date >= $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent hires: %w", err)
	}
	return n, nil
}

// CountAttendanceInRange implements dashboard.StatsRepository.
func (r *statsRepositoryImpl) CountAttendanceInRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	n, err := r.count(ctx,
		`SELECT COUNT(*) FROM attendances WHERE user_id = $1 AND date >= $2 AND date < $3`,
		userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance in range: %w", err)
	}
	return n, nil
}
