package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/performance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewColumns = `
	r.id, r.employee_id, r.reviewer_id, r.period_start, r.period_end,
	r.score, r.goals_achieved, r.areas_for_improvement, r.manager_comments,
	r.employee_comments, r.status, r.completed_at, r.created_at, r.updated_at`

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	if review.ID == "" {
		review.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, reviewer_id, period_start, period_end, status
		) VALUES (
			$1, $2, $3, $4, $5, 'draft'
		) RETURNING status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.ID,
		review.EmployeeID,
		review.ReviewerID,
		review.PeriodStart,
		review.PeriodEnd,
	).Scan(&review.Status, &review.CreatedAt, &review.UpdatedAt)

	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return review, nil
}

// GetByID implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + reviewColumns + `, e.name, rv.name
		FROM performance_reviews r
		JOIN users e ON e.id = r.employee_id
		JOIN users rv ON rv.id = r.reviewer_id
		WHERE r.id = $1
	`

	var review performance.Review
	err := q.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.EmployeeID, &review.ReviewerID, &review.PeriodStart, &review.PeriodEnd,
		&review.Score, &review.GoalsAchieved, &review.AreasForImprovement, &review.ManagerComments,
		&review.EmployeeComments, &review.Status, &review.CompletedAt, &review.CreatedAt, &review.UpdatedAt,
		&review.EmployeeName, &review.ReviewerName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return review, nil
}

// Update implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Update(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET score = $1, goals_achieved = $2, areas_for_improvement = $3,
			manager_comments = $4, employee_comments = $5, status = $6,
			completed_at = $7, updated_at = $8
		WHERE id = $9
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		review.Score,
		review.GoalsAchieved,
		review.AreasForImprovement,
		review.ManagerComments,
		review.EmployeeComments,
		review.Status,
		review.CompletedAt,
		time.Now(),
		review.ID,
	).Scan(&review.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	return review, nil
}

// List implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) List(ctx context.Context, filter performance.ReviewFilter, scope user.Scope, reviewerID string) ([]performance.Review, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !scope.All {
		// A reviewer always sees reviews they wrote, on top of their scope.
		where += fmt.Sprintf(" AND (r.employee_id = ANY($%d) OR r.reviewer_id = $%d)", argIdx, argIdx+1)
		args = append(args, scope.UserIDs, reviewerID)
		argIdx += 2
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM performance_reviews r WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+reviewColumns+`, e.name, rv.name
		FROM performance_reviews r
		JOIN users e ON e.id = r.employee_id
		JOIN users rv ON rv.id = r.reviewer_id
		WHERE %s
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query performance reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]performance.Review, 0)
	for rows.Next() {
		var review performance.Review
		if err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.ReviewerID, &review.PeriodStart, &review.PeriodEnd,
			&review.Score, &review.GoalsAchieved, &review.AreasForImprovement, &review.ManagerComments,
			&review.EmployeeComments, &review.Status, &review.CompletedAt, &review.CreatedAt, &review.UpdatedAt,
			&review.EmployeeName, &review.ReviewerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read performance reviews: %w", err)
	}

	return reviews, total, nil
}
