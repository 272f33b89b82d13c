package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/recruitment"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/database"
)

type postingRepositoryImpl struct {
	db *database.DB
}

func NewPostingRepository(db *database.DB) recruitment.PostingRepository {
	return &postingRepositoryImpl{db: db}
}

const postingColumns = `
	p.id, p.title, p.department, p.description, p.requirements,
	p.salary_min, p.salary_max, p.employment_type, p.location,
	p.status, p.deadline, p.created_by, p.created_at, p.updated_at`

// Create implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) Create(ctx context.Context, p recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO job_postings (
			id, title, department, description, requirements,
			salary_min, salary_max, employment_type, location,
			status, deadline, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.Title,
		p.Department,
		p.Description,
		p.Requirements,
		p.SalaryMin,
		p.SalaryMax,
		p.EmploymentType,
		p.Location,
		p.Status,
		p.Deadline,
		p.CreatedBy,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return recruitment.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return p, nil
}

// GetByID implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + postingColumns + `,
			(SELECT COUNT(*) FROM job_applications ja WHERE ja.job_posting_id = p.id)
		FROM job_postings p
		WHERE p.id = $1
	`

	var p recruitment.JobPosting
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Department, &p.Description, &p.Requirements,
		&p.SalaryMin, &p.SalaryMax, &p.EmploymentType, &p.Location,
		&p.Status, &p.Deadline, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.ApplicationCount,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrPostingNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to get job posting: %w", err)
	}

	return p, nil
}

// Update implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) Update(ctx context.Context, p recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET title = $1, department = $2, description = $3, requirements = $4,
			salary_min = $5, salary_max = $6, employment_type = $7,
			location = $8, status = $9, deadline = $10, updated_at = $11
		WHERE id = $12
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Title,
		p.Department,
		p.Description,
		p.Requirements,
		p.SalaryMin,
		p.SalaryMax,
		p.EmploymentType,
		p.Location,
		p.Status,
		p.Deadline,
		time.Now(),
		p.ID,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrPostingNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to update job posting: %w", err)
	}

	return p, nil
}

// Delete implements recruitment.PostingRepository. Removing a posting
// takes its applications with it.
func (r *postingRepositoryImpl) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM job_applications WHERE job_posting_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete applications for posting: %w", err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM job_postings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete job posting: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return recruitment.ErrPostingNotFound
		}

		return nil
	})
}

// List implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) List(ctx context.Context, filter recruitment.PostingFilter) ([]recruitment.JobPosting, int64, error) {
	return r.list(ctx, filter, false)
}

// ListPublished implements recruitment.PostingRepository.
func (r *postingRepositoryImpl) ListPublished(ctx context.Context, filter recruitment.PostingFilter) ([]recruitment.JobPosting, int64, error) {
	return r.list(ctx, filter, true)
}

func (r *postingRepositoryImpl) list(ctx context.Context, filter recruitment.PostingFilter, publishedOnly bool) ([]recruitment.JobPosting, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if publishedOnly {
		where += " AND p.status = 'published'"
	} else if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Department != nil && *filter.Department != "" {
		where += fmt.Sprintf(" AND p.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM job_postings p WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job postings: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+postingColumns+`,
			(SELECT COUNT(*) FROM job_applications ja WHERE ja.job_posting_id = p.id)
		FROM job_postings p
		WHERE %s
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query job postings: %w", err)
	}
	defer rows.Close()

	postings := make([]recruitment.JobPosting, 0)
	for rows.Next() {
		var p recruitment.JobPosting
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Department, &p.Description, &p.Requirements,
			&p.SalaryMin, &p.SalaryMax, &p.EmploymentType, &p.Location,
			&p.Status, &p.Deadline, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
			&p.ApplicationCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read job postings: %w", err)
	}

	return postings, total, nil
}
