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

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) recruitment.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `
	ja.id, ja.job_posting_id, ja.candidate_name, ja.candidate_email,
	ja.candidate_phone, ja.cover_letter, ja.resume_path, ja.status,
	ja.notes, ja.applied_at, ja.updated_at`

// Create implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, a recruitment.JobApplication) (recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO job_applications (
			id, job_posting_id, candidate_name, candidate_email,
			candidate_phone, cover_letter, resume_path, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, 'pending'
		) RETURNING status, applied_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.JobPostingID,
		a.CandidateName,
		a.CandidateEmail,
		a.CandidatePhone,
		a.CoverLetter,
		a.ResumePath,
	).Scan(&a.Status, &a.AppliedAt, &a.UpdatedAt)

	if err != nil {
		return recruitment.JobApplication{}, fmt.Errorf("failed to create job application: %w", err)
	}

	return a, nil
}

// GetByID implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + applicationColumns + `, p.title
		FROM job_applications ja
		JOIN job_postings p ON p.id = ja.job_posting_id
		WHERE ja.id = $1
	`

	var a recruitment.JobApplication
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.JobPostingID, &a.CandidateName, &a.CandidateEmail,
		&a.CandidatePhone, &a.CoverLetter, &a.ResumePath, &a.Status,
		&a.Notes, &a.AppliedAt, &a.UpdatedAt, &a.PostingTitle,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobApplication{}, recruitment.ErrApplicationNotFound
		}
		return recruitment.JobApplication{}, fmt.Errorf("failed to get job application: %w", err)
	}

	return a, nil
}

// UpdateStatus implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status recruitment.ApplicationStatus, notes *string) (recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_applications
		SET status = $1, notes = COALESCE($2, notes), updated_at = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, notes, time.Now(), id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobApplication{}, recruitment.ErrApplicationNotFound
		}
		return recruitment.JobApplication{}, fmt.Errorf("failed to update job application status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// List implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context, filter recruitment.ApplicationFilter) ([]recruitment.JobApplication, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.JobPostingID != nil && *filter.JobPostingID != "" {
		where += fmt.Sprintf(" AND ja.job_posting_id = $%d", argIdx)
		args = append(args, *filter.JobPostingID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND ja.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM job_applications ja WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job applications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+applicationColumns+`, p.title
		FROM job_applications ja
		JOIN job_postings p ON p.id = ja.job_posting_id
		WHERE %s
		ORDER BY ja.applied_at DESC, ja.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query job applications: %w", err)
	}
	defer rows.Close()

	applications, err := scanApplicationRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// ListRecent implements recruitment.ApplicationRepository.
func (r *applicationRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + applicationColumns + `, p.title
		FROM job_applications ja
		JOIN job_postings p ON p.id = ja.job_posting_id
		ORDER BY ja.applied_at DESC, ja.id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent job applications: %w", err)
	}
	defer rows.Close()

	return scanApplicationRows(rows)
}

func scanApplicationRows(rows pgx.Rows) ([]recruitment.JobApplication, error) {
	applications := make([]recruitment.JobApplication, 0)
	for rows.Next() {
		var a recruitment.JobApplication
		if err := rows.Scan(
			&a.ID, &a.JobPostingID, &a.CandidateName, &a.CandidateEmail,
			&a.CandidatePhone, &a.CoverLetter, &a.ResumePath, &a.Status,
			&a.Notes, &a.AppliedAt, &a.UpdatedAt, &a.PostingTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job applications: %w", err)
	}
	return applications, nil
}
