package recruitment

import (
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/validator"
)

// ========================================
// JOB POSTING DTOs
// ========================================

type CreatePostingRequest struct {
	Title          string           `json:"title"`
	Department     string           `json:"department"`
	Description    string           `json:"description"`
	Requirements   *string          `json:"requirements,omitempty"`
	SalaryMin      *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax      *decimal.Decimal `json:"salary_max,omitempty"`
	EmploymentType string           `json:"employment_type"`
	Location       *string          `json:"location,omitempty"`
	Deadline       *string          `json:"deadline,omitempty"` // YYYY-MM-DD
}

func (r *CreatePostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.EmploymentType == "" {
		r.EmploymentType = string(EmploymentFullTime)
	} else if !validator.IsInSlice(r.EmploymentType, ValidEmploymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: full_time, part_time, contract, internship",
		})
	}

	if r.SalaryMin != nil && r.SalaryMin.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_min",
			Message: "salary_min must not be negative",
		})
	}

	if r.SalaryMax != nil && r.SalaryMax.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_max",
			Message: "salary_max must not be negative",
		})
	}

	if r.SalaryMin != nil && r.SalaryMax != nil && r.SalaryMax.LessThan(*r.SalaryMin) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_max",
			Message: "salary_max must not be less than salary_min",
		})
	}

	if r.Deadline != nil {
		if _, valid := validator.IsValidDate(*r.Deadline); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePostingRequest carries a partial update, including the publish and
// close transitions through the status field.
type UpdatePostingRequest struct {
	ID             string           `json:"-"`
	Title          *string          `json:"title,omitempty"`
	Department     *string          `json:"department,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Requirements   *string          `json:"requirements,omitempty"`
	SalaryMin      *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax      *decimal.Decimal `json:"salary_max,omitempty"`
	EmploymentType *string          `json:"employment_type,omitempty"`
	Location       *string          `json:"location,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Deadline       *string          `json:"deadline,omitempty"`
}

func (r *UpdatePostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, ValidEmploymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: full_time, part_time, contract, internship",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidPostingStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, published, closed",
		})
	}

	if r.Deadline != nil {
		if _, valid := validator.IsValidDate(*r.Deadline); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PostingFilter struct {
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PostingFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 15 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidPostingStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, published, closed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PostingResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Department       string  `json:"department"`
	Description      string  `json:"description"`
	Requirements     *string `json:"requirements,omitempty"`
	SalaryMin        *string `json:"salary_min,omitempty"`
	SalaryMax        *string `json:"salary_max,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	Location         *string `json:"location,omitempty"`
	Status           string  `json:"status"`
	Deadline         *string `json:"deadline,omitempty"`
	ApplicationCount int     `json:"application_count"`
	CreatedAt        string  `json:"created_at"`
}

// ========================================
// JOB APPLICATION DTOs
// ========================================

// ApplyRequest is the multipart body of the public apply endpoint. The
// resume arrives as a file part next to the JSON data part.
type ApplyRequest struct {
	JobPostingID   string  `json:"-"`
	CandidateName  string  `json:"candidate_name"`
	CandidateEmail string  `json:"candidate_email"`
	CandidatePhone *string `json:"candidate_phone,omitempty"`
	CoverLetter    *string `json:"cover_letter,omitempty"`

	Resume *multipart.FileHeader `json:"-"`
}

const maxResumeSize = 5 << 20 // 5 MB

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.JobPostingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_posting_id",
			Message: "job posting id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.CandidateName) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_name",
			Message: "candidate name is required",
		})
	}

	if validator.IsEmpty(r.CandidateEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_email",
			Message: "candidate email is required",
		})
	} else if !validator.IsValidEmail(r.CandidateEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_email",
			Message: "candidate email is invalid",
		})
	}

	if r.Resume != nil && r.Resume.Size > maxResumeSize {
		errs = append(errs, validator.ValidationError{
			Field:   "resume",
			Message: "resume must not exceed 5 MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateApplicationStatusRequest moves an application through the pipeline.
type UpdateApplicationStatusRequest struct {
	ID     string  `json:"-"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if !validator.IsInSlice(r.Status, ValidApplicationStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, reviewing, interview, rejected, hired",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplicationFilter struct {
	JobPostingID *string `json:"job_posting_id,omitempty"`
	Status       *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ApplicationFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 15 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.JobPostingID != nil && !validator.IsValidUUID(*f.JobPostingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_posting_id",
			Message: "job_posting_id must be a valid UUID",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidApplicationStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, reviewing, interview, rejected, hired",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplicationResponse struct {
	ID             string  `json:"id"`
	JobPostingID   string  `json:"job_posting_id"`
	PostingTitle   string  `json:"posting_title,omitempty"`
	CandidateName  string  `json:"candidate_name"`
	CandidateEmail string  `json:"candidate_email"`
	CandidatePhone *string `json:"candidate_phone,omitempty"`
	CoverLetter    *string `json:"cover_letter,omitempty"`
	ResumeURL      *string `json:"resume_url,omitempty"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	AppliedAt      string  `json:"applied_at"`
}

// DeadlineOpen reports whether applications are still accepted at the
// given instant. A nil deadline never closes.
func DeadlineOpen(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return true
	}
	// The deadline day itself is still open.
	return now.Before(deadline.AddDate(0, 0, 1))
}
