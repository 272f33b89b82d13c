package performance

import (
	"github.com/appdotbuilder/hrd-manager/internal/pkg/validator"
)

// ========================================
// PERFORMANCE REVIEW DTOs
// ========================================

type CreateReviewRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"` // YYYY-MM-DD
	PeriodEnd   string `json:"period_end"`   // YYYY-MM-DD
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	periodStart, startValid := validator.IsValidDate(r.PeriodStart)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be in YYYY-MM-DD format",
		})
	}

	periodEnd, endValid := validator.IsValidDate(r.PeriodEnd)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && periodEnd.Before(periodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period end must not be before period start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CompleteReviewRequest finalizes a draft review with the reviewer's
// assessment.
type CompleteReviewRequest struct {
	ID                  string  `json:"-"`
	Score               int     `json:"score"`
	GoalsAchieved       *string `json:"goals_achieved,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	ManagerComments     *string `json:"manager_comments,omitempty"`
}

func (r *CompleteReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if !validator.IsValidScore(r.Score) {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AcknowledgeReviewRequest records the employee's sign-off on a completed
// review.
type AcknowledgeReviewRequest struct {
	ID               string  `json:"-"`
	EmployeeComments *string `json:"employee_comments,omitempty"`
}

type ReviewFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ReviewFilter) Validate() error {
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

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, completed, acknowledged",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	ReviewerID          string  `json:"reviewer_id"`
	ReviewerName        string  `json:"reviewer_name,omitempty"`
	PeriodStart         string  `json:"period_start"`
	PeriodEnd           string  `json:"period_end"`
	Score               *int    `json:"score,omitempty"`
	GoalsAchieved       *string `json:"goals_achieved,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	ManagerComments     *string `json:"manager_comments,omitempty"`
	EmployeeComments    *string `json:"employee_comments,omitempty"`
	Status              string  `json:"status"`
	CompletedAt         *string `json:"completed_at,omitempty"`
	CreatedAt           string  `json:"created_at"`
}
