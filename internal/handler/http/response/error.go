package response

import (
	"errors"
	"net/http"

	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/auth"
	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/performance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/recruitment"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authorization
	case errors.Is(err, authz.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrHrAccessRequired):
		Forbidden(w, "HR access required")
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "HR or manager access required")

	// Auth domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "This account is not active")
	case errors.Is(err, auth.ErrOAuthFailed):
		Unauthorized(w, "Google authentication failed")

	// Employee domain errors
	case errors.Is(err, user.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, user.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)
	case errors.Is(err, user.ErrSelfManagement):
		BadRequest(w, "An employee cannot be their own manager", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayCompleted):
		Conflict(w, "You have already completed your attendance for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Performance review domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrReviewNotDraft):
		Conflict(w, "Review has already been completed")
	case errors.Is(err, performance.ErrReviewNotCompleted):
		Conflict(w, "Review must be completed before acknowledgement")
	case errors.Is(err, performance.ErrNotReviewer):
		Forbidden(w, "Only the assigned reviewer can complete this review")
	case errors.Is(err, performance.ErrNotReviewedEmployee):
		Forbidden(w, "Only the reviewed employee can acknowledge this review")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, recruitment.ErrApplicationNotFound):
		NotFound(w, "Job application not found")
	case errors.Is(err, recruitment.ErrPostingNotOpen):
		Conflict(w, "This job posting is not accepting applications")
	case errors.Is(err, recruitment.ErrDeadlinePassed):
		Conflict(w, "The application deadline has passed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
