package attendance

import (
	"github.com/appdotbuilder/hrd-manager/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockRequest is the body of the punch endpoint. The server decides
// whether it is a clock-in or a clock-out from the current day state.
type ClockRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ClockResponse reports which transition happened.
type ClockResponse struct {
	Action     string             `json:"action"` // clocked_in | clocked_out
	Message    string             `json:"message"`
	Attendance AttendanceResponse `json:"attendance"`
}

// UpdateAttendanceRequest is the HR correction path, the only write that
// bypasses the punch state machine. Hours are recomputed from the corrected
// punches.
type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	ClockIn      *string `json:"clock_in,omitempty"`  // RFC3339
	ClockOut     *string `json:"clock_out,omitempty"` // RFC3339
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.ClockIn != nil {
		if _, valid := validator.IsValidDateTime(*r.ClockIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.ClockOut != nil {
		if _, valid := validator.IsValidDateTime(*r.ClockOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an ISO8601 timestamp",
			})
		}
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half_day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	DateFrom  *string `json:"date_from,omitempty"` // YYYY-MM-DD
	DateTo    *string `json:"date_to,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
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

	if f.UserID != nil && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if f.DateFrom != nil {
		if _, valid := validator.IsValidDate(*f.DateFrom); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			})
		}
	}

	if f.DateTo != nil {
		if _, valid := validator.IsValidDate(*f.DateTo); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half_day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HistoryFilter pages through a single employee's attendance history.
type HistoryFilter struct {
	UserID string `json:"-"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
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
		f.Limit = 20 // Default limit for per-employee history
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	BreakMinutes int     `json:"break_minutes"`
	HoursWorked  *string `json:"hours_worked,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}
