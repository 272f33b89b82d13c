package user

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type ListEmployeesResponse struct {
	Employees   []EmployeeResponse `json:"employees"`
	Departments []string           `json:"departments"`
	Meta        *pagination.Meta   `json:"meta"`
}

// EmployeeService exposes the employee management operations. Authorization
// happens inside the service using the authenticated caller's claims.
type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeDetailResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Terminate(ctx context.Context, id string) error
}

// EmployeeDetailResponse is the show view: the record plus recent activity.
type EmployeeDetailResponse struct {
	Employee         EmployeeResponse    `json:"employee"`
	DirectReports    []EmployeeSummary   `json:"direct_reports"`
	RecentAttendance []AttendanceSummary `json:"recent_attendance"`
	RecentLeaves     []LeaveSummary      `json:"recent_leaves"`
	CanEdit          bool                `json:"can_edit"`
}

type EmployeeSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position *string `json:"position,omitempty"`
}

// AttendanceSummary is the condensed attendance row shown on the employee
// detail page.
type AttendanceSummary struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ClockIn     *string `json:"clock_in,omitempty"`
	ClockOut    *string `json:"clock_out,omitempty"`
	HoursWorked *string `json:"hours_worked,omitempty"`
	Status      string  `json:"status"`
}

// LeaveSummary is the condensed leave request shown on the employee detail
// page.
type LeaveSummary struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysRequested int     `json:"days_requested"`
	Status        string  `json:"status"`
	ApproverName  *string `json:"approver_name,omitempty"`
}
