package dashboard

import (
	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/performance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/recruitment"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

// Stats are the counters shown to every role.
type Stats struct {
	ActiveEmployees      int64 `json:"active_employees"`
	AttendanceToday      int64 `json:"attendance_today"`
	PendingLeaveRequests int64 `json:"pending_leave_requests"`
	PublishedJobPostings int64 `json:"published_job_postings"`
}

// DepartmentHeadcount is one row of the HR headcount breakdown.
type DepartmentHeadcount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// HrBlock is the HR-specific dashboard section.
type HrBlock struct {
	RecentApplications []recruitment.ApplicationResponse `json:"recent_applications"`
	DraftReviewCount   int64                             `json:"draft_review_count"`
	Departments        []DepartmentHeadcount             `json:"departments"`
	HiresThisMonth     int64                             `json:"hires_this_month"`
}

// ManagerBlock is the manager-specific dashboard section.
type ManagerBlock struct {
	TeamMembers         []user.EmployeeSummary          `json:"team_members"`
	TeamAttendanceToday []attendance.AttendanceResponse `json:"team_attendance_today"`
	TeamPendingLeaves   []leave.LeaveRequestResponse    `json:"team_pending_leaves"`
	DraftReviews        []performance.ReviewResponse    `json:"draft_reviews"`
}

// EmployeeBlock is the employee-specific dashboard section.
type EmployeeBlock struct {
	TodayAttendance     *attendance.AttendanceResponse `json:"today_attendance"`
	LeaveBalance        leave.Balance                  `json:"leave_balance"`
	RecentLeaveRequests []leave.LeaveRequestResponse   `json:"recent_leave_requests"`
	UpcomingReview      *performance.ReviewResponse    `json:"upcoming_review"`
	AttendanceThisMonth int64                          `json:"attendance_this_month"`
}

// Overview is the full dashboard payload. Exactly one role block is set.
type Overview struct {
	Stats    Stats          `json:"stats"`
	Hr       *HrBlock       `json:"hr,omitempty"`
	Manager  *ManagerBlock  `json:"manager,omitempty"`
	Employee *EmployeeBlock `json:"employee,omitempty"`
}
