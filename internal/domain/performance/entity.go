package performance

import "time"

type Status string

const (
	StatusDraft        Status = "draft"
	StatusCompleted    Status = "completed"
	StatusAcknowledged Status = "acknowledged"
)

var ValidStatuses = []string{
	string(StatusDraft),
	string(StatusCompleted),
	string(StatusAcknowledged),
}

// Review is a performance review for one employee over one period. It is
// created as a draft by the reviewer, completed with a score, then
// acknowledged by the employee.
type Review struct {
	ID                  string
	EmployeeID          string
	ReviewerID          string
	PeriodStart         time.Time
	PeriodEnd           time.Time
	Score               *int // 1 to 10, set on completion
	GoalsAchieved       *string
	AreasForImprovement *string
	ManagerComments     *string
	EmployeeComments    *string
	Status              Status
	CompletedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined names for listings.
	EmployeeName string
	ReviewerName string
}

// IsDraft reports whether the review is still being written.
func (r Review) IsDraft() bool { return r.Status == StatusDraft }
