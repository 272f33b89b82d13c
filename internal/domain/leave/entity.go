package leave

import "time"

type Type string

const (
	TypeVacation  Type = "vacation"
	TypeSick      Type = "sick"
	TypePersonal  Type = "personal"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeEmergency Type = "emergency"
)

var ValidTypes = []string{
	string(TypeVacation),
	string(TypeSick),
	string(TypePersonal),
	string(TypeMaternity),
	string(TypePaternity),
	string(TypeEmergency),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ValidStatuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// LeaveRequest is an employee's request for time off. Approval fields are
// set together with the status transition and only then: a pending request
// never carries them, a decided request always does.
type LeaveRequest struct {
	ID            string
	UserID        string
	Type          Type
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Reason        *string
	Status        Status
	ApprovedBy    *string
	ApprovedAt    *time.Time
	Comments      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined names for listings.
	UserName     string
	ApproverName *string
}

// IsPending reports whether the request still awaits a decision.
func (l LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}
