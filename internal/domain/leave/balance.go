package leave

import "time"

// AnnualAllowance is the fixed number of leave days everyone gets per
// calendar year.
const AnnualAllowance = 25

// Balance is an employee's leave position for the current year.
type Balance struct {
	Annual    int `json:"annual"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// ComputeBalance derives the balance from an employee's leave requests.
// Only approved requests count, and a request is attributed to the year
// its start date falls in. Over-approval is allowed, so remaining is
// floored at zero rather than letting the balance go negative.
func ComputeBalance(requests []LeaveRequest, now time.Time) Balance {
	year := now.Year()

	used := 0
	for _, r := range requests {
		if r.Status != StatusApproved {
			continue
		}
		if r.StartDate.Year() != year {
			continue
		}
		used += r.DaysRequested
	}

	remaining := AnnualAllowance - used
	if remaining < 0 {
		remaining = 0
	}

	return Balance{
		Annual:    AnnualAllowance,
		Used:      used,
		Remaining: remaining,
	}
}
