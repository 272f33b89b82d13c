package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
}

// Attendance is one employee's record for one calendar day. A day moves
// through at most two transitions: clock-in creates the row, clock-out
// closes it. A closed day never reopens.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	BreakMinutes int
	HoursWorked  *decimal.Decimal
	Status       Status
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// UserName is joined from the employee record for listings.
	UserName string
}

// IsClosed reports whether the day already has both punches.
func (a Attendance) IsClosed() bool {
	return a.ClockIn != nil && a.ClockOut != nil
}

// HoursWorkedFor computes the net working hours between two punches. The
// difference is taken in whole minutes, the break is subtracted and the
// result clamped at zero, then converted to hours rounded to two decimals.
func HoursWorkedFor(clockIn, clockOut time.Time, breakMinutes int) decimal.Decimal {
	diffMinutes := int64(clockOut.Sub(clockIn) / time.Minute)
	net := diffMinutes - int64(breakMinutes)
	if net < 0 {
		net = 0
	}
	return decimal.NewFromInt(net).DivRound(decimal.NewFromInt(60), 2)
}
