package attendance

import (
	"context"
	"time"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate retrieves the record for one employee on one day
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// CreateClockIn inserts a new day record. If a concurrent request
	// already created the row for (user, date), the existing row is
	// returned with created=false.
	CreateClockIn(ctx context.Context, a Attendance) (Attendance, bool, error)

	// CompleteDay sets clock-out and hours on an open day. Returns
	// ErrDayCompleted if the day was already closed by another request.
	CompleteDay(ctx context.Context, a Attendance) (Attendance, error)

	// Update overwrites punches, break, hours, status and notes. This is
	// the correction path and ignores the state machine.
	Update(ctx context.Context, a Attendance) (Attendance, error)

	// List retrieves attendance within scope, filtered and paginated,
	// newest date first with ID as tie-break
	List(ctx context.Context, filter AttendanceFilter, scope user.Scope) ([]Attendance, int64, error)

	// ListByUser pages through one employee's history, newest date first
	ListByUser(ctx context.Context, filter HistoryFilter) ([]Attendance, int64, error)

	// ListRecentByUser returns the most recent records for one employee
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)
}
