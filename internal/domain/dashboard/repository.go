package dashboard

import (
	"context"
	"time"
)

// StatsRepository provides the aggregate queries behind the dashboard.
// Everything is a count or a small slice, computed in the database.
type StatsRepository interface {
	// CountActiveEmployees counts employees with active status
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountAttendanceOn counts attendance rows on the given date
	CountAttendanceOn(ctx context.Context, date time.Time) (int64, error)

	// CountPendingLeaves counts pending leave requests
	CountPendingLeaves(ctx context.Context) (int64, error)

	// CountPublishedPostings counts published job postings
	CountPublishedPostings(ctx context.Context) (int64, error)

	// CountDraftReviews counts draft reviews, optionally limited to one
	// reviewer
	CountDraftReviews(ctx context.Context, reviewerID *string) (int64, error)

	// DepartmentHeadcounts groups active employees by department
	DepartmentHeadcounts(ctx context.Context) ([]DepartmentHeadcount, error)

	// CountHiresSince counts active employees hired on or after the date
	CountHiresSince(ctx context.Context, date time.Time) (int64, error)

	// CountAttendanceInRange counts one employee's attendance rows with
	// date in [from, to)
	CountAttendanceInRange(ctx context.Context, userID string, from, to time.Time) (int64, error)
}
