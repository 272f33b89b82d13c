package leave

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create persists a new request, always in pending status
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves requests within scope, filtered and paginated,
	// newest first with ID as tie-break
	List(ctx context.Context, filter LeaveFilter, scope user.Scope) ([]LeaveRequest, int64, error)

	// ListByEmployee returns all of one employee's requests, used for
	// balance computation
	ListByEmployee(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListRecentByEmployee returns the most recent requests for one employee
	ListRecentByEmployee(ctx context.Context, userID string, limit int) ([]LeaveRequest, error)

	// Decide transitions a pending request to approved or rejected,
	// setting the approval fields in the same statement. Returns
	// ErrAlreadyProcessed when the request is no longer pending.
	Decide(ctx context.Context, decision LeaveRequest) (LeaveRequest, error)
}
