package user

import (
	"context"
)

// UserRepository defines data access methods for employee records.
type UserRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves an employee by email, regardless of status
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update persists the full field set of an existing employee
	Update(ctx context.Context, u User) (User, error)

	// UpdateStatus performs a soft status transition (terminate is never a
	// physical delete)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// List retrieves employees within scope, filtered and paginated,
	// newest hire date first with ID as tie-break
	List(ctx context.Context, filter EmployeeFilter, scope Scope) ([]User, int64, error)

	// ListReportIDs returns the IDs of a manager's direct reports,
	// never including the manager itself
	ListReportIDs(ctx context.Context, managerID string) ([]string, error)

	// ListActiveByManager returns a manager's active direct reports
	ListActiveByManager(ctx context.Context, managerID string) ([]User, error)

	// ListDepartments returns the distinct departments of active employees
	ListDepartments(ctx context.Context) ([]string, error)

	// EmailExists reports whether another employee already uses the email
	EmailExists(ctx context.Context, email string, excludeID string) (bool, error)

	// EmployeeCodeExists reports whether another employee already uses the code
	EmployeeCodeExists(ctx context.Context, code string, excludeID string) (bool, error)
}
