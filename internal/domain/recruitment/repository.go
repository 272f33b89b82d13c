package recruitment

import "context"

// PostingRepository defines data access methods for job postings.
type PostingRepository interface {
	// Create persists a new posting
	Create(ctx context.Context, p JobPosting) (JobPosting, error)

	// GetByID retrieves a posting by ID
	GetByID(ctx context.Context, id string) (JobPosting, error)

	// Update persists the mutable fields of a posting
	Update(ctx context.Context, p JobPosting) (JobPosting, error)

	// Delete removes a posting and its applications
	Delete(ctx context.Context, id string) error

	// List retrieves postings filtered and paginated, newest first with
	// ID as tie-break. Application counts are included.
	List(ctx context.Context, filter PostingFilter) ([]JobPosting, int64, error)

	// ListPublished retrieves the public job board view
	ListPublished(ctx context.Context, filter PostingFilter) ([]JobPosting, int64, error)
}

// ApplicationRepository defines data access methods for job applications.
type ApplicationRepository interface {
	// Create persists a new application, always in pending status
	Create(ctx context.Context, a JobApplication) (JobApplication, error)

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id string) (JobApplication, error)

	// UpdateStatus moves an application through the pipeline
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, notes *string) (JobApplication, error)

	// List retrieves applications filtered and paginated, newest first
	// with ID as tie-break
	List(ctx context.Context, filter ApplicationFilter) ([]JobApplication, int64, error)

	// ListRecent returns the most recent applications for the dashboard
	ListRecent(ctx context.Context, limit int) ([]JobApplication, error)
}
