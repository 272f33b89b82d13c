package performance

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

// ReviewRepository defines data access methods for performance reviews.
type ReviewRepository interface {
	// Create persists a new draft review
	Create(ctx context.Context, r Review) (Review, error)

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (Review, error)

	// Update persists the mutable fields of a review
	Update(ctx context.Context, r Review) (Review, error)

	// List retrieves reviews whose employee falls within scope, filtered
	// and paginated, newest first with ID as tie-break. Reviews the
	// requester wrote are always included.
	List(ctx context.Context, filter ReviewFilter, scope user.Scope, reviewerID string) ([]Review, int64, error)
}
