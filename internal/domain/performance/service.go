package performance

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Meta    *pagination.Meta `json:"meta"`
}

// ReviewService exposes the performance review lifecycle.
type ReviewService interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	List(ctx context.Context, filter ReviewFilter) (ListReviewsResponse, error)
	Get(ctx context.Context, id string) (ReviewResponse, error)
	Complete(ctx context.Context, req CompleteReviewRequest) (ReviewResponse, error)
	Acknowledge(ctx context.Context, req AcknowledgeReviewRequest) (ReviewResponse, error)
}
