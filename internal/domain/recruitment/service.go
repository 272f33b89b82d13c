package recruitment

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type ListPostingsResponse struct {
	Postings []PostingResponse `json:"postings"`
	Meta     *pagination.Meta  `json:"meta"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Meta         *pagination.Meta      `json:"meta"`
}

// RecruitmentService exposes job posting management, the public job board
// and the application pipeline.
type RecruitmentService interface {
	CreatePosting(ctx context.Context, req CreatePostingRequest) (PostingResponse, error)
	UpdatePosting(ctx context.Context, req UpdatePostingRequest) (PostingResponse, error)
	DeletePosting(ctx context.Context, id string) error
	GetPosting(ctx context.Context, id string) (PostingResponse, error)
	ListPostings(ctx context.Context, filter PostingFilter) (ListPostingsResponse, error)

	// Public endpoints, no authentication.
	ListPublicPostings(ctx context.Context, filter PostingFilter) (ListPostingsResponse, error)
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)

	ListApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationsResponse, error)
	UpdateApplicationStatus(ctx context.Context, req UpdateApplicationStatusRequest) (ApplicationResponse, error)
}
