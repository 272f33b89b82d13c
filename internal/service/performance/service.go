package performance

import (
	"context"
	"time"

	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/performance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type ReviewServiceImpl struct {
	reviewRepo performance.ReviewRepository
	userRepo   user.UserRepository
	clock      clock.Clock
}

func NewReviewService(reviewRepo performance.ReviewRepository, userRepo user.UserRepository, clk clock.Clock) performance.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		clock:      clk,
	}
}

// Create implements performance.ReviewService. HR can open a review for
// anyone, a manager only for their direct reports.
func (s *ReviewServiceImpl) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	employee, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	isTheirManager := employee.ManagerID != nil && *employee.ManagerID == requester.ID
	if !requester.IsHr() && !isTheirManager {
		return performance.ReviewResponse{}, authz.ErrForbidden
	}

	periodStart, _ := time.Parse(time.DateOnly, req.PeriodStart)
	periodEnd, _ := time.Parse(time.DateOnly, req.PeriodEnd)

	created, err := s.reviewRepo.Create(ctx, performance.Review{
		EmployeeID:  req.EmployeeID,
		ReviewerID:  requester.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	created.EmployeeName = employee.Name
	return performance.NewReviewResponse(created), nil
}

// List implements performance.ReviewService.
func (s *ReviewServiceImpl) List(ctx context.Context, filter performance.ReviewFilter) (performance.ListReviewsResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return performance.ListReviewsResponse{}, err
	}

	scope, err := s.scopeFor(ctx, requester)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter, scope, requester.ID)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return performance.ListReviewsResponse{
		Reviews: performance.NewReviewResponses(reviews),
		Meta:    &meta,
	}, nil
}

// Get implements performance.ReviewService.
func (s *ReviewServiceImpl) Get(ctx context.Context, id string) (performance.ReviewResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if err := s.canSee(ctx, requester, review); err != nil {
		return performance.ReviewResponse{}, err
	}

	return performance.NewReviewResponse(review), nil
}

// Complete implements performance.ReviewService.
func (s *ReviewServiceImpl) Complete(ctx context.Context, req performance.CompleteReviewRequest) (performance.ReviewResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if review.ReviewerID != requester.ID {
		return performance.ReviewResponse{}, performance.ErrNotReviewer
	}
	if !review.IsDraft() {
		return performance.ReviewResponse{}, performance.ErrReviewNotDraft
	}

	now := s.clock.Now()
	review.Score = &req.Score
	review.GoalsAchieved = req.GoalsAchieved
	review.AreasForImprovement = req.AreasForImprovement
	review.ManagerComments = req.ManagerComments
	review.Status = performance.StatusCompleted
	review.CompletedAt = &now

	updated, err := s.reviewRepo.Update(ctx, review)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	return performance.NewReviewResponse(updated), nil
}

// Acknowledge implements performance.ReviewService.
func (s *ReviewServiceImpl) Acknowledge(ctx context.Context, req performance.AcknowledgeReviewRequest) (performance.ReviewResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if review.EmployeeID != requester.ID {
		return performance.ReviewResponse{}, performance.ErrNotReviewedEmployee
	}
	if review.Status != performance.StatusCompleted {
		return performance.ReviewResponse{}, performance.ErrReviewNotCompleted
	}

	review.EmployeeComments = req.EmployeeComments
	review.Status = performance.StatusAcknowledged

	updated, err := s.reviewRepo.Update(ctx, review)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	return performance.NewReviewResponse(updated), nil
}

func (s *ReviewServiceImpl) canSee(ctx context.Context, requester authz.Requester, review performance.Review) error {
	if requester.IsHr() || review.EmployeeID == requester.ID || review.ReviewerID == requester.ID {
		return nil
	}

	owner, err := s.userRepo.GetByID(ctx, review.EmployeeID)
	if err != nil {
		return err
	}
	if !authz.CanViewRecordOf(requester, owner) {
		return authz.ErrForbidden
	}
	return nil
}

func (s *ReviewServiceImpl) scopeFor(ctx context.Context, requester authz.Requester) (user.Scope, error) {
	if requester.IsHr() {
		return user.Scope{All: true}, nil
	}
	if requester.IsManager() {
		reportIDs, err := s.userRepo.ListReportIDs(ctx, requester.ID)
		if err != nil {
			return user.Scope{}, err
		}
		return authz.ScopeFor(requester, reportIDs), nil
	}
	return authz.ScopeFor(requester, nil), nil
}
