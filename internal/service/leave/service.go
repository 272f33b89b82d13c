package leave

import (
	"context"
	"time"

	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	userRepo  user.UserRepository
	clock     clock.Clock
}

func NewLeaveService(leaveRepo leave.LeaveRepository, userRepo user.UserRepository, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
		clock:     clk,
	}
}

// Create implements leave.LeaveService. A new request always starts pending,
// whoever files it.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse(time.DateOnly, req.StartDate)
	endDate, _ := time.Parse(time.DateOnly, req.EndDate)

	// Days are counted inclusively on calendar days.
	daysRequested := int(endDate.Sub(startDate).Hours()/24) + 1

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:        requester.ID,
		Type:          leave.Type(req.Type),
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: daysRequested,
		Reason:        req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	scope, err := s.scopeFor(ctx, requester)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.leaveRepo.List(ctx, filter, scope)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return leave.ListLeaveResponse{
		Requests: leave.NewLeaveRequestResponses(requests),
		Meta:     &meta,
	}, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.UserID != requester.ID {
		owner, err := s.userRepo.GetByID(ctx, request.UserID)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if !authz.CanViewRecordOf(requester, owner) {
			return leave.LeaveRequestResponse{}, authz.ErrForbidden
		}
	}

	return leave.NewLeaveRequestResponse(request), nil
}

// Decide implements leave.LeaveService. Approval does not enforce the
// annual allowance: the balance simply floors at zero when HR over-approves.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	owner, err := s.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !authz.CanApproveLeaveFor(requester, owner) {
		return leave.LeaveRequestResponse{}, authz.ErrForbidden
	}

	if !request.IsPending() {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := s.clock.Now()
	request.Status = req.Decision
	request.ApprovedBy = &requester.ID
	request.ApprovedAt = &now
	request.Comments = req.Comments

	decided, err := s.leaveRepo.Decide(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided.UserName = request.UserName
	return leave.NewLeaveRequestResponse(decided), nil
}

// BalanceFor implements leave.LeaveService.
func (s *LeaveServiceImpl) BalanceFor(ctx context.Context, userID string) (leave.Balance, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return leave.Balance{}, err
	}

	if userID == "" {
		userID = requester.ID
	}

	if userID != requester.ID {
		owner, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return leave.Balance{}, err
		}
		if !authz.CanViewRecordOf(requester, owner) {
			return leave.Balance{}, authz.ErrForbidden
		}
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, userID)
	if err != nil {
		return leave.Balance{}, err
	}

	return leave.ComputeBalance(requests, s.clock.Now()), nil
}

func (s *LeaveServiceImpl) scopeFor(ctx context.Context, requester authz.Requester) (user.Scope, error) {
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
