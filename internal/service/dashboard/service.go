package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/dashboard"
	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/performance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/recruitment"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
)

const recentItemsLimit = 5

type DashboardServiceImpl struct {
	statsRepo       dashboard.StatsRepository
	userRepo        user.UserRepository
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRepository
	reviewRepo      performance.ReviewRepository
	applicationRepo recruitment.ApplicationRepository
	clock           clock.Clock
}

func NewDashboardService(
	statsRepo dashboard.StatsRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	reviewRepo performance.ReviewRepository,
	applicationRepo recruitment.ApplicationRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		statsRepo:       statsRepo,
		userRepo:        userRepo,
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		reviewRepo:      reviewRepo,
		applicationRepo: applicationRepo,
		clock:           clk,
	}
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.Overview, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return dashboard.Overview{}, err
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.commonStats(ctx, today)
	if err != nil {
		return dashboard.Overview{}, err
	}

	overview := dashboard.Overview{Stats: stats}

	switch {
	case requester.IsHr():
		block, err := s.hrBlock(ctx, now)
		if err != nil {
			return dashboard.Overview{}, err
		}
		overview.Hr = block
	case requester.IsManager():
		block, err := s.managerBlock(ctx, requester, today)
		if err != nil {
			return dashboard.Overview{}, err
		}
		overview.Manager = block
	default:
		block, err := s.employeeBlock(ctx, requester, now, today)
		if err != nil {
			return dashboard.Overview{}, err
		}
		overview.Employee = block
	}

	return overview, nil
}

func (s *DashboardServiceImpl) commonStats(ctx context.Context, today time.Time) (dashboard.Stats, error) {
	activeEmployees, err := s.statsRepo.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	attendanceToday, err := s.statsRepo.CountAttendanceOn(ctx, today)
	if err != nil {
		return dashboard.Stats{}, err
	}

	pendingLeaves, err := s.statsRepo.CountPendingLeaves(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	publishedPostings, err := s.statsRepo.CountPublishedPostings(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	return dashboard.Stats{
		ActiveEmployees:      activeEmployees,
		AttendanceToday:      attendanceToday,
		PendingLeaveRequests: pendingLeaves,
		PublishedJobPostings: publishedPostings,
	}, nil
}

func (s *DashboardServiceImpl) hrBlock(ctx context.Context, now time.Time) (*dashboard.HrBlock, error) {
	applications, err := s.applicationRepo.ListRecent(ctx, recentItemsLimit)
	if err != nil {
		return nil, err
	}

	recentApplications := make([]recruitment.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		recentApplications = append(recentApplications, recruitment.NewApplicationResponse(a, nil))
	}

	draftReviews, err := s.statsRepo.CountDraftReviews(ctx, nil)
	if err != nil {
		return nil, err
	}

	departments, err := s.statsRepo.DepartmentHeadcounts(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	hires, err := s.statsRepo.CountHiresSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	return &dashboard.HrBlock{
		RecentApplications: recentApplications,
		DraftReviewCount:   draftReviews,
		Departments:        departments,
		HiresThisMonth:     hires,
	}, nil
}

func (s *DashboardServiceImpl) managerBlock(ctx context.Context, requester authz.Requester, today time.Time) (*dashboard.ManagerBlock, error) {
	team, err := s.userRepo.ListActiveByManager(ctx, requester.ID)
	if err != nil {
		return nil, err
	}

	// The report index drops malformed self-managed rows, so the manager
	// never counts among their own team.
	teamIDs := user.BuildReportIndex(team)[requester.ID]
	isReport := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		isReport[id] = true
	}

	teamMembers := make([]user.EmployeeSummary, 0, len(teamIDs))
	for _, member := range team {
		if !isReport[member.ID] {
			continue
		}
		teamMembers = append(teamMembers, user.NewEmployeeSummary(member))
	}

	scope := user.Scope{UserIDs: teamIDs}

	var teamAttendance []attendance.Attendance
	if len(teamIDs) > 0 {
		todayStr := today.Format(time.DateOnly)
		filter := attendance.AttendanceFilter{
			DateFrom: &todayStr,
			DateTo:   &todayStr,
			Page:     1,
			Limit:    len(teamIDs),
		}
		teamAttendance, _, err = s.attendanceRepo.List(ctx, filter, scope)
		if err != nil {
			return nil, err
		}
	}

	var teamPendingLeaves []leave.LeaveRequest
	if len(teamIDs) > 0 {
		pending := string(leave.StatusPending)
		filter := leave.LeaveFilter{Status: &pending, Page: 1, Limit: 100}
		teamPendingLeaves, _, err = s.leaveRepo.List(ctx, filter, scope)
		if err != nil {
			return nil, err
		}
	}

	draft := string(performance.StatusDraft)
	reviews, _, err := s.reviewRepo.List(ctx,
		performance.ReviewFilter{Status: &draft, Page: 1, Limit: 100},
		user.Scope{UserIDs: teamIDs}, requester.ID)
	if err != nil {
		return nil, err
	}

	return &dashboard.ManagerBlock{
		TeamMembers:         teamMembers,
		TeamAttendanceToday: attendance.NewAttendanceResponses(teamAttendance),
		TeamPendingLeaves:   leave.NewLeaveRequestResponses(teamPendingLeaves),
		DraftReviews:        performance.NewReviewResponses(reviews),
	}, nil
}

func (s *DashboardServiceImpl) employeeBlock(ctx context.Context, requester authz.Requester, now, today time.Time) (*dashboard.EmployeeBlock, error) {
	block := &dashboard.EmployeeBlock{}

	todayAttendance, err := s.attendanceRepo.GetByUserAndDate(ctx, requester.ID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, err
	}
	if err == nil {
		resp := attendance.NewAttendanceResponse(todayAttendance)
		block.TodayAttendance = &resp
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	block.LeaveBalance = leave.ComputeBalance(requests, now)

	recentLeaves, err := s.leaveRepo.ListRecentByEmployee(ctx, requester.ID, recentItemsLimit)
	if err != nil {
		return nil, err
	}
	block.RecentLeaveRequests = leave.NewLeaveRequestResponses(recentLeaves)

	draft := string(performance.StatusDraft)
	ownID := requester.ID
	reviews, _, err := s.reviewRepo.List(ctx,
		performance.ReviewFilter{Status: &draft, EmployeeID: &ownID, Page: 1, Limit: 1},
		user.Scope{UserIDs: []string{requester.ID}}, requester.ID)
	if err != nil {
		return nil, err
	}
	if len(reviews) > 0 {
		resp := performance.NewReviewResponse(reviews[0])
		block.UpcomingReview = &resp
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	count, err := s.statsRepo.CountAttendanceInRange(ctx, requester.ID, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	block.AttendanceThisMonth = count

	return block, nil
}
