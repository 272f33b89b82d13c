package employee

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

const (
	recentAttendanceLimit = 7
	recentLeavesLimit     = 5
)

type EmployeeServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewEmployeeService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) user.EmployeeService {
	return &EmployeeServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter user.EmployeeFilter) (user.ListEmployeesResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return user.ListEmployeesResponse{}, err
	}

	if !authz.CanListEmployees(requester) {
		return user.ListEmployeesResponse{}, authz.ErrForbidden
	}

	if err := filter.Validate(); err != nil {
		return user.ListEmployeesResponse{}, err
	}

	scope, err := s.scopeFor(ctx, requester)
	if err != nil {
		return user.ListEmployeesResponse{}, err
	}

	users, total, err := s.userRepo.List(ctx, filter, scope)
	if err != nil {
		return user.ListEmployeesResponse{}, err
	}

	departments, err := s.userRepo.ListDepartments(ctx)
	if err != nil {
		return user.ListEmployeesResponse{}, err
	}

	employees := make([]user.EmployeeResponse, 0, len(users))
	for _, u := range users {
		employees = append(employees, user.NewEmployeeResponse(u))
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return user.ListEmployeesResponse{
		Employees:   employees,
		Departments: departments,
		Meta:        &meta,
	}, nil
}

// Create implements user.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if !requester.IsHr() {
		return user.EmployeeResponse{}, authz.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email, "")
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if exists {
		return user.EmployeeResponse{}, user.ErrEmailExists
	}

	if req.EmployeeCode != nil {
		exists, err := s.userRepo.EmployeeCodeExists(ctx, *req.EmployeeCode, "")
		if err != nil {
			return user.EmployeeResponse{}, err
		}
		if exists {
			return user.EmployeeResponse{}, user.ErrEmployeeCodeExists
		}
	}

	if req.ManagerID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return user.EmployeeResponse{}, user.ErrManagerNotFound
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	department := req.Department
	position := req.Position

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         user.Role(req.Role),
		EmployeeCode: req.EmployeeCode,
		Department:   &department,
		Position:     &position,
		Phone:        req.Phone,
		HireDate:     &hireDate,
		Salary:       req.Salary,
		ManagerID:    req.ManagerID,
		Status:       user.StatusActive,
	})
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	return user.NewEmployeeResponse(created), nil
}

// Get implements user.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.EmployeeDetailResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return user.EmployeeDetailResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeDetailResponse{}, err
	}

	if !authz.CanViewEmployee(requester, target) {
		return user.EmployeeDetailResponse{}, authz.ErrForbidden
	}

	reports, err := s.userRepo.ListActiveByManager(ctx, target.ID)
	if err != nil {
		return user.EmployeeDetailResponse{}, err
	}

	directReports := make([]user.EmployeeSummary, 0, len(reports))
	for _, r := range reports {
		directReports = append(directReports, user.NewEmployeeSummary(r))
	}

	recentAttendance, err := s.attendanceRepo.ListRecentByUser(ctx, target.ID, recentAttendanceLimit)
	if err != nil {
		return user.EmployeeDetailResponse{}, err
	}

	recentLeaves, err := s.leaveRepo.ListRecentByEmployee(ctx, target.ID, recentLeavesLimit)
	if err != nil {
		return user.EmployeeDetailResponse{}, err
	}

	return user.EmployeeDetailResponse{
		Employee:         user.NewEmployeeResponse(target),
		DirectReports:    directReports,
		RecentAttendance: attendanceSummaries(recentAttendance),
		RecentLeaves:     leaveSummaries(recentLeaves),
		CanEdit:          requester.IsHr() || requester.ID == target.ID,
	}, nil
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) (user.EmployeeResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	if !requester.IsHr() && requester.ID != target.ID {
		return user.EmployeeResponse{}, authz.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	if req.Name != nil {
		target.Name = *req.Name
	}

	if req.Email != nil && *req.Email != target.Email {
		exists, err := s.userRepo.EmailExists(ctx, *req.Email, target.ID)
		if err != nil {
			return user.EmployeeResponse{}, err
		}
		if exists {
			return user.EmployeeResponse{}, user.ErrEmailExists
		}
		target.Email = *req.Email
	}

	if req.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		target.PasswordHash = string(passwordHash)
	}

	if req.Phone != nil {
		target.Phone = req.Phone
	}

	// Privileged fields only take effect for HR callers. A self-service
	// edit that includes them succeeds with those fields ignored.
	if requester.IsHr() {
		if err := s.applyPrivilegedFields(ctx, &target, req); err != nil {
			return user.EmployeeResponse{}, err
		}
	}

	updated, err := s.userRepo.Update(ctx, target)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	return user.NewEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) applyPrivilegedFields(ctx context.Context, target *user.User, req user.UpdateEmployeeRequest) error {
	if req.Role != nil {
		target.Role = user.Role(*req.Role)
	}

	if req.EmployeeCode != nil {
		exists, err := s.userRepo.EmployeeCodeExists(ctx, *req.EmployeeCode, target.ID)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrEmployeeCodeExists
		}
		target.EmployeeCode = req.EmployeeCode
	}

	if req.Department != nil {
		target.Department = req.Department
	}

	if req.Position != nil {
		target.Position = req.Position
	}

	if req.HireDate != nil {
		hireDate, err := time.Parse(time.DateOnly, *req.HireDate)
		if err != nil {
			return fmt.Errorf("failed to parse hire date: %w", err)
		}
		target.HireDate = &hireDate
	}

	if req.Salary != nil {
		target.Salary = req.Salary
	}

	if req.ManagerID != nil {
		target.ManagerName = nil
		if *req.ManagerID == "" {
			target.ManagerID = nil
		} else {
			if *req.ManagerID == target.ID {
				return user.ErrSelfManagement
			}
			if _, err := s.userRepo.GetByID(ctx, *req.ManagerID); err != nil {
				return user.ErrManagerNotFound
			}
			target.ManagerID = req.ManagerID
		}
	}

	if req.Status != nil {
		target.Status = user.Status(*req.Status)
	}

	return nil
}

// Terminate implements user.EmployeeService.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, id string) error {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return err
	}
	if !requester.IsHr() {
		return authz.ErrForbidden
	}

	// Termination is a status transition. The record and its history stay
	// queryable for HR.
	return s.userRepo.UpdateStatus(ctx, id, user.StatusTerminated)
}

func (s *EmployeeServiceImpl) scopeFor(ctx context.Context, requester authz.Requester) (user.Scope, error) {
	if requester.IsHr() {
		return user.Scope{All: true}, nil
	}

	reportIDs, err := s.userRepo.ListReportIDs(ctx, requester.ID)
	if err != nil {
		return user.Scope{}, err
	}

	return authz.ScopeFor(requester, reportIDs), nil
}

func attendanceSummaries(records []attendance.Attendance) []user.AttendanceSummary {
	summaries := make([]user.AttendanceSummary, 0, len(records))
	for _, a := range records {
		resp := attendance.NewAttendanceResponse(a)
		summaries = append(summaries, user.AttendanceSummary{
			ID:          resp.ID,
			Date:        resp.Date,
			ClockIn:     resp.ClockIn,
			ClockOut:    resp.ClockOut,
			HoursWorked: resp.HoursWorked,
			Status:      resp.Status,
		})
	}
	return summaries
}

func leaveSummaries(requests []leave.LeaveRequest) []user.LeaveSummary {
	summaries := make([]user.LeaveSummary, 0, len(requests))
	for _, l := range requests {
		summaries = append(summaries, user.LeaveSummary{
			ID:            l.ID,
			Type:          string(l.Type),
			StartDate:     l.StartDate.Format(time.DateOnly),
			EndDate:       l.EndDate.Format(time.DateOnly),
			DaysRequested: l.DaysRequested,
			Status:        string(l.Status),
			ApproverName:  l.ApproverName,
		})
	}
	return summaries
}
