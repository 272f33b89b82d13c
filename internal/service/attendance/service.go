package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	clock          clock.Clock
	breakMinutes   int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	clk clock.Clock,
	breakMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		clock:          clk,
		breakMinutes:   breakMinutes,
	}
}

// Clock implements attendance.AttendanceService. The first call of the day
// opens the record, the second closes it and computes hours, and any later
// call is rejected.
func (s *AttendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, requester.ID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.ClockResponse{}, err
	}

	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		created, wasCreated, err := s.attendanceRepo.CreateClockIn(ctx, attendance.Attendance{
			UserID:       requester.ID,
			Date:         today,
			ClockIn:      &now,
			BreakMinutes: s.breakMinutes,
			Status:       attendance.StatusPresent,
			Notes:        req.Notes,
		})
		if err != nil {
			return attendance.ClockResponse{}, err
		}
		if wasCreated {
			return attendance.ClockResponse{
				Action:     "clocked_in",
				Message:    "Clocked in successfully. Have a great day!",
				Attendance: attendance.NewAttendanceResponse(created),
			}, nil
		}
		// Lost a race with a concurrent clock-in. Fall through to treat
		// the existing row as the current state.
		existing = created
	}

	if existing.IsClosed() {
		return attendance.ClockResponse{}, attendance.ErrDayCompleted
	}

	hours := attendance.HoursWorkedFor(*existing.ClockIn, now, existing.BreakMinutes)
	existing.ClockOut = &now
	existing.HoursWorked = &hours
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	closed, err := s.attendanceRepo.CompleteDay(ctx, existing)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Action:     "clocked_out",
		Message:    "Clocked out successfully. See you tomorrow!",
		Attendance: attendance.NewAttendanceResponse(closed),
	}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	scope, err := s.scopeFor(ctx, requester)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter, scope)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return attendance.ListAttendanceResponse{
		Records: attendance.NewAttendanceResponses(records),
		Meta:    &meta,
	}, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.UserID == "" {
		filter.UserID = requester.ID
	}

	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.UserID != requester.ID {
		owner, err := s.userRepo.GetByID(ctx, filter.UserID)
		if err != nil {
			return attendance.ListAttendanceResponse{}, err
		}
		if !authz.CanViewRecordOf(requester, owner) {
			return attendance.ListAttendanceResponse{}, authz.ErrForbidden
		}
	}

	records, total, err := s.attendanceRepo.ListByUser(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return attendance.ListAttendanceResponse{
		Records: attendance.NewAttendanceResponses(records),
		Meta:    &meta,
	}, nil
}

// Update implements attendance.AttendanceService. This is the HR correction
// path: it overwrites the stored punches and recomputes hours, outside the
// daily state machine.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !requester.IsHr() {
		return attendance.AttendanceResponse{}, authz.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.ClockIn != nil {
		clockIn, _ := time.Parse(time.RFC3339, *req.ClockIn)
		record.ClockIn = &clockIn
	}
	if req.ClockOut != nil {
		clockOut, _ := time.Parse(time.RFC3339, *req.ClockOut)
		record.ClockOut = &clockOut
	}
	if req.BreakMinutes != nil {
		record.BreakMinutes = *req.BreakMinutes
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if record.ClockIn != nil && record.ClockOut != nil {
		hours := attendance.HoursWorkedFor(*record.ClockIn, *record.ClockOut, record.BreakMinutes)
		record.HoursWorked = &hours
	} else {
		record.HoursWorked = nil
	}

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(updated), nil
}

func (s *AttendanceServiceImpl) scopeFor(ctx context.Context, requester authz.Requester) (user.Scope, error) {
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
