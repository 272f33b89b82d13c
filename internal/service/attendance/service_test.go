package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/hrd-manager/internal/domain/attendance"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance // keyed by userID + date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(userID string, date time.Time) string {
	return userID + "|" + date.Format(time.DateOnly)
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	if a, ok := f.records[f.key(userID, date)]; ok {
		return a, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CreateClockIn(_ context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	k := f.key(a.UserID, a.Date)
	if existing, ok := f.records[k]; ok {
		return existing, false, nil
	}
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[k] = a
	return a, true, nil
}

func (f *fakeAttendanceRepo) CompleteDay(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for k, existing := range f.records {
		if existing.ID == a.ID {
			if existing.ClockOut != nil {
				return attendance.Attendance{}, attendance.ErrDayCompleted
			}
			f.records[k] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, a := range f.records {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for k, existing := range f.records {
		if existing.ID == a.ID {
			f.records[k] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter, _ user.Scope) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, _ attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListRecentByUser(_ context.Context, _ string, _ int) ([]attendance.Attendance, error) {
	return nil, nil
}

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type tickingClock struct {
	instant time.Time
}

func (c *tickingClock) Now() time.Time { return c.instant }

func TestClock_FullDayCycle(t *testing.T) {
	repo := newFakeAttendanceRepo()
	clk := &tickingClock{instant: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, nil, clk, 45)

	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	// First action of the day clocks in.
	first, err := svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)
	assert.Equal(t, "clocked_in", first.Action)
	assert.NotNil(t, first.Attendance.ClockIn)
	assert.Nil(t, first.Attendance.ClockOut)

	// Second action clocks out and computes hours.
	clk.instant = time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	second, err := svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)
	assert.Equal(t, "clocked_out", second.Action)
	require.NotNil(t, second.Attendance.HoursWorked)
	assert.Equal(t, "7.75", *second.Attendance.HoursWorked)

	// Third action is rejected.
	_, err = svc.Clock(ctx, attendance.ClockRequest{})
	assert.ErrorIs(t, err, attendance.ErrDayCompleted)
}

func TestClock_BreakLongerThanShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	clk := &tickingClock{instant: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, nil, clk, 60)

	ctx := authedContext(t, "emp-2", user.RoleEmployee)

	_, err := svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)

	clk.instant = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	resp, err := svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.Attendance.HoursWorked)
	assert.Equal(t, "0", *resp.Attendance.HoursWorked)
}

func TestClock_NewDayStartsFresh(t *testing.T) {
	repo := newFakeAttendanceRepo()
	clk := &tickingClock{instant: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, nil, clk, 60)

	ctx := authedContext(t, "emp-3", user.RoleEmployee)

	_, err := svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)
	clk.instant = time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	_, err = svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)

	// The next day the cycle restarts.
	clk.instant = time.Date(2026, 3, 3, 8, 15, 0, 0, time.UTC)
	resp, err := svc.Clock(ctx, attendance.ClockRequest{})
	require.NoError(t, err)
	assert.Equal(t, "clocked_in", resp.Action)
}

var _ clock.Clock = (*tickingClock)(nil)
