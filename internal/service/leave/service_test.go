package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/leave"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
)

const (
	managerID  = "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"
	employeeID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	l.ID = uuid.Must(uuid.NewV7()).String()
	l.Status = leave.StatusPending
	f.requests[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	if l, ok := f.requests[id]; ok {
		return l, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveFilter, _ user.Scope) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.requests {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListRecentByEmployee(_ context.Context, _ string, _ int) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) Decide(_ context.Context, decision leave.LeaveRequest) (leave.LeaveRequest, error) {
	existing, ok := f.requests[decision.ID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if !existing.IsPending() {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}
	f.requests[decision.ID] = decision
	return decision, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrEmployeeNotFound
}

func (f *fakeUserRepo) ListReportIDs(_ context.Context, managerID string) ([]string, error) {
	var ids []string
	for _, u := range f.users {
		if u.ManagerID != nil && *u.ManagerID == managerID && u.ID != managerID {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func (f *fakeUserRepo) Create(_ context.Context, _ user.User) (user.User, error) {
	return user.User{}, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrEmployeeNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, _ string, _ user.Status) error {
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _ user.EmployeeFilter, _ user.Scope) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) ListActiveByManager(_ context.Context, _ string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListDepartments(_ context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, _ string, _ string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) EmployeeCodeExists(_ context.Context, _ string, _ string) (bool, error) {
	return false, nil
}

func teamUserRepo() *fakeUserRepo {
	mgrID := managerID
	return &fakeUserRepo{users: map[string]user.User{
		managerID:  {ID: managerID, Role: user.RoleManager, Status: user.StatusActive},
		employeeID: {ID: employeeID, Role: user.RoleEmployee, ManagerID: &mgrID, Status: user.StatusActive},
	}}
}

func strPtr(s string) *string { return &s }

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

func TestCreate_CountsDaysInclusively(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, teamUserRepo(), clock.Fixed{Instant: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)})

	ctx := authedContext(t, employeeID, user.RoleEmployee)
	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "vacation",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
		Reason:    strPtr("family trip"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.DaysRequested)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, employeeID, resp.UserID)
}

func TestCreate_ReasonOptional(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, teamUserRepo(), clock.Fixed{Instant: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)})

	resp, err := svc.Create(authedContext(t, employeeID, user.RoleEmployee), leave.CreateLeaveRequest{
		Type:      "vacation",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Reason)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestCreate_SingleDay(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, teamUserRepo(), clock.Fixed{Instant: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)})

	ctx := authedContext(t, employeeID, user.RoleEmployee)
	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "sick",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    strPtr("flu"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DaysRequested)
}

func TestDecide_ManagerApprovesReport(t *testing.T) {
	repo := newFakeLeaveRepo()
	decidedAt := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	svc := NewLeaveService(repo, teamUserRepo(), clock.Fixed{Instant: decidedAt})

	created, err := svc.Create(authedContext(t, employeeID, user.RoleEmployee), leave.CreateLeaveRequest{
		Type:      "vacation",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    strPtr("family trip"),
	})
	require.NoError(t, err)

	resp, err := svc.Decide(authedContext(t, managerID, user.RoleManager), leave.DecideLeaveRequest{
		ID:       created.ID,
		Decision: leave.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, managerID, *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)

	// A decided request cannot be decided again.
	_, err = svc.Decide(authedContext(t, managerID, user.RoleManager), leave.DecideLeaveRequest{
		ID:       created.ID,
		Decision: leave.StatusRejected,
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestDecide_OwnRequestForbidden(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, teamUserRepo(), clock.Fixed{Instant: time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)})

	created, err := svc.Create(authedContext(t, managerID, user.RoleManager), leave.CreateLeaveRequest{
		Type:      "personal",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
		Reason:    strPtr("errand"),
	})
	require.NoError(t, err)

	_, err = svc.Decide(authedContext(t, managerID, user.RoleManager), leave.DecideLeaveRequest{
		ID:       created.ID,
		Decision: leave.StatusApproved,
	})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestBalanceFor_SubtractsApprovedDays(t *testing.T) {
	repo := newFakeLeaveRepo()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := NewLeaveService(repo, teamUserRepo(), clock.Fixed{Instant: now})

	created, err := svc.Create(authedContext(t, employeeID, user.RoleEmployee), leave.CreateLeaveRequest{
		Type:      "vacation",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-06",
		Reason:    strPtr("family trip"),
	})
	require.NoError(t, err)

	_, err = svc.Decide(authedContext(t, managerID, user.RoleManager), leave.DecideLeaveRequest{
		ID:       created.ID,
		Decision: leave.StatusApproved,
	})
	require.NoError(t, err)

	balance, err := svc.BalanceFor(authedContext(t, employeeID, user.RoleEmployee), "")
	require.NoError(t, err)
	assert.Equal(t, 25, balance.Annual)
	assert.Equal(t, 5, balance.Used)
	assert.Equal(t, 20, balance.Remaining)
}
