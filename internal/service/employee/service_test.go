package employee

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

const (
	hrID    = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5f1c001"
	mgrID   = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5f1c002"
	empID   = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5f1c003"
	otherID = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5f1c004"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrEmployeeNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrEmployeeNotFound
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id string, status user.Status) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrEmployeeNotFound
	}
	u.Status = status
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _ user.EmployeeFilter, _ user.Scope) ([]user.User, int64, error) {
	return nil, 0, nil
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

func (f *fakeUserRepo) ListActiveByManager(_ context.Context, _ string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListDepartments(_ context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) EmployeeCodeExists(_ context.Context, code string, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.EmployeeCode != nil && *u.EmployeeCode == code && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func seedUsers() *fakeUserRepo {
	mgr := mgrID
	eng := "Engineering"
	return &fakeUserRepo{users: map[string]user.User{
		hrID:    {ID: hrID, Name: "HR Person", Email: "hr@example.com", Role: user.RoleHr, Status: user.StatusActive},
		mgrID:   {ID: mgrID, Name: "Manager", Email: "mgr@example.com", Role: user.RoleManager, Status: user.StatusActive},
		empID:   {ID: empID, Name: "Employee", Email: "emp@example.com", Role: user.RoleEmployee, Department: &eng, ManagerID: &mgr, Status: user.StatusActive},
		otherID: {ID: otherID, Name: "Other", Email: "other@example.com", Role: user.RoleEmployee, Status: user.StatusActive},
	}}
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

func strPtr(s string) *string { return &s }

func TestUpdate_SelfEditDropsPrivilegedFields(t *testing.T) {
	repo := seedUsers()
	svc := NewEmployeeService(repo, nil, nil)

	salary := decimal.NewFromInt(999999)
	resp, err := svc.Update(authedContext(t, empID, user.RoleEmployee), user.UpdateEmployeeRequest{
		ID:         empID,
		Name:       strPtr("Renamed Employee"),
		Phone:      strPtr("+62811111111"),
		Role:       strPtr("hr"),
		Department: strPtr("Finance"),
		Salary:     &salary,
		Status:     strPtr("inactive"),
	})
	require.NoError(t, err)

	// Own fields change, privileged fields are silently ignored.
	assert.Equal(t, "Renamed Employee", resp.Name)
	assert.Equal(t, "employee", resp.Role)
	stored := repo.users[empID]
	require.NotNil(t, stored.Department)
	assert.Equal(t, "Engineering", *stored.Department)
	assert.Nil(t, stored.Salary)
	assert.Equal(t, user.StatusActive, stored.Status)
}

func TestUpdate_HrAppliesPrivilegedFields(t *testing.T) {
	repo := seedUsers()
	svc := NewEmployeeService(repo, nil, nil)

	resp, err := svc.Update(authedContext(t, hrID, user.RoleHr), user.UpdateEmployeeRequest{
		ID:         empID,
		Role:       strPtr("manager"),
		Department: strPtr("Finance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Finance", *resp.Department)
}

func TestUpdate_OtherEmployeeForbidden(t *testing.T) {
	repo := seedUsers()
	svc := NewEmployeeService(repo, nil, nil)

	_, err := svc.Update(authedContext(t, otherID, user.RoleEmployee), user.UpdateEmployeeRequest{
		ID:   empID,
		Name: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestUpdate_SelfManagerRejected(t *testing.T) {
	repo := seedUsers()
	svc := NewEmployeeService(repo, nil, nil)

	_, err := svc.Update(authedContext(t, hrID, user.RoleHr), user.UpdateEmployeeRequest{
		ID:        empID,
		ManagerID: strPtr(empID),
	})
	assert.ErrorIs(t, err, user.ErrSelfManagement)
}

func TestTerminate_SoftTransition(t *testing.T) {
	repo := seedUsers()
	svc := NewEmployeeService(repo, nil, nil)

	err := svc.Terminate(authedContext(t, hrID, user.RoleHr), empID)
	require.NoError(t, err)

	// The record survives as terminated instead of being deleted.
	stored, ok := repo.users[empID]
	require.True(t, ok)
	assert.Equal(t, user.StatusTerminated, stored.Status)
}

func TestTerminate_NonHrForbidden(t *testing.T) {
	repo := seedUsers()
	svc := NewEmployeeService(repo, nil, nil)

	err := svc.Terminate(authedContext(t, mgrID, user.RoleManager), empID)
	assert.ErrorIs(t, err, authz.ErrForbidden)
}
