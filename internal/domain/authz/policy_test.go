package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestCanViewEmployee(t *testing.T) {
	managerID := "0190116a-0000-7000-8000-000000000010"
	report := user.User{ID: "r1", ManagerID: strPtr(managerID)}
	unrelated := user.User{ID: "u1", ManagerID: strPtr("someone-else")}

	tests := []struct {
		name      string
		requester Requester
		target    user.User
		want      bool
	}{
		{
			name:      "hr sees anyone",
			requester: Requester{ID: "hr1", Role: user.RoleHr},
			target:    unrelated,
			want:      true,
		},
		{
			name:      "self always visible",
			requester: Requester{ID: "u1", Role: user.RoleEmployee},
			target:    unrelated,
			want:      true,
		},
		{
			name:      "manager sees direct report",
			requester: Requester{ID: managerID, Role: user.RoleManager},
			target:    report,
			want:      true,
		},
		{
			name:      "manager cannot see unrelated employee",
			requester: Requester{ID: managerID, Role: user.RoleManager},
			target:    unrelated,
			want:      false,
		},
		{
			name:      "employee cannot see coworker",
			requester: Requester{ID: "e9", Role: user.RoleEmployee},
			target:    report,
			want:      false,
		},
		{
			name:      "manager role without relationship is not enough",
			requester: Requester{ID: "other-mgr", Role: user.RoleManager},
			target:    report,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewEmployee(tt.requester, tt.target))
			assert.Equal(t, tt.want, CanViewRecordOf(tt.requester, tt.target))
		})
	}
}

func TestCanListEmployees(t *testing.T) {
	assert.True(t, CanListEmployees(Requester{Role: user.RoleHr}))
	assert.True(t, CanListEmployees(Requester{Role: user.RoleManager}))
	assert.False(t, CanListEmployees(Requester{Role: user.RoleEmployee}))
}

func TestCanApproveLeaveFor(t *testing.T) {
	managerID := "mgr-1"
	report := user.User{ID: "r1", ManagerID: strPtr(managerID)}

	assert.True(t, CanApproveLeaveFor(Requester{ID: "hr1", Role: user.RoleHr}, report))
	assert.True(t, CanApproveLeaveFor(Requester{ID: managerID, Role: user.RoleManager}, report))
	assert.False(t, CanApproveLeaveFor(Requester{ID: "mgr-2", Role: user.RoleManager}, report))
	assert.False(t, CanApproveLeaveFor(Requester{ID: "r1", Role: user.RoleEmployee}, report))

	// Even HR cannot approve their own request through this rule.
	self := user.User{ID: "hr1"}
	assert.False(t, CanApproveLeaveFor(Requester{ID: "hr1", Role: user.RoleHr}, self))
}

func TestScopeFor(t *testing.T) {
	t.Run("hr gets unrestricted scope", func(t *testing.T) {
		scope := ScopeFor(Requester{ID: "hr1", Role: user.RoleHr}, nil)
		assert.True(t, scope.All)
		assert.Empty(t, scope.UserIDs)
	})

	t.Run("manager gets reports plus self", func(t *testing.T) {
		scope := ScopeFor(Requester{ID: "mgr-1", Role: user.RoleManager}, []string{"r1", "r2", "r3"})
		assert.False(t, scope.All)
		assert.ElementsMatch(t, []string{"mgr-1", "r1", "r2", "r3"}, scope.UserIDs)
	})

	t.Run("manager with no reports still sees self", func(t *testing.T) {
		scope := ScopeFor(Requester{ID: "mgr-1", Role: user.RoleManager}, nil)
		assert.Equal(t, []string{"mgr-1"}, scope.UserIDs)
	})

	t.Run("employee limited to self", func(t *testing.T) {
		scope := ScopeFor(Requester{ID: "e1", Role: user.RoleEmployee}, nil)
		assert.False(t, scope.All)
		assert.Equal(t, []string{"e1"}, scope.UserIDs)
	})
}
