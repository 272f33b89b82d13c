package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePredicates_ExactlyOneTrue(t *testing.T) {
	cases := []struct {
		role Role
	}{
		{RoleHr},
		{RoleManager},
		{RoleEmployee},
	}

	for _, c := range cases {
		u := User{Role: c.role}
		trueCount := 0
		for _, v := range []bool{u.IsHr(), u.IsManager(), u.IsEmployee()} {
			if v {
				trueCount++
			}
		}
		assert.Equal(t, 1, trueCount, "role %s must satisfy exactly one predicate", c.role)
	}
}

func TestRolePredicates_Values(t *testing.T) {
	hr := User{Role: RoleHr}
	assert.True(t, hr.IsHr())
	assert.False(t, hr.IsManager())
	assert.False(t, hr.IsEmployee())

	mgr := User{Role: RoleManager}
	assert.True(t, mgr.IsManager())
	assert.False(t, mgr.IsHr())

	emp := User{Role: RoleEmployee}
	assert.True(t, emp.IsEmployee())
	assert.False(t, emp.IsManager())
}

func TestBuildReportIndex(t *testing.T) {
	mgrID := "0190116a-0000-7000-8000-000000000001"
	otherID := "0190116a-0000-7000-8000-000000000002"

	users := []User{
		{ID: mgrID, Role: RoleManager},
		{ID: "e1", Role: RoleEmployee, ManagerID: &mgrID},
		{ID: "e2", Role: RoleEmployee, ManagerID: &mgrID},
		{ID: "e3", Role: RoleEmployee, ManagerID: &otherID},
		{ID: "e4", Role: RoleEmployee},
	}

	index := BuildReportIndex(users)

	assert.ElementsMatch(t, []string{"e1", "e2"}, index[mgrID])
	assert.ElementsMatch(t, []string{"e3"}, index[otherID])
	assert.NotContains(t, index, "e4")
}

func TestBuildReportIndex_SkipsSelfManagement(t *testing.T) {
	selfID := "0190116a-0000-7000-8000-00000000000a"
	users := []User{
		// Malformed row: manages itself. Excluding self is policy, not accident.
		{ID: selfID, Role: RoleManager, ManagerID: &selfID},
	}

	index := BuildReportIndex(users)
	assert.NotContains(t, index[selfID], selfID)
	assert.Empty(t, index)
}
