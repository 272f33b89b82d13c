package authz

import (
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

// Requester is the authenticated identity a policy decision is made for.
// It is built from JWT claims by the service layer.
type Requester struct {
	ID   string
	Role user.Role
}

func (r Requester) IsHr() bool      { return r.Role == user.RoleHr }
func (r Requester) IsManager() bool { return r.Role == user.RoleManager }

// CanViewEmployee reports whether the requester may see the target employee
// record. HR sees everyone, everyone sees themselves, and a manager sees
// their direct reports.
func CanViewEmployee(requester Requester, target user.User) bool {
	if requester.IsHr() {
		return true
	}
	if requester.ID == target.ID {
		return true
	}
	if requester.IsManager() && target.ManagerID != nil && *target.ManagerID == requester.ID {
		return true
	}
	return false
}

// CanViewRecordOf reports whether the requester may see records (attendance,
// leave, reviews) that belong to the owner. The rule is the same as for the
// employee record itself.
func CanViewRecordOf(requester Requester, owner user.User) bool {
	return CanViewEmployee(requester, owner)
}

// CanListEmployees reports whether the requester may open the employee
// directory at all. Plain employees only ever see their own record through
// the detail endpoint.
func CanListEmployees(requester Requester) bool {
	return requester.IsHr() || requester.IsManager()
}

// CanApproveLeaveFor reports whether the requester may decide a leave
// request owned by the given employee. HR decides for anyone, a manager
// only for their direct reports. Nobody decides their own request through
// this path.
func CanApproveLeaveFor(requester Requester, owner user.User) bool {
	if requester.ID == owner.ID {
		return false
	}
	if requester.IsHr() {
		return true
	}
	return requester.IsManager() && owner.ManagerID != nil && *owner.ManagerID == requester.ID
}

// ScopeFor translates the requester into a row scope for listing queries.
// HR gets everything. A manager gets their reports plus themselves. Anyone
// else is limited to their own rows.
func ScopeFor(requester Requester, reportIDs []string) user.Scope {
	if requester.IsHr() {
		return user.Scope{All: true}
	}
	if requester.IsManager() {
		ids := make([]string, 0, len(reportIDs)+1)
		ids = append(ids, requester.ID)
		for _, id := range reportIDs {
			if id != requester.ID {
				ids = append(ids, id)
			}
		}
		return user.Scope{UserIDs: ids}
	}
	return user.Scope{UserIDs: []string{requester.ID}}
}
