package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleHr       Role = "hr"       // Unrestricted read/write across all records
	RoleManager  Role = "manager"  // Scoped to self plus direct reports
	RoleEmployee Role = "employee" // Regular employee, self only
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeCode *string
	Department   *string
	Position     *string
	Phone        *string
	HireDate     *time.Time
	Salary       *decimal.Decimal
	ManagerID    *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	ManagerName *string
}

// IsHr checks if user is HR staff
func (u *User) IsHr() bool {
	return u.Role == RoleHr
}

// IsManager checks if user is a manager
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsEmployee checks if user is a regular employee
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// IsActive checks if user is an active employee
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// ValidRoles lists the accepted role values.
var ValidRoles = []string{string(RoleHr), string(RoleManager), string(RoleEmployee)}

// ValidStatuses lists the accepted status values.
var ValidStatuses = []string{string(StatusActive), string(StatusInactive), string(StatusTerminated)}

// BuildReportIndex maps manager ID to the IDs of their direct reports.
// The hierarchy is exactly two levels deep, so a flat adjacency index is
// enough. Rows where a user manages itself are skipped; a manager never
// appears among their own reports.
func BuildReportIndex(users []User) map[string][]string {
	index := make(map[string][]string)
	for _, u := range users {
		if u.ManagerID == nil {
			continue
		}
		if *u.ManagerID == u.ID {
			continue
		}
		index[*u.ManagerID] = append(index[*u.ManagerID], u.ID)
	}
	return index
}
