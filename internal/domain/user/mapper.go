package user

import "time"

const timestampFormat = "2006-01-02 15:04:05"

// NewEmployeeResponse maps an employee record to its API shape. The salary
// is rendered as a string to keep decimal precision out of JSON floats.
func NewEmployeeResponse(u User) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
		Position:     u.Position,
		Phone:        u.Phone,
		ManagerID:    u.ManagerID,
		ManagerName:  u.ManagerName,
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt.Format(timestampFormat),
		UpdatedAt:    u.UpdatedAt.Format(timestampFormat),
	}

	if u.HireDate != nil {
		hireDate := u.HireDate.Format(time.DateOnly)
		resp.HireDate = &hireDate
	}

	if u.Salary != nil {
		salary := u.Salary.String()
		resp.Salary = &salary
	}

	return resp
}

// NewEmployeeSummary maps an employee to the short form used in team lists.
func NewEmployeeSummary(u User) EmployeeSummary {
	return EmployeeSummary{
		ID:       u.ID,
		Name:     u.Name,
		Position: u.Position,
	}
}
