package user

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrSelfManagement      = errors.New("an employee cannot be their own manager")
	ErrHrAccessRequired    = errors.New("hr access required")
	ErrStaffAccessRequired = errors.New("hr or manager access required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)
