package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDayCompleted       = errors.New("you have already completed your attendance for today")
)
