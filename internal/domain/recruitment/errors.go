package recruitment

import "errors"

var (
	ErrPostingNotFound     = errors.New("job posting not found")
	ErrApplicationNotFound = errors.New("job application not found")
	ErrPostingNotOpen      = errors.New("this job posting is not accepting applications")
	ErrDeadlinePassed      = errors.New("the application deadline has passed")
)
