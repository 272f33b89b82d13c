package performance

import "errors"

var (
	ErrReviewNotFound      = errors.New("performance review not found")
	ErrReviewNotDraft      = errors.New("review has already been completed")
	ErrReviewNotCompleted  = errors.New("review must be completed before acknowledgement")
	ErrNotReviewer         = errors.New("only the assigned reviewer can complete this review")
	ErrNotReviewedEmployee = errors.New("only the reviewed employee can acknowledge this review")
)
