package performance

import "time"

const timestampFormat = "2006-01-02 15:04:05"

// NewReviewResponse maps a performance review to its API shape.
func NewReviewResponse(r Review) ReviewResponse {
	resp := ReviewResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeName:        r.EmployeeName,
		ReviewerID:          r.ReviewerID,
		ReviewerName:        r.ReviewerName,
		PeriodStart:         r.PeriodStart.Format(time.DateOnly),
		PeriodEnd:           r.PeriodEnd.Format(time.DateOnly),
		Score:               r.Score,
		GoalsAchieved:       r.GoalsAchieved,
		AreasForImprovement: r.AreasForImprovement,
		ManagerComments:     r.ManagerComments,
		EmployeeComments:    r.EmployeeComments,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt.Format(timestampFormat),
	}

	if r.CompletedAt != nil {
		completedAt := r.CompletedAt.Format(timestampFormat)
		resp.CompletedAt = &completedAt
	}

	return resp
}

func NewReviewResponses(reviews []Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, NewReviewResponse(r))
	}
	return responses
}
