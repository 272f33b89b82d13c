package leave

import "time"

const timestampFormat = "2006-01-02 15:04:05"

// NewLeaveRequestResponse maps a leave request to its API shape.
func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		UserName:      l.UserName,
		Type:          string(l.Type),
		StartDate:     l.StartDate.Format(time.DateOnly),
		EndDate:       l.EndDate.Format(time.DateOnly),
		DaysRequested: l.DaysRequested,
		Reason:        l.Reason,
		Status:        string(l.Status),
		ApprovedBy:    l.ApprovedBy,
		ApproverName:  l.ApproverName,
		Comments:      l.Comments,
		CreatedAt:     l.CreatedAt.Format(timestampFormat),
	}

	if l.ApprovedAt != nil {
		approvedAt := l.ApprovedAt.Format(timestampFormat)
		resp.ApprovedAt = &approvedAt
	}

	return resp
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, l := range requests {
		responses = append(responses, NewLeaveRequestResponse(l))
	}
	return responses
}
