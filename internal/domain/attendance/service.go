package attendance

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Meta    *pagination.Meta     `json:"meta"`
}

// AttendanceService exposes the attendance operations. Clock is a single
// toggle endpoint: the first call of the day clocks in, the second clocks
// out, the third is rejected.
type AttendanceService interface {
	Clock(ctx context.Context, req ClockRequest) (ClockResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	History(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
