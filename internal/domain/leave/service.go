package leave

import (
	"context"

	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
)

type ListLeaveResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Meta     *pagination.Meta       `json:"meta"`
}

// LeaveService exposes the leave request operations.
type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)
	BalanceFor(ctx context.Context, userID string) (Balance, error)
}
