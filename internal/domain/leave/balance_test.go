package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

func TestComputeBalance(t *testing.T) {
	now := date("2026-06-15")

	tests := []struct {
		name     string
		requests []LeaveRequest
		want     Balance
	}{
		{
			name:     "no requests",
			requests: nil,
			want:     Balance{Annual: 25, Used: 0, Remaining: 25},
		},
		{
			name: "approved requests this year are summed",
			requests: []LeaveRequest{
				{Status: StatusApproved, StartDate: date("2026-02-01"), DaysRequested: 5},
				{Status: StatusApproved, StartDate: date("2026-04-10"), DaysRequested: 3},
			},
			want: Balance{Annual: 25, Used: 8, Remaining: 17},
		},
		{
			name: "pending and rejected requests are ignored",
			requests: []LeaveRequest{
				{Status: StatusPending, StartDate: date("2026-02-01"), DaysRequested: 5},
				{Status: StatusRejected, StartDate: date("2026-03-01"), DaysRequested: 4},
				{Status: StatusApproved, StartDate: date("2026-05-01"), DaysRequested: 2},
			},
			want: Balance{Annual: 25, Used: 2, Remaining: 23},
		},
		{
			name: "prior year requests are ignored",
			requests: []LeaveRequest{
				{Status: StatusApproved, StartDate: date("2025-12-20"), DaysRequested: 10},
				{Status: StatusApproved, StartDate: date("2026-01-05"), DaysRequested: 4},
			},
			want: Balance{Annual: 25, Used: 4, Remaining: 21},
		},
		{
			name: "over-approval floors remaining at zero",
			requests: []LeaveRequest{
				{Status: StatusApproved, StartDate: date("2026-01-10"), DaysRequested: 8},
				{Status: StatusApproved, StartDate: date("2026-03-10"), DaysRequested: 20},
			},
			want: Balance{Annual: 25, Used: 28, Remaining: 0},
		},
		{
			name: "attribution follows start date, not end date",
			requests: []LeaveRequest{
				{Status: StatusApproved, StartDate: date("2025-12-29"), EndDate: date("2026-01-02"), DaysRequested: 5},
			},
			want: Balance{Annual: 25, Used: 0, Remaining: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBalance(tt.requests, now))
		})
	}
}
