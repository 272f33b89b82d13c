package dashboard

import "context"

// DashboardService assembles the role-dependent overview.
type DashboardService interface {
	Overview(ctx context.Context) (Overview, error)
}
