package dashboard

import (
	"context"
)

// DashboardService aggregates today's attendance into KPIs and a
// recent-activity feed.
type DashboardService interface {
	Today(ctx context.Context) (DashboardResponse, error)
}
