package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns headcount, vacations, projected vacation cost and live presence in one call
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
