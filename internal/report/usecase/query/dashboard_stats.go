package query

import (
	"context"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/internal/report/domain"
)

// The dashboard shows this many most recent alerts.
const recentAlertLimit = 5

// DashboardStatsQuery represents the query for the dashboard payload
type DashboardStatsQuery struct {
	UserID uint
}

// DashboardStatsHandler handles dashboard stats query
type DashboardStatsHandler struct {
	orders orderdomain.OrderRepository
	usages orderdomain.ActualUsageRepository
	items  inventorydomain.ItemRepository
	alerts alertdomain.AlertRepository
}

// NewDashboardStatsHandler creates a new dashboard stats handler
func NewDashboardStatsHandler(
	orders orderdomain.OrderRepository,
	usages orderdomain.ActualUsageRepository,
	items inventorydomain.ItemRepository,
	alerts alertdomain.AlertRepository,
) *DashboardStatsHandler {
	return &DashboardStatsHandler{orders: orders, usages: usages, items: items, alerts: alerts}
}

// Handle executes the dashboard stats query
func (h *DashboardStatsHandler) Handle(ctx context.Context, q DashboardStatsQuery) (*domain.Dashboard, error) {
	orders, err := h.orders.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	usages, err := h.usages.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	items, err := h.items.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	unread, err := h.alerts.CountUnread(q.UserID)
	if err != nil {
		return nil, err
	}
	recent, err := h.alerts.FindRecent(q.UserID, recentAlertLimit)
	if err != nil {
		return nil, err
	}

	dashboard := domain.BuildDashboard(orders, usages, items, int(unread), recent)
	return &dashboard, nil
}
