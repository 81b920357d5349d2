package query

import (
	"context"

	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/internal/report/domain"
)

// OrderSummaryQuery represents the query for the order summary report
type OrderSummaryQuery struct {
	UserID uint
}

// OrderSummaryHandler handles order summary query
type OrderSummaryHandler struct {
	orders orderdomain.OrderRepository
	usages orderdomain.ActualUsageRepository
}

// NewOrderSummaryHandler creates a new order summary handler
func NewOrderSummaryHandler(orders orderdomain.OrderRepository, usages orderdomain.ActualUsageRepository) *OrderSummaryHandler {
	return &OrderSummaryHandler{orders: orders, usages: usages}
}

// Handle executes the order summary query
func (h *OrderSummaryHandler) Handle(ctx context.Context, q OrderSummaryQuery) ([]domain.OrderSummaryRow, error) {
	orders, err := h.orders.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	usages, err := h.usages.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	return domain.BuildOrderSummary(orders, usages), nil
}
