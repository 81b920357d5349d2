package query

import (
	"context"

	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/internal/report/domain"
)

// VarianceReportQuery represents the query for the variance report
type VarianceReportQuery struct {
	UserID uint
}

// VarianceReportHandler handles variance report query
type VarianceReportHandler struct {
	orders orderdomain.OrderRepository
	usages orderdomain.ActualUsageRepository
}

// NewVarianceReportHandler creates a new variance report handler
func NewVarianceReportHandler(orders orderdomain.OrderRepository, usages orderdomain.ActualUsageRepository) *VarianceReportHandler {
	return &VarianceReportHandler{orders: orders, usages: usages}
}

// Handle executes the variance report query
func (h *VarianceReportHandler) Handle(ctx context.Context, q VarianceReportQuery) ([]domain.VarianceRow, error) {
	orders, err := h.orders.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	usages, err := h.usages.FindByUser(q.UserID)
	if err != nil {
		return nil, err
	}
	return domain.BuildVarianceReport(orders, usages), nil
}
