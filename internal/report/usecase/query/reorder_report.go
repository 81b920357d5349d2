package query

import (
	"context"

	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	"github.com/sumitd/costtrack/internal/report/domain"
)

// ReorderReportQuery represents the query for the reorder report
type ReorderReportQuery struct {
	UserID uint
}

// ReorderReportHandler handles reorder report query
type ReorderReportHandler struct {
	items inventorydomain.ItemRepository
}

// NewReorderReportHandler creates a new reorder report handler
func NewReorderReportHandler(items inventorydomain.ItemRepository) *ReorderReportHandler {
	return &ReorderReportHandler{items: items}
}

// Handle executes the reorder report query
func (h *ReorderReportHandler) Handle(ctx context.Context, q ReorderReportQuery) ([]domain.ReorderRow, error) {
	items, err := h.items.FindLowStock(q.UserID)
	if err != nil {
		return nil, err
	}
	return domain.BuildReorderReport(items), nil
}
