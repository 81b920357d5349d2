package query

import (
	"context"

	"github.com/sumitd/costtrack/internal/inventory/domain"
)

// LowStockQuery represents the query to list items flagged for reorder
type LowStockQuery struct {
	UserID uint
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	items domain.ItemRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(items domain.ItemRepository) *LowStockHandler {
	return &LowStockHandler{items: items}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(ctx context.Context, q LowStockQuery) ([]domain.Item, error) {
	return h.items.FindLowStock(q.UserID)
}
