package query

import (
	"context"

	"github.com/sumitd/costtrack/internal/inventory/domain"
)

// ListItemsQuery represents the query to list a user's inventory
type ListItemsQuery struct {
	UserID uint
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	items domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(items domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{items: items}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.Item, error) {
	return h.items.FindByUser(q.UserID)
}
