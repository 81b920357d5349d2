package command

import (
	"context"
	"fmt"

	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an inventory item
type DeleteItemCommand struct {
	UserID   uint
	ItemName string
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	items domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(items domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{items: items}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ItemName == "" {
		return fmt.Errorf("%w: item name is required", costing.ErrInvalidInput)
	}
	return h.items.Delete(cmd.UserID, cmd.ItemName)
}
