package command

import (
	"github.com/sumitd/costtrack/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order and its
// associated actual usage
type DeleteOrderCommand struct {
	UserID  uint
	OrderID string
}

// DeleteOrderHandler handles delete order command
type DeleteOrderHandler struct {
	orders domain.OrderRepository
	usages domain.ActualUsageRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(orders domain.OrderRepository, usages domain.ActualUsageRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{orders: orders, usages: usages}
}

// Handle executes the delete order command. The dependent usage record
// is removed first so a failure never strands a usage without its order.
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if _, err := h.orders.FindByOrderID(cmd.UserID, cmd.OrderID); err != nil {
		return err
	}

	if err := h.usages.DeleteByOrderID(cmd.UserID, cmd.OrderID); err != nil {
		return err
	}
	return h.orders.Delete(cmd.UserID, cmd.OrderID)
}
