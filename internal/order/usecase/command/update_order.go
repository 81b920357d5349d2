package command

import (
	"fmt"

	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/order/domain"
)

// UpdateOrderCommand represents the command to update an order's plan
type UpdateOrderCommand struct {
	UserID      uint
	OrderID     string
	ItemName    string
	PlannedQty  float64
	PlannedRate float64
}

// UpdateOrderHandler handles update order command
type UpdateOrderHandler struct {
	repo domain.OrderRepository
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(repo domain.OrderRepository) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo}
}

// Handle executes the update order command. plannedAmount is recomputed
// from the new figures so the stored derived value never goes stale.
func (h *UpdateOrderHandler) Handle(cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.ItemName == "" {
		return nil, fmt.Errorf("%w: item name is required", costing.ErrInvalidInput)
	}

	plannedAmount, err := costing.PlannedAmount(cmd.PlannedQty, cmd.PlannedRate)
	if err != nil {
		return nil, fmt.Errorf("%w: planned qty and rate must be positive", err)
	}

	order, err := h.repo.FindByOrderID(cmd.UserID, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	order.ItemName = cmd.ItemName
	order.PlannedQty = cmd.PlannedQty
	order.PlannedRate = cmd.PlannedRate
	order.PlannedAmount = plannedAmount

	if err := h.repo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
