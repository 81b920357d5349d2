package command

import (
	"fmt"

	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/order/domain"
)

// CreateOrderCommand represents the command to create a production order
type CreateOrderCommand struct {
	UserID      uint
	OrderID     string
	ItemName    string
	PlannedQty  float64
	PlannedRate float64
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	repo domain.OrderRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is required", costing.ErrInvalidInput)
	}
	if cmd.ItemName == "" {
		return nil, fmt.Errorf("%w: item name is required", costing.ErrInvalidInput)
	}

	plannedAmount, err := costing.PlannedAmount(cmd.PlannedQty, cmd.PlannedRate)
	if err != nil {
		return nil, fmt.Errorf("%w: planned qty and rate must be positive", err)
	}

	order := &domain.Order{
		UserID:        cmd.UserID,
		OrderID:       cmd.OrderID,
		ItemName:      cmd.ItemName,
		PlannedQty:    cmd.PlannedQty,
		PlannedRate:   cmd.PlannedRate,
		PlannedAmount: plannedAmount,
	}

	if err := h.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}
