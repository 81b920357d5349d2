package command

import (
	"context"
	"fmt"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/pkg/logger"
)

// RecordUsageCommand represents the command to record actual consumption
// against an order
type RecordUsageCommand struct {
	UserID     uint
	OrderID    string
	ActualQty  float64
	ActualRate float64
}

// RecordUsageResult carries the saved usage and whether it was newly
// created (as opposed to overwriting a prior submission)
type RecordUsageResult struct {
	Usage   *domain.ActualUsage
	Created bool
}

// RecordUsageHandler handles record usage command. Recording a usage may
// raise a variance alert as a side effect.
type RecordUsageHandler struct {
	orders domain.OrderRepository
	usages domain.ActualUsageRepository
	alerts *alertcommand.RaiseAlertHandler
}

// NewRecordUsageHandler creates a new record usage handler
func NewRecordUsageHandler(
	orders domain.OrderRepository,
	usages domain.ActualUsageRepository,
	alerts *alertcommand.RaiseAlertHandler,
) *RecordUsageHandler {
	return &RecordUsageHandler{orders: orders, usages: usages, alerts: alerts}
}

// Handle executes the record usage command
func (h *RecordUsageHandler) Handle(ctx context.Context, cmd RecordUsageCommand) (*RecordUsageResult, error) {
	if cmd.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is required", costing.ErrInvalidInput)
	}

	actualAmount, err := costing.ActualAmount(cmd.ActualQty, cmd.ActualRate)
	if err != nil {
		return nil, fmt.Errorf("%w: actual qty and rate must be positive", err)
	}

	order, err := h.orders.FindByOrderID(cmd.UserID, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	variance := costing.Variance(actualAmount, order.PlannedAmount)
	status := costing.ClassifyVariance(variance)

	usage := &domain.ActualUsage{
		UserID:       cmd.UserID,
		OrderID:      cmd.OrderID,
		ActualQty:    cmd.ActualQty,
		ActualRate:   cmd.ActualRate,
		ActualAmount: actualAmount,
		Variance:     variance,
		Status:       string(status),
	}

	created, err := h.usages.Upsert(usage)
	if err != nil {
		return nil, err
	}

	if draft, ok := alertdomain.ClassifyVariance(order.OrderID, order.ItemName, status, variance, order.PlannedAmount); ok {
		if _, err := h.alerts.Handle(ctx, alertcommand.RaiseAlertCommand{UserID: cmd.UserID, Draft: draft}); err != nil {
			// The usage is already saved; losing the alert row is
			// reported but does not fail the write.
			logger.Error(ctx).Err(err).Str("order_id", cmd.OrderID).Msg("Failed to raise variance alert")
		}
	}

	return &RecordUsageResult{Usage: usage, Created: created}, nil
}
