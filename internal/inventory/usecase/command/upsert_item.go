package command

import (
	"context"
	"fmt"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/costing"
	"github.com/sumitd/costtrack/internal/inventory/domain"
	"github.com/sumitd/costtrack/pkg/logger"
)

// UpsertItemCommand represents the command to create or replace an
// inventory item
type UpsertItemCommand struct {
	UserID           uint
	ItemName         string
	CurrentStock     float64
	MinimumStock     float64
	DailyConsumption float64
	LeadTime         float64
	SafetyStock      float64
}

// UpsertItemResult carries the saved item and whether it was newly
// created (as opposed to overwriting a prior row)
type UpsertItemResult struct {
	Item    *domain.Item
	Created bool
}

// UpsertItemHandler handles upsert item command. The reorder level,
// reorder quantity and alert status are derived here on every write,
// and a shortfall may raise a reorder alert as a side effect.
type UpsertItemHandler struct {
	items  domain.ItemRepository
	alerts *alertcommand.RaiseAlertHandler
}

// NewUpsertItemHandler creates a new upsert item handler
func NewUpsertItemHandler(items domain.ItemRepository, alerts *alertcommand.RaiseAlertHandler) *UpsertItemHandler {
	return &UpsertItemHandler{items: items, alerts: alerts}
}

// Handle executes the upsert item command
func (h *UpsertItemHandler) Handle(ctx context.Context, cmd UpsertItemCommand) (*UpsertItemResult, error) {
	if cmd.ItemName == "" {
		return nil, fmt.Errorf("%w: item name is required", costing.ErrInvalidInput)
	}
	if cmd.CurrentStock < 0 || cmd.MinimumStock < 0 || cmd.DailyConsumption < 0 ||
		cmd.LeadTime < 0 || cmd.SafetyStock < 0 {
		return nil, fmt.Errorf("%w: stock figures must not be negative", costing.ErrInvalidInput)
	}

	reorderLevel := costing.ReorderLevel(cmd.DailyConsumption, cmd.LeadTime, cmd.SafetyStock)
	reorderQuantity := costing.ReorderQuantity(reorderLevel, cmd.CurrentStock)

	item := &domain.Item{
		UserID:           cmd.UserID,
		ItemName:         cmd.ItemName,
		CurrentStock:     cmd.CurrentStock,
		MinimumStock:     cmd.MinimumStock,
		DailyConsumption: cmd.DailyConsumption,
		LeadTime:         cmd.LeadTime,
		SafetyStock:      cmd.SafetyStock,
		ReorderLevel:     reorderLevel,
		ReorderQuantity:  reorderQuantity,
		AlertStatus:      costing.ReorderNeeded(reorderQuantity),
	}

	created, err := h.items.Upsert(item)
	if err != nil {
		return nil, err
	}

	if draft, ok := alertdomain.ClassifyReorder(item.ItemName, item.CurrentStock, item.MinimumStock, item.ReorderLevel, item.ReorderQuantity); ok {
		if _, err := h.alerts.Handle(ctx, alertcommand.RaiseAlertCommand{UserID: cmd.UserID, Draft: draft}); err != nil {
			// The item row is already saved; losing the alert row is
			// reported but does not fail the write.
			logger.Error(ctx).Err(err).Str("item_name", cmd.ItemName).Msg("Failed to raise reorder alert")
		}
	}

	return &UpsertItemResult{Item: item, Created: created}, nil
}
