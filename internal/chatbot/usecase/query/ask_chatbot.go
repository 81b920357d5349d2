package query

import (
	"context"
	"fmt"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	"github.com/sumitd/costtrack/internal/chatbot"
	"github.com/sumitd/costtrack/internal/costing"
	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
)

// Orders and usages are summarized into the snapshot up to this many
// records each.
const snapshotLimit = 10

// AskChatbotQuery represents a chatbot question from a user
type AskChatbotQuery struct {
	UserID  uint
	Message string
}

// AskChatbotHandler builds the user's data snapshot and delegates to
// the configured responder
type AskChatbotHandler struct {
	orders    orderdomain.OrderRepository
	usages    orderdomain.ActualUsageRepository
	items     inventorydomain.ItemRepository
	alerts    alertdomain.AlertRepository
	responder chatbot.Responder
}

// NewAskChatbotHandler creates a new ask chatbot handler
func NewAskChatbotHandler(
	orders orderdomain.OrderRepository,
	usages orderdomain.ActualUsageRepository,
	items inventorydomain.ItemRepository,
	alerts alertdomain.AlertRepository,
	responder chatbot.Responder,
) *AskChatbotHandler {
	return &AskChatbotHandler{
		orders:    orders,
		usages:    usages,
		items:     items,
		alerts:    alerts,
		responder: responder,
	}
}

// Handle executes the ask chatbot query
func (h *AskChatbotHandler) Handle(ctx context.Context, q AskChatbotQuery) (string, error) {
	if q.Message == "" {
		return "", fmt.Errorf("%w: message is required", costing.ErrInvalidInput)
	}

	data, err := h.buildContext(q.UserID)
	if err != nil {
		return "", err
	}

	return h.responder.Respond(ctx, q.Message, data)
}

func (h *AskChatbotHandler) buildContext(userID uint) (chatbot.Context, error) {
	totalOrders, err := h.orders.Count(userID)
	if err != nil {
		return chatbot.Context{}, err
	}
	orders, err := h.orders.FindByUser(userID)
	if err != nil {
		return chatbot.Context{}, err
	}
	usages, err := h.usages.FindByUser(userID)
	if err != nil {
		return chatbot.Context{}, err
	}
	lowStock, err := h.items.FindLowStock(userID)
	if err != nil {
		return chatbot.Context{}, err
	}
	unread, err := h.alerts.CountUnread(userID)
	if err != nil {
		return chatbot.Context{}, err
	}

	data := chatbot.Context{
		TotalOrders:  int(totalOrders),
		UnreadAlerts: int(unread),
	}

	for i, order := range orders {
		if i == snapshotLimit {
			break
		}
		data.Orders = append(data.Orders, chatbot.OrderSummary{
			OrderID:       order.OrderID,
			ItemName:      order.ItemName,
			PlannedAmount: order.PlannedAmount,
		})
	}

	for _, usage := range usages {
		switch usage.Status {
		case string(costing.StatusProfit):
			data.ProfitOrders++
		case string(costing.StatusLoss):
			data.LossOrders++
		}
		if len(data.Usages) < snapshotLimit {
			data.Usages = append(data.Usages, chatbot.UsageSummary{
				OrderID:      usage.OrderID,
				ActualAmount: usage.ActualAmount,
				Variance:     usage.Variance,
				Status:       usage.Status,
			})
		}
	}

	for _, item := range lowStock {
		data.LowStockItems = append(data.LowStockItems, chatbot.LowStockItem{
			ItemName:        item.ItemName,
			CurrentStock:    item.CurrentStock,
			ReorderQuantity: item.ReorderQuantity,
		})
	}

	return data, nil
}
