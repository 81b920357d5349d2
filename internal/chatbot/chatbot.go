// Package chatbot answers free-text questions over a user's production
// data. A deterministic rule responder serves every request unless an
// external completion service is configured, in which case the remote
// answer is used verbatim and remote failures surface to the caller.
package chatbot

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable indicates the external completion service
// could not produce a response. There is no local fallback on error;
// the rule responder only serves when no service is configured.
var ErrUpstreamUnavailable = errors.New("completion service unavailable")

// OrderSummary is an order as seen by the chatbot context.
type OrderSummary struct {
	OrderID       string  `json:"id"`
	ItemName      string  `json:"item"`
	PlannedAmount float64 `json:"planned"`
}

// UsageSummary is a recorded consumption as seen by the chatbot context.
type UsageSummary struct {
	OrderID      string  `json:"orderId"`
	ActualAmount float64 `json:"actual"`
	Variance     float64 `json:"variance"`
	Status       string  `json:"status"`
}

// LowStockItem is an inventory position flagged for reorder.
type LowStockItem struct {
	ItemName        string  `json:"name"`
	CurrentStock    float64 `json:"current"`
	ReorderQuantity float64 `json:"reorderQty"`
}

// Context is the per-user data snapshot every response interpolates.
type Context struct {
	TotalOrders   int
	ProfitOrders  int
	LossOrders    int
	Orders        []OrderSummary
	Usages        []UsageSummary
	LowStockItems []LowStockItem
	UnreadAlerts  int
}

// Responder produces a chatbot answer for a message over a data snapshot.
type Responder interface {
	Respond(ctx context.Context, message string, data Context) (string, error)
}
