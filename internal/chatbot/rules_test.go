package chatbot

import (
	"context"
	"strings"
	"testing"
)

func sampleContext() Context {
	return Context{
		TotalOrders:  4,
		ProfitOrders: 1,
		LossOrders:   2,
		Usages: []UsageSummary{
			{OrderID: "ORD-1", ActualAmount: 6000, Variance: 1000, Status: "Loss"},
			{OrderID: "ORD-2", ActualAmount: 3000, Variance: -2000, Status: "Profit"},
			{OrderID: "ORD-3", ActualAmount: 500, Variance: 0, Status: "Balanced"},
		},
		LowStockItems: []LowStockItem{
			{ItemName: "Bolts", CurrentStock: 5, ReorderQuantity: 8},
		},
		UnreadAlerts: 3,
	}
}

func TestRuleResponderIntents(t *testing.T) {
	r := NewRuleResponder()
	ctx := context.Background()
	data := sampleContext()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "Hello there", "Hello! 👋"},
		{"greeting is anchored", "this is not hello at the start", "quick overview"},
		{"how are you", "How are you today?", "4 orders and 1 items needing attention"},
		{"thanks", "ok thanks a lot", "You're welcome"},
		{"reorder lists items", "what should I reorder?", "Bolts (need 8.00 units)"},
		{"financial summary", "show me profit", "Overall: loss 📉"},
		{"alerts", "any warnings?", "3 unread alert(s)"},
		{"orders", "how many orders?", "Pending: 1"},
		{"inventory", "inventory status", "1 item(s) need reordering"},
		{"help", "help me", "Just ask me anything!"},
		{"fallback", "what is the meaning of life", "quick overview"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Respond(ctx, tt.message, data)
			if err != nil {
				t.Fatalf("Respond() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Respond(%q) = %q, want it to contain %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestRuleResponderVariancePicksLargestMagnitude(t *testing.T) {
	r := NewRuleResponder()

	got, err := r.Respond(context.Background(), "which order has the highest variance?", sampleContext())
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(got, "ORD-2") {
		t.Errorf("expected ORD-2 (variance -2000) to win, got %q", got)
	}
	if !strings.Contains(got, "₹-2000.00") {
		t.Errorf("expected signed variance in response, got %q", got)
	}
}

func TestRuleResponderEmptyData(t *testing.T) {
	r := NewRuleResponder()
	ctx := context.Background()
	empty := Context{}

	got, _ := r.Respond(ctx, "reorder?", empty)
	if !strings.Contains(got, "well-stocked") {
		t.Errorf("reorder on empty data = %q", got)
	}

	got, _ = r.Respond(ctx, "profit or loss?", empty)
	if !strings.Contains(got, "No orders recorded yet") {
		t.Errorf("financial on empty data = %q", got)
	}

	got, _ = r.Respond(ctx, "variance?", empty)
	if !strings.Contains(got, "No variance data yet") {
		t.Errorf("variance on empty data = %q", got)
	}
}
