package chatbot

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	greetingPattern = regexp.MustCompile(`^(hi|hello|hey|good morning|good afternoon|good evening|howdy)\b`)
	thanksPattern   = regexp.MustCompile(`\b(thank you|thanks|thank|thx)\b`)
)

// RuleResponder answers from a fixed, ordered list of intents. Matching
// is case-insensitive and the first matching intent wins, so narrower
// intents must precede broader ones (variance before order, reorder
// before inventory).
type RuleResponder struct{}

// NewRuleResponder creates a new rule responder
func NewRuleResponder() *RuleResponder {
	return &RuleResponder{}
}

// Respond selects a canned, data-driven response for the message.
func (r *RuleResponder) Respond(_ context.Context, message string, data Context) (string, error) {
	msg := strings.TrimSpace(strings.ToLower(message))

	switch {
	case greetingPattern.MatchString(msg):
		return "Hello! 👋 I'm your assistant for Production Management. I can help with your orders, inventory, profit/loss, or answer any general question. What can I do for you?", nil

	case strings.Contains(msg, "how are you") || strings.Contains(msg, "how do you do"):
		return fmt.Sprintf("I'm doing great, thanks for asking! 😊 You currently have %d orders and %d items needing attention. What can I help you with?",
			data.TotalOrders, len(data.LowStockItems)), nil

	case thanksPattern.MatchString(msg):
		return "You're welcome! 😊 Feel free to ask anything else — about your production data or any general topic!", nil

	case strings.Contains(msg, "reorder") || strings.Contains(msg, "low stock") || strings.Contains(msg, "out of stock"):
		return r.reorderResponse(data), nil

	case strings.Contains(msg, "profit") || strings.Contains(msg, "loss") || strings.Contains(msg, "revenue") ||
		strings.Contains(msg, "financial") || strings.Contains(msg, "earning"):
		return r.financialResponse(data), nil

	case strings.Contains(msg, "variance") || strings.Contains(msg, "biggest difference"):
		return r.varianceResponse(data), nil

	case strings.Contains(msg, "alert") || strings.Contains(msg, "notification") || strings.Contains(msg, "warning"):
		return fmt.Sprintf("🔔 You have %d unread alert(s). Go to the Alerts section to review and mark them as read.", data.UnreadAlerts), nil

	case strings.Contains(msg, "order") || strings.Contains(msg, "production"):
		return fmt.Sprintf("📦 Orders:\n• Total: %d\n• Profitable: %d\n• Loss: %d\n• Pending: %d",
			data.TotalOrders, data.ProfitOrders, data.LossOrders,
			data.TotalOrders-data.ProfitOrders-data.LossOrders), nil

	case strings.Contains(msg, "inventory") || strings.Contains(msg, "stock") || strings.Contains(msg, "item"):
		return fmt.Sprintf("🏪 Inventory: %d item(s) need reordering. Check the Inventory section for full details.", len(data.LowStockItems)), nil

	case strings.Contains(msg, "help") || strings.Contains(msg, "what can you"):
		return "I can help you with:\n\n📊 Business data:\n• Profit/loss status\n• Items needing reorder\n• Variance analysis\n• Alert summary\n\n💬 General questions:\n• Greetings & conversation\n• General knowledge\n• Advice & suggestions\n\nJust ask me anything!", nil

	case strings.Contains(msg, "good morning") || strings.Contains(msg, "good night") || strings.Contains(msg, "good evening"):
		period := "morning"
		if strings.Contains(msg, "night") {
			period = "night"
		} else if strings.Contains(msg, "evening") {
			period = "evening"
		}
		return fmt.Sprintf("Good %s! 😊 Hope your day is going well. How can I assist you with your production management today?", period), nil

	default:
		return fmt.Sprintf("I'm your assistant! Here's a quick overview of your system:\n\n• %d total orders (%d profit, %d loss)\n• %d items need reordering\n• %d unread alerts\n\nFeel free to ask about your data or any general question! 😊",
			data.TotalOrders, data.ProfitOrders, data.LossOrders, len(data.LowStockItems), data.UnreadAlerts), nil
	}
}

func (r *RuleResponder) reorderResponse(data Context) string {
	if len(data.LowStockItems) == 0 {
		return "✅ Great news! All inventory items are well-stocked. No reorders needed right now."
	}
	lines := make([]string, 0, len(data.LowStockItems))
	for _, item := range data.LowStockItems {
		lines = append(lines, fmt.Sprintf("  • %s (need %.2f units)", item.ItemName, item.ReorderQuantity))
	}
	return fmt.Sprintf("⚠️ %d item(s) need reordering:\n%s", len(data.LowStockItems), strings.Join(lines, "\n"))
}

func (r *RuleResponder) financialResponse(data Context) string {
	if data.TotalOrders == 0 {
		return "No orders recorded yet. Add orders and actual usage data to see profit/loss analysis."
	}
	overall := "balanced ⚖️"
	if data.ProfitOrders > data.LossOrders {
		overall = "profit 📈"
	} else if data.LossOrders > data.ProfitOrders {
		overall = "loss 📉"
	}
	return fmt.Sprintf("📊 Financial Summary:\n• Overall: %s\n• Profitable orders: %d\n• Loss orders: %d\n• Total tracked: %d",
		overall, data.ProfitOrders, data.LossOrders, data.TotalOrders)
}

func (r *RuleResponder) varianceResponse(data Context) string {
	if len(data.Usages) == 0 {
		return "No variance data yet. Record actual usage for your orders first."
	}
	highest := data.Usages[0]
	for _, u := range data.Usages[1:] {
		if math.Abs(u.Variance) > math.Abs(highest.Variance) {
			highest = u
		}
	}
	return fmt.Sprintf("📊 Highest variance:\n• Order: %s\n• Variance: ₹%.2f\n• Status: %s",
		highest.OrderID, highest.Variance, highest.Status)
}
