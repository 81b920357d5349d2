package kafka

import "time"

// AlertRaisedEvent represents an alert crossing a variance or stock
// threshold
type AlertRaisedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	AlertID   uint      `json:"alert_id"`
	ItemName  string    `json:"item_name"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	AlertType string    `json:"alert_type"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeAlertRaised = "alert.raised"
)

// Kafka topics
const (
	TopicAlerts = "cost-alerts"
)
