package domain

import (
	"errors"
	"time"
)

// Alert priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Alert types
const (
	TypeReorder  = "reorder"
	TypeVariance = "variance"
	TypeStockout = "stockout"
)

// ErrAlertNotFound indicates the alert does not exist for this user.
var ErrAlertNotFound = errors.New("alert not found")

// Alert represents a threshold-breach notification owned by a user.
// Alerts are append-only: repeated breaches create new rows and nothing
// deduplicates them.
type Alert struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	ItemName  string    `json:"item_name" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Priority  string    `json:"priority" gorm:"not null;default:'medium'"`
	Type      string    `json:"type" gorm:"not null"`
	IsRead    bool      `json:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Alert) TableName() string {
	return "alerts"
}

// AlertRepository defines the contract for alert data access.
// Every method is scoped to an owning user id.
type AlertRepository interface {
	Create(alert *Alert) error
	FindByUser(userID uint) ([]Alert, error)
	FindUnread(userID uint) ([]Alert, error)
	FindRecent(userID uint, limit int) ([]Alert, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(userID, id uint) (*Alert, error)
	MarkAllRead(userID uint) error
	Delete(userID, id uint) error
}
