package domain

import (
	"errors"
	"time"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the order does not exist for this user.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateOrderID indicates an order with the same id already
	// exists for this user.
	ErrDuplicateOrderID = errors.New("order id already exists")

	// ErrUsageNotFound indicates no actual usage has been recorded for
	// the order yet.
	ErrUsageNotFound = errors.New("actual usage not found for this order")
)

// Order represents a production order: a planned quantity of an item at
// a planned rate. plannedAmount is derived and stored at write time.
type Order struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"-" gorm:"not null;uniqueIndex:idx_user_order"`
	OrderID       string    `json:"order_id" gorm:"not null;uniqueIndex:idx_user_order"`
	ItemName      string    `json:"item_name" gorm:"not null"`
	PlannedQty    float64   `json:"planned_qty" gorm:"not null"`
	PlannedRate   float64   `json:"planned_rate" gorm:"not null"`
	PlannedAmount float64   `json:"planned_amount" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// ActualUsage records what an order actually consumed. At most one row
// exists per order; re-submission overwrites.
type ActualUsage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"-" gorm:"not null;uniqueIndex:idx_user_usage"`
	OrderID      string    `json:"order_id" gorm:"not null;uniqueIndex:idx_user_usage"`
	ActualQty    float64   `json:"actual_qty" gorm:"not null"`
	ActualRate   float64   `json:"actual_rate" gorm:"not null"`
	ActualAmount float64   `json:"actual_amount" gorm:"not null"`
	Variance     float64   `json:"variance" gorm:"not null"`
	Status       string    `json:"status" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (ActualUsage) TableName() string {
	return "actual_usages"
}

// OrderRepository defines the contract for order data access.
// Every method is scoped to an owning user id.
type OrderRepository interface {
	Create(order *Order) error
	FindByOrderID(userID uint, orderID string) (*Order, error)
	FindByUser(userID uint) ([]Order, error)
	Update(order *Order) error
	Delete(userID uint, orderID string) error
	Count(userID uint) (int64, error)
}

// ActualUsageRepository defines the contract for actual usage data
// access, scoped to an owning user id.
type ActualUsageRepository interface {
	Upsert(usage *ActualUsage) (created bool, err error)
	FindByOrderID(userID uint, orderID string) (*ActualUsage, error)
	FindByUser(userID uint) ([]ActualUsage, error)
	DeleteByOrderID(userID uint, orderID string) error
}
