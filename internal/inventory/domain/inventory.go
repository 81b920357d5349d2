package domain

import (
	"errors"
	"time"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the inventory item does not exist for
	// this user.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrDuplicateItem indicates an item with the same name already
	// exists for this user.
	ErrDuplicateItem = errors.New("inventory item already exists")
)

// Item represents a tracked inventory position keyed by item name per
// user. reorderLevel, reorderQuantity and alertStatus are derived and
// recomputed on every write.
type Item struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"-" gorm:"not null;uniqueIndex:idx_user_item"`
	ItemName         string    `json:"item_name" gorm:"not null;uniqueIndex:idx_user_item"`
	CurrentStock     float64   `json:"current_stock" gorm:"not null"`
	MinimumStock     float64   `json:"minimum_stock" gorm:"not null"`
	DailyConsumption float64   `json:"daily_consumption" gorm:"not null"`
	LeadTime         float64   `json:"lead_time" gorm:"not null"`
	SafetyStock      float64   `json:"safety_stock" gorm:"not null"`
	ReorderLevel     float64   `json:"reorder_level" gorm:"not null"`
	ReorderQuantity  float64   `json:"reorder_quantity" gorm:"not null"`
	AlertStatus      bool      `json:"alert_status" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "inventory_items"
}

// ItemRepository defines the contract for inventory data access.
// Every method is scoped to an owning user id.
type ItemRepository interface {
	Upsert(item *Item) (created bool, err error)
	FindByName(userID uint, itemName string) (*Item, error)
	FindByUser(userID uint) ([]Item, error)
	FindLowStock(userID uint) ([]Item, error)
	Delete(userID uint, itemName string) error
}
