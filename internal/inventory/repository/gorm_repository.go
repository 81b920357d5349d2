package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sumitd/costtrack/internal/inventory/domain"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM inventory repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

// Upsert writes the item keyed by (user_id, item_name), overwriting any
// prior row. Returns true when a new row was created.
func (r *GormItemRepository) Upsert(item *domain.Item) (bool, error) {
	var existing domain.Item
	err := r.db.Where("user_id = ? AND item_name = ?", item.UserID, item.ItemName).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(item).Error; err != nil {
			return false, fmt.Errorf("failed to create inventory item: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to find inventory item: %w", err)
	}

	existing.CurrentStock = item.CurrentStock
	existing.MinimumStock = item.MinimumStock
	existing.DailyConsumption = item.DailyConsumption
	existing.LeadTime = item.LeadTime
	existing.SafetyStock = item.SafetyStock
	existing.ReorderLevel = item.ReorderLevel
	existing.ReorderQuantity = item.ReorderQuantity
	existing.AlertStatus = item.AlertStatus
	if err := r.db.Save(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to update inventory item: %w", err)
	}
	*item = existing
	return false, nil
}

// FindByName retrieves an item by its natural key within the user
func (r *GormItemRepository) FindByName(userID uint, itemName string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.Where("user_id = ? AND item_name = ?", userID, itemName).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return &item, nil
}

// FindByUser retrieves all items owned by the user, most recently
// updated first
func (r *GormItemRepository) FindByUser(userID uint) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory items: %w", err)
	}
	return items, nil
}

// FindLowStock retrieves items flagged for reorder, lowest stock first
func (r *GormItemRepository) FindLowStock(userID uint) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("user_id = ? AND alert_status = ?", userID, true).
		Order("current_stock ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find low stock items: %w", err)
	}
	return items, nil
}

// Delete removes an item owned by the user
func (r *GormItemRepository) Delete(userID uint, itemName string) error {
	result := r.db.Where("user_id = ? AND item_name = ?", userID, itemName).
		Delete(&domain.Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
