package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sumitd/costtrack/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{})
}

// Create inserts a new order. The (user_id, order_id) unique index is
// the authority on duplicates.
func (r *GormOrderRepository) Create(order *domain.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrderID
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByOrderID retrieves an order by its natural key within the user
func (r *GormOrderRepository) FindByOrderID(userID uint, orderID string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Where("user_id = ? AND order_id = ?", userID, orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// FindByUser retrieves all orders owned by the user, newest first
func (r *GormOrderRepository) FindByUser(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// Update saves the order's current state
func (r *GormOrderRepository) Update(order *domain.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// Delete removes an order owned by the user
func (r *GormOrderRepository) Delete(userID uint, orderID string) error {
	result := r.db.Where("user_id = ? AND order_id = ?", userID, orderID).
		Delete(&domain.Order{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Count returns the number of orders owned by the user
func (r *GormOrderRepository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

// GormActualUsageRepository implements ActualUsageRepository using GORM
type GormActualUsageRepository struct {
	db *gorm.DB
}

// NewGormActualUsageRepository creates a new GORM actual usage repository
func NewGormActualUsageRepository(db *gorm.DB) *GormActualUsageRepository {
	return &GormActualUsageRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormActualUsageRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ActualUsage{})
}

// Upsert writes the usage for its order, overwriting any prior record.
// Returns true when a new row was created.
func (r *GormActualUsageRepository) Upsert(usage *domain.ActualUsage) (bool, error) {
	var existing domain.ActualUsage
	err := r.db.Where("user_id = ? AND order_id = ?", usage.UserID, usage.OrderID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(usage).Error; err != nil {
			return false, fmt.Errorf("failed to create actual usage: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to find actual usage: %w", err)
	}

	existing.ActualQty = usage.ActualQty
	existing.ActualRate = usage.ActualRate
	existing.ActualAmount = usage.ActualAmount
	existing.Variance = usage.Variance
	existing.Status = usage.Status
	if err := r.db.Save(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to update actual usage: %w", err)
	}
	*usage = existing
	return false, nil
}

// FindByOrderID retrieves the usage recorded for an order
func (r *GormActualUsageRepository) FindByOrderID(userID uint, orderID string) (*domain.ActualUsage, error) {
	var usage domain.ActualUsage
	err := r.db.Where("user_id = ? AND order_id = ?", userID, orderID).First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUsageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find actual usage: %w", err)
	}
	return &usage, nil
}

// FindByUser retrieves all usages owned by the user, newest first
func (r *GormActualUsageRepository) FindByUser(userID uint) ([]domain.ActualUsage, error) {
	var usages []domain.ActualUsage
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&usages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find actual usages: %w", err)
	}
	return usages, nil
}

// DeleteByOrderID removes the usage for an order. Deleting a missing
// usage is not an error: an order may never have had one.
func (r *GormActualUsageRepository) DeleteByOrderID(userID uint, orderID string) error {
	err := r.db.Where("user_id = ? AND order_id = ?", userID, orderID).
		Delete(&domain.ActualUsage{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete actual usage: %w", err)
	}
	return nil
}
