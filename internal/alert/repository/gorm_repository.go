package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sumitd/costtrack/internal/alert/domain"
)

// GormAlertRepository implements AlertRepository using GORM
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GORM alert repository
func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormAlertRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Alert{})
}

// Create inserts a new alert
func (r *GormAlertRepository) Create(alert *domain.Alert) error {
	if err := r.db.Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// FindByUser retrieves all alerts owned by the user, newest first
func (r *GormAlertRepository) FindByUser(userID uint) ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find alerts: %w", err)
	}
	return alerts, nil
}

// FindUnread retrieves unread alerts owned by the user, newest first
func (r *GormAlertRepository) FindUnread(userID uint) ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unread alerts: %w", err)
	}
	return alerts, nil
}

// FindRecent retrieves the most recently created alerts for the user
func (r *GormAlertRepository) FindRecent(userID uint, limit int) ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent alerts: %w", err)
	}
	return alerts, nil
}

// CountUnread returns the number of unread alerts for the user
func (r *GormAlertRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return count, nil
}

// MarkRead flags a single alert as read and returns it
func (r *GormAlertRepository) MarkRead(userID, id uint) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.Where("user_id = ? AND id = ?", userID, id).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find alert: %w", err)
	}

	alert.IsRead = true
	if err := r.db.Save(&alert).Error; err != nil {
		return nil, fmt.Errorf("failed to mark alert read: %w", err)
	}
	return &alert, nil
}

// MarkAllRead flags every unread alert of the user as read
func (r *GormAlertRepository) MarkAllRead(userID uint) error {
	err := r.db.Model(&domain.Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark alerts read: %w", err)
	}
	return nil
}

// Delete removes an alert owned by the user
func (r *GormAlertRepository) Delete(userID, id uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&domain.Alert{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}
