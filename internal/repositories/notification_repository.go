package repositories

import (
	"errors"
	"fmt"
	"time"

	"financas-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepositoryInterface {
	return &NotificationRepository{
		db: db,
	}
}

// Create persists a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	if notification == nil {
		return errors.New("notification cannot be nil")
	}

	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// GetByID retrieves a notification by its ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.Where("id = ?", id).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}

	return &notification, nil
}

// GetAll retrieves all notifications, most recent first
func (r *NotificationRepository) GetAll() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Order("occurred_at DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// GetByPeriod retrieves notifications whose occurred_at falls inside the
// given calendar month, most recent first.
func (r *NotificationRepository) GetByPeriod(month, year int) ([]models.Notification, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	var notifications []models.Notification
	err := r.db.
		Where("occurred_at >= ? AND occurred_at < ?", periodStart(month, year), periodEnd(month, year)).
		Order("occurred_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for period: %w", err)
	}

	return notifications, nil
}

// UpdateFields updates specific fields of a notification by its ID
func (r *NotificationRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}

	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Delete removes a notification by its ID
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func periodStart(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func periodEnd(month, year int) time.Time {
	return periodStart(month, year).AddDate(0, 1, 0)
}

// Count returns the total number of stored notifications
func (r *NotificationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Notification{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return count, nil
}
