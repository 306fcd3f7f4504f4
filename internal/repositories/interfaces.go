package repositories

import (
	"financas-api/internal/models"

	"github.com/google/uuid"
)

// NotificationRepositoryInterface defines the contract for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetAll() ([]models.Notification, error)
	GetByPeriod(month, year int) ([]models.Notification, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByName(name string) (*models.Category, error)
	ExistsByName(name string) (bool, error)
}

// RuleRepositoryInterface defines the contract for categorization rule repository operations
type RuleRepositoryInterface interface {
	Create(rule *models.Rule) error
	GetAll() ([]models.Rule, error)
	GetByID(id int64) (*models.Rule, error)
	Delete(id int64) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(userID uuid.UUID) error
	Count() (int64, error)
}
