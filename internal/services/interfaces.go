package services

import (
	"time"

	"financas-api/internal/dto"
	"financas-api/internal/models"
	"financas-api/internal/normalize"

	"github.com/google/uuid"
)

// NotificationServiceInterface defines the contract for raw notification operations
type NotificationServiceInterface interface {
	Ingest(req *dto.CreateNotificationRequest) (*models.Notification, error)
	GetByID(id uuid.UUID) (*models.Notification, error)
	List() ([]models.Notification, error)
	Update(id uuid.UUID, req *dto.UpdateNotificationRequest) (*models.Notification, error)
	Delete(id uuid.UUID) error
}

// CategoryServiceInterface defines the contract for category operations
type CategoryServiceInterface interface {
	Create(name string) (*models.Category, error)
	// List returns all categories. When the store is unreachable it
	// serves the built-in fallback list and reports fallback=true.
	List() (categories []models.Category, fallback bool, err error)
}

// RuleServiceInterface defines the contract for categorization rule operations
type RuleServiceInterface interface {
	Create(keyword, category string) (*models.Rule, error)
	List() ([]models.Rule, error)
	Delete(id int64) error
}

// LedgerServiceInterface defines the contract for the normalized ledger
type LedgerServiceInterface interface {
	GetLedger(filters dto.LedgerFilters) ([]normalize.Transaction, error)
	Summarize(transactions []normalize.Transaction) dto.LedgerSummary
}

// ExportServiceInterface renders the normalized ledger as CSV
type ExportServiceInterface interface {
	ExportCSV(filters dto.LedgerFilters) ([]byte, error)
}

// AuthServiceInterface defines the contract for operator authentication
type AuthServiceInterface interface {
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	EnsureOperator(email, password string) error
}

// TokenServiceInterface defines the contract for JWT issuance and validation
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines the contract for password hashing
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	HashPasswordWithoutValidation(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// SampleGeneratorInterface generates realistic notification data for development
type SampleGeneratorInterface interface {
	GenerateNotifications(count int, start, end time.Time) []*models.Notification
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
