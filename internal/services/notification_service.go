package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financas-api/internal/dto"
	"financas-api/internal/models"
	"financas-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyMessage         = errors.New("notification message is required")
	ErrNegativeAmount       = errors.New("notification amount cannot be negative")
	ErrNoUpdateFields       = errors.New("no fields to update")
)

// NotificationService handles ingestion and lifecycle of raw
// notification records. Normalization happens at read time in the
// ledger service, so edits here are visible on the next fetch.
type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Ingest stores a forwarded push notification or manual entry
func (s *NotificationService) Ingest(req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}
	if req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if req.Direction != nil && !models.IsValidDirection(*req.Direction) {
		return nil, models.ErrInvalidDirection
	}

	notification := &models.Notification{
		Source:    req.Source,
		Message:   req.Message,
		Amount:    req.Amount,
		Direction: req.Direction,
		Category:  req.Category,
	}
	if req.Source == "" {
		notification.Source = models.SourceManual
	}
	if req.OccurredAt != nil {
		notification.OccurredAt = *req.OccurredAt
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to ingest notification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("notification_ingested", map[string]string{"source": notification.Source})
	}
	s.logger.Info("notification ingested",
		slog.String("id", notification.ID.String()),
		slog.String("source", notification.Source))

	return notification, nil
}

// GetByID returns a single stored notification
func (s *NotificationService) GetByID(id uuid.UUID) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return notification, nil
}

// List returns all stored notifications, most recent first
func (s *NotificationService) List() ([]models.Notification, error) {
	notifications, err := s.notificationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// Update applies partial updates to a stored notification
func (s *NotificationService) Update(id uuid.UUID, req *dto.UpdateNotificationRequest) (*models.Notification, error) {
	fields := map[string]interface{}{}

	if req.Message != nil {
		if strings.TrimSpace(*req.Message) == "" {
			return nil, ErrEmptyMessage
		}
		fields["message"] = *req.Message
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
		fields["amount"] = *req.Amount
	}
	if req.Direction != nil {
		if !models.IsValidDirection(*req.Direction) {
			return nil, models.ErrInvalidDirection
		}
		fields["direction"] = *req.Direction
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	if len(fields) == 0 {
		return nil, ErrNoUpdateFields
	}

	if err := s.notificationRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes a stored notification
func (s *NotificationService) Delete(id uuid.UUID) error {
	if err := s.notificationRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("notification_deleted", nil)
	}
	s.logger.Info("notification deleted", slog.String("id", id.String()))
	return nil
}
