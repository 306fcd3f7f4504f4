package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notification Request DTOs

// CreateNotificationRequest contains a forwarded push notification or a
// manual entry. Only the message is mandatory; everything else is
// resolved by the normalization pipeline at read time.
type CreateNotificationRequest struct {
	Source     string          `json:"source" validate:"omitempty,max=100"`
	Message    string          `json:"message" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"omitempty"`
	Direction  *string         `json:"direction" validate:"omitempty,direction_label"`
	Category   *string         `json:"category" validate:"omitempty,max=100"`
	OccurredAt *time.Time      `json:"occurredAt"`
}

// UpdateNotificationRequest carries partial updates for a stored
// notification. Nil fields are left untouched.
type UpdateNotificationRequest struct {
	Message   *string          `json:"message" validate:"omitempty,min=1"`
	Amount    *decimal.Decimal `json:"amount"`
	Direction *string          `json:"direction" validate:"omitempty,direction_label"`
	Category  *string          `json:"category" validate:"omitempty,max=100"`
}

// Notification Response DTOs

// NotificationResponse is the raw stored record, before normalization
type NotificationResponse struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
	Amount     string    `json:"amount"`
	Direction  *string   `json:"direction,omitempty"`
	Category   *string   `json:"category,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ListNotificationsResponse wraps the stored notification list
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
