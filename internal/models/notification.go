package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DirectionInbound  = "Entrada"
	DirectionOutbound = "Saída"

	// SourceManual labels records created through the manual entry form
	// instead of a forwarded push notification.
	SourceManual = "Carteira"

	// CategoryNullSentinel is the legacy "no category set" marker some
	// forwarders write as a literal string. It is never a real category.
	CategoryNullSentinel = "null"
)

var (
	ErrInvalidDirection = errors.New("direction must be Entrada or Saída")
	ErrEmptyMessage     = errors.New("notification message is required")
)

// Notification is a raw transaction candidate: either a forwarded
// banking-app push notification or a manual entry. Amount zero means
// "not yet known" and is resolved by the normalization pipeline.
type Notification struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Source     string          `gorm:"type:varchar(100);not null" json:"source"`
	Message    string          `gorm:"type:text;not null" json:"message"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	Direction  *string         `gorm:"type:varchar(20)" json:"direction,omitempty"`
	Category   *string         `gorm:"type:varchar(100)" json:"category,omitempty"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Notification
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	now := time.Now()
	if n.OccurredAt.IsZero() {
		n.OccurredAt = now
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = now
	}

	return n.Validate()
}

// BeforeUpdate hook for Notification
func (n *Notification) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	n.UpdatedAt = time.Now()
	return n.Validate()
}

// Validate validates the notification fields
func (n *Notification) Validate() error {
	if strings.TrimSpace(n.Message) == "" {
		return ErrEmptyMessage
	}

	if n.Amount.IsNegative() {
		return errors.New("notification amount cannot be negative")
	}

	if n.Direction != nil && !IsValidDirection(*n.Direction) {
		return ErrInvalidDirection
	}

	return nil
}

// StoredDirection returns the stored direction label and whether it is
// present and one of the two recognized labels. Anything else is treated
// as absent so the classifier falls back to text inference.
func (n *Notification) StoredDirection() (string, bool) {
	if n.Direction == nil {
		return "", false
	}
	if !IsValidDirection(*n.Direction) {
		return "", false
	}
	return *n.Direction, true
}

// StoredCategory returns the stored category and whether one is set.
// The empty string and the literal null sentinel both mean absent.
func (n *Notification) StoredCategory() (string, bool) {
	if n.Category == nil {
		return "", false
	}
	category := strings.TrimSpace(*n.Category)
	if category == "" || category == CategoryNullSentinel {
		return "", false
	}
	return category, true
}

// StoredAmount returns the stored amount and whether it is a usable
// positive value. Zero means the upstream channel could not parse one.
func (n *Notification) StoredAmount() (decimal.Decimal, bool) {
	if n.Amount.IsPositive() {
		return n.Amount, true
	}
	return decimal.Zero, false
}

// IsManual reports whether the record came from the manual entry form.
func (n *Notification) IsManual() bool {
	return n.Source == SourceManual
}

// TableName returns the table name for Notification
func (n *Notification) TableName() string {
	return "notifications"
}

// IsValidDirection checks if the direction label is one of the two
// recognized values.
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionInbound, DirectionOutbound:
		return true
	default:
		return false
	}
}
