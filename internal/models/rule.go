package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEmptyRuleKeyword  = errors.New("rule keyword is required")
	ErrEmptyRuleCategory = errors.New("rule category is required")
)

// Rule maps a keyword to a category. Rules are evaluated in insertion
// order and the first keyword that matches wins, so the auto-increment
// primary key doubles as the evaluation order.
type Rule struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Keyword   string    `gorm:"type:varchar(100);not null" json:"keyword"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Rule
func (r *Rule) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return r.Validate()
}

// Validate validates the rule fields
func (r *Rule) Validate() error {
	if strings.TrimSpace(r.Keyword) == "" {
		return ErrEmptyRuleKeyword
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyRuleCategory
	}
	return nil
}

// Matches reports whether the rule keyword occurs in the description,
// compared case-insensitively as a plain substring.
func (r *Rule) Matches(description string) bool {
	return strings.Contains(strings.ToLower(description), strings.ToLower(r.Keyword))
}

// TableName returns the table name for Rule
func (r *Rule) TableName() string {
	return "rules"
}
