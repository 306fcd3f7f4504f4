package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategory is the fallback category assigned when no rule matches
// and the record carries no stored category. It is also the resolution
// target for dangling category references.
const DefaultCategory = "Geral"

var ErrEmptyCategoryName = errors.New("category name is required")

// Category is a user-managed spending category, referenced by name from
// rules and transactions. There is no delete path; a name that stops
// existing simply resolves to the default at read time.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Name) > 100 {
		return errors.New("category name too long")
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// FallbackCategoryNames is the built-in category list used when the
// category table is unreachable. The ledger keeps working; everything
// uncategorized resolves to the default.
func FallbackCategoryNames() []string {
	return []string{DefaultCategory, "Alimentação", "Transporte"}
}
