package repositories

import (
	"errors"
	"fmt"

	"financas-api/internal/models"

	"gorm.io/gorm"
)

var ErrRuleNotFound = errors.New("rule not found")

// RuleRepository handles database operations for categorization rules
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *gorm.DB) RuleRepositoryInterface {
	return &RuleRepository{
		db: db,
	}
}

// Create persists a new rule
func (r *RuleRepository) Create(rule *models.Rule) error {
	if rule == nil {
		return errors.New("rule cannot be nil")
	}

	if err := r.db.Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}

	return nil
}

// GetAll retrieves all rules in insertion order. The order matters:
// categorization applies the first rule whose keyword matches.
func (r *RuleRepository) GetAll() ([]models.Rule, error) {
	var rules []models.Rule
	if err := r.db.Order("id ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	return rules, nil
}

// GetByID retrieves a rule by its ID
func (r *RuleRepository) GetByID(id int64) (*models.Rule, error) {
	var rule models.Rule
	if err := r.db.Where("id = ?", id).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule by ID: %w", err)
	}

	return &rule, nil
}

// Delete removes a rule by its ID
func (r *RuleRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&models.Rule{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete rule: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}
