package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financas-api/internal/models"
	"financas-api/internal/repositories"
)

var ErrRuleNotFound = errors.New("rule not found")

// RuleService manages keyword-to-category rules. Rules apply at read
// time, so a new rule recategorizes the whole history on the next
// ledger fetch.
type RuleService struct {
	ruleRepo repositories.RuleRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewRuleService creates a new rule service
func NewRuleService(
	ruleRepo repositories.RuleRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RuleServiceInterface {
	return &RuleService{
		ruleRepo: ruleRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Create adds a new rule at the end of the evaluation order
func (s *RuleService) Create(keyword, category string) (*models.Rule, error) {
	keyword = strings.TrimSpace(keyword)
	category = strings.TrimSpace(category)
	if keyword == "" {
		return nil, models.ErrEmptyRuleKeyword
	}
	if category == "" {
		return nil, models.ErrEmptyRuleCategory
	}

	rule := &models.Rule{
		Keyword:  keyword,
		Category: category,
	}
	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("rule_created", nil)
	}
	s.logger.Info("rule created",
		slog.String("keyword", keyword),
		slog.String("category", category))
	return rule, nil
}

// List returns all rules in evaluation order
func (s *RuleService) List() ([]models.Rule, error) {
	rules, err := s.ruleRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// Delete removes a rule
func (s *RuleService) Delete(id int64) error {
	if err := s.ruleRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrRuleNotFound) {
			return ErrRuleNotFound
		}
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	s.logger.Info("rule deleted", slog.Int64("id", id))
	return nil
}
