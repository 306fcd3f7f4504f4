package dto

import "time"

// Rule Request DTOs

// CreateRuleRequest maps a keyword to a category
type CreateRuleRequest struct {
	Keyword  string `json:"keyword" validate:"required,min=1,max=100"`
	Category string `json:"category" validate:"required,min=1,max=100"`
}

// Rule Response DTOs

// RuleResponse represents a stored categorization rule
type RuleResponse struct {
	ID        int64     `json:"id"`
	Keyword   string    `json:"keyword"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListRulesResponse wraps the rule list in evaluation order
type ListRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}
