package dto

import "time"

// Ledger Request DTOs

// LedgerFilters contains the optional calendar-month filter. Both
// fields must be provided together; zero values mean "everything".
type LedgerFilters struct {
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  int `query:"year" validate:"omitempty,min=2000,max=2100"`
}

// Ledger Response DTOs

// TransactionResponse is a normalized view of a stored notification
type TransactionResponse struct {
	ID          string    `json:"id"`
	OccurredAt  time.Time `json:"occurredAt"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Direction   string    `json:"direction"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
}

// CategorySpending is the outbound total for one category
type CategorySpending struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// DailyTotal aggregates outbound spending for one calendar day
type DailyTotal struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// DescriptionSpending is the outbound total for one normalized description
type DescriptionSpending struct {
	Description string `json:"description"`
	Total       string `json:"total"`
}

// LedgerSummary aggregates the filtered transactions
type LedgerSummary struct {
	TotalInbound          string                `json:"totalInbound"`
	TotalOutbound         string                `json:"totalOutbound"`
	Balance               string                `json:"balance"`
	SpendingByCategory    []CategorySpending    `json:"spendingByCategory"`
	SpendingByDay         []DailyTotal          `json:"spendingByDay"`
	SpendingByDescription []DescriptionSpending `json:"spendingByDescription"`
}

// LedgerResponse is the normalized ledger plus its aggregates
type LedgerResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      LedgerSummary         `json:"summary"`
}
