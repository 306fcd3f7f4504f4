package normalize

import (
	"time"

	"financas-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction is the credit/debit side of a transaction.
type Direction string

const (
	Inbound  Direction = models.DirectionInbound
	Outbound Direction = models.DirectionOutbound
)

// Transaction is the canonical, display-ready form of a raw
// notification. It is derived on every read and never persisted, so
// rule and category changes take effect on the next fetch.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   Direction       `json:"direction"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
}

// IsInbound reports whether the transaction is a credit.
func (t Transaction) IsInbound() bool {
	return t.Direction == Inbound
}

// AmountSource identifies which signal produced the amount.
type AmountSource int

const (
	AmountUnknown AmountSource = iota
	AmountFromStored
	AmountFromText
)

// AmountResult is the outcome of amount extraction. Literal holds the
// raw matched currency substring (e.g. "R$ 45,90") when the amount came
// from the text, so the description normalizer can strip it.
type AmountResult struct {
	Value   decimal.Decimal
	Source  AmountSource
	Literal string
}

// DirectionSource identifies which signal produced the direction.
type DirectionSource int

const (
	DirectionDefault DirectionSource = iota
	DirectionFromStored
	DirectionFromKeyword
)

// DirectionResult is the outcome of direction classification. Keyword
// is set when an inbound keyword matched.
type DirectionResult struct {
	Direction Direction
	Source    DirectionSource
	Keyword   string
}

// CategorySource identifies which signal produced the category.
type CategorySource int

const (
	CategoryDefault CategorySource = iota
	CategoryFromRule
	CategoryFromStored
)

// CategoryResult is the outcome of categorization. Keyword is the rule
// keyword that matched when the category came from the rule table.
type CategoryResult struct {
	Category string
	Source   CategorySource
	Keyword  string
}
