// Package normalize turns raw banking-app notification texts into
// structured ledger transactions. The pipeline is pure data
// transformation: it receives a snapshot of records and rules and holds
// no mutable state, so each batch is independent and each record is
// normalized in isolation, so one malformed notification degrades to
// defaults instead of blanking the whole ledger.
package normalize

import "financas-api/internal/models"

// Pipeline runs the normalization steps over raw notifications.
type Pipeline struct {
	cfg Config
}

// New creates a pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = DefaultConfig().DefaultCategory
	}
	if cfg.UnknownDescription == "" {
		cfg.UnknownDescription = DefaultConfig().UnknownDescription
	}
	return &Pipeline{cfg: cfg}
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Normalize produces the canonical transaction for one raw record:
// amount, then direction, then description, then rule categorization
// over the cleaned description, then category resolution. Missing or
// null fields are treated as absent, never fatal.
func (p *Pipeline) Normalize(n *models.Notification, rules []models.Rule) Transaction {
	storedAmount, hasAmount := n.StoredAmount()
	amount := ExtractAmount(n.Message, storedAmount, hasAmount)

	storedDirection, hasDirection := n.StoredDirection()
	direction := p.ClassifyDirection(n.Message, storedDirection, hasDirection)

	description := p.NormalizeDescription(n.Message, amount.Literal)

	storedCategory, hasCategory := n.StoredCategory()
	category := p.ResolveCategory(p.Categorize(description, rules), storedCategory, hasCategory)

	return Transaction{
		ID:          n.ID,
		OccurredAt:  n.OccurredAt,
		Description: description,
		Amount:      amount.Value,
		Direction:   direction.Direction,
		Category:    category.Category,
		Source:      n.Source,
	}
}

// NormalizeBatch normalizes every record in the batch. Records are
// processed independently; no record's output depends on another's.
func (p *Pipeline) NormalizeBatch(notifications []models.Notification, rules []models.Rule) []Transaction {
	transactions := make([]Transaction, 0, len(notifications))
	for i := range notifications {
		transactions = append(transactions, p.Normalize(&notifications[i], rules))
	}
	return transactions
}
