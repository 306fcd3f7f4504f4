package normalize

import "financas-api/internal/models"

// Config carries the locale-specific knobs of the pipeline. Keyword and
// phrase lists are configuration so new notification formats can be
// accommodated without touching classifier logic.
type Config struct {
	// InboundKeywords mark a notification as a credit when any of them
	// occurs in the text. Matching is case-insensitive.
	InboundKeywords []string
	// BoilerplateTerms are stripped from the text, in list order, before
	// the merchant name is surfaced.
	BoilerplateTerms []string
	// DefaultCategory is assigned when no rule matches and no category
	// is stored on the record.
	DefaultCategory string
	// UnknownDescription replaces descriptions that collapse to fewer
	// than two characters after cleaning.
	UnknownDescription string
}

// DefaultConfig returns the pipeline configuration for Brazilian
// banking-app notifications, the only locale the forwarder currently
// sends.
func DefaultConfig() Config {
	return Config{
		InboundKeywords: []string{
			"recebido",
			"recebeu",
			"crédito",
			"estorno",
			"depósito",
			"devolvido",
			"pix recebido",
		},
		BoilerplateTerms: []string{
			"compra aprovada",
			"compra de",
			"pix enviado",
			"transacao",
			"transação",
			"cartão final",
			"r$",
			"bradesco",
			"inter",
			"nubank",
			"itaú",
			"itau",
		},
		DefaultCategory:    models.DefaultCategory,
		UnknownDescription: "Não Identificado",
	}
}
