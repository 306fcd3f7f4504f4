package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeDescription strips boilerplate from the raw text to surface
// the merchant or counterparty name: lowercase, remove the matched
// amount literal and every boilerplate phrase in list order as plain
// substrings, trim, title-case. Removal is intentionally lossy; partial
// and overlapping removals are accepted. The function is pure and never
// fails — a result shorter than two characters becomes the sentinel
// description.
func (p *Pipeline) NormalizeDescription(message string, amountLiteral string) string {
	cleaned := strings.ToLower(message)

	// The amount literal goes first: the "r$" boilerplate term would
	// otherwise split it and leave the digits behind.
	if amountLiteral != "" {
		cleaned = strings.ReplaceAll(cleaned, strings.ToLower(amountLiteral), "")
	}

	for _, term := range p.cfg.BoilerplateTerms {
		cleaned = strings.ReplaceAll(cleaned, term, "")
	}

	cleaned = strings.Join(strings.Fields(cleaned), " ")

	// cases.Caser carries internal state, so a shared instance would
	// race under concurrent ledger reads. Construction is cheap.
	description := cases.Title(language.BrazilianPortuguese).String(cleaned)

	if utf8.RuneCountInString(description) < 2 {
		return p.cfg.UnknownDescription
	}

	return description
}
