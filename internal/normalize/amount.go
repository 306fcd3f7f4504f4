package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches Brazilian currency literals: "R$" optionally
// followed by a space, a digit group with "." thousands separators and
// a "," decimal separator with exactly two decimal digits.
var amountPattern = regexp.MustCompile(`R\$\s?([\d\.]+,\d{2})`)

// ExtractAmount resolves the monetary value of a record. A positive
// stored amount always wins (manual entries and records the forwarder
// already parsed). Otherwise the text is scanned for a currency
// literal. No match, or a literal that fails to parse, degrades to a
// zero "unknown amount" result, never an error.
func ExtractAmount(message string, stored decimal.Decimal, hasStored bool) AmountResult {
	if hasStored {
		return AmountResult{Value: stored, Source: AmountFromStored}
	}

	match := amountPattern.FindStringSubmatch(message)
	if match == nil {
		return AmountResult{Value: decimal.Zero, Source: AmountUnknown}
	}

	normalized := strings.ReplaceAll(match[1], ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)

	value, err := decimal.NewFromString(normalized)
	if err != nil || value.IsNegative() {
		return AmountResult{Value: decimal.Zero, Source: AmountUnknown}
	}

	return AmountResult{Value: value, Source: AmountFromText, Literal: match[0]}
}
