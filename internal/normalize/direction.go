package normalize

import (
	"strings"

	"financas-api/internal/models"
)

// ClassifyDirection labels a record as inbound or outbound. A stored
// direction, when present and valid, is used verbatim so manual entries
// and user edits override inference. Otherwise the text is scanned for
// inbound keywords; no keyword means outbound, since most notifications
// are purchases.
func (p *Pipeline) ClassifyDirection(message string, stored string, hasStored bool) DirectionResult {
	if hasStored {
		direction := Outbound
		if stored == models.DirectionInbound {
			direction = Inbound
		}
		return DirectionResult{Direction: direction, Source: DirectionFromStored}
	}

	lower := strings.ToLower(message)
	for _, keyword := range p.cfg.InboundKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return DirectionResult{
				Direction: Inbound,
				Source:    DirectionFromKeyword,
				Keyword:   keyword,
			}
		}
	}

	return DirectionResult{Direction: Outbound, Source: DirectionDefault}
}
