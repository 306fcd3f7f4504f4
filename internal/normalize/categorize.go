package normalize

import "financas-api/internal/models"

// Categorize maps a normalized description to a category using the rule
// table. Rules are evaluated in storage order and the first keyword that
// matches wins — no longest-match, no scoring — chosen for
// predictability and user auditability over accuracy.
func (p *Pipeline) Categorize(description string, rules []models.Rule) CategoryResult {
	for i := range rules {
		if rules[i].Matches(description) {
			return CategoryResult{
				Category: rules[i].Category,
				Source:   CategoryFromRule,
				Keyword:  rules[i].Keyword,
			}
		}
	}

	return CategoryResult{Category: p.cfg.DefaultCategory, Source: CategoryDefault}
}

// ResolveCategory combines the rule-based category with the category
// stored on the record. Precedence, highest first: a rule match (rules
// are the user's most recently taught intent), then a stored category
// (preserves manual edits when no rule applies), then the default.
func (p *Pipeline) ResolveCategory(ruleResult CategoryResult, stored string, hasStored bool) CategoryResult {
	if ruleResult.Source == CategoryFromRule {
		return ruleResult
	}

	if hasStored {
		return CategoryResult{Category: stored, Source: CategoryFromStored}
	}

	return CategoryResult{Category: p.cfg.DefaultCategory, Source: CategoryDefault}
}
