package segment

import (
	"strings"

	"github.com/poiesic/clausewise/core"
)

// categoryRule maps a set of trigger phrases to a category. Rules are
// evaluated in order; the first match wins, so more specific roles come
// before broader ones.
type categoryRule struct {
	category core.Category
	phrases  []string
}

var categoryRules = []categoryRule{
	{core.CategoryException, []string{"except ", "however", "notwithstanding"}},
	{core.CategoryExclusion, []string{"not cover", "excluded", "exclusion", "shall not"}},
	{core.CategoryTemporal, []string{"waiting period", "months from", "policy start", "inception date"}},
	{core.CategoryDefinition, []string{" means ", "is defined as", "refers to"}},
	{core.CategoryCondition, []string{"provided that", "subject to", "only if"}},
	{core.CategoryCalculation, []string{"sum insured", "copay", "co-payment", "premium", "% of", "limit of"}},
	{core.CategoryStakeholder, []string{"policyholder", "insured person", "the insurer", "the company"}},
	{core.CategoryJurisdiction, []string{"jurisdiction", "governing law", "court of"}},
}

// Classify assigns a category to clause text by keyword heuristics.
// Unclassified text defaults to coverage.
func Classify(text string) core.Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return rule.category
			}
		}
	}
	return core.CategoryCoverage
}
