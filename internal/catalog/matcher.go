package catalog

import (
	"strings"

	"outflow/internal/logging"
	"outflow/internal/types"
)

// Template matching scores every library template against a brief and keeps
// the single best. Scoring:
//
//	+10 per channel shared between brief and template
//	+15 if the brief's goal text contains the template category's keyword
//	 -2 per step of difference between brief step count and template step
//	    count (only when the brief specifies a count)
//
// The incumbent starts at score 0 and is only displaced by a strictly
// greater score, so a template scoring <= 0 never matches and the first
// best-scoring template wins ties. A brief with nothing in common with the
// library therefore yields no match, which is a valid outcome rather than
// an error.

// categoryKeywords maps each category to the goal substring that signals it.
var categoryKeywords = map[types.Category]string{
	types.CategoryColdOutreach:  "cold",
	types.CategoryRecruiting:    "recruit",
	types.CategoryFundraising:   "fundrais",
	types.CategoryPartnership:   "partner",
	types.CategoryEvent:         "event",
	types.CategoryReEngagement:  "re-engage",
	types.CategoryProductLaunch: "launch",
	types.CategoryNetworking:    "network",
}

// Match returns the best-scoring template for the brief, or nil when no
// template scores above zero.
func (c *Catalog) Match(brief *types.Brief) *types.Template {
	var best *types.Template
	bestScore := 0

	for _, tpl := range c.templates {
		score := scoreTemplate(tpl, brief)
		if score > bestScore {
			best = tpl
			bestScore = score
		}
	}

	if best != nil {
		logging.CatalogDebug("Matched template %s (score %d) for goal %q", best.ID, bestScore, brief.Goal)
	}
	return best
}

func scoreTemplate(tpl *types.Template, brief *types.Brief) int {
	score := 0

	for _, ch := range tpl.Channels {
		if brief.HasChannel(ch) {
			score += 10
		}
	}

	if kw, ok := categoryKeywords[tpl.Category]; ok {
		if strings.Contains(strings.ToLower(brief.Goal), kw) {
			score += 15
		}
	}

	if brief.StepCount > 0 {
		diff := brief.StepCount - len(tpl.Steps)
		if diff < 0 {
			diff = -diff
		}
		score -= 2 * diff
	}

	return score
}
