package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

// SuggestDestinations ranks the catalog's destinations for a set of interests
// and a budget tier. Interest coverage dominates; affordability at the chosen
// tier (relative to the most expensive destination) makes up the rest. The
// ranking is deterministic: ties keep catalog order.
func (e *Engine) SuggestDestinations(dests []domain.Destination, interests []string, tier domain.Tier) []domain.DestinationSuggestion {
	var maxDaily float64
	for _, d := range dests {
		if daily := d.DailyBudget.ForTier(tier); daily > maxDaily {
			maxDaily = daily
		}
	}

	suggestions := make([]domain.DestinationSuggestion, 0, len(dests))
	for _, d := range dests {
		interest := e.interestMatch(interests, d.Categories)

		budget := 10.0
		if maxDaily > 0 {
			// Scales affordability into [6, 10]; the priciest catalog entry
			// still scores 6, never zero.
			budget = 10 - 4*(d.DailyBudget.ForTier(tier)/maxDaily)
		}

		match := round2(clamp(interest*0.7+budget*0.3, 0, 10))

		reasons := make([]string, 0, 3)
		if interest >= 8 {
			if shared := intersect(d.Categories, interests); len(shared) > 0 {
				reasons = append(reasons, "Perfect for "+strings.Join(shared, ", ")+" enthusiasts")
			}
		}
		if budget >= 8 && tier.Level() >= 0 {
			reasons = append(reasons, fmt.Sprintf("Great value for %s travelers", tier))
		}
		if len(d.BestMonths) > 0 {
			reasons = append(reasons, "Best visited in months: "+joinInts(d.BestMonths))
		}

		suggestions = append(suggestions, domain.DestinationSuggestion{
			Destination: d,
			MatchScore:  match,
			Reasons:     reasons,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})
	return suggestions
}

func intersect(categories, interests []string) []string {
	shared := make([]string, 0, len(categories))
	for _, cat := range categories {
		for _, interest := range interests {
			if cat == interest {
				shared = append(shared, cat)
				break
			}
		}
	}
	return shared
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
