package engine

import "github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"

// EstimateCost computes the per-category trip cost. Accommodation, food and
// transport derive from the destination's tier daily budgets; the activities
// component sums the costs of the stops actually placed in the itinerary.
// A total above the traveler's budget cap is reported, never rejected.
func (e *Engine) EstimateCost(dest domain.Destination, prefs domain.TripPreferences, travelers, numDays int, itinerary []domain.ItineraryDay) domain.CostBreakdown {
	if travelers < 1 {
		travelers = 1
	}

	// One room per two travelers, rounded up.
	rooms := (travelers + 1) / 2
	nightly := dest.DailyBudget.ForTier(prefs.AccommodationTier) * accommodationShare
	accommodation := nightly * float64(numDays) * float64(rooms)

	var activities float64
	for _, day := range itinerary {
		for _, place := range day.Places {
			activities += place.Cost
		}
	}
	activities *= float64(travelers)

	daily := dest.DailyBudget.ForTier(prefs.BudgetTier)
	food := daily * foodShare * float64(travelers) * float64(numDays)
	transport := daily * transportShare * float64(travelers) * float64(numDays)

	total := accommodation + activities + food + transport
	return domain.CostBreakdown{
		Accommodation: accommodation,
		Activities:    activities,
		Food:          food,
		Transport:     transport,
		Total:         total,
		PerPerson:     total / float64(travelers),
		Currency:      dest.Currency,
	}
}
