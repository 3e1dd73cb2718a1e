package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

// targetActivities is the number of stops a day aims for at each intensity.
func targetActivities(intensity domain.Intensity) int {
	switch intensity {
	case domain.IntensityLow:
		return 2
	case domain.IntensityHigh:
		return 4
	default:
		return 3
	}
}

type pick struct {
	activity domain.ScoredActivity
	slot     domain.TimeSlot
	cost     float64
}

// AssembleItinerary distributes scored activities across the trip's days with
// a greedy per-day pass. Activities must already be ranked by overall score
// (ties broken by rating, then catalog order). Each activity is used at most
// once per trip; a day stops filling once it hits its target count, runs out
// of budget headroom or runs out of compatible time slots. Days with fewer
// stops than the target are expected when the catalog is small.
func (e *Engine) AssembleItinerary(activities []domain.ScoredActivity, start time.Time, numDays, travelers int, prefs domain.TripPreferences, dayBudget float64) []domain.ItineraryDay {
	target := targetActivities(prefs.ActivityIntensity)
	maxPerSlot := 1
	if target > 3 {
		// More stops than parts of day; allow doubling up.
		maxPerSlot = 2
	}

	used := make([]bool, len(activities))
	days := make([]domain.ItineraryDay, 0, numDays)

	for day := 0; day < numDays; day++ {
		remaining := dayBudget
		slotLoad := map[domain.TimeSlot]int{}
		picks := make([]pick, 0, target)

		for i, a := range activities {
			if len(picks) >= target {
				break
			}
			if used[i] {
				continue
			}
			cost := a.Cost.ForTier(prefs.BudgetTier)
			if dayBudget > 0 && cost > remaining {
				continue
			}
			slot := a.BestTime
			if slot == "" {
				slot = domain.SlotMorning
			}
			if slotLoad[slot] >= maxPerSlot {
				continue
			}
			used[i] = true
			remaining -= cost
			slotLoad[slot]++
			picks = append(picks, pick{activity: a, slot: slot, cost: cost})
		}

		sort.SliceStable(picks, func(i, j int) bool {
			if picks[i].slot.Order() != picks[j].slot.Order() {
				return picks[i].slot.Order() < picks[j].slot.Order()
			}
			return picks[i].activity.RecommendationScore.Overall > picks[j].activity.RecommendationScore.Overall
		})

		places := make([]domain.VisitPlace, 0, len(picks))
		for _, p := range picks {
			places = append(places, domain.VisitPlace{
				Name:        p.activity.Location,
				Activity:    p.activity.Name,
				TimeSlot:    p.slot,
				Times:       fmt.Sprintf("%s (%dh)", p.slot, p.activity.DurationHours),
				Description: fmt.Sprintf("Visit to %s for %s", p.activity.Location, p.activity.Name),
				Cost:        p.cost,
			})
		}

		days = append(days, domain.ItineraryDay{
			Date:    start.AddDate(0, 0, day).Format(dateLayout),
			Persons: travelers,
			Places:  places,
		})
	}
	return days
}
