package engine

import (
	"time"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

// ScoreActivity computes the weighted recommendation score for an activity.
func (e *Engine) ScoreActivity(a domain.Activity, prefs domain.TripPreferences, dest domain.Destination, month time.Month) domain.RecommendationScore {
	interest := e.interestMatch(prefs.Interests, a.Categories)
	budget := budgetFit(activityTier(a, dest), prefs.BudgetTier)
	weather := weatherFactor(dest, month)
	popularity := popularityScore(a.Rating)
	intensity := intensityMatch(activityIntensity(a), prefs.ActivityIntensity)
	return breakdown(interest, budget, weather, popularity, intensity)
}

// ScoreHotel computes the weighted recommendation score for a hotel. The
// algorithm is the same as for activities; the hotel's amenities stand in for
// category tags and its category tier for the implied price tier.
func (e *Engine) ScoreHotel(h domain.Hotel, prefs domain.TripPreferences, dest domain.Destination, month time.Month) domain.RecommendationScore {
	interest := e.interestMatch(prefs.Interests, hotelCategories(h))
	budget := budgetFit(h.Category, prefs.BudgetTier)
	weather := weatherFactor(dest, month)
	popularity := popularityScore(h.Rating)
	intensity := intensityMatch(hotelIntensity(h), prefs.ActivityIntensity)
	return breakdown(interest, budget, weather, popularity, intensity)
}

func breakdown(interest, budget, weather, popularity, intensity float64) domain.RecommendationScore {
	overall := interest*weightInterest +
		budget*weightBudget +
		weather*weightWeather +
		popularity*weightPopularity +
		intensity*weightIntensity
	return domain.RecommendationScore{
		Overall:        round1(clamp(overall, 0, 10)),
		InterestMatch:  round2(interest),
		BudgetFit:      round2(budget),
		WeatherFactor:  round2(weather),
		Popularity:     round2(popularity),
		IntensityMatch: round2(intensity),
	}
}

// interestMatch scores how well the item's category tags cover the user's
// interests. Each category contributes its best affinity value across all
// declared interests; the mean over the item's categories is scaled to
// [0, 10]. No interests, no categories or no overlap all yield 0.
func (e *Engine) interestMatch(interests, categories []string) float64 {
	if len(interests) == 0 || len(categories) == 0 {
		return 0
	}
	total := 0.0
	matched := false
	for _, cat := range categories {
		best := 0.0
		for _, interest := range interests {
			if cat == interest {
				best = 1.0
				break
			}
			if v, ok := e.affinity[interest][cat]; ok && v > best {
				best = v
			}
		}
		if best > 0 {
			matched = true
		}
		total += best
	}
	if !matched {
		return 0
	}
	return total / float64(len(categories)) * 10
}

// budgetFit scores the distance between the item's implied price tier and the
// user's declared tier. An unrecognized tier degrades to the adjacent-tier
// score rather than failing.
func budgetFit(itemTier, userTier domain.Tier) float64 {
	it, ut := itemTier.Level(), userTier.Level()
	if it < 0 || ut < 0 {
		return adjacentMatchScore
	}
	switch d := abs(it - ut); d {
	case 0:
		return exactMatchScore
	case 1:
		return adjacentMatchScore
	default:
		return farMatchScore
	}
}

func weatherFactor(dest domain.Destination, month time.Month) float64 {
	if dest.IsBestMonth(month) {
		return weatherBestMonthScore
	}
	return weatherBaselineScore
}

func popularityScore(rating float64) float64 {
	return clamp(rating, 0, 5) * 2
}

func intensityMatch(item, user domain.Intensity) float64 {
	switch d := abs(item.Level() - user.Level()); d {
	case 0:
		return exactMatchScore
	case 1:
		return adjacentMatchScore
	default:
		return farMatchScore
	}
}

// activityTier derives an activity's implied price tier from its mid-tier
// cost relative to the destination's mid daily budget.
func activityTier(a domain.Activity, dest domain.Destination) domain.Tier {
	daily := dest.DailyBudget.Mid
	if daily <= 0 {
		return ""
	}
	switch ratio := a.Cost.Mid / daily; {
	case ratio <= 0.10:
		return domain.TierBudget
	case ratio <= 0.25:
		return domain.TierMid
	default:
		return domain.TierLuxury
	}
}

// activityIntensity derives intensity from duration: short visits are low
// key, half-day outings are medium, anything longer is high.
func activityIntensity(a domain.Activity) domain.Intensity {
	switch {
	case a.DurationHours <= 2:
		return domain.IntensityLow
	case a.DurationHours <= 4:
		return domain.IntensityMedium
	default:
		return domain.IntensityHigh
	}
}

// hotelIntensity maps the hotel's tier onto the intensity scale: hostels suit
// high-energy trips, luxury stays suit slow ones.
func hotelIntensity(h domain.Hotel) domain.Intensity {
	switch h.Category {
	case domain.TierBudget:
		return domain.IntensityHigh
	case domain.TierLuxury:
		return domain.IntensityLow
	default:
		return domain.IntensityMedium
	}
}

func hotelCategories(h domain.Hotel) []string {
	cats := make([]string, 0, len(h.Amenities))
	for _, am := range h.Amenities {
		if cat, ok := amenityCategories[am]; ok {
			cats = append(cats, cat)
		}
	}
	return cats
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
