// Package engine holds the pure recommendation computations: weighted scoring
// of hotels and activities, cost estimation, greedy daily itinerary assembly
// and destination suggestions. Nothing in this package touches I/O; all
// functions are deterministic for a given catalog bundle and request.
package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

const dateLayout = "2006-01-02"

// Engine evaluates catalog items against traveler preferences. The affinity
// table is fixed at construction so weights stay independently testable.
type Engine struct {
	affinity map[string]map[string]float64
}

func New() *Engine {
	return &Engine{affinity: defaultAffinity}
}

// NewWithAffinity builds an engine around a custom interest/category affinity
// table. Affinity values are expected in [0, 1].
func NewWithAffinity(affinity map[string]map[string]float64) *Engine {
	return &Engine{affinity: affinity}
}

// Recommend produces the full trip recommendation for a validated request and
// a catalog bundle. It never fails: missing hotels or activities only thin
// out the corresponding sections.
func (e *Engine) Recommend(req domain.TripRequest, bundle domain.DestinationBundle) *domain.TripRecommendation {
	dest := bundle.Destination
	numDays := req.NumDays()
	travelMonth := req.StartDate.Month()

	hotels := make([]domain.ScoredHotel, 0, len(bundle.Hotels))
	for _, h := range bundle.Hotels {
		hotels = append(hotels, domain.ScoredHotel{
			Hotel:               h,
			RecommendationScore: e.ScoreHotel(h, req.Preferences, dest, travelMonth),
		})
	}
	sort.SliceStable(hotels, func(i, j int) bool {
		if hotels[i].RecommendationScore.Overall != hotels[j].RecommendationScore.Overall {
			return hotels[i].RecommendationScore.Overall > hotels[j].RecommendationScore.Overall
		}
		return hotels[i].Rating > hotels[j].Rating
	})

	activities := make([]domain.ScoredActivity, 0, len(bundle.Activities))
	for _, a := range bundle.Activities {
		activities = append(activities, domain.ScoredActivity{
			Activity:            a,
			RecommendationScore: e.ScoreActivity(a, req.Preferences, dest, travelMonth),
		})
	}
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].RecommendationScore.Overall != activities[j].RecommendationScore.Overall {
			return activities[i].RecommendationScore.Overall > activities[j].RecommendationScore.Overall
		}
		return activities[i].Rating > activities[j].Rating
	})

	dayBudget := dest.DailyBudget.ForTier(req.Preferences.BudgetTier) * dayActivityBudgetFactor
	itinerary := e.AssembleItinerary(activities, req.StartDate, numDays, req.Travelers, req.Preferences, dayBudget)

	cost := e.EstimateCost(dest, req.Preferences, req.Travelers, numDays, itinerary)
	weather := weatherInfo(dest, travelMonth)

	trip := domain.Trip{
		Destination: dest.Name,
		StartDate:   req.StartDate.Format(dateLayout),
		EndDate:     req.EndDate.Format(dateLayout),
		Travelers:   req.Travelers,
		Itinerary:   itinerary,
		TotalBudget: cost.Total,
	}
	if len(hotels) > 0 {
		best := hotels[0]
		trip.Hotels = []domain.SelectedHotel{{
			Name:         best.Name,
			CheckIn:      trip.StartDate,
			CheckOut:     trip.EndDate,
			CostPerNight: best.PricePerNight.ForTier(req.Preferences.AccommodationTier),
			Address:      best.Location,
		}}
	}

	return &domain.TripRecommendation{
		Trip:                  trip,
		WeatherInfo:           weather,
		CostBreakdown:         cost,
		RecommendedHotels:     topHotels(hotels, 3),
		RecommendedActivities: topActivities(activities, 10),
		ConfidenceScore:       confidence(activities, hotels, weather.IsFavorable),
		PersonalizationNotes:  personalizationNotes(req, cost, weather),
	}
}

func topHotels(hotels []domain.ScoredHotel, n int) []domain.ScoredHotel {
	if len(hotels) < n {
		n = len(hotels)
	}
	return hotels[:n]
}

func topActivities(activities []domain.ScoredActivity, n int) []domain.ScoredActivity {
	if len(activities) < n {
		n = len(activities)
	}
	return activities[:n]
}

// confidence aggregates the strongest recommendations into a single [0, 10]
// trust figure: half from the top activities, a third from the top hotels and
// the remainder from weather favorability.
func confidence(activities []domain.ScoredActivity, hotels []domain.ScoredHotel, favorable bool) float64 {
	var actAvg float64
	if len(activities) > 0 {
		n := len(activities)
		if n > 5 {
			n = 5
		}
		for _, a := range activities[:n] {
			actAvg += a.RecommendationScore.Overall
		}
		actAvg /= float64(n)
	}

	var hotelAvg float64
	if len(hotels) > 0 {
		n := len(hotels)
		if n > 3 {
			n = 3
		}
		for _, h := range hotels[:n] {
			hotelAvg += h.RecommendationScore.Overall
		}
		hotelAvg /= float64(n)
	}

	weatherTerm := 6.0
	if favorable {
		weatherTerm = 9.0
	}

	return round2(clamp(actAvg*0.5+hotelAvg*0.3+weatherTerm*0.2, 0, 10))
}

func weatherInfo(dest domain.Destination, month time.Month) domain.WeatherInfo {
	favorable := dest.IsBestMonth(month)
	condition := "cloudy"
	description := "Weather is acceptable for travel"
	if favorable {
		condition = "sunny"
		description = "Weather is favorable for travel"
	}
	return domain.WeatherInfo{
		Condition:   condition,
		Temperature: fmt.Sprintf("%d-%d°C", dest.TempMin, dest.TempMax),
		IsFavorable: favorable,
		Description: description,
	}
}

func personalizationNotes(req domain.TripRequest, cost domain.CostBreakdown, weather domain.WeatherInfo) []string {
	notes := make([]string, 0, 4)
	if len(req.Preferences.Interests) > 0 {
		notes = append(notes, "Customized for your interests: "+strings.Join(req.Preferences.Interests, ", "))
	}
	if req.Preferences.BudgetTier != domain.TierMid && req.Preferences.BudgetTier.Level() >= 0 {
		notes = append(notes, fmt.Sprintf("Optimized for %s budget preferences", req.Preferences.BudgetTier))
	}
	if weather.IsFavorable {
		notes = append(notes, "Great weather conditions for your travel dates!")
	} else {
		notes = append(notes, "Weather considerations have been factored into recommendations")
	}
	if req.TotalBudget != nil && cost.Total > *req.TotalBudget {
		notes = append(notes, fmt.Sprintf("Estimated total %.0f %s exceeds your stated budget of %.0f", cost.Total, cost.Currency, *req.TotalBudget))
	}
	return notes
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
