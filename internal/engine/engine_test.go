package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

func testBundle() domain.DestinationBundle {
	return domain.DestinationBundle{
		Destination: testDestination(),
		Hotels: []domain.Hotel{
			{
				Name: "The Imperial", Category: domain.TierLuxury, Rating: 4.8,
				Location:      "Connaught Place",
				PricePerNight: domain.PriceByTier{Budget: 8560, Mid: 12960, Luxury: 22000},
				Amenities:     []string{"spa", "heritage", "restaurant"},
			},
			{
				Name: "Tara Palace", Category: domain.TierMid, Rating: 4.2,
				Location:      "Chandni Chowk",
				PricePerNight: domain.PriceByTier{Budget: 3210, Mid: 4860, Luxury: 6600},
				Amenities:     []string{"wifi", "restaurant"},
			},
			{
				Name: "Zostel", Category: domain.TierBudget, Rating: 4.0,
				Location:      "Paharganj",
				PricePerNight: domain.PriceByTier{Budget: 856, Mid: 1296, Luxury: 1980},
				Amenities:     []string{"wifi"},
			},
		},
		Activities: []domain.Activity{
			{Name: "Red Fort", DurationHours: 3, Rating: 4.5, BestTime: domain.SlotMorning,
				Location: "Chandni Chowk", Cost: domain.PriceByTier{Budget: 55, Mid: 110, Luxury: 220},
				Categories: []string{"historical", "cultural"}},
			{Name: "India Gate", DurationHours: 2, Rating: 4.3, BestTime: domain.SlotEvening,
				Location: "Rajpath", Cost: domain.PriceByTier{Mid: 55, Luxury: 165},
				Categories: []string{"historical", "sightseeing"}},
			{Name: "Food Walk", DurationHours: 4, Rating: 4.7, BestTime: domain.SlotEvening,
				Location: "Chandni Chowk", Cost: domain.PriceByTier{Budget: 320, Mid: 540, Luxury: 880},
				Categories: []string{"culinary", "cultural"}},
			{Name: "Lotus Temple", DurationHours: 2, Rating: 4.4, BestTime: domain.SlotMorning,
				Location: "Kalkaji", Cost: domain.PriceByTier{Mid: 55, Luxury: 110},
				Categories: []string{"spiritual", "architecture"}},
			{Name: "Qutub Minar", DurationHours: 2, Rating: 4.4, BestTime: domain.SlotAfternoon,
				Location: "Mehrauli", Cost: domain.PriceByTier{Budget: 40, Mid: 90, Luxury: 180},
				Categories: []string{"historical", "cultural"}},
		},
	}
}

func testRequest() domain.TripRequest {
	return domain.TripRequest{
		Destination: "delhi",
		StartDate:   time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		Travelers:   2,
		Preferences: testPrefs(),
	}
}

func TestRecommend_FullPlan(t *testing.T) {
	e := New()
	rec := e.Recommend(testRequest(), testBundle())

	if got := len(rec.Trip.Itinerary); got != 5 {
		t.Fatalf("expected 5 itinerary days, got %d", got)
	}
	if rec.Trip.Itinerary[0].Date != "2025-02-15" {
		t.Fatalf("first day = %q, want 2025-02-15", rec.Trip.Itinerary[0].Date)
	}
	if rec.Trip.Itinerary[4].Date != "2025-02-19" {
		t.Fatalf("last day = %q, want 2025-02-19 (end date exclusive)", rec.Trip.Itinerary[4].Date)
	}

	if len(rec.RecommendedHotels) != 3 {
		t.Fatalf("expected 3 recommended hotels, got %d", len(rec.RecommendedHotels))
	}
	for i := 1; i < len(rec.RecommendedHotels); i++ {
		if rec.RecommendedHotels[i].RecommendationScore.Overall > rec.RecommendedHotels[i-1].RecommendationScore.Overall {
			t.Fatalf("hotels not sorted by overall score at index %d", i)
		}
	}
	for i := 1; i < len(rec.RecommendedActivities); i++ {
		if rec.RecommendedActivities[i].RecommendationScore.Overall > rec.RecommendedActivities[i-1].RecommendationScore.Overall {
			t.Fatalf("activities not sorted by overall score at index %d", i)
		}
	}

	if len(rec.Trip.Hotels) != 1 {
		t.Fatalf("expected one selected hotel, got %d", len(rec.Trip.Hotels))
	}
	if rec.Trip.Hotels[0].Name != rec.RecommendedHotels[0].Name {
		t.Fatalf("selected hotel %q should be the top recommendation %q",
			rec.Trip.Hotels[0].Name, rec.RecommendedHotels[0].Name)
	}

	if rec.ConfidenceScore <= 0 || rec.ConfidenceScore > 10 {
		t.Fatalf("confidence out of range: %v", rec.ConfidenceScore)
	}
	if !rec.WeatherInfo.IsFavorable {
		t.Fatalf("February should be favorable for the test destination")
	}
	if rec.CostBreakdown.Total != rec.Trip.TotalBudget {
		t.Fatalf("trip budget %v should equal cost total %v", rec.Trip.TotalBudget, rec.CostBreakdown.Total)
	}
	if rec.CostBreakdown.Total <= 0 {
		t.Fatalf("expected positive total cost, got %v", rec.CostBreakdown.Total)
	}
}

func TestRecommend_EmptyCatalogSections(t *testing.T) {
	e := New()
	bundle := domain.DestinationBundle{Destination: testDestination()}

	rec := e.Recommend(testRequest(), bundle)
	if len(rec.RecommendedHotels) != 0 || len(rec.RecommendedActivities) != 0 {
		t.Fatalf("empty catalog should yield empty recommendation lists")
	}
	if len(rec.Trip.Hotels) != 0 {
		t.Fatalf("no hotel should be selected from an empty catalog")
	}
	if len(rec.Trip.Itinerary) != 5 {
		t.Fatalf("itinerary days are still emitted, got %d", len(rec.Trip.Itinerary))
	}
}

func TestRecommend_BudgetOverflowNote(t *testing.T) {
	e := New()
	req := testRequest()
	budget := 100.0
	req.TotalBudget = &budget

	rec := e.Recommend(req, testBundle())
	found := false
	for _, note := range rec.PersonalizationNotes {
		if strings.Contains(note, "exceeds") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an over-budget note, got %v", rec.PersonalizationNotes)
	}
}

func TestConfidence_WeatherTermOnly(t *testing.T) {
	if got := confidence(nil, nil, true); got != round2(9*0.2) {
		t.Fatalf("favorable empty-catalog confidence = %v, want %v", got, round2(9*0.2))
	}
	if got := confidence(nil, nil, false); got != round2(6*0.2) {
		t.Fatalf("unfavorable empty-catalog confidence = %v, want %v", got, round2(6*0.2))
	}
}
