package engine

import (
	"math"
	"testing"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

func TestEstimateCost_Breakdown(t *testing.T) {
	e := New()
	dest := testDestination() // mid daily budget 4320
	prefs := testPrefs()

	itinerary := []domain.ItineraryDay{
		{Places: []domain.VisitPlace{{Cost: 110}, {Cost: 540}}},
		{Places: []domain.VisitPlace{{Cost: 55}}},
	}

	cost := e.EstimateCost(dest, prefs, 2, 5, itinerary)

	// Two travelers share one room for five nights at 40% of the daily budget.
	wantAccommodation := 4320 * 0.4 * 5 * 1
	if cost.Accommodation != wantAccommodation {
		t.Fatalf("accommodation = %v, want %v", cost.Accommodation, wantAccommodation)
	}

	wantActivities := (110.0 + 540 + 55) * 2
	if cost.Activities != wantActivities {
		t.Fatalf("activities = %v, want %v", cost.Activities, wantActivities)
	}

	wantFood := 4320 * 0.2 * 2 * 5
	if cost.Food != wantFood {
		t.Fatalf("food = %v, want %v", cost.Food, wantFood)
	}
	wantTransport := 4320 * 0.1 * 2 * 5
	if cost.Transport != wantTransport {
		t.Fatalf("transport = %v, want %v", cost.Transport, wantTransport)
	}

	wantTotal := wantAccommodation + wantActivities + wantFood + wantTransport
	if cost.Total != wantTotal {
		t.Fatalf("total = %v, want %v", cost.Total, wantTotal)
	}
	if math.Abs(cost.PerPerson-wantTotal/2) > 1e-9 {
		t.Fatalf("per person = %v, want %v", cost.PerPerson, wantTotal/2)
	}
	if cost.Currency != "INR" {
		t.Fatalf("currency = %q, want INR", cost.Currency)
	}
}

func TestEstimateCost_RoomsRoundUp(t *testing.T) {
	e := New()
	dest := testDestination()
	prefs := testPrefs()

	two := e.EstimateCost(dest, prefs, 2, 1, nil)
	three := e.EstimateCost(dest, prefs, 3, 1, nil)

	// Three travelers need two rooms; accommodation doubles.
	if three.Accommodation != two.Accommodation*2 {
		t.Fatalf("3 travelers accommodation = %v, want %v", three.Accommodation, two.Accommodation*2)
	}
}

func TestEstimateCost_AccommodationTierIndependentOfBudgetTier(t *testing.T) {
	e := New()
	dest := testDestination()

	prefs := testPrefs()
	prefs.BudgetTier = domain.TierBudget
	prefs.AccommodationTier = domain.TierLuxury

	cost := e.EstimateCost(dest, prefs, 1, 1, nil)
	if cost.Accommodation != 8800*0.4 {
		t.Fatalf("accommodation should follow the luxury tier, got %v", cost.Accommodation)
	}
	if cost.Food != 2140*0.2 {
		t.Fatalf("food should follow the budget tier, got %v", cost.Food)
	}
}
