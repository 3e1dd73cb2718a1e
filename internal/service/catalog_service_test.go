package service

import (
	"context"
	"errors"
	"testing"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/catalogdata"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/engine"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/static"
)

func newTestCatalogService() *CatalogService {
	data := catalogdata.Default()
	return NewCatalogService(static.NewCatalogRepo(data), engine.New(), data)
}

func TestCatalogService_ListAndGet(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	dests, err := svc.ListDestinations(ctx)
	if err != nil {
		t.Fatalf("ListDestinations returned error: %v", err)
	}
	if len(dests) != 8 {
		t.Fatalf("expected 8 destinations, got %d", len(dests))
	}

	bundle, err := svc.GetDestination(ctx, "goa")
	if err != nil {
		t.Fatalf("GetDestination returned error: %v", err)
	}
	if bundle.Destination.Key != "goa" {
		t.Fatalf("expected goa, got %q", bundle.Destination.Key)
	}

	if _, err := svc.GetDestination(ctx, "atlantis"); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestCatalogService_ScoredHotelsSorted(t *testing.T) {
	svc := newTestCatalogService()
	prefs := domain.TripPreferences{
		Interests:         []string{"relaxation"},
		BudgetTier:        domain.TierLuxury,
		AccommodationTier: domain.TierLuxury,
		ActivityIntensity: domain.IntensityLow,
	}

	hotels, err := svc.ScoredHotels(context.Background(), "goa", prefs)
	if err != nil {
		t.Fatalf("ScoredHotels returned error: %v", err)
	}
	if len(hotels) != 3 {
		t.Fatalf("expected 3 scored hotels, got %d", len(hotels))
	}
	for i := 1; i < len(hotels); i++ {
		if hotels[i].RecommendationScore.Overall > hotels[i-1].RecommendationScore.Overall {
			t.Fatalf("hotels not sorted at index %d", i)
		}
	}
	// Luxury preferences should surface the luxury resort first.
	if hotels[0].Category != domain.TierLuxury {
		t.Fatalf("expected a luxury hotel first, got %q (%s)", hotels[0].Category, hotels[0].Name)
	}
}

func TestCatalogService_ScoredActivitiesSorted(t *testing.T) {
	svc := newTestCatalogService()
	prefs := domain.TripPreferences{
		Interests:         []string{"adventure"},
		BudgetTier:        domain.TierBudget,
		ActivityIntensity: domain.IntensityHigh,
	}

	activities, err := svc.ScoredActivities(context.Background(), "himachal", prefs)
	if err != nil {
		t.Fatalf("ScoredActivities returned error: %v", err)
	}
	if len(activities) == 0 {
		t.Fatalf("expected scored activities")
	}
	if activities[0].RecommendationScore.InterestMatch == 0 {
		t.Fatalf("adventure interests should match himachal activities")
	}
}

func TestCatalogService_TemplatesAndProfiles(t *testing.T) {
	svc := newTestCatalogService()

	if len(svc.TripTemplates()) == 0 {
		t.Fatalf("expected trip templates")
	}
	if len(svc.PreferenceProfiles()) == 0 {
		t.Fatalf("expected preference profiles")
	}
	for _, tpl := range svc.TripTemplates() {
		if tpl.Name == "" || len(tpl.RecommendedDestinations) == 0 {
			t.Fatalf("template missing name or destinations: %+v", tpl)
		}
	}
}
