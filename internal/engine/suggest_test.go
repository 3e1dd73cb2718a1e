package engine

import (
	"strings"
	"testing"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

func TestSuggestDestinations_InterestDrivenRanking(t *testing.T) {
	e := New()
	dests := []domain.Destination{
		{
			Key:         "goa",
			Name:        "Goa",
			Categories:  []string{"beach", "relaxation"},
			DailyBudget: domain.PriceByTier{Budget: 1900, Mid: 3780, Luxury: 7700},
		},
		{
			Key:         "delhi",
			Name:        "Delhi",
			Categories:  []string{"cultural", "historical"},
			DailyBudget: domain.PriceByTier{Budget: 2140, Mid: 4320, Luxury: 8800},
			BestMonths:  []int{10, 11, 12},
		},
	}

	got := e.SuggestDestinations(dests, []string{"cultural", "historical"}, domain.TierMid)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].Key != "delhi" {
		t.Fatalf("expected delhi first for cultural interests, got %q", got[0].Key)
	}
	if got[0].MatchScore <= got[1].MatchScore {
		t.Fatalf("expected strictly higher score for delhi: %v vs %v", got[0].MatchScore, got[1].MatchScore)
	}
	for _, s := range got {
		if s.MatchScore < 0 || s.MatchScore > 10 {
			t.Fatalf("match score out of range for %q: %v", s.Key, s.MatchScore)
		}
	}
}

func TestSuggestDestinations_NoInterestsFallsBackToBudget(t *testing.T) {
	e := New()
	dests := []domain.Destination{
		{Key: "pricey", DailyBudget: domain.PriceByTier{Mid: 8000}},
		{Key: "cheap", DailyBudget: domain.PriceByTier{Mid: 2000}},
	}

	got := e.SuggestDestinations(dests, nil, domain.TierMid)
	if got[0].Key != "cheap" {
		t.Fatalf("expected the affordable destination first, got %q", got[0].Key)
	}
}

func TestSuggestDestinations_Reasons(t *testing.T) {
	e := New()
	dests := []domain.Destination{
		{
			Key:        "delhi",
			Categories: []string{"cultural", "historical"},
			BestMonths: []int{10, 11},
			DailyBudget: domain.PriceByTier{
				Budget: 2140, Mid: 4320, Luxury: 8800,
			},
		},
	}

	got := e.SuggestDestinations(dests, []string{"cultural"}, domain.TierMid)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	joined := strings.Join(got[0].Reasons, "; ")
	if !strings.Contains(joined, "cultural") {
		t.Fatalf("expected an interest reason mentioning cultural, got %q", joined)
	}
	if !strings.Contains(joined, "months") {
		t.Fatalf("expected a best-months reason, got %q", joined)
	}
}

func TestSuggestDestinations_StableForTies(t *testing.T) {
	e := New()
	dests := []domain.Destination{
		{Key: "first", DailyBudget: domain.PriceByTier{Mid: 3000}},
		{Key: "second", DailyBudget: domain.PriceByTier{Mid: 3000}},
	}

	got := e.SuggestDestinations(dests, nil, domain.TierMid)
	if got[0].Key != "first" || got[1].Key != "second" {
		t.Fatalf("tied suggestions should keep catalog order, got %q then %q", got[0].Key, got[1].Key)
	}
}
