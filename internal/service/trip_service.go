package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/engine"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
)

var (
	ErrInvalidTripRequest  = errors.New("invalid trip request")
	ErrDestinationNotFound = errors.New("destination not found")
)

const maxSuggestions = 5

// TripService validates planning requests, resolves the catalog bundle and
// delegates the actual computation to the recommendation engine.
type TripService struct {
	catalog ports.CatalogRepository
	engine  *engine.Engine
}

func NewTripService(catalog ports.CatalogRepository, eng *engine.Engine) *TripService {
	return &TripService{catalog: catalog, engine: eng}
}

// PlanTrip produces a full recommendation for the request. Catalog misses map
// to ErrDestinationNotFound so the transport layer can answer 404 instead of
// treating them as server faults.
func (s *TripService) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripRecommendation, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(req.Destination))
	bundle, err := s.catalog.DestinationBundle(ctx, key)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDestinationNotFound, key)
		}
		return nil, err
	}

	return s.engine.Recommend(req, *bundle), nil
}

// OptimizeTrip replans an existing trip with updated preferences. Planning is
// deterministic and stateless, so optimization is a fresh plan over the same
// validated inputs.
func (s *TripService) OptimizeTrip(ctx context.Context, req domain.TripRequest) (*domain.TripRecommendation, error) {
	return s.PlanTrip(ctx, req)
}

// SuggestDestinations ranks the whole catalog for the given interests and
// budget tier and returns the strongest matches.
func (s *TripService) SuggestDestinations(ctx context.Context, interests []string, tier domain.Tier) ([]domain.DestinationSuggestion, error) {
	dests, err := s.catalog.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := s.engine.SuggestDestinations(dests, normalizeInterests(interests), tier)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

func validateTripRequest(req domain.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidTripRequest)
	}
	if req.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidTripRequest)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidTripRequest)
	}
	if !req.EndDate.After(req.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidTripRequest)
	}
	if req.NumDays() < 1 {
		return fmt.Errorf("%w: trip must span at least one full day", ErrInvalidTripRequest)
	}
	if req.TotalBudget != nil && *req.TotalBudget < 0 {
		return fmt.Errorf("%w: total budget cannot be negative", ErrInvalidTripRequest)
	}
	return nil
}

func normalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		trimmed := strings.ToLower(strings.TrimSpace(interest))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
