package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/catalogdata"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/engine"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
)

// CatalogService answers the browse surface: destination listings, per-key
// detail, scored hotel and activity views and the curated templates shipped
// with the dataset.
type CatalogService struct {
	catalog   ports.CatalogRepository
	engine    *engine.Engine
	templates []domain.TripTemplate
	profiles  []domain.PreferenceProfile
	now       func() time.Time
}

func NewCatalogService(catalog ports.CatalogRepository, eng *engine.Engine, data *catalogdata.Catalog) *CatalogService {
	return &CatalogService{
		catalog:   catalog,
		engine:    eng,
		templates: data.TripTemplates,
		profiles:  data.PreferenceProfiles,
		now:       time.Now,
	}
}

func (s *CatalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.catalog.ListDestinations(ctx)
}

func (s *CatalogService) GetDestination(ctx context.Context, key string) (*domain.DestinationBundle, error) {
	bundle, err := s.catalog.DestinationBundle(ctx, strings.ToLower(strings.TrimSpace(key)))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDestinationNotFound, key)
		}
		return nil, err
	}
	return bundle, nil
}

// ScoredHotels returns the destination's hotels ranked for the given
// preferences, using the current month for the weather factor.
func (s *CatalogService) ScoredHotels(ctx context.Context, key string, prefs domain.TripPreferences) ([]domain.ScoredHotel, error) {
	bundle, err := s.GetDestination(ctx, key)
	if err != nil {
		return nil, err
	}

	month := s.now().Month()
	hotels := make([]domain.ScoredHotel, 0, len(bundle.Hotels))
	for _, h := range bundle.Hotels {
		hotels = append(hotels, domain.ScoredHotel{
			Hotel:               h,
			RecommendationScore: s.engine.ScoreHotel(h, prefs, bundle.Destination, month),
		})
	}
	sort.SliceStable(hotels, func(i, j int) bool {
		if hotels[i].RecommendationScore.Overall != hotels[j].RecommendationScore.Overall {
			return hotels[i].RecommendationScore.Overall > hotels[j].RecommendationScore.Overall
		}
		return hotels[i].Rating > hotels[j].Rating
	})
	return hotels, nil
}

// ScoredActivities returns the destination's activities ranked for the given
// preferences.
func (s *CatalogService) ScoredActivities(ctx context.Context, key string, prefs domain.TripPreferences) ([]domain.ScoredActivity, error) {
	bundle, err := s.GetDestination(ctx, key)
	if err != nil {
		return nil, err
	}

	month := s.now().Month()
	activities := make([]domain.ScoredActivity, 0, len(bundle.Activities))
	for _, a := range bundle.Activities {
		activities = append(activities, domain.ScoredActivity{
			Activity:            a,
			RecommendationScore: s.engine.ScoreActivity(a, prefs, bundle.Destination, month),
		})
	}
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].RecommendationScore.Overall != activities[j].RecommendationScore.Overall {
			return activities[i].RecommendationScore.Overall > activities[j].RecommendationScore.Overall
		}
		return activities[i].Rating > activities[j].Rating
	})
	return activities, nil
}

func (s *CatalogService) TripTemplates() []domain.TripTemplate {
	return s.templates
}

func (s *CatalogService) PreferenceProfiles() []domain.PreferenceProfile {
	return s.profiles
}
