package service

import (
	"context"
	"math"
	"sort"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
)

// AnalyticsService derives catalog-level insight from ratings and seasonal
// data. Everything is computed from the catalog itself, so the figures are
// deterministic and need no usage tracking.
type AnalyticsService struct {
	catalog ports.CatalogRepository
}

func NewAnalyticsService(catalog ports.CatalogRepository) *AnalyticsService {
	return &AnalyticsService{catalog: catalog}
}

func (s *AnalyticsService) PopularDestinations(ctx context.Context, limit int) (*domain.DestinationAnalytics, error) {
	dests, err := s.catalog.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}

	popular := make([]domain.PopularDestination, 0, len(dests))
	categoryCounts := map[string]int{}
	categoryOrder := []string{}
	monthCounts := map[int]int{}

	for _, d := range dests {
		bundle, err := s.catalog.DestinationBundle(ctx, d.Key)
		if err != nil {
			return nil, err
		}

		var hotelAvg float64
		if len(bundle.Hotels) > 0 {
			for _, h := range bundle.Hotels {
				hotelAvg += h.Rating
			}
			hotelAvg /= float64(len(bundle.Hotels))
		}

		var activityAvg float64
		if len(bundle.Activities) > 0 {
			for _, a := range bundle.Activities {
				activityAvg += a.Rating
			}
			activityAvg /= float64(len(bundle.Activities))
		}

		popular = append(popular, domain.PopularDestination{
			Destination:       d.Name,
			Key:               d.Key,
			PopularityScore:   round2((hotelAvg + activityAvg)), // both on a 5 scale, sum is [0, 10]
			AvgHotelRating:    round2(hotelAvg),
			AvgActivityRating: round2(activityAvg),
		})

		for _, cat := range d.Categories {
			if categoryCounts[cat] == 0 {
				categoryOrder = append(categoryOrder, cat)
			}
			categoryCounts[cat]++
		}
		for _, m := range d.BestMonths {
			monthCounts[m]++
		}
	}

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].PopularityScore > popular[j].PopularityScore
	})
	if limit > 0 && len(popular) > limit {
		popular = popular[:limit]
	}

	// Categories shared by more than one destination, most common first;
	// ties keep catalog order.
	trending := make([]string, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		if categoryCounts[cat] > 1 {
			trending = append(trending, cat)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return categoryCounts[trending[i]] > categoryCounts[trending[j]]
	})

	// Peak months are recommended by at least half the catalog.
	threshold := (len(dests) + 1) / 2
	peak := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		if monthCounts[m] >= threshold && threshold > 0 {
			peak = append(peak, m)
		}
	}

	return &domain.DestinationAnalytics{
		PopularDestinations: popular,
		TrendingCategories:  trending,
		PeakSeasonMonths:    peak,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
