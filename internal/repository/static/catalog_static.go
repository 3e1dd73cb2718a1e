// Package static serves the catalog from the embedded dataset. It backs the
// fallback chain when the primary database source is down or unconfigured.
package static

import (
	"context"
	"strings"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/catalogdata"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
)

type CatalogRepository struct {
	byKey map[string]domain.DestinationBundle
	order []string
}

func NewCatalogRepo(catalog *catalogdata.Catalog) *CatalogRepository {
	bundles := catalog.Bundles()
	repo := &CatalogRepository{
		byKey: make(map[string]domain.DestinationBundle, len(bundles)),
		order: make([]string, 0, len(bundles)),
	}
	for _, b := range bundles {
		key := strings.ToLower(b.Destination.Key)
		repo.byKey[key] = b
		repo.order = append(repo.order, key)
	}
	return repo
}

func (r *CatalogRepository) DestinationBundle(_ context.Context, key string) (*domain.DestinationBundle, error) {
	bundle, ok := r.byKey[strings.ToLower(key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &bundle, nil
}

func (r *CatalogRepository) ListDestinations(_ context.Context) ([]domain.Destination, error) {
	dests := make([]domain.Destination, 0, len(r.order))
	for _, key := range r.order {
		dests = append(dests, r.byKey[key].Destination)
	}
	return dests, nil
}
