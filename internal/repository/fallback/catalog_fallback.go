// Package fallback chains two catalog sources: a primary (typically Postgres)
// and a standby (the embedded static dataset). Every read is answered entirely
// by one source; results are never merged across sources.
package fallback

import (
	"context"
	"errors"
	"log"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
)

type CatalogRepository struct {
	primary ports.CatalogRepository
	standby ports.CatalogRepository
}

// NewCatalogRepo wires the chain. A nil primary means the standby serves
// everything, which is how the service runs without a database.
func NewCatalogRepo(primary, standby ports.CatalogRepository) *CatalogRepository {
	return &CatalogRepository{primary: primary, standby: standby}
}

func (r *CatalogRepository) DestinationBundle(ctx context.Context, key string) (*domain.DestinationBundle, error) {
	if r.primary != nil {
		bundle, err := r.primary.DestinationBundle(ctx, key)
		if err == nil {
			return bundle, nil
		}
		if errors.Is(err, ports.ErrNotFound) {
			// The primary answered authoritatively; fall through only to let
			// the standby confirm the key is truly unknown.
			return r.standby.DestinationBundle(ctx, key)
		}
		log.Printf("catalog primary unavailable, serving %q from static data: %v", key, err)
	}
	return r.standby.DestinationBundle(ctx, key)
}

func (r *CatalogRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if r.primary != nil {
		dests, err := r.primary.ListDestinations(ctx)
		if err == nil {
			return dests, nil
		}
		log.Printf("catalog primary unavailable, listing from static data: %v", err)
	}
	return r.standby.ListDestinations(ctx)
}
