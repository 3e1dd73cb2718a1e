package ports

import (
	"context"
	"errors"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

// ErrNotFound is returned by any catalog source when a destination key does
// not exist in that source.
var ErrNotFound = errors.New("not found in catalog")

// CatalogRepository is a read-only source of destination data. A bundle always
// comes from a single source; implementations never mix partial results.
type CatalogRepository interface {
	DestinationBundle(ctx context.Context, key string) (*domain.DestinationBundle, error)
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
}
