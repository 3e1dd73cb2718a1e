// Package catalogdata ships the built-in travel catalog. The YAML dataset is
// embedded into the binary so the service can always answer from the static
// fallback source, and the same dataset seeds the Postgres catalog.
package catalogdata

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/google/uuid"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
)

//go:embed catalog.yaml
var embedded []byte

type DestinationSeed struct {
	Key          string             `json:"key"`
	Name         string             `json:"name"`
	Country      string             `json:"country"`
	Description  string             `json:"description"`
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	BestMonths   []int              `json:"best_months"`
	TempMin      int                `json:"temp_min"`
	TempMax      int                `json:"temp_max"`
	Currency     string             `json:"currency"`
	DailyBudget  domain.PriceByTier `json:"daily_budget"`
	PopularAreas []string           `json:"popular_areas"`
	Categories   []string           `json:"categories"`
	Hotels       []domain.Hotel     `json:"hotels"`
	Activities   []domain.Activity  `json:"activities"`
}

type Catalog struct {
	Destinations       []DestinationSeed          `json:"destinations"`
	TripTemplates      []domain.TripTemplate      `json:"trip_templates"`
	PreferenceProfiles []domain.PreferenceProfile `json:"preference_profiles"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Destinations) == 0 {
		return nil, fmt.Errorf("parse catalog: no destinations")
	}
	return &c, nil
}

// Load reads a catalog from disk, for deployments that override the built-in
// dataset.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog. The embedded document is validated by
// tests, so a parse failure here is a build defect.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return c
}

// Bundles materializes the seeds into catalog bundles. IDs are derived from
// the destination key and item name, so both the static source and a seeded
// database agree on identity.
func (c *Catalog) Bundles() []domain.DestinationBundle {
	bundles := make([]domain.DestinationBundle, 0, len(c.Destinations))
	for _, seed := range c.Destinations {
		destID := deriveID("destination", seed.Key)
		dest := domain.Destination{
			ID:           destID,
			Key:          seed.Key,
			Name:         seed.Name,
			Country:      seed.Country,
			Description:  seed.Description,
			Latitude:     seed.Latitude,
			Longitude:    seed.Longitude,
			BestMonths:   seed.BestMonths,
			TempMin:      seed.TempMin,
			TempMax:      seed.TempMax,
			Currency:     seed.Currency,
			DailyBudget:  seed.DailyBudget,
			PopularAreas: seed.PopularAreas,
			Categories:   seed.Categories,
		}

		hotels := make([]domain.Hotel, len(seed.Hotels))
		for i, h := range seed.Hotels {
			h.ID = deriveID("hotel", seed.Key+"/"+h.Name)
			h.DestinationID = destID
			hotels[i] = h
		}

		activities := make([]domain.Activity, len(seed.Activities))
		for i, a := range seed.Activities {
			a.ID = deriveID("activity", seed.Key+"/"+a.Name)
			a.DestinationID = destID
			activities[i] = a
		}

		bundles = append(bundles, domain.DestinationBundle{
			Destination: dest,
			Hotels:      hotels,
			Activities:  activities,
		})
	}
	return bundles
}

func deriveID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("tripplanner:"+kind+":"+name))
}
