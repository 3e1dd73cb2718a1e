package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
)

// CatalogRepository serves the catalog from Postgres. It is the primary
// source in the fallback chain; rows are kept in dataset order via the
// position column so rankings tie-break the same way as the static source.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type destinationRow struct {
	ID           uuid.UUID      `db:"id"`
	Key          string         `db:"key"`
	Name         string         `db:"name"`
	Country      string         `db:"country"`
	Description  string         `db:"description"`
	Latitude     float64        `db:"latitude"`
	Longitude    float64        `db:"longitude"`
	BestMonths   pq.Int64Array  `db:"best_months"`
	TempMin      int            `db:"temp_min"`
	TempMax      int            `db:"temp_max"`
	Currency     string         `db:"currency"`
	DailyBudget  float64        `db:"daily_budget_budget"`
	DailyMid     float64        `db:"daily_budget_mid"`
	DailyLuxury  float64        `db:"daily_budget_luxury"`
	PopularAreas pq.StringArray `db:"popular_areas"`
	Categories   pq.StringArray `db:"categories"`
	Position     int            `db:"position"`
}

func (r destinationRow) toDomain() domain.Destination {
	months := make([]int, len(r.BestMonths))
	for i, m := range r.BestMonths {
		months[i] = int(m)
	}
	return domain.Destination{
		ID:           r.ID,
		Key:          r.Key,
		Name:         r.Name,
		Country:      r.Country,
		Description:  r.Description,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		BestMonths:   months,
		TempMin:      r.TempMin,
		TempMax:      r.TempMax,
		Currency:     r.Currency,
		DailyBudget:  domain.PriceByTier{Budget: r.DailyBudget, Mid: r.DailyMid, Luxury: r.DailyLuxury},
		PopularAreas: r.PopularAreas,
		Categories:   r.Categories,
	}
}

type hotelRow struct {
	ID            uuid.UUID      `db:"id"`
	DestinationID uuid.UUID      `db:"destination_id"`
	Name          string         `db:"name"`
	Category      string         `db:"category"`
	Rating        float64        `db:"rating"`
	Location      string         `db:"location"`
	Description   string         `db:"description"`
	PriceBudget   float64        `db:"price_budget"`
	PriceMid      float64        `db:"price_mid"`
	PriceLuxury   float64        `db:"price_luxury"`
	Amenities     pq.StringArray `db:"amenities"`
	Position      int            `db:"position"`
}

func (r hotelRow) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:            r.ID,
		DestinationID: r.DestinationID,
		Name:          r.Name,
		Category:      domain.Tier(r.Category),
		Rating:        r.Rating,
		Location:      r.Location,
		Description:   r.Description,
		PricePerNight: domain.PriceByTier{Budget: r.PriceBudget, Mid: r.PriceMid, Luxury: r.PriceLuxury},
		Amenities:     r.Amenities,
	}
}

type activityRow struct {
	ID            uuid.UUID      `db:"id"`
	DestinationID uuid.UUID      `db:"destination_id"`
	Name          string         `db:"name"`
	Type          string         `db:"type"`
	DurationHours int            `db:"duration_hours"`
	Rating        float64        `db:"rating"`
	Description   string         `db:"description"`
	BestTime      string         `db:"best_time"`
	Location      string         `db:"location"`
	CostBudget    float64        `db:"cost_budget"`
	CostMid       float64        `db:"cost_mid"`
	CostLuxury    float64        `db:"cost_luxury"`
	Categories    pq.StringArray `db:"categories"`
	Position      int            `db:"position"`
}

func (r activityRow) toDomain() domain.Activity {
	return domain.Activity{
		ID:            r.ID,
		DestinationID: r.DestinationID,
		Name:          r.Name,
		Type:          r.Type,
		DurationHours: r.DurationHours,
		Rating:        r.Rating,
		Description:   r.Description,
		BestTime:      domain.TimeSlot(r.BestTime),
		Location:      r.Location,
		Cost:          domain.PriceByTier{Budget: r.CostBudget, Mid: r.CostMid, Luxury: r.CostLuxury},
		Categories:    r.Categories,
	}
}

func (r *CatalogRepository) DestinationBundle(ctx context.Context, key string) (*domain.DestinationBundle, error) {
	const destQuery = `
		SELECT id, key, name, country, description, latitude, longitude,
		       best_months, temp_min, temp_max, currency,
		       daily_budget_budget, daily_budget_mid, daily_budget_luxury,
		       popular_areas, categories, position
		FROM travel_destination
		WHERE key = $1
	`

	var dest destinationRow
	if err := r.db.GetContext(ctx, &dest, destQuery, strings.ToLower(key)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}

	const hotelQuery = `
		SELECT id, destination_id, name, category, rating, location, description,
		       price_budget, price_mid, price_luxury, amenities, position
		FROM hotel
		WHERE destination_id = $1
		ORDER BY position
	`
	var hotelRows []hotelRow
	if err := r.db.SelectContext(ctx, &hotelRows, hotelQuery, dest.ID); err != nil {
		return nil, err
	}

	const activityQuery = `
		SELECT id, destination_id, name, type, duration_hours, rating, description,
		       best_time, location, cost_budget, cost_mid, cost_luxury, categories, position
		FROM activity
		WHERE destination_id = $1
		ORDER BY position
	`
	var activityRows []activityRow
	if err := r.db.SelectContext(ctx, &activityRows, activityQuery, dest.ID); err != nil {
		return nil, err
	}

	bundle := domain.DestinationBundle{
		Destination: dest.toDomain(),
		Hotels:      make([]domain.Hotel, len(hotelRows)),
		Activities:  make([]domain.Activity, len(activityRows)),
	}
	for i, row := range hotelRows {
		bundle.Hotels[i] = row.toDomain()
	}
	for i, row := range activityRows {
		bundle.Activities[i] = row.toDomain()
	}
	return &bundle, nil
}

func (r *CatalogRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	const query = `
		SELECT id, key, name, country, description, latitude, longitude,
		       best_months, temp_min, temp_max, currency,
		       daily_budget_budget, daily_budget_mid, daily_budget_luxury,
		       popular_areas, categories, position
		FROM travel_destination
		ORDER BY position
	`

	var rows []destinationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	dests := make([]domain.Destination, len(rows))
	for i, row := range rows {
		dests[i] = row.toDomain()
	}
	return dests, nil
}
