package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/catalogdata"
)

const schema = `
CREATE TABLE IF NOT EXISTS travel_destination (
	id                  UUID PRIMARY KEY,
	key                 TEXT NOT NULL UNIQUE,
	name                TEXT NOT NULL,
	country             TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	latitude            DOUBLE PRECISION NOT NULL DEFAULT 0,
	longitude           DOUBLE PRECISION NOT NULL DEFAULT 0,
	best_months         INTEGER[] NOT NULL DEFAULT '{}',
	temp_min            INTEGER NOT NULL DEFAULT 0,
	temp_max            INTEGER NOT NULL DEFAULT 0,
	currency            TEXT NOT NULL DEFAULT '',
	daily_budget_budget DOUBLE PRECISION NOT NULL DEFAULT 0,
	daily_budget_mid    DOUBLE PRECISION NOT NULL DEFAULT 0,
	daily_budget_luxury DOUBLE PRECISION NOT NULL DEFAULT 0,
	popular_areas       TEXT[] NOT NULL DEFAULT '{}',
	categories          TEXT[] NOT NULL DEFAULT '{}',
	position            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS hotel (
	id             UUID PRIMARY KEY,
	destination_id UUID NOT NULL REFERENCES travel_destination(id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	category       TEXT NOT NULL,
	rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
	location       TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	price_budget   DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_mid      DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_luxury   DOUBLE PRECISION NOT NULL DEFAULT 0,
	amenities      TEXT[] NOT NULL DEFAULT '{}',
	position       INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_hotel_destination ON hotel(destination_id);

CREATE TABLE IF NOT EXISTS activity (
	id             UUID PRIMARY KEY,
	destination_id UUID NOT NULL REFERENCES travel_destination(id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	type           TEXT NOT NULL DEFAULT '',
	duration_hours INTEGER NOT NULL DEFAULT 0,
	rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
	description    TEXT NOT NULL DEFAULT '',
	best_time      TEXT NOT NULL DEFAULT 'morning',
	location       TEXT NOT NULL DEFAULT '',
	cost_budget    DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost_mid       DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost_luxury    DOUBLE PRECISION NOT NULL DEFAULT 0,
	categories     TEXT[] NOT NULL DEFAULT '{}',
	position       INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_activity_destination ON activity(destination_id);
`

// Migrate creates the catalog tables if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply catalog schema: %w", err)
	}
	return nil
}

// Seed replaces the catalog tables with the given dataset in one transaction.
// The derived IDs match the static source, so switching between sources keeps
// references stable.
func Seed(ctx context.Context, db *sqlx.DB, catalog *catalogdata.Catalog) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"activity", "hotel", "travel_destination"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	const destInsert = `
		INSERT INTO travel_destination (
			id, key, name, country, description, latitude, longitude,
			best_months, temp_min, temp_max, currency,
			daily_budget_budget, daily_budget_mid, daily_budget_luxury,
			popular_areas, categories, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	const hotelInsert = `
		INSERT INTO hotel (
			id, destination_id, name, category, rating, location, description,
			price_budget, price_mid, price_luxury, amenities, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	const activityInsert = `
		INSERT INTO activity (
			id, destination_id, name, type, duration_hours, rating, description,
			best_time, location, cost_budget, cost_mid, cost_luxury, categories, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	for pos, bundle := range catalog.Bundles() {
		d := bundle.Destination
		months := make(pq.Int64Array, len(d.BestMonths))
		for i, m := range d.BestMonths {
			months[i] = int64(m)
		}
		_, err := tx.ExecContext(ctx, destInsert,
			d.ID, d.Key, d.Name, d.Country, d.Description, d.Latitude, d.Longitude,
			months, d.TempMin, d.TempMax, d.Currency,
			d.DailyBudget.Budget, d.DailyBudget.Mid, d.DailyBudget.Luxury,
			pq.StringArray(d.PopularAreas), pq.StringArray(d.Categories), pos,
		)
		if err != nil {
			return fmt.Errorf("insert destination %s: %w", d.Key, err)
		}

		for i, h := range bundle.Hotels {
			_, err := tx.ExecContext(ctx, hotelInsert,
				h.ID, h.DestinationID, h.Name, string(h.Category), h.Rating, h.Location, h.Description,
				h.PricePerNight.Budget, h.PricePerNight.Mid, h.PricePerNight.Luxury,
				pq.StringArray(h.Amenities), i,
			)
			if err != nil {
				return fmt.Errorf("insert hotel %s: %w", h.Name, err)
			}
		}

		for i, a := range bundle.Activities {
			_, err := tx.ExecContext(ctx, activityInsert,
				a.ID, a.DestinationID, a.Name, a.Type, a.DurationHours, a.Rating, a.Description,
				string(a.BestTime), a.Location,
				a.Cost.Budget, a.Cost.Mid, a.Cost.Luxury,
				pq.StringArray(a.Categories), i,
			)
			if err != nil {
				return fmt.Errorf("insert activity %s: %w", a.Name, err)
			}
		}
	}

	return tx.Commit()
}
