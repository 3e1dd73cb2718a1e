// Command seed creates the catalog schema and loads the dataset into
// Postgres, so the database can serve as the primary catalog source.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/catalogdata"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/config"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/postgres"
)

func main() {
	catalogFile := flag.String("catalog", "", "path to a catalog YAML file (defaults to the embedded dataset)")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required to seed the catalog")
	}

	data := catalogdata.Default()
	if *catalogFile != "" {
		loaded, err := catalogdata.Load(*catalogFile)
		if err != nil {
			log.Fatalf("load catalog file: %v", err)
		}
		data = loaded
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := postgres.Seed(ctx, db, data); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seeded %d destinations", len(data.Destinations))
}
