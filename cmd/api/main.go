package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/catalogdata"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/config"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/engine"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/fallback"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/postgres"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/repository/static"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/service"
	transport "github.com/njprem/Trip_planner_APP_BackEnd/internal/transport/http"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/util"
)

func main() {
	cfg := config.Load()

	data := catalogdata.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalogdata.Load(cfg.CatalogFile)
		if err != nil {
			log.Fatalf("load catalog file: %v", err)
		}
		data = loaded
	}

	var primary ports.CatalogRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Printf("database unavailable, continuing on static catalog: %v", err)
		} else {
			defer db.Close()
			primary = postgres.NewCatalogRepo(db)
		}
	}
	catalog := fallback.NewCatalogRepo(primary, static.NewCatalogRepo(data))

	eng := engine.New()
	trips := service.NewTripService(catalog, eng)
	browse := service.NewCatalogService(catalog, eng, data)
	analytics := service.NewAnalyticsService(catalog)
	bookings := service.NewBookingService(
		util.NewBookingTokenManager(cfg.BookingTokenSecret, cfg.BookingTokenTTL))

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterTrips(e, trips)
	transport.RegisterCatalog(e, browse, analytics)
	transport.RegisterBookings(e, bookings)
	transport.RegisterPages(e)
	transport.RegisterSwagger(e)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
