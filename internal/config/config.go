package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	AllowOrigins       []string
	CatalogFile        string
	BookingTokenSecret string
	BookingTokenTTL    time.Duration
}

// Load reads the environment, optionally seeded from a .env file. The service
// runs without a database: DATABASE_URL is optional and its absence means the
// embedded catalog serves everything.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	ttl := 24 * time.Hour
	if raw := getenv("BOOKING_TOKEN_TTL", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			log.Printf("Warning: invalid BOOKING_TOKEN_TTL %q, using %s", raw, ttl)
		} else {
			ttl = parsed
		}
	}

	return Config{
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        getenv("DATABASE_URL", ""),
		AllowOrigins:       splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		CatalogFile:        getenv("CATALOG_FILE", ""),
		BookingTokenSecret: getenv("BOOKING_TOKEN_SECRET", "trip-planner-dev-secret"),
		BookingTokenTTL:    ttl,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
