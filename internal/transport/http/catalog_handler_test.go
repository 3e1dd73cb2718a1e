package http

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestCatalogHandler_ListDestinations(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/destinations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Destinations []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"destinations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Destinations) != 8 {
		t.Fatalf("expected 8 destinations, got %d", len(payload.Destinations))
	}
}

func TestCatalogHandler_GetDestination(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/destinations/goa", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var bundle struct {
		Destination struct {
			Key string `json:"key"`
		} `json:"destination"`
		Hotels     []json.RawMessage `json:"hotels"`
		Activities []json.RawMessage `json:"activities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if bundle.Destination.Key != "goa" {
		t.Fatalf("expected goa, got %q", bundle.Destination.Key)
	}
	if len(bundle.Hotels) == 0 || len(bundle.Activities) == 0 {
		t.Fatalf("bundle missing hotels or activities")
	}

	rec = doJSON(e, http.MethodGet, "/api/v1/destinations/atlantis", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown key: expected 404, got %d", rec.Code)
	}
}

func TestCatalogHandler_ScoredHotels(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet,
		"/api/v1/destinations/goa/hotels?interests=relaxation&budget_type=luxury&accommodation_type=luxury&activity_intensity=low", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Hotels []struct {
			Name  string `json:"name"`
			Score struct {
				Overall float64 `json:"overall"`
			} `json:"recommendation_score"`
		} `json:"hotels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Hotels) != 3 {
		t.Fatalf("expected 3 hotels, got %d", len(payload.Hotels))
	}
	for i := 1; i < len(payload.Hotels); i++ {
		if payload.Hotels[i].Score.Overall > payload.Hotels[i-1].Score.Overall {
			t.Fatalf("hotels not sorted at index %d", i)
		}
	}
}

func TestCatalogHandler_TemplatesAndAnalytics(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/trip/templates", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("templates: expected 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/v1/user/preferences/templates", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("profiles: expected 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/v1/analytics/popular-destinations?limit=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics: expected 200, got %d", rec.Code)
	}
	var analytics struct {
		PopularDestinations []json.RawMessage `json:"popular_destinations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &analytics); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(analytics.PopularDestinations) != 3 {
		t.Fatalf("expected 3 popular destinations, got %d", len(analytics.PopularDestinations))
	}

	rec = doJSON(e, http.MethodGet, "/api/v1/analytics/popular-destinations?limit=-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative limit: expected 400, got %d", rec.Code)
	}
}

func TestHealthAndLanding(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("landing: expected 200, got %d", rec.Code)
	}
}
