package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/service"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/util"
)

type CatalogHandler struct {
	catalog   *service.CatalogService
	analytics *service.AnalyticsService
}

func RegisterCatalog(e *echo.Echo, catalog *service.CatalogService, analytics *service.AnalyticsService) {
	handler := &CatalogHandler{catalog: catalog, analytics: analytics}

	group := e.Group("/api/v1")
	group.GET("/destinations", handler.listDestinations)
	group.GET("/destinations/:key", handler.getDestination)
	group.GET("/destinations/:key/hotels", handler.listHotels)
	group.GET("/destinations/:key/activities", handler.listActivities)
	group.GET("/trip/templates", handler.listTemplates)
	group.GET("/user/preferences/templates", handler.listProfiles)
	group.GET("/analytics/popular-destinations", handler.popularDestinations)
}

// listDestinations handles GET /api/v1/destinations
func (h *CatalogHandler) listDestinations(c echo.Context) error {
	dests, err := h.catalog.ListDestinations(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list destinations: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list destinations"))
	}
	return c.JSON(http.StatusOK, util.Data("destinations", dests))
}

// getDestination handles GET /api/v1/destinations/{key}
func (h *CatalogHandler) getDestination(c echo.Context) error {
	bundle, err := h.catalog.GetDestination(c.Request().Context(), c.Param("key"))
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, bundle)
}

// listHotels handles GET /api/v1/destinations/{key}/hotels
func (h *CatalogHandler) listHotels(c echo.Context) error {
	hotels, err := h.catalog.ScoredHotels(c.Request().Context(), c.Param("key"), preferencesFromQuery(c))
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("hotels", hotels))
}

// listActivities handles GET /api/v1/destinations/{key}/activities
func (h *CatalogHandler) listActivities(c echo.Context) error {
	activities, err := h.catalog.ScoredActivities(c.Request().Context(), c.Param("key"), preferencesFromQuery(c))
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("activities", activities))
}

// listTemplates handles GET /api/v1/trip/templates
func (h *CatalogHandler) listTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Data("templates", h.catalog.TripTemplates()))
}

// listProfiles handles GET /api/v1/user/preferences/templates
func (h *CatalogHandler) listProfiles(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Data("profiles", h.catalog.PreferenceProfiles()))
}

// popularDestinations handles GET /api/v1/analytics/popular-destinations
func (h *CatalogHandler) popularDestinations(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, util.Error("limit must be a non-negative integer"))
		}
		limit = parsed
	}

	analytics, err := h.analytics.PopularDestinations(c.Request().Context(), limit)
	if err != nil {
		c.Logger().Errorf("popular destinations: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to compute analytics"))
	}
	return c.JSON(http.StatusOK, analytics)
}

// preferencesFromQuery reads optional scoring preferences from query params:
// interests (comma separated), budget_type, accommodation_type and
// activity_intensity.
func preferencesFromQuery(c echo.Context) domain.TripPreferences {
	prefs := domain.TripPreferences{}
	if raw := c.QueryParam("interests"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
				prefs.Interests = append(prefs.Interests, trimmed)
			}
		}
	}
	if tier, ok := domain.ParseTier(c.QueryParam("budget_type")); ok {
		prefs.BudgetTier = tier
	} else {
		prefs.BudgetTier = domain.TierMid
	}
	if tier, ok := domain.ParseTier(c.QueryParam("accommodation_type")); ok {
		prefs.AccommodationTier = tier
	} else {
		prefs.AccommodationTier = prefs.BudgetTier
	}
	prefs.ActivityIntensity = domain.Intensity(c.QueryParam("activity_intensity"))
	if prefs.ActivityIntensity == "" {
		prefs.ActivityIntensity = domain.IntensityMedium
	}
	return prefs
}

func catalogErrorResponse(c echo.Context, err error) error {
	if errors.Is(err, service.ErrDestinationNotFound) {
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	}
	c.Logger().Errorf("catalog: %v", err)
	return c.JSON(http.StatusInternalServerError, util.Error("unable to read catalog"))
}
