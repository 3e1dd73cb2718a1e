package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/service"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/util"
)

const dateLayout = "2006-01-02"

type TripHandler struct {
	trips *service.TripService
}

type TripPlanRequest struct {
	Destination     string                 `json:"destination"`
	StartDate       string                 `json:"start_date"`
	EndDate         string                 `json:"end_date"`
	Travelers       int                    `json:"travelers"`
	TotalBudget     *float64               `json:"total_budget,omitempty"`
	Preferences     domain.TripPreferences `json:"preferences"`
	SpecialRequests *string                `json:"special_requests,omitempty"`
}

type SuggestRequest struct {
	Interests  []string `json:"interests"`
	BudgetTier string   `json:"budget_type"`
}

func RegisterTrips(e *echo.Echo, trips *service.TripService) {
	handler := &TripHandler{trips: trips}

	group := e.Group("/api/v1/trip")
	group.POST("/plan", handler.planTrip)
	group.POST("/optimize", handler.optimizeTrip)

	e.POST("/api/v1/destinations/suggest", handler.suggestDestinations)
}

// planTrip handles POST /api/v1/trip/plan
func (h *TripHandler) planTrip(c echo.Context) error {
	req, err := h.bindTripRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	rec, err := h.trips.PlanTrip(c.Request().Context(), req)
	if err != nil {
		return tripErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// optimizeTrip handles POST /api/v1/trip/optimize
func (h *TripHandler) optimizeTrip(c echo.Context) error {
	req, err := h.bindTripRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	rec, err := h.trips.OptimizeTrip(c.Request().Context(), req)
	if err != nil {
		return tripErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// suggestDestinations handles POST /api/v1/destinations/suggest
func (h *TripHandler) suggestDestinations(c echo.Context) error {
	var body SuggestRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request payload"))
	}

	tier, _ := domain.ParseTier(body.BudgetTier)
	suggestions, err := h.trips.SuggestDestinations(c.Request().Context(), body.Interests, tier)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to rank destinations"))
	}
	return c.JSON(http.StatusOK, util.Data("suggestions", suggestions))
}

func (h *TripHandler) bindTripRequest(c echo.Context) (domain.TripRequest, error) {
	var body TripPlanRequest
	if err := c.Bind(&body); err != nil {
		return domain.TripRequest{}, errors.New("invalid request payload")
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		return domain.TripRequest{}, errors.New("start_date must be formatted YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		return domain.TripRequest{}, errors.New("end_date must be formatted YYYY-MM-DD")
	}

	return domain.TripRequest{
		Destination:     body.Destination,
		StartDate:       start,
		EndDate:         end,
		Travelers:       body.Travelers,
		TotalBudget:     body.TotalBudget,
		Preferences:     body.Preferences,
		SpecialRequests: body.SpecialRequests,
	}, nil
}

func tripErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidTripRequest):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrDestinationNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	default:
		c.Logger().Errorf("plan trip: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to plan trip"))
	}
}
