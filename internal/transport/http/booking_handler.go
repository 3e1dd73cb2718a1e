package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/service"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

type BookingInitiateRequest struct {
	Destination string  `json:"destination"`
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
	Travelers   int     `json:"travelers"`
}

func RegisterBookings(e *echo.Echo, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}

	group := e.Group("/api/v1/booking")
	group.POST("/initiate", handler.initiate)
	group.GET("/:id", handler.status)
}

// initiate handles POST /api/v1/booking/initiate
func (h *BookingHandler) initiate(c echo.Context) error {
	var body BookingInitiateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request payload"))
	}

	conf, err := h.bookings.InitiateBooking(c.Request().Context(), service.BookingInput{
		Destination: body.Destination,
		TotalAmount: body.TotalAmount,
		Currency:    body.Currency,
		Travelers:   body.Travelers,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTripRequest) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		c.Logger().Errorf("initiate booking: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to initiate booking"))
	}
	return c.JSON(http.StatusCreated, conf)
}

// status handles GET /api/v1/booking/{id}?token=...
func (h *BookingHandler) status(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking id"))
	}
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, util.Error("confirmation token required"))
	}

	status, err := h.bookings.Status(c.Request().Context(), bookingID, token)
	if err != nil {
		if errors.Is(err, service.ErrBookingTokenInvalid) {
			return c.JSON(http.StatusUnauthorized, util.Error("confirmation token rejected"))
		}
		c.Logger().Errorf("booking status: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to read booking status"))
	}
	return c.JSON(http.StatusOK, status)
}
