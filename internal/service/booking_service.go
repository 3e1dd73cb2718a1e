package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Trip_planner_APP_BackEnd/internal/domain"
	"github.com/njprem/Trip_planner_APP_BackEnd/internal/util"
)

var ErrBookingTokenInvalid = errors.New("booking token invalid")

// BookingService simulates the booking flow. Nothing is persisted and no
// payment provider is called: the signed confirmation token carries the whole
// booking state, and status checks verify it.
type BookingService struct {
	tokens *util.BookingTokenManager
}

func NewBookingService(tokens *util.BookingTokenManager) *BookingService {
	return &BookingService{tokens: tokens}
}

type BookingInput struct {
	Destination string
	TotalAmount float64
	Currency    string
	Travelers   int
}

func (s *BookingService) InitiateBooking(_ context.Context, input BookingInput) (*domain.BookingConfirmation, error) {
	if strings.TrimSpace(input.Destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidTripRequest)
	}
	if input.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidTripRequest)
	}
	if input.Travelers < 1 {
		input.Travelers = 1
	}

	bookingID := uuid.New()
	token, expiresAt, err := s.tokens.Generate(bookingID, input.Destination, input.TotalAmount, input.Currency)
	if err != nil {
		return nil, fmt.Errorf("sign booking token: %w", err)
	}

	return &domain.BookingConfirmation{
		BookingID:    bookingID,
		Reference:    bookingReference(bookingID),
		Status:       "pending_confirmation",
		Destination:  input.Destination,
		TotalAmount:  input.TotalAmount,
		Currency:     input.Currency,
		Travelers:    input.Travelers,
		Token:        token,
		TokenExpires: expiresAt,
		NextSteps: []string{
			"Review the itinerary and total amount",
			"Keep the confirmation token to query booking status",
			"Complete payment through a supported method to confirm",
		},
		PaymentMethod: []string{"credit_card", "upi", "net_banking"},
	}, nil
}

// Status verifies a confirmation token and reports the booking it describes.
// The token must match the queried booking ID.
func (s *BookingService) Status(_ context.Context, bookingID uuid.UUID, token string) (*domain.BookingStatus, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingTokenInvalid, err)
	}
	if claims.BookingID != bookingID {
		return nil, fmt.Errorf("%w: token does not match booking", ErrBookingTokenInvalid)
	}

	return &domain.BookingStatus{
		BookingID:   bookingID,
		Reference:   bookingReference(bookingID),
		Status:      "pending_confirmation",
		Destination: claims.Destination,
		TotalAmount: claims.TotalAmount,
		Currency:    claims.Currency,
		Message:     "Booking is awaiting payment confirmation",
	}, nil
}

func bookingReference(id uuid.UUID) string {
	return "TRP-" + strings.ToUpper(id.String()[:8])
}
