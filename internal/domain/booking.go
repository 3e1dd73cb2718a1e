package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking simulation only. No payment provider is involved; the confirmation
// token is the sole proof a booking was initiated.

type BookingConfirmation struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	Destination   string    `json:"destination"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	Travelers     int       `json:"travelers"`
	Token         string    `json:"confirmation_token"`
	TokenExpires  time.Time `json:"token_expires_at"`
	NextSteps     []string  `json:"next_steps"`
	PaymentMethod []string  `json:"payment_methods"`
}

type BookingStatus struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	Destination string    `json:"destination"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	Message     string    `json:"message"`
}
