package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// BookingClaims binds a confirmation token to one simulated booking.
type BookingClaims struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Destination string    `json:"destination"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	jwt.RegisteredClaims
}

type BookingTokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewBookingTokenManager(secret string, ttl time.Duration) *BookingTokenManager {
	return &BookingTokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *BookingTokenManager) Generate(bookingID uuid.UUID, destination string, totalAmount float64, currency string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)
	claims := BookingClaims{
		BookingID:   bookingID,
		Destination: destination,
		TotalAmount: totalAmount,
		Currency:    currency,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   bookingID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *BookingTokenManager) Parse(tokenString string) (*BookingClaims, error) {
	claims := &BookingClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
