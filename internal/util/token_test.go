package util

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBookingTokenManager_RoundTrip(t *testing.T) {
	manager := NewBookingTokenManager("test-secret", time.Hour)
	bookingID := uuid.New()

	token, expiresAt, err := manager.Generate(bookingID, "delhi", 54000, "INR")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected a future expiry, got %v", expiresAt)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.BookingID != bookingID {
		t.Fatalf("booking ID mismatch: %v vs %v", claims.BookingID, bookingID)
	}
	if claims.Destination != "delhi" || claims.Currency != "INR" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestBookingTokenManager_RejectsWrongSecret(t *testing.T) {
	manager := NewBookingTokenManager("secret-a", time.Hour)
	other := NewBookingTokenManager("secret-b", time.Hour)

	token, _, err := manager.Generate(uuid.New(), "goa", 12000, "INR")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected parse failure with a different secret")
	}
}

func TestBookingTokenManager_RejectsExpired(t *testing.T) {
	manager := NewBookingTokenManager("test-secret", -time.Minute)

	token, _, err := manager.Generate(uuid.New(), "goa", 12000, "INR")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected parse failure for an expired token")
	}
}
