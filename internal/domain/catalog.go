package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is one of the three pricing levels used uniformly for daily budgets,
// hotel rates, activity costs and user budget preferences.
type Tier string

const (
	TierBudget Tier = "budget"
	TierMid    Tier = "mid"
	TierLuxury Tier = "luxury"
)

// Level returns the ordinal position of the tier (budget < mid < luxury),
// or -1 for an unrecognized tier.
func (t Tier) Level() int {
	switch t {
	case TierBudget:
		return 0
	case TierMid:
		return 1
	case TierLuxury:
		return 2
	default:
		return -1
	}
}

func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	return t, t.Level() >= 0
}

// PriceByTier carries the three price points an item offers.
type PriceByTier struct {
	Budget float64 `json:"budget"`
	Mid    float64 `json:"mid"`
	Luxury float64 `json:"luxury"`
}

// ForTier returns the price for the given tier, defaulting to the mid rate
// when the tier is unrecognized.
func (p PriceByTier) ForTier(t Tier) float64 {
	switch t {
	case TierBudget:
		return p.Budget
	case TierLuxury:
		return p.Luxury
	default:
		return p.Mid
	}
}

// TimeSlot is the part of day an activity is best visited in.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// Order returns the position of the slot within a day; unknown slots sort first.
func (s TimeSlot) Order() int {
	switch s {
	case SlotMorning:
		return 0
	case SlotAfternoon:
		return 1
	case SlotEvening:
		return 2
	default:
		return 0
	}
}

type Destination struct {
	ID           uuid.UUID   `json:"id"`
	Key          string      `json:"key"`
	Name         string      `json:"name"`
	Country      string      `json:"country"`
	Description  string      `json:"description"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	BestMonths   []int       `json:"best_months"`
	TempMin      int         `json:"avg_temp_min"`
	TempMax      int         `json:"avg_temp_max"`
	Currency     string      `json:"currency"`
	DailyBudget  PriceByTier `json:"avg_daily_budget"`
	PopularAreas []string    `json:"popular_areas"`
	Categories   []string    `json:"categories"`
}

// IsBestMonth reports whether the given month falls in the destination's
// recommended travel window.
func (d Destination) IsBestMonth(m time.Month) bool {
	for _, best := range d.BestMonths {
		if best == int(m) {
			return true
		}
	}
	return false
}

type Hotel struct {
	ID            uuid.UUID   `json:"id"`
	DestinationID uuid.UUID   `json:"destination_id"`
	Name          string      `json:"name"`
	Category      Tier        `json:"category"`
	Rating        float64     `json:"rating"`
	Location      string      `json:"location"`
	Description   string      `json:"description"`
	PricePerNight PriceByTier `json:"price_per_night"`
	Amenities     []string    `json:"amenities"`
}

type Activity struct {
	ID            uuid.UUID   `json:"id"`
	DestinationID uuid.UUID   `json:"destination_id"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	DurationHours int         `json:"duration"`
	Rating        float64     `json:"rating"`
	Description   string      `json:"description"`
	BestTime      TimeSlot    `json:"best_time"`
	Location      string      `json:"location"`
	Cost          PriceByTier `json:"cost"`
	Categories    []string    `json:"categories"`
}

// DestinationBundle is everything the recommendation engine needs about one
// destination, fetched from a single catalog source.
type DestinationBundle struct {
	Destination Destination `json:"destination"`
	Hotels      []Hotel     `json:"hotels"`
	Activities  []Activity  `json:"activities"`
}
