package domain

import "time"

// Intensity is the user's declared appetite for packed days.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Level returns the ordinal intensity level; unrecognized values count as medium.
func (i Intensity) Level() int {
	switch i {
	case IntensityLow:
		return 0
	case IntensityHigh:
		return 2
	default:
		return 1
	}
}

type TripPreferences struct {
	Interests           []string  `json:"interests"`
	BudgetTier          Tier      `json:"budget_type"`
	TravelStyle         string    `json:"travel_style,omitempty"`
	AccommodationTier   Tier      `json:"accommodation_type"`
	ActivityIntensity   Intensity `json:"activity_intensity"`
	DietaryRestrictions []string  `json:"dietary_restrictions,omitempty"`
	AccessibilityNeeds  *string   `json:"accessibility_needs,omitempty"`
	GroupSize           string    `json:"group_size,omitempty"`
}

// TripRequest is the request-scoped input to trip planning. Dates are civil
// dates; EndDate is exclusive (the last itinerary day is EndDate minus one).
type TripRequest struct {
	Destination     string          `json:"destination"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Travelers       int             `json:"travelers"`
	TotalBudget     *float64        `json:"total_budget,omitempty"`
	Preferences     TripPreferences `json:"preferences"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
}

// NumDays returns the trip length in itinerary days.
func (r TripRequest) NumDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// RecommendationScore is the weighted-factor breakdown attached to every
// ranked hotel and activity. Overall is always within [0, 10].
type RecommendationScore struct {
	Overall        float64 `json:"overall"`
	InterestMatch  float64 `json:"interest_match"`
	BudgetFit      float64 `json:"budget_fit"`
	WeatherFactor  float64 `json:"weather_factor"`
	Popularity     float64 `json:"popularity"`
	IntensityMatch float64 `json:"intensity_match"`
}

type ScoredHotel struct {
	Hotel
	RecommendationScore RecommendationScore `json:"recommendation_score"`
}

type ScoredActivity struct {
	Activity
	RecommendationScore RecommendationScore `json:"recommendation_score"`
}

// VisitPlace is one scheduled stop within an itinerary day.
type VisitPlace struct {
	Name        string   `json:"name"`
	Activity    string   `json:"activity"`
	TimeSlot    TimeSlot `json:"time_slot"`
	Times       string   `json:"times"`
	Description string   `json:"description,omitempty"`
	Cost        float64  `json:"cost_per_visitplace"`
}

// ItineraryDay is one calendar day of the trip with its ordered stops.
type ItineraryDay struct {
	Date    string       `json:"date"`
	Persons int          `json:"number_of_persons"`
	Places  []VisitPlace `json:"places"`
}

// SelectedHotel is the accommodation picked for the whole stay.
type SelectedHotel struct {
	Name         string  `json:"name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	CostPerNight float64 `json:"cost_per_night"`
	Address      string  `json:"address,omitempty"`
}

// Trip echoes the request back together with the assembled plan.
type Trip struct {
	Destination string          `json:"destination"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Travelers   int             `json:"travelers"`
	Itinerary   []ItineraryDay  `json:"itinerary"`
	Hotels      []SelectedHotel `json:"hotels,omitempty"`
	TotalBudget float64         `json:"total_budget"`
}

// WeatherInfo is the static best-months heuristic, not live data.
type WeatherInfo struct {
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	IsFavorable bool   `json:"is_favorable"`
	Description string `json:"description"`
}

type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Total         float64 `json:"total"`
	PerPerson     float64 `json:"per_person"`
	Currency      string  `json:"currency,omitempty"`
}

type TripRecommendation struct {
	Trip                  Trip             `json:"trip"`
	WeatherInfo           WeatherInfo      `json:"weather_info"`
	CostBreakdown         CostBreakdown    `json:"cost_breakdown"`
	RecommendedHotels     []ScoredHotel    `json:"recommended_hotels"`
	RecommendedActivities []ScoredActivity `json:"recommended_activities"`
	ConfidenceScore       float64          `json:"confidence_score"`
	PersonalizationNotes  []string         `json:"personalization_notes"`
}

type DestinationSuggestion struct {
	Destination
	MatchScore float64  `json:"match_score"`
	Reasons    []string `json:"reasons"`
}
