package domain

// TripTemplate is a curated starting point for quick planning.
type TripTemplate struct {
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	Preferences             TripPreferences `json:"preferences"`
	RecommendedDestinations []string        `json:"recommended_destinations"`
	DurationRange           [2]int          `json:"duration_range"`
	Highlights              []string        `json:"highlights"`
}

// PreferenceProfile is a named preset of traveler preferences.
type PreferenceProfile struct {
	ProfileType       string    `json:"profile_type"`
	Interests         []string  `json:"interests"`
	BudgetTier        Tier      `json:"budget_preference"`
	AccommodationTier Tier      `json:"accommodation_type"`
	ActivityIntensity Intensity `json:"activity_intensity"`
	GroupSize         string    `json:"group_size_preference"`
}
