package domain

// PopularDestination summarizes how well a destination's catalog entries are
// rated. Popularity is derived from catalog ratings, not booking volume.
type PopularDestination struct {
	Destination       string  `json:"destination"`
	Key               string  `json:"key"`
	PopularityScore   float64 `json:"popularity_score"`
	AvgHotelRating    float64 `json:"avg_hotel_rating"`
	AvgActivityRating float64 `json:"avg_activity_rating"`
}

type DestinationAnalytics struct {
	PopularDestinations []PopularDestination `json:"popular_destinations"`
	TrendingCategories  []string             `json:"trending_categories"`
	PeakSeasonMonths    []int                `json:"peak_season_months"`
}
