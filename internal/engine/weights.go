package engine

// Factor weights for the overall recommendation score. They sum to 1 so the
// weighted sum stays within [0, 10] before clamping.
const (
	weightInterest   = 0.35
	weightBudget     = 0.25
	weightWeather    = 0.15
	weightPopularity = 0.15
	weightIntensity  = 0.10
)

// Tier-distance scores for budget fit and intensity match.
const (
	exactMatchScore    = 10.0
	adjacentMatchScore = 6.0
	farMatchScore      = 2.0
)

const (
	weatherBestMonthScore = 10.0
	weatherBaselineScore  = 5.0
)

// Share of a destination's daily budget attributed to each spend category,
// and the fraction of the daily budget an assembled day may spend on
// activities.
const (
	accommodationShare      = 0.4
	foodShare               = 0.2
	transportShare          = 0.1
	dayActivityBudgetFactor = 0.6
)

// defaultAffinity maps a declared interest to the category tags it implies
// and how strongly, on a [0, 1] scale. An interest always matches its own
// category tag at full strength even when absent from this table.
var defaultAffinity = map[string]map[string]float64{
	"adventure":  {"adventure": 1.0, "nature": 0.8, "sports": 0.7},
	"cultural":   {"cultural": 1.0, "historical": 0.9, "educational": 0.8},
	"relaxation": {"relaxation": 1.0, "wellness": 0.9, "beach": 0.8},
	"culinary":   {"culinary": 1.0, "food": 1.0, "cultural": 0.6},
	"nature":     {"nature": 1.0, "adventure": 0.7, "photography": 0.8},
	"historical": {"historical": 1.0, "cultural": 0.9, "educational": 0.8},
	"urban":      {"urban": 1.0, "entertainment": 0.8, "shopping": 0.7},
	"spiritual":  {"spiritual": 1.0, "cultural": 0.7, "wellness": 0.6},
}

// amenityCategories translates hotel amenity tags into the category
// vocabulary used by the affinity table, so hotels and activities run through
// the same interest-match computation.
var amenityCategories = map[string]string{
	"spa":                 "wellness",
	"ayurveda":            "wellness",
	"gym":                 "sports",
	"restaurant":          "food",
	"heritage":            "historical",
	"palace":              "historical",
	"beach access":        "beach",
	"beach shuttle":       "beach",
	"trekking":            "adventure",
	"adventure sports":    "adventure",
	"water sports":        "adventure",
	"diving center":       "adventure",
	"cultural activities": "cultural",
	"pool":                "relaxation",
	"backwater":           "nature",
	"mountain view":       "nature",
}
