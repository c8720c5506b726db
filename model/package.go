package model

type Difficulty string

const (
	DifficultyEasy        Difficulty = "Easy"
	DifficultyModerate    Difficulty = "Moderate"
	DifficultyChallenging Difficulty = "Challenging"
)

// TourPackage is a bookable tour. Slice fields are never nil so consumers can range
// over them without checks. OriginalPrice is 0 when the package has no crossed-out price.
type TourPackage struct {
	Id              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Price           int            `json:"price"`
	OriginalPrice   int            `json:"original_price,omitempty"`
	Duration        string         `json:"duration"`
	Category        string         `json:"category"`
	Destinations    []string       `json:"destinations"`
	Difficulty      Difficulty     `json:"difficulty"`
	Tags            []string       `json:"tags"`
	Rating          float64        `json:"rating"`
	ReviewCount     int            `json:"review_count"`
	Featured        bool           `json:"featured"`
	Highlights      []string       `json:"highlights"`
	Inclusions      []string       `json:"inclusions"`
	Exclusions      []string       `json:"exclusions"`
	BestTimeToVisit []string       `json:"best_time_to_visit"`
	Itinerary       []ItineraryDay `json:"itinerary"`
	PricingTiers    []PricingTier  `json:"pricing_tiers"`
}

type ItineraryDay struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Activities    []string `json:"activities"`
	Meals         []string `json:"meals"`
	Accommodation string   `json:"accommodation,omitempty"`
	TravelTime    string   `json:"travel_time,omitempty"`
	Highlights    []string `json:"highlights"`
}

type PricingTier struct {
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Popular       bool     `json:"popular"`
	Features      []string `json:"features"`
}

type PackageDetailResponse struct {
	TourPackage
	DiscountPercent int   `json:"discount_percent"`
	BookingsCount   int64 `json:"bookings_count"`
}

type ListPackagesRequest struct {
	Category     string   `validate:"max=100"`
	Search       string   `validate:"max=100"`
	MinPrice     int      `validate:"gte=0"`
	MaxPrice     int      `validate:"gte=0"`
	Destinations []string `validate:"max=20,dive,max=100"`
	Difficulties []string `validate:"dive,oneof=Easy Moderate Challenging"`
	SortBy       string   `validate:"omitempty,oneof=featured price-low price-high rating duration popular"`
	Page         int      `validate:"gte=0"`
}

type QuoteRequest struct {
	TierIndex int `validate:"gte=0"`
	GroupSize int `validate:"gte=0,max=50"`
}
