package catalog

import (
	"cmp"
	"fmt"
	"kerala-tours/model"
	"math"
	"slices"
	"strconv"
	"strings"
)

type SortOption int

const (
	SortFeatured SortOption = iota
	SortPriceLow
	SortPriceHigh
	SortRating
	SortDuration
	SortPopular
)

var sortOptionKeys = [...]string{
	SortFeatured:  "featured",
	SortPriceLow:  "price-low",
	SortPriceHigh: "price-high",
	SortRating:    "rating",
	SortDuration:  "duration",
	SortPopular:   "popular",
}

// comparators has an entry for every option. SortFeatured is nil: catalog order is
// the featured order.
var comparators = [...]func(a, b model.TourPackage) int{
	SortFeatured: nil,
	SortPriceLow: func(a, b model.TourPackage) int {
		return cmp.Compare(a.Price, b.Price)
	},
	SortPriceHigh: func(a, b model.TourPackage) int {
		return cmp.Compare(b.Price, a.Price)
	},
	SortRating: func(a, b model.TourPackage) int {
		return cmp.Compare(b.Rating, a.Rating)
	},
	SortDuration: func(a, b model.TourPackage) int {
		return cmp.Compare(DurationDays(a.Duration), DurationDays(b.Duration))
	},
	SortPopular: func(a, b model.TourPackage) int {
		return cmp.Compare(b.ReviewCount, a.ReviewCount)
	},
}

// ParseSortOption maps a query string key to its option. An empty key is the default
// featured order; anything unknown is rejected.
func ParseSortOption(key string) (SortOption, error) {
	if key == "" {
		return SortFeatured, nil
	}

	for opt, k := range sortOptionKeys {
		if k == key {
			return SortOption(opt), nil
		}
	}

	return SortFeatured, fmt.Errorf("unknown sort option %q", key)
}

func (o SortOption) String() string {
	if o < 0 || int(o) >= len(sortOptionKeys) {
		return fmt.Sprintf("SortOption(%d)", int(o))
	}

	return sortOptionKeys[o]
}

// Sort returns a stably sorted copy of packages.
func Sort(packages []model.TourPackage, opt SortOption) []model.TourPackage {
	sorted := slices.Clone(packages)
	if opt < 0 || int(opt) >= len(comparators) || comparators[opt] == nil {
		return sorted
	}

	slices.SortStableFunc(sorted, comparators[opt])
	return sorted
}

// DurationDays reads the leading integer of a free text duration like "10 Days 9 Nights".
// Unparseable durations return math.MaxInt so they sort after every real value.
func DurationDays(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return math.MaxInt
	}

	days, err := strconv.Atoi(fields[0])
	if err != nil || days < 0 {
		return math.MaxInt
	}

	return days
}
