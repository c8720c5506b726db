package catalog

import (
	"kerala-tours/model"
	"slices"
	"strings"
)

// Query is the full set of listing criteria. The zero value matches everything,
// keeps catalog order and selects the first page.
type Query struct {
	Category     string
	Search       string
	MinPrice     int
	MaxPrice     int // <= 0 means no upper bound
	Destinations []string
	Difficulties []model.Difficulty
	SortBy       SortOption
	Page         int
}

// Filter applies category, search, price, destination and difficulty criteria in
// that order. Surviving packages keep their input order.
func Filter(packages []model.TourPackage, q Query) []model.TourPackage {
	minPrice, maxPrice := q.priceBounds()
	destinations := normalizeSelection(q.Destinations)

	result := make([]model.TourPackage, 0, len(packages))
	for _, p := range packages {
		if !matchCategory(p, q.Category) ||
			!matchSearch(p, q.Search) ||
			!matchPrice(p, minPrice, maxPrice) ||
			!matchDestinations(p, destinations) ||
			!matchDifficulty(p, q.Difficulties) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// Search runs the whole listing pipeline: filter, sort, paginate.
func Search(packages []model.TourPackage, q Query) Page {
	return Paginate(Sort(Filter(packages, q), q.SortBy), q.Page, PageSize)
}

func (q Query) priceBounds() (int, int) {
	minPrice, maxPrice := max(q.MinPrice, 0), q.MaxPrice
	if maxPrice > 0 && minPrice > maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}

	return minPrice, maxPrice
}

func matchCategory(p model.TourPackage, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}

	return foldContains(p.Category, category)
}

// matchSearch is case-sensitive, the listing page has always behaved that way.
func matchSearch(p model.TourPackage, search string) bool {
	if search == "" {
		return true
	}

	if strings.Contains(p.Title, search) || strings.Contains(p.Description, search) {
		return true
	}

	return slices.ContainsFunc(p.Destinations, func(d string) bool {
		return strings.Contains(d, search)
	})
}

func matchPrice(p model.TourPackage, minPrice, maxPrice int) bool {
	if p.Price < minPrice {
		return false
	}

	return maxPrice <= 0 || p.Price <= maxPrice
}

func matchDestinations(p model.TourPackage, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	for _, d := range p.Destinations {
		normalized := normalizeDestination(d)
		for _, s := range selected {
			if strings.Contains(normalized, s) {
				return true
			}
		}
	}

	return false
}

func matchDifficulty(p model.TourPackage, selected []model.Difficulty) bool {
	return len(selected) == 0 || slices.Contains(selected, p.Difficulty)
}

func normalizeSelection(selected []string) []string {
	normalized := make([]string, 0, len(selected))
	for _, s := range selected {
		if n := normalizeDestination(s); n != "" {
			normalized = append(normalized, n)
		}
	}

	return normalized
}
