// Package catalog holds the read-only list of tour packages and the pure functions
// that filter, sort and paginate it for the listing pages.
package catalog

import (
	"fmt"
	"kerala-tours/model"
	"slices"
)

const CategoryAll = "All"

// Catalog is immutable after New. Every accessor hands out fresh slices so callers
// can reorder results without touching the source list.
type Catalog struct {
	packages []model.TourPackage
}

func New(packages []model.TourPackage) *Catalog {
	seen := make(map[string]struct{}, len(packages))
	for _, p := range packages {
		if _, ok := seen[p.Id]; ok {
			panic(fmt.Sprintf("catalog: duplicate package id %q", p.Id))
		}
		seen[p.Id] = struct{}{}
	}

	return &Catalog{packages: slices.Clone(packages)}
}

func (c *Catalog) Packages() []model.TourPackage {
	return slices.Clone(c.packages)
}

func (c *Catalog) GetPackageById(id string) (model.TourPackage, bool) {
	for _, p := range c.packages {
		if p.Id == id {
			return p, true
		}
	}

	return model.TourPackage{}, false
}

func (c *Catalog) GetAllCategories() []string {
	categories := []string{CategoryAll}
	seen := make(map[string]struct{})
	for _, p := range c.packages {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories
}

func (c *Catalog) GetFeaturedPackages() []model.TourPackage {
	featured := make([]model.TourPackage, 0)
	for _, p := range c.packages {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	return featured
}

// GetPackagesByCategory uses the same case-insensitive substring rule as Filter.
func (c *Catalog) GetPackagesByCategory(category string) []model.TourPackage {
	return Filter(c.packages, Query{Category: category})
}
