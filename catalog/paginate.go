package catalog

import "kerala-tours/model"

const PageSize = 12

type Page = model.PageResponse[model.TourPackage]

// Paginate slices one page out of packages. Pages are 1-based; anything below 1 is
// treated as the first page and a page past the end is empty.
func Paginate(packages []model.TourPackage, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = PageSize
	}
	page = max(page, 1)

	total := len(packages)
	result := Page{
		Items:      []model.TourPackage{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return result
	}

	end := min(start+pageSize, total)
	result.Items = append(result.Items, packages[start:end]...)

	return result
}
