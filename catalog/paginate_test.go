package catalog

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"kerala-tours/model"
	"testing"
)

func makePackages(n int) []model.TourPackage {
	packages := make([]model.TourPackage, 0, n)
	for i := 1; i <= n; i++ {
		packages = append(packages, model.TourPackage{Id: fmt.Sprint(i)})
	}
	return packages
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		wantPage  int
		wantLen   int
		wantFirst string
		wantPages int
	}{
		{name: "empty", total: 0, page: 1, wantPage: 1, wantLen: 0, wantPages: 0},
		{name: "single page", total: 8, page: 1, wantPage: 1, wantLen: 8, wantFirst: "1", wantPages: 1},
		{name: "exact page", total: 12, page: 1, wantPage: 1, wantLen: 12, wantFirst: "1", wantPages: 1},
		{name: "second page partial", total: 13, page: 2, wantPage: 2, wantLen: 1, wantFirst: "13", wantPages: 2},
		{name: "middle page", total: 30, page: 2, wantPage: 2, wantLen: 12, wantFirst: "13", wantPages: 3},
		{name: "past the end", total: 13, page: 5, wantPage: 5, wantLen: 0, wantPages: 2},
		{name: "zero clamps to first", total: 13, page: 0, wantPage: 1, wantLen: 12, wantFirst: "1", wantPages: 2},
		{name: "negative clamps to first", total: 13, page: -4, wantPage: 1, wantLen: 12, wantFirst: "1", wantPages: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(makePackages(tc.total), tc.page, PageSize)

			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, PageSize, got.PageSize)
			assert.Equal(t, tc.total, got.TotalItems)
			assert.Equal(t, tc.wantPages, got.TotalPages)
			assert.NotNil(t, got.Items)
			assert.Len(t, got.Items, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantFirst, got.Items[0].Id)
			}
		})
	}
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	got := Paginate(makePackages(20), 1, 0)

	assert.Equal(t, PageSize, got.PageSize)
	assert.Len(t, got.Items, PageSize)
}
