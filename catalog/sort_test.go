package catalog

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kerala-tours/common/constant"
	"kerala-tours/model"
	"math"
	"testing"
)

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		key     string
		want    SortOption
		wantErr bool
	}{
		{key: "", want: SortFeatured},
		{key: "featured", want: SortFeatured},
		{key: "price-low", want: SortPriceLow},
		{key: "price-high", want: SortPriceHigh},
		{key: "rating", want: SortRating},
		{key: "duration", want: SortDuration},
		{key: "popular", want: SortPopular},
		{key: "Price-Low", wantErr: true},
		{key: "cheapest", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := ParseSortOption(tc.key)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			if tc.key != "" {
				assert.Equal(t, tc.key, got.String())
			}
		})
	}

	assert.Equal(t, "SortOption(42)", SortOption(42).String())
}

func TestSort(t *testing.T) {
	packages := New(constant.PackagesData).Packages()

	tests := []struct {
		opt  SortOption
		want []string
	}{
		{opt: SortFeatured, want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{opt: SortPriceLow, want: []string{"6", "7", "3", "4", "2", "8", "5", "1"}},
		{opt: SortPriceHigh, want: []string{"1", "5", "8", "2", "4", "3", "7", "6"}},
		{opt: SortRating, want: []string{"1", "3", "2", "5", "4", "8", "6", "7"}},
		{opt: SortDuration, want: []string{"6", "3", "4", "2", "7", "8", "5", "1"}},
		{opt: SortPopular, want: []string{"3", "1", "2", "4", "8", "5", "6", "7"}},
		{opt: SortOption(-1), want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
	}

	for _, tc := range tests {
		t.Run(tc.opt.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Sort(packages, tc.opt)))
		})
	}
}

func TestSortDurationPutsUnparseableLast(t *testing.T) {
	packages := []model.TourPackage{
		{Id: "flexible", Duration: "Flexible"},
		{Id: "ten", Duration: "10 Days 9 Nights"},
		{Id: "empty", Duration: ""},
		{Id: "two", Duration: "2 Days 1 Night"},
	}

	assert.Equal(t, []string{"two", "ten", "flexible", "empty"}, ids(Sort(packages, SortDuration)))
}

func TestSortIsIdempotent(t *testing.T) {
	packages := New(constant.PackagesData).Packages()

	for opt := SortFeatured; opt <= SortPopular; opt++ {
		once := Sort(packages, opt)
		assert.Equal(t, ids(once), ids(Sort(once, opt)), opt.String())
	}
}

func TestDurationDays(t *testing.T) {
	tests := map[string]int{
		"10 Days 9 Nights": 10,
		"4 Days 3 Nights":  4,
		"  2 Days":         2,
		"7":                7,
		"Seven Days":       math.MaxInt,
		"":                 math.MaxInt,
		"-3 Days":          math.MaxInt,
	}

	for in, want := range tests {
		assert.Equal(t, want, DurationDays(in), in)
	}
}

func TestSortPriceLowIsOrdered(t *testing.T) {
	sorted := Sort(New(constant.PackagesData).Packages(), SortPriceLow)

	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}
}
