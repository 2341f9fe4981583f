package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovieFiltersSortColumn(t *testing.T) {
	cases := []struct {
		name     string
		sortBy   string
		expected string
	}{
		{"known column", "year", "year"},
		{"computed column", "rating", "rating"},
		{"case insensitive", "Title", "title"},
		{"unknown falls back", "password_hash", "created_at"},
		{"empty falls back", "", "created_at"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := MovieFilters{SortBy: tc.sortBy}
			assert.Equal(t, tc.expected, f.SortColumn())
		})
	}
}

func TestMovieFiltersSortDirection(t *testing.T) {
	f := MovieFilters{SortOrder: "asc"}
	assert.Equal(t, AscSort, f.SortDirection())
	f.SortOrder = "desc"
	assert.Equal(t, DescSort, f.SortDirection())
	f.SortOrder = "sideways"
	assert.Equal(t, DescSort, f.SortDirection())
	f.SortOrder = ""
	assert.Equal(t, DescSort, f.SortDirection())
}

func TestMovieFiltersNormalize(t *testing.T) {
	var f MovieFilters
	f.Normalize()
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)

	f = MovieFilters{Limit: 10, Offset: 20}
	f.Normalize()
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, 20, f.Offset)

	f = MovieFilters{Limit: -5, Offset: -1}
	f.Normalize()
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)
}

func TestReviewFiltersNormalize(t *testing.T) {
	var f ReviewFilters
	f.Normalize()
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)
}
