package filters

import "strings"

const (
	AscSort  = "ASC"
	DescSort = "DESC"

	DefaultLimit = 100
)

// MovieFilters is the recognized option set for the movie listing. Every
// criterion is optional; nil/zero means "not supplied". Decoded from the
// query string, so malformed numeric input fails the decode with a 400
// before ever reaching the query builder.
type MovieFilters struct {
	Search        string   `schema:"search"`
	Year          *int     `schema:"year"`
	YearMin       *int     `schema:"year_min"`
	YearMax       *int     `schema:"year_max"`
	RatingMin     *float64 `schema:"rating_min"`
	RatingMax     *float64 `schema:"rating_max"`
	Director      string   `schema:"director"`
	Genre         string   `schema:"genre"`
	GenreIDs      []int64  `schema:"genre_ids"`
	HasReviews    *bool    `schema:"has_reviews"`
	InWatchlist   *bool    `schema:"in_watchlist"`
	SortBy        string   `schema:"sort_by"`
	SortOrder     string   `schema:"sort_order"`
	Limit         int      `schema:"limit"`
	Offset        int      `schema:"offset"`
	IncludeGenres bool     `schema:"include_genres"`
}

var movieSortSafelist = []string{"title", "year", "created_at", "rating", "review_count"}

// SortColumn resolves sort_by against the safelist; anything unrecognized
// silently falls back to created_at.
func (f *MovieFilters) SortColumn() string {
	for _, safeValue := range movieSortSafelist {
		if strings.EqualFold(f.SortBy, safeValue) {
			return safeValue
		}
	}
	return "created_at"
}

func (f *MovieFilters) SortDirection() string {
	if strings.EqualFold(f.SortOrder, "asc") {
		return AscSort
	}
	return DescSort
}

// Normalize applies the pagination defaults: limit 100, offset 0.
func (f *MovieFilters) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

type ReviewFilters struct {
	MovieID   *int64 `schema:"movie_id"`
	UserID    *int64 `schema:"user_id"`
	RatingMin *int   `schema:"rating_min"`
	RatingMax *int   `schema:"rating_max"`
	Tag       string `schema:"tag"`
	Limit     int    `schema:"limit"`
	Offset    int    `schema:"offset"`
}

func (f *ReviewFilters) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
