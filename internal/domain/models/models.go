package models

import "time"

type Movie struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Year      *int32    `json:"year"`
	Director  *string   `json:"director"`
	Genre     *string   `json:"genre,omitempty"` // legacy single-valued column, superseded by the movie_genres links
	PosterURL *string   `json:"poster_url"`
	ImdbID    *string   `json:"imdb_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MovieListing is a Movie row paired with its computed rating aggregates.
// Movies without reviews report zero values, never null.
type MovieListing struct {
	Movie
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	Genres        []Genre `json:"genres,omitempty"`
}

type MovieDetails struct {
	Movie
	Genres        []Genre             `json:"genres,omitempty"`
	Cast          []MovieCastMember   `json:"cast,omitempty"`
	Screenwriters []MovieScreenwriter `json:"screenwriters,omitempty"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// MovieCastMember is a cast member seen through a movie_cast junction row.
type MovieCastMember struct {
	CastMember
	CharacterName *string `json:"character_name"`
	CastOrder     int     `json:"cast_order"`
}

type Screenwriter struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

type MovieScreenwriter struct {
	Screenwriter
	ScreenwriterOrder int `json:"screenwriter_order"`
}

// CastCredit is a movie seen from a cast member's filmography.
type CastCredit struct {
	Movie
	CharacterName *string `json:"character_name"`
	CastOrder     int     `json:"cast_order"`
}

type ScreenwriterCredit struct {
	Movie
	ScreenwriterOrder int `json:"screenwriter_order"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnonymousUser stands in for requests carrying no credentials.
var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser || u == nil
}

type Review struct {
	ID          int64      `json:"id"`
	MovieID     int64      `json:"movie_id"`
	UserID      *int64     `json:"user_id"`
	Rating      int        `json:"rating"`
	ReviewText  *string    `json:"review_text"`
	WatchedDate *time.Time `json:"watched_date"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ReviewWithMovie is a review joined with its movie and reviewer display
// fields, the shape every review read path returns.
type ReviewWithMovie struct {
	Review
	MovieTitle   string  `json:"movie_title"`
	MovieYear    *int32  `json:"movie_year"`
	MoviePoster  *string `json:"movie_poster"`
	UserUsername *string `json:"user_username"`
}

type WatchlistEntry struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Notes     *string   `json:"notes"`
	Priority  int       `json:"priority"`
	AddedDate time.Time `json:"added_date"`
}

type WatchlistItem struct {
	WatchlistEntry
	MovieTitle   string  `json:"movie_title"`
	MovieYear    *int32  `json:"movie_year"`
	Director     *string `json:"director"`
	Genre        *string `json:"genre"`
	MoviePoster  *string `json:"movie_poster"`
	ImdbID       *string `json:"imdb_id"`
	UserUsername *string `json:"user_username"`
}

type Favorite struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteItem struct {
	Favorite
	MovieTitle  string  `json:"movie_title"`
	MovieYear   *int32  `json:"movie_year"`
	Director    *string `json:"director"`
	MoviePoster *string `json:"movie_poster"`
	ImdbID      *string `json:"imdb_id"`
}

const (
	AdminRequestPending  = "pending"
	AdminRequestApproved = "approved"
	AdminRequestRejected = "rejected"
)

type AdminRequest struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	RequestMessage *string    `json:"request_message"`
	Status         string     `json:"status"`
	ReviewedBy     *int64     `json:"reviewed_by"`
	ReviewedAt     *time.Time `json:"reviewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AdminRequestWithUser struct {
	AdminRequest
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type UserStats struct {
	ReviewsCount   int     `json:"reviewsCount"`
	AverageRating  float64 `json:"averageRating"`
	WatchlistCount int     `json:"watchlistCount"`
}

// Stats field names follow the shape the browser client consumes.
type Stats struct {
	TotalMovies         int               `json:"totalMovies"`
	TotalReviews        int               `json:"totalReviews"`
	AverageRating       float64           `json:"averageRating"`
	RatingsDistribution []RatingBucket    `json:"ratingsDistribution"`
	GenreBreakdown      []GenreCount      `json:"genreBreakdown"`
	MoviesPerYear       []YearCount       `json:"moviesPerYear"`
	RecentReviews       []ReviewWithMovie `json:"recentReviews"`
	UserStats           *UserStats        `json:"userStats"`
}
