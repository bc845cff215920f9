package catalog

import (
	"context"
	"fmt"
)

// Genre is a facet value movies are grouped by.
type Genre struct {
	ID   string `json:"_id" toml:"id"`
	Name string `json:"name" toml:"name" validate:"required"`
}

// AllGenres is the synthetic facet entry that matches every movie. It never
// comes from a Source.
var AllGenres = Genre{ID: "", Name: "All Genres"}

// IsAll reports whether g is the synthetic "All Genres" entry (or any genre
// without an id, which filters the same way).
func (g Genre) IsAll() bool {
	return g.ID == ""
}

// Movie is a single catalog record.
type Movie struct {
	ID              string  `json:"_id" toml:"id" validate:"required"`
	Title           string  `json:"title" toml:"title" validate:"required"`
	Genre           Genre   `json:"genre" toml:"genre"`
	NumberInStock   int     `json:"numberInStock" toml:"number_in_stock" validate:"gte=0"`
	DailyRentalRate float64 `json:"dailyRentalRate" toml:"daily_rental_rate" validate:"gte=0"`
	PublishDate     string  `json:"publishDate,omitempty" toml:"publish_date"`
	Liked           bool    `json:"liked,omitempty" toml:"liked"`
}

// Source supplies the full movie collection and the genre list. Both calls
// are made once, when a browsing session starts.
type Source interface {
	FetchMovies(ctx context.Context) ([]Movie, error)
	FetchGenres(ctx context.Context) ([]Genre, error)
}

// Catalog is the result of a one-shot fetch from a Source.
type Catalog struct {
	Movies   []Movie
	Genres   []Genre
	Rejected []Rejection
}

// Rejection records a fetched movie that failed validation.
type Rejection struct {
	Movie Movie
	Err   error
}

// WithAllGenres returns a new slice with AllGenres prepended to genres.
func WithAllGenres(genres []Genre) []Genre {
	out := make([]Genre, 0, len(genres)+1)
	out = append(out, AllGenres)
	return append(out, genres...)
}

// Load fetches movies and genres from src. Movies that fail validation or
// repeat an earlier id are left out of the result and reported in Rejected.
func Load(ctx context.Context, src Source) (Catalog, error) {
	if src == nil {
		return Catalog{}, fmt.Errorf("catalog source is nil")
	}
	movies, err := src.FetchMovies(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetch movies: %w", err)
	}
	genres, err := src.FetchGenres(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetch genres: %w", err)
	}

	v := NewValidator()
	cat := Catalog{
		Movies: make([]Movie, 0, len(movies)),
		Genres: genres,
	}
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if err := v.Validate(m); err != nil {
			cat.Rejected = append(cat.Rejected, Rejection{Movie: m, Err: err})
			continue
		}
		// Like and delete address movies by id, so the first record wins.
		if _, dup := seen[m.ID]; dup {
			cat.Rejected = append(cat.Rejected, Rejection{
				Movie: m,
				Err:   &ValidationError{Fields: map[string]string{"_id": "must be unique"}},
			})
			continue
		}
		seen[m.ID] = struct{}{}
		cat.Movies = append(cat.Movies, m)
	}
	return cat, nil
}

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := Catalog{}
	if len(c.Movies) > 0 {
		out.Movies = append([]Movie(nil), c.Movies...)
	}
	if len(c.Genres) > 0 {
		out.Genres = append([]Genre(nil), c.Genres...)
	}
	if len(c.Rejected) > 0 {
		out.Rejected = append([]Rejection(nil), c.Rejected...)
	}
	return out
}
