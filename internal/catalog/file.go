package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed seed.toml
var seedTOML []byte

// fileCatalog is the TOML layout of a catalog file:
//
//	[[genres]]
//	id = "comedy"
//	name = "Comedy"
//
//	[[movies]]
//	id = "m1"
//	title = "Airplane"
//	genre_id = "comedy"
//	number_in_stock = 7
//	daily_rental_rate = 3.5
type fileCatalog struct {
	Genres []Genre      `toml:"genres"`
	Movies []fileRecord `toml:"movies"`
}

type fileRecord struct {
	ID              string  `toml:"id"`
	Title           string  `toml:"title"`
	GenreID         string  `toml:"genre_id"`
	NumberInStock   int     `toml:"number_in_stock"`
	DailyRentalRate float64 `toml:"daily_rental_rate"`
	PublishDate     string  `toml:"publish_date"`
	Liked           bool    `toml:"liked"`
}

// FileSource reads a catalog from a TOML file. With an empty Path it serves
// the catalog embedded in the binary.
type FileSource struct {
	Path string

	parsed *fileCatalog
}

// Embedded returns a Source serving the built-in sample catalog.
func Embedded() *FileSource {
	return &FileSource{}
}

// FetchMovies implements Source.
func (s *FileSource) FetchMovies(ctx context.Context) ([]Movie, error) {
	fc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Genre, len(fc.Genres))
	for _, g := range fc.Genres {
		byID[g.ID] = g
	}
	movies := make([]Movie, 0, len(fc.Movies))
	for _, r := range fc.Movies {
		genre, ok := byID[r.GenreID]
		if !ok {
			genre = Genre{ID: r.GenreID}
		}
		movies = append(movies, Movie{
			ID:              r.ID,
			Title:           r.Title,
			Genre:           genre,
			NumberInStock:   r.NumberInStock,
			DailyRentalRate: r.DailyRentalRate,
			PublishDate:     r.PublishDate,
			Liked:           r.Liked,
		})
	}
	return movies, nil
}

// FetchGenres implements Source.
func (s *FileSource) FetchGenres(ctx context.Context) ([]Genre, error) {
	fc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]Genre(nil), fc.Genres...), nil
}

func (s *FileSource) load(ctx context.Context) (*fileCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.parsed != nil {
		return s.parsed, nil
	}

	data := seedTOML
	if path := strings.TrimSpace(s.Path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("catalog file %s does not exist", path)
			}
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		data = raw
	}

	var fc fileCatalog
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	s.parsed = &fc
	return s.parsed, nil
}
