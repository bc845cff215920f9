// Package sqlite serves a movie catalog from a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store is a catalog.Source backed by SQLite.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ catalog.Source = (*Store)(nil)

// Open opens (or creates) the database at path and applies the schema.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// FetchMovies implements catalog.Source. Movies come back in insertion order.
func (s *Store) FetchMovies(ctx context.Context) ([]catalog.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.title, g.id, g.name, m.number_in_stock,
		       m.daily_rental_rate, m.publish_date, m.liked
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		ORDER BY m.rowid`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []catalog.Movie
	for rows.Next() {
		var (
			m           catalog.Movie
			publishDate sql.NullString
			liked       int
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name,
			&m.NumberInStock, &m.DailyRentalRate, &publishDate, &liked); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		m.PublishDate = publishDate.String
		m.Liked = liked != 0
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

// FetchGenres implements catalog.Source. Genres are ordered by name.
func (s *Store) FetchGenres(ctx context.Context) ([]catalog.Genre, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()

	var genres []catalog.Genre
	for rows.Next() {
		var g catalog.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}
	return genres, nil
}

// Seed writes genres and movies in one transaction, updating rows that
// already exist with the same id. Records without an id get a generated one;
// movies that point at an id-less genre follow it by name. Movies whose genre
// is not in genres are skipped and counted.
func (s *Store) Seed(ctx context.Context, genres []catalog.Genre, movies []catalog.Movie) (written, skipped int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	known := make(map[string]bool, len(genres))
	generated := make(map[string]string) // genre name -> generated id
	for _, g := range genres {
		if g.ID == "" {
			g.ID = uuid.NewString()
			generated[g.Name] = g.ID
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO genres (id, name) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name`, g.ID, g.Name); err != nil {
			return 0, 0, fmt.Errorf("insert genre %q: %w", g.Name, err)
		}
		known[g.ID] = true
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, m := range movies {
		if m.Genre.ID == "" {
			m.Genre.ID = generated[m.Genre.Name]
		}
		if !known[m.Genre.ID] {
			s.logger.Warn("skipping movie with unknown genre",
				zap.String("title", m.Title),
				zap.String("genre_id", m.Genre.ID),
				zap.String("genre", m.Genre.Name))
			skipped++
			continue
		}
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO movies (
				id, title, genre_id, number_in_stock, daily_rental_rate,
				publish_date, liked, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				genre_id = excluded.genre_id,
				number_in_stock = excluded.number_in_stock,
				daily_rental_rate = excluded.daily_rental_rate,
				publish_date = excluded.publish_date,
				liked = excluded.liked`,
			m.ID, m.Title, m.Genre.ID, m.NumberInStock, m.DailyRentalRate,
			nullString(m.PublishDate), boolToInt(m.Liked), now); err != nil {
			return 0, 0, fmt.Errorf("insert movie %q: %w", m.Title, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit seed: %w", err)
	}
	s.logger.Info("seeded catalog",
		zap.Int("genres", len(genres)),
		zap.Int("movies", written),
		zap.Int("skipped", skipped))
	return written, skipped, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
