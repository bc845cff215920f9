package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_EmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movies, err := s.FetchMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)

	genres, err := s.FetchGenres(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}

func TestSeed_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	genres := []catalog.Genre{{ID: "t", Name: "Thriller"}, {ID: "c", Name: "Comedy"}}
	movies := []catalog.Movie{
		{ID: "m1", Title: "Get Out", Genre: genres[0], NumberInStock: 8, DailyRentalRate: 3.5, Liked: true},
		{Title: "Airplane", Genre: genres[1], NumberInStock: 7, DailyRentalRate: 3.5, PublishDate: "1980-07-02"},
		{ID: "m3", Title: "Orphan", Genre: catalog.Genre{ID: "horror"}},
	}

	written, skipped, err := s.Seed(ctx, genres, movies)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Equal(t, 1, skipped, "movie with an unknown genre is skipped")

	gotGenres, err := s.FetchGenres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Genre{{ID: "c", Name: "Comedy"}, {ID: "t", Name: "Thriller"}}, gotGenres)

	got, err := s.FetchMovies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, movies[0], got[0])
	assert.NotEmpty(t, got[1].ID, "missing ids are generated")
	assert.Equal(t, "Airplane", got[1].Title)
	assert.Equal(t, "1980-07-02", got[1].PublishDate)
	assert.Equal(t, "Comedy", got[1].Genre.Name)
}

func TestSeed_UpdatesExistingRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	genre := catalog.Genre{ID: "d", Name: "Drama"}
	_, _, err := s.Seed(ctx, []catalog.Genre{genre}, []catalog.Movie{{ID: "m1", Title: "Ran", Genre: genre}})
	require.NoError(t, err)

	genre.Name = "Drama & Epic"
	_, _, err = s.Seed(ctx, []catalog.Genre{genre}, []catalog.Movie{{ID: "m1", Title: "Ran (1985)", Genre: genre, NumberInStock: 3}})
	require.NoError(t, err)

	got, err := s.FetchMovies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ran (1985)", got[0].Title)
	assert.Equal(t, 3, got[0].NumberInStock)
	assert.Equal(t, "Drama & Epic", got[0].Genre.Name)
}

func TestSeed_GeneratedGenreIDReachesMovies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	genres := []catalog.Genre{{Name: "Western"}, {ID: "d", Name: "Drama"}}
	movies := []catalog.Movie{
		{ID: "m1", Title: "Unforgiven", Genre: catalog.Genre{Name: "Western"}},
		{ID: "m2", Title: "Ran", Genre: catalog.Genre{ID: "d", Name: "Drama"}},
		{ID: "m3", Title: "Alien", Genre: catalog.Genre{Name: "Horror"}},
	}

	written, skipped, err := s.Seed(ctx, genres, movies)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Equal(t, 1, skipped)

	gotGenres, err := s.FetchGenres(ctx)
	require.NoError(t, err)
	require.Len(t, gotGenres, 2)
	western := gotGenres[1]
	assert.Equal(t, "Western", western.Name)
	assert.NotEmpty(t, western.ID)

	got, err := s.FetchMovies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	byTitle := map[string]catalog.Movie{}
	for _, m := range got {
		byTitle[m.Title] = m
	}
	assert.Equal(t, western, byTitle["Unforgiven"].Genre)
	assert.Equal(t, "Drama", byTitle["Ran"].Genre.Name)
}

func TestStore_ServesCatalogLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed, err := catalog.Load(ctx, catalog.Embedded())
	require.NoError(t, err)
	_, _, err = s.Seed(ctx, seed.Genres, seed.Movies)
	require.NoError(t, err)

	cat, err := catalog.Load(ctx, s)
	require.NoError(t, err)
	assert.Len(t, cat.Movies, len(seed.Movies))
	assert.Len(t, cat.Genres, len(seed.Genres))
}
