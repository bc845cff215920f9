package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders_MarksActiveColumn(t *testing.T) {
	assert.Equal(t,
		[]string{"Title ▲", "Genre", "Stock", "Rate", "Like"},
		Headers(SortSpec{Path: PathTitle, Order: Ascending}))
	assert.Equal(t,
		[]string{"Title", "Genre", "Stock ▼", "Rate", "Like"},
		Headers(SortSpec{Path: PathStock, Order: Descending}))
}

func TestParseSortPath(t *testing.T) {
	for in, want := range map[string]SortPath{
		"title":         PathTitle,
		"Genre":         PathGenre,
		"genre.name":    PathGenre,
		"stock":         PathStock,
		"numberInStock": PathStock,
		" RATE ":        PathRate,
		"liked":         PathLiked,
	} {
		got, err := ParseSortPath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortPath("director")
	assert.ErrorContains(t, err, "unknown sort column")
}

func TestColumns_CoverEverySortPath(t *testing.T) {
	paths := make([]SortPath, 0, len(Columns))
	for _, c := range Columns {
		paths = append(paths, c.Path)
	}
	assert.ElementsMatch(t, SortPaths(), paths)
}

func TestLikeIconAndStatus(t *testing.T) {
	assert.Equal(t, "♥", LikeIcon(true))
	assert.Equal(t, "♡", LikeIcon(false))
	assert.Equal(t, "Showing 3 movies in the database", PageStatus(3))
}
