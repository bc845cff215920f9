package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/vidly/internal/catalog"
)

var (
	drama  = catalog.Genre{ID: "drama", Name: "Drama"}
	comedy = catalog.Genre{ID: "comedy", Name: "Comedy"}
)

func movie(id, title string, genre catalog.Genre) catalog.Movie {
	return catalog.Movie{ID: id, Title: title, Genre: genre}
}

func ids(movies []catalog.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func titles(movies []catalog.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func mixedCatalog() []catalog.Movie {
	return []catalog.Movie{
		movie("1", "Ran", drama),
		movie("2", "Airplane", comedy),
		movie("3", "Ikiru", drama),
		movie("4", "Big", comedy),
		movie("5", "Yojimbo", drama),
	}
}

func TestApply_DataNeverExceedsPageSize(t *testing.T) {
	movies := make([]catalog.Movie, 0, 23)
	for i := range 23 {
		movies = append(movies, movie(fmt.Sprint(i), fmt.Sprintf("Title %02d", i), drama))
	}
	for size := 1; size <= 7; size++ {
		for page := 0; page <= 25; page++ {
			c := DefaultControls(size).WithPage(page)
			got := Apply(movies, c)
			assert.LessOrEqual(t, len(got.Data), size, "page=%d size=%d", page, size)
		}
	}
}

func TestApply_TotalCountIndependentOfPage(t *testing.T) {
	movies := mixedCatalog()
	base := DefaultControls(2).WithGenre(drama)
	want := len(Filter(movies, base))
	for page := 1; page <= 4; page++ {
		assert.Equal(t, want, Apply(movies, base.WithPage(page)).TotalCount, "page %d", page)
	}
}

func TestApply_GenreScenario(t *testing.T) {
	c := DefaultControls(10).WithGenre(catalog.Genre{ID: "drama"})
	got := Apply(mixedCatalog(), c)
	assert.Equal(t, 3, got.TotalCount)
	assert.Equal(t, []string{"Ikiru", "Ran", "Yojimbo"}, titles(got.Data))
}

func TestApply_AllGenresKeepsEverything(t *testing.T) {
	c := DefaultControls(10).WithGenre(catalog.AllGenres)
	assert.Equal(t, 5, Apply(mixedCatalog(), c).TotalCount)
}

func TestApply_SecondPageHoldsRemainder(t *testing.T) {
	movies := []catalog.Movie{
		movie("e", "Eraserhead", drama),
		movie("a", "Alien", drama),
		movie("d", "Dune", drama),
		movie("b", "Brazil", drama),
		movie("c", "Cube", drama),
	}
	c := DefaultControls(4).WithPage(2)
	got := Apply(movies, c)

	assert.Equal(t, 5, got.TotalCount)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "Eraserhead", got.Data[0].Title)
}

func TestFilter_SearchIsCaseInsensitivePrefix(t *testing.T) {
	movies := []catalog.Movie{
		movie("1", "Spirited Away", drama),
		movie("2", "Speed", comedy),
		movie("3", "The Matrix", drama),
		movie("4", "Inspector Gadget", comedy),
	}
	c := DefaultControls(10).WithSearch("sp")
	assert.Equal(t, []string{"Spirited Away", "Speed"}, titles(Filter(movies, c)))

	c = DefaultControls(10).WithSearch("SPI")
	assert.Equal(t, []string{"Spirited Away"}, titles(Filter(movies, c)))
}

func TestFilter_SearchWinsOverGenre(t *testing.T) {
	c := DefaultControls(10)
	c.SelectedGenre = &comedy
	c.SearchQuery = "r"

	assert.Equal(t, []string{"1"}, ids(Filter(mixedCatalog(), c)))
}

func TestSort_IsStable(t *testing.T) {
	movies := []catalog.Movie{
		movie("1", "B", drama),
		movie("2", "A", drama),
		movie("3", "A", drama),
	}
	asc := Sort(movies, SortSpec{Path: PathTitle, Order: Ascending})
	assert.Equal(t, []string{"2", "3", "1"}, ids(asc))

	desc := Sort(movies, SortSpec{Path: PathTitle, Order: Descending})
	assert.Equal(t, []string{"1", "2", "3"}, ids(desc))

	assert.Equal(t, []string{"1", "2", "3"}, ids(movies), "input must not be reordered")
}

func TestSort_ByFieldTypes(t *testing.T) {
	movies := []catalog.Movie{
		{ID: "1", Title: "X", Genre: drama, NumberInStock: 10, DailyRentalRate: 2.5, Liked: true},
		{ID: "2", Title: "Y", Genre: comedy, NumberInStock: 2, DailyRentalRate: 4.0},
		{ID: "3", Title: "Z", Genre: drama, NumberInStock: 7, DailyRentalRate: 0.5},
	}

	cases := []struct {
		path SortPath
		want []string
	}{
		{PathGenre, []string{"2", "1", "3"}},
		{PathStock, []string{"2", "3", "1"}},
		{PathRate, []string{"3", "1", "2"}},
		{PathLiked, []string{"2", "3", "1"}},
		{SortPath("unknown"), []string{"1", "2", "3"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.path), func(t *testing.T) {
			got := Sort(movies, SortSpec{Path: tc.path})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestPaginate_Bounds(t *testing.T) {
	movies := mixedCatalog()

	assert.Empty(t, Paginate(movies, 0, 2))
	assert.Empty(t, Paginate(movies, 1, 0))
	assert.Empty(t, Paginate(movies, 4, 2))
	assert.NotNil(t, Paginate(movies, 4, 2))
	assert.Equal(t, []string{"5"}, ids(Paginate(movies, 3, 2)))
	assert.Equal(t, []string{"1", "2"}, ids(Paginate(movies, 1, 2)))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 4))
	assert.Equal(t, 1, PageCount(4, 4))
	assert.Equal(t, 2, PageCount(5, 4))
	assert.Equal(t, 0, PageCount(5, 0))
}
