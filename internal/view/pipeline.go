package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/vidly/internal/catalog"
)

// Page is the pipeline output: the rows to render and the size of the
// filtered set they were cut from.
type Page struct {
	TotalCount int
	Data       []catalog.Movie
}

// Apply runs filter, sort and paginate, in that order. movies is not
// modified.
func Apply(movies []catalog.Movie, c Controls) Page {
	filtered := Filter(movies, c)
	sorted := Sort(filtered, c.Sort)
	return Page{
		TotalCount: len(filtered),
		Data:       Paginate(sorted, c.CurrentPage, c.PageSize),
	}
}

// Filter keeps the movies matching the active search query or genre. A
// non-empty query wins over any selected genre.
func Filter(movies []catalog.Movie, c Controls) []catalog.Movie {
	out := make([]catalog.Movie, 0, len(movies))
	switch {
	case c.SearchQuery != "":
		query := strings.ToLower(c.SearchQuery)
		for _, m := range movies {
			if strings.HasPrefix(strings.ToLower(m.Title), query) {
				out = append(out, m)
			}
		}
	case c.SelectedGenre != nil && c.SelectedGenre.ID != "":
		for _, m := range movies {
			if m.Genre.ID == c.SelectedGenre.ID {
				out = append(out, m)
			}
		}
	default:
		out = append(out, movies...)
	}
	return out
}

var comparators = map[SortPath]func(a, b catalog.Movie) int{
	PathTitle: func(a, b catalog.Movie) int { return strings.Compare(a.Title, b.Title) },
	PathGenre: func(a, b catalog.Movie) int { return strings.Compare(a.Genre.Name, b.Genre.Name) },
	PathStock: func(a, b catalog.Movie) int { return cmp.Compare(a.NumberInStock, b.NumberInStock) },
	PathRate:  func(a, b catalog.Movie) int { return cmp.Compare(a.DailyRentalRate, b.DailyRentalRate) },
	PathLiked: func(a, b catalog.Movie) int { return cmp.Compare(boolRank(a.Liked), boolRank(b.Liked)) },
}

// SortPaths lists the paths Sort understands, in column order.
func SortPaths() []SortPath {
	return []SortPath{PathTitle, PathGenre, PathStock, PathRate, PathLiked}
}

// Sort returns a stably sorted copy of movies. Equal keys keep their input
// order in both directions. An unknown path returns the input order.
func Sort(movies []catalog.Movie, spec SortSpec) []catalog.Movie {
	out := slices.Clone(movies)
	compare, ok := comparators[spec.Path]
	if !ok {
		return out
	}
	if spec.Order == Descending {
		slices.SortStableFunc(out, func(a, b catalog.Movie) int { return compare(b, a) })
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}

// Paginate returns the movies at positions [(page-1)*size, page*size).
// Pages past the end, or a non-positive page or size, yield an empty slice.
func Paginate(movies []catalog.Movie, page, size int) []catalog.Movie {
	if page < 1 || size < 1 {
		return []catalog.Movie{}
	}
	start := (page - 1) * size
	if start >= len(movies) {
		return []catalog.Movie{}
	}
	end := min(start+size, len(movies))
	return slices.Clone(movies[start:end])
}

// PageCount is the number of pages total rows fill at size rows per page.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}
