package view

import "github.com/five82/vidly/internal/catalog"

// Order is a sort direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (o Order) Flip() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// SortPath selects the movie field a sort compares.
type SortPath string

const (
	PathTitle SortPath = "title"
	PathGenre SortPath = "genre.name"
	PathStock SortPath = "numberInStock"
	PathRate  SortPath = "dailyRentalRate"
	PathLiked SortPath = "liked"
)

// SortSpec is the single active sort.
type SortSpec struct {
	Path  SortPath
	Order Order
}

// DefaultPageSize matches the number of rows the catalog shows per page when
// nothing is configured.
const DefaultPageSize = 4

// Controls is an immutable snapshot of the view controls. The With* methods
// return a new snapshot and never modify the receiver.
type Controls struct {
	SelectedGenre *catalog.Genre
	SearchQuery   string
	Sort          SortSpec
	CurrentPage   int
	PageSize      int
}

// DefaultControls returns the controls a fresh session starts with.
func DefaultControls(pageSize int) Controls {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Controls{
		Sort:        SortSpec{Path: PathTitle, Order: Ascending},
		CurrentPage: 1,
		PageSize:    pageSize,
	}
}

// WithGenre selects genre, clears the search query and returns to page 1.
func (c Controls) WithGenre(genre catalog.Genre) Controls {
	g := genre
	c.SelectedGenre = &g
	c.SearchQuery = ""
	c.CurrentPage = 1
	return c
}

// WithSearch sets the search query, clears the genre and returns to page 1.
func (c Controls) WithSearch(query string) Controls {
	c.SearchQuery = query
	c.SelectedGenre = nil
	c.CurrentPage = 1
	return c
}

// WithSort flips the order when path is already active, otherwise sorts
// ascending by path. The page is kept.
func (c Controls) WithSort(path SortPath) Controls {
	if c.Sort.Path == path {
		c.Sort.Order = c.Sort.Order.Flip()
		return c
	}
	c.Sort = SortSpec{Path: path, Order: Ascending}
	return c
}

// WithPage moves to page. Out-of-range pages are kept as given.
func (c Controls) WithPage(page int) Controls {
	c.CurrentPage = page
	return c
}

// GenreSelected reports whether a real genre (not "All") filters the view.
func (c Controls) GenreSelected() bool {
	return c.SearchQuery == "" && c.SelectedGenre != nil && !c.SelectedGenre.IsAll()
}

// Snapshot returns c with its own copy of the selected genre, so callers can
// hold it without sharing the pointer.
func (c Controls) Snapshot() Controls {
	if c.SelectedGenre != nil {
		g := *c.SelectedGenre
		c.SelectedGenre = &g
	}
	return c
}
