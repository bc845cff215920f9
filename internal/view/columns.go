package view

import (
	"fmt"
	"strings"
)

// Messages a browser shows for the two empty cases. An empty collection
// short-circuits the whole table; an empty page only replaces its rows.
const (
	EmptyCollectionMessage = "There are no movies in the database."
	EmptyPageMessage       = "No movies on this page"
)

// Column describes one sortable column of the movie table.
type Column struct {
	Label string
	Path  SortPath
	Alias string
}

// Columns lists the movie table columns in display order.
var Columns = []Column{
	{Label: "Title", Path: PathTitle, Alias: "title"},
	{Label: "Genre", Path: PathGenre, Alias: "genre"},
	{Label: "Stock", Path: PathStock, Alias: "stock"},
	{Label: "Rate", Path: PathRate, Alias: "rate"},
	{Label: "Like", Path: PathLiked, Alias: "liked"},
}

// Arrow renders the direction as a header indicator.
func (o Order) Arrow() string {
	if o == Descending {
		return "▼"
	}
	return "▲"
}

// Headers returns the column labels with an arrow on the sorted column.
func Headers(spec SortSpec) []string {
	headers := make([]string, len(Columns))
	for i, c := range Columns {
		headers[i] = c.Label
		if c.Path == spec.Path {
			headers[i] += " " + spec.Order.Arrow()
		}
	}
	return headers
}

// LikeIcon renders the liked flag as a filled or empty heart.
func LikeIcon(liked bool) string {
	if liked {
		return "♥"
	}
	return "♡"
}

// ParseSortPath accepts a column alias ("stock") or a sort path
// ("numberInStock"), ignoring case.
func ParseSortPath(name string) (SortPath, error) {
	name = strings.TrimSpace(name)
	for _, c := range Columns {
		if strings.EqualFold(name, c.Alias) || strings.EqualFold(name, string(c.Path)) {
			return c.Path, nil
		}
	}
	return "", fmt.Errorf("unknown sort column %q", name)
}

// PageStatus summarizes the filtered total the way the header shows it.
func PageStatus(total int) string {
	return fmt.Sprintf("Showing %d movies in the database", total)
}
