// Package view turns a movie collection and a set of view controls into the
// rows a browser shows.
//
// # Pipeline
//
// Apply runs three stages in a fixed order:
//
//  1. Filter: a non-empty search query keeps movies whose title starts with
//     the query, ignoring case. Otherwise a selected genre with a non-empty id
//     keeps movies of that genre. Otherwise every movie is kept.
//  2. Sort: a stable sort by the active SortSpec. Ties keep their filter order.
//  3. Paginate: the 1-based CurrentPage of PageSize rows.
//
// Page.TotalCount is the size of the filtered set before pagination and
// drives the pager.
//
// # Controls
//
// Controls is a value. Every transition (WithGenre, WithSearch, WithSort,
// WithPage) returns a new snapshot:
//
//	c := view.DefaultControls(4)
//	c = c.WithSearch("sp")         // genre cleared, page 1
//	c = c.WithGenre(drama)         // search cleared, page 1
//	c = c.WithSort(view.PathTitle) // title is active: order flips
//
// Changing the page never clamps. A page past the end renders no rows.
//
// # State
//
// State wraps the controls together with the session's working copy of the
// movies. ToggleLike and DeleteMovie find movies by id and do nothing for
// ids they do not know. Deleting does not move the current page.
package view
