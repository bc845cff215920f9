// Package ui is vidly's terminal browser, built on Bubble Tea.
//
// # Views
//
//   - Catalog view: a genre pane on the left and a paginated movie table on
//     the right. The table is driven by a view.State built from the first
//     catalog snapshot the loader publishes.
//   - Log view: a tail of vidly's own log file with level coloring and a
//     minimum level filter.
//
// # Event flow
//
//  1. Run starts the program. A tick polls state.Store until the catalog
//     has loaded; until then the header shows loading or retry status.
//  2. Once loaded, every key maps to one view.State operation (select
//     genre, search, sort, change page, like, delete) and the table is
//     re-rendered from State.View.
//  3. Theme changes are written to prefs.toml so the next session starts
//     with the same palette.
//
// # Key bindings
//
// Press ? for the full list. The common ones:
//
//   - tab: switch between genres and movies
//   - /: search titles (esc clears)
//   - 1-5: sort by title, genre, stock, rate or like; again to reverse
//   - [ and ]: previous and next page
//   - Space: like or unlike; d: delete
//   - L: log view; T: cycle theme; q: quit
package ui
