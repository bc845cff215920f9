package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/view"
)

// Fixed movie table column widths; the title column takes the rest.
const (
	genreColWidth = 12
	stockColWidth = 7
	rateColWidth  = 6
	likeColWidth  = 6
	minTitleWidth = 10
)

// renderCatalog renders the genre pane and the movie table side by side.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // header + command bar

	if m.catalog == nil {
		return m.renderCentered(m.loadingMessage(), styles.WarningText)
	}
	if m.catalog.IsEmpty() {
		return m.renderCentered(view.EmptyCollectionMessage, styles.MutedText)
	}

	genreWidth := clamp(m.width*22/100, 18, 28)
	movieWidth := m.width - genreWidth

	genrePane := m.renderTitledBox("Genres", m.renderGenreList(genreWidth-2), genreWidth, contentHeight, m.focused == paneGenres)

	page := m.catalog.View()
	movieTitle := view.PageStatus(page.TotalCount)
	moviePane := m.renderTitledBox(movieTitle, m.renderMovieTable(page, movieWidth-2), movieWidth, contentHeight, m.focused == paneMovies)

	return lipgloss.JoinHorizontal(lipgloss.Top, genrePane, moviePane)
}

func (m Model) loadingMessage() string {
	if m.snapshot.LastError != nil {
		return "Catalog unavailable, retrying..."
	}
	return "Loading catalog..."
}

func (m Model) paneBg(p pane) string {
	if m.focused == p {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

// activeGenre reports whether g is the facet currently filtering the table.
// "All Genres" is active when nothing is selected; no facet is active while
// a search is running.
func activeGenre(g catalog.Genre, c view.Controls) bool {
	if c.SearchQuery != "" {
		return false
	}
	if c.SelectedGenre == nil {
		return g.IsAll()
	}
	return c.SelectedGenre.ID == g.ID
}

// renderGenreList renders the facet list.
func (m Model) renderGenreList(width int) string {
	bgColor := m.paneBg(paneGenres)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	controls := m.catalog.Controls()

	var lines []string
	for i, g := range m.catalog.Genres() {
		label := truncate(g.Name, width-3)
		cursor := i == m.genreCursor && m.focused == paneGenres

		switch {
		case cursor:
			lines = append(lines, styles.Selected.Width(width).Render(" "+label))
		case activeGenre(g, controls):
			lines = append(lines, bg.FillLine(bg.Render("●", styles.AccentText)+bg.Render(label, styles.AccentText.Bold(true)), width))
		default:
			lines = append(lines, bg.FillLine(bg.Space()+bg.Render(label, styles.Text), width))
		}
	}
	return strings.Join(lines, "\n")
}

// renderMovieTable renders the search line, the table of the current page,
// the pager, and the last notice.
func (m Model) renderMovieTable(page view.Page, width int) string {
	bgColor := m.paneBg(paneMovies)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	controls := m.catalog.Controls()

	var lines []string
	lines = append(lines, bg.FillLine(m.renderSearchLine(bg, styles, controls), width))
	lines = append(lines, bg.FillLine("", width))

	titleWidth := max(width-genreColWidth-stockColWidth-rateColWidth-likeColWidth-6, minTitleWidth)
	headers := view.Headers(controls.Sort)
	headerLine := " " + fit(headers[0], titleWidth) + " " +
		fit(headers[1], genreColWidth) + " " +
		fitLeft(headers[2], stockColWidth) + " " +
		fitLeft(headers[3], rateColWidth) + " " +
		fit(headers[4], likeColWidth)
	lines = append(lines, bg.FillLine(bg.Render(headerLine, styles.AccentText.Bold(true)), width))
	lines = append(lines, bg.FillLine(bg.Render(strings.Repeat("─", max(width-2, 0)), styles.FaintText), width))

	if len(page.Data) == 0 {
		lines = append(lines, bg.FillLine(bg.Space()+bg.Render(view.EmptyPageMessage, styles.MutedText), width))
	}
	for i, movie := range page.Data {
		selected := i == m.movieCursor && m.focused == paneMovies
		lines = append(lines, m.renderMovieRow(movie, titleWidth, width, bg, selected))
	}

	if pager := m.renderPager(bg, styles); pager != "" {
		lines = append(lines, bg.FillLine("", width))
		lines = append(lines, bg.FillLine(pager, width))
	}
	if m.notice != "" {
		lines = append(lines, bg.FillLine("", width))
		lines = append(lines, bg.FillLine(bg.Space()+bg.Render(m.notice, styles.FaintText), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSearchLine(bg BgStyle, styles Styles, controls view.Controls) string {
	if m.searching {
		return bg.Space() + m.searchInput.View()
	}
	if controls.SearchQuery != "" {
		return bg.Space() + bg.Render("/ "+controls.SearchQuery, styles.AccentText) +
			bg.Spaces(2) + bg.Render("esc clears", styles.FaintText)
	}
	return bg.Space() + bg.Render("/ to search titles", styles.FaintText)
}

func (m Model) renderMovieRow(movie catalog.Movie, titleWidth, width int, bg BgStyle, selected bool) string {
	styles := m.theme.Styles()
	cells := []string{
		fit(movie.Title, titleWidth),
		fit(movie.Genre.Name, genreColWidth),
		fitLeft(strconv.Itoa(movie.NumberInStock), stockColWidth),
		fitLeft(strconv.FormatFloat(movie.DailyRentalRate, 'f', -1, 64), rateColWidth),
		fit(" "+view.LikeIcon(movie.Liked), likeColWidth),
	}
	if selected {
		return styles.Selected.Width(width).Render(" " + strings.Join(cells, " "))
	}

	likeStyle := styles.MutedText
	if movie.Liked {
		likeStyle = styles.DangerText
	}
	row := bg.Space() +
		bg.Render(cells[0], styles.Text) + bg.Space() +
		bg.Render(cells[1], styles.MutedText) + bg.Space() +
		bg.Render(cells[2], styles.Text) + bg.Space() +
		bg.Render(cells[3], styles.Text) + bg.Space() +
		bg.Render(cells[4], likeStyle)
	return bg.FillLine(row, width)
}

// renderPager renders the page list. It is empty when everything fits on one
// page.
func (m Model) renderPager(bg BgStyle, styles Styles) string {
	pages := m.catalog.PageCount()
	if pages <= 1 {
		return ""
	}
	current := m.catalog.Controls().CurrentPage

	parts := []string{bg.Render("‹", styles.FaintText)}
	for p := 1; p <= pages; p++ {
		label := strconv.Itoa(p)
		if p == current {
			parts = append(parts, bg.Render("["+label+"]", styles.AccentText.Bold(true)))
		} else {
			parts = append(parts, bg.Render(label, styles.MutedText))
		}
	}
	parts = append(parts, bg.Render("›", styles.FaintText))
	return bg.Space() + bg.Join(parts, " ")
}

// filterLabel describes the active filter for the header.
func filterLabel(c view.Controls) string {
	switch {
	case c.SearchQuery != "":
		return fmt.Sprintf("Search: %q", c.SearchQuery)
	case c.SelectedGenre != nil && !c.SelectedGenre.IsAll():
		return "Genre: " + c.SelectedGenre.Name
	default:
		return catalog.AllGenres.Name
	}
}
