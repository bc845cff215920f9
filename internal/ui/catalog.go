package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/view"
)

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.catalog == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SwitchPane):
		if m.focused == paneGenres {
			m.focused = paneMovies
		} else {
			m.focused = paneGenres
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.catalog.Controls().SearchQuery)
		m.searchInput.CursorEnd()
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.catalog.Controls().SearchQuery != "" {
			m.applySearch("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.catalog.Movies()) - len(m.catalog.Genres()))
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.catalog.Movies()) + len(m.catalog.Genres()))
		return m, nil

	case key.Matches(msg, m.keys.SelectGenre) && m.focused == paneGenres:
		m.selectGenreAtCursor()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.changePage(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.changePage(1)
		return m, nil

	case key.Matches(msg, m.keys.ToggleLike):
		m.toggleLike()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
		return m, nil
	}

	for i, binding := range m.keys.sortBindings() {
		if key.Matches(msg, binding) {
			m.catalog.SortBy(view.Columns[i].Path)
			m.movieCursor = 0
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKey routes input to the search box while it has focus. Every
// edit re-runs the search so the table follows the query as it is typed.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearch("")
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.applySearch(after)
	}
	return m, cmd
}

func (m *Model) applySearch(query string) {
	if m.catalog == nil {
		return
	}
	m.catalog.Search(query)
	m.movieCursor = 0
}

// moveCursor moves the cursor of the focused pane by delta, staying in range.
func (m *Model) moveCursor(delta int) {
	if m.catalog == nil {
		return
	}
	if m.focused == paneGenres {
		m.genreCursor = clamp(m.genreCursor+delta, 0, len(m.catalog.Genres())-1)
		return
	}
	m.movieCursor = clamp(m.movieCursor+delta, 0, len(m.catalog.View().Data)-1)
}

func (m *Model) selectGenreAtCursor() {
	genres := m.catalog.Genres()
	if m.genreCursor < 0 || m.genreCursor >= len(genres) {
		return
	}
	m.catalog.SelectGenre(genres[m.genreCursor])
	m.searchInput.SetValue("")
	m.movieCursor = 0
	m.focused = paneMovies
}

// changePage moves one page in either direction. The pager only offers
// pages that exist, so the move is ignored at either end.
func (m *Model) changePage(delta int) {
	current := m.catalog.Controls().CurrentPage
	target := current + delta
	if target < 1 || target > m.catalog.PageCount() {
		return
	}
	m.catalog.ChangePage(target)
	m.movieCursor = 0
}

// selectedMovie returns the movie under the cursor on the current page.
func (m Model) selectedMovie() (catalog.Movie, bool) {
	if m.catalog == nil {
		return catalog.Movie{}, false
	}
	rows := m.catalog.View().Data
	if m.movieCursor < 0 || m.movieCursor >= len(rows) {
		return catalog.Movie{}, false
	}
	return rows[m.movieCursor], true
}

func (m *Model) toggleLike() {
	movie, ok := m.selectedMovie()
	if !ok {
		return
	}
	if !m.catalog.ToggleLike(movie.ID) {
		m.logger.Debug("like ignored, movie not found", zap.String("id", movie.ID))
		return
	}
	m.logger.Debug("toggled like", zap.String("id", movie.ID), zap.Bool("liked", !movie.Liked))
}

func (m *Model) deleteSelected() {
	movie, ok := m.selectedMovie()
	if !ok {
		return
	}
	if !m.catalog.DeleteMovie(movie.ID) {
		m.logger.Debug("delete ignored, movie not found", zap.String("id", movie.ID))
		return
	}
	m.notice = fmt.Sprintf("Deleted %q", movie.Title)
	m.logger.Info("deleted movie", zap.String("id", movie.ID), zap.String("title", movie.Title))
	m.movieCursor = clamp(m.movieCursor, 0, len(m.catalog.View().Data)-1)
}
