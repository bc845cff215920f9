package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/prefs"
	"github.com/five82/vidly/internal/state"
	"github.com/five82/vidly/internal/view"
)

func newLoadedModel(t *testing.T, cat catalog.Catalog) Model {
	t.Helper()
	store := &state.Store{}
	store.SetSource("sample catalog")
	store.Update(&cat, nil)

	m := New(Options{
		Store:     store,
		PageSize:  4,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = send(t, m, snapshotMsg(store.Snapshot()))
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
}

func newSampleModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalog.Load(context.Background(), catalog.Embedded())
	if err != nil {
		t.Fatalf("load sample catalog: %v", err)
	}
	return newLoadedModel(t, cat)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func titles(m Model) []string {
	var out []string
	for _, movie := range m.catalog.View().Data {
		out = append(out, movie.Title)
	}
	return out
}

func TestModel_FirstPageSortedByTitle(t *testing.T) {
	m := newSampleModel(t)

	want := []string{"Airplane", "Die Hard", "Get Out", "Gone Girl"}
	if got := titles(m); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("first page = %v, want %v", got, want)
	}

	out := m.View()
	for _, s := range []string{"Showing 9 movies in the database", "Airplane", "[1]", "All Genres", "Title ▲"} {
		if !strings.Contains(out, s) {
			t.Fatalf("View() missing %q", s)
		}
	}
}

func TestModel_LoadingBeforeCatalog(t *testing.T) {
	store := &state.Store{}
	store.SetSource("api http://127.0.0.1:3900")
	store.Update(nil, errors.New("execute request: dial tcp: connection refused"))
	store.ScheduleRetry(time.Now().Add(4 * time.Second))

	m := New(Options{Store: store})
	m = send(t, m, snapshotMsg(store.Snapshot()))
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	if m.catalog != nil {
		t.Fatalf("catalog built from a failed snapshot")
	}
	out := m.View()
	if !strings.Contains(out, "OFFLINE") || !strings.Contains(out, "Retrying in") {
		t.Fatalf("View() = %q, want offline header with retry countdown", out)
	}

	// Keys are ignored until the catalog arrives.
	m = send(t, m, runes("d"))
	if m.catalog != nil {
		t.Fatalf("catalog unexpectedly created")
	}
}

func TestModel_EmptyCollection(t *testing.T) {
	m := newLoadedModel(t, catalog.Catalog{})
	if !strings.Contains(m.View(), view.EmptyCollectionMessage) {
		t.Fatalf("View() does not show %q", view.EmptyCollectionMessage)
	}
}

func TestModel_SortKeysToggleOrder(t *testing.T) {
	m := newSampleModel(t)

	m = send(t, m, runes("1"))
	if got := m.catalog.Controls().Sort; got.Path != view.PathTitle || got.Order != view.Descending {
		t.Fatalf("sort after 1 = %+v, want title desc", got)
	}
	if got := titles(m)[0]; got != "Wedding Crashers" {
		t.Fatalf("first title = %q, want Wedding Crashers", got)
	}

	m = send(t, m, runes("3"))
	if got := m.catalog.Controls().Sort; got.Path != view.PathStock || got.Order != view.Ascending {
		t.Fatalf("sort after 3 = %+v, want stock asc", got)
	}
	if got := titles(m)[0]; got != "The Sixth Sense" {
		t.Fatalf("lowest stock = %q, want The Sixth Sense", got)
	}
	if !strings.Contains(m.View(), "Stock ▲") {
		t.Fatalf("View() missing stock sort arrow")
	}
}

func TestModel_SelectGenreFromPane(t *testing.T) {
	m := newSampleModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focused != paneGenres {
		t.Fatalf("focused = %v, want genres", m.focused)
	}
	m = send(t, m, runes("j"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	c := m.catalog.Controls()
	if c.SelectedGenre == nil || c.SelectedGenre.Name != "Action" {
		t.Fatalf("selected genre = %+v, want Action", c.SelectedGenre)
	}
	if m.focused != paneMovies {
		t.Fatalf("focus did not return to the movie pane")
	}
	want := []string{"Die Hard", "Terminator", "The Avengers"}
	if got := titles(m); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("action page = %v, want %v", got, want)
	}
}

func TestModel_SearchClearsGenre(t *testing.T) {
	m := newSampleModel(t)
	m.catalog.SelectGenre(m.catalog.Genres()[2])

	m = send(t, m, runes("/"))
	if !m.searching {
		t.Fatalf("/ did not open the search box")
	}
	m = send(t, m, runes("g"))
	m = send(t, m, runes("o"))

	c := m.catalog.Controls()
	if c.SearchQuery != "go" {
		t.Fatalf("SearchQuery = %q, want go", c.SearchQuery)
	}
	if c.SelectedGenre != nil {
		t.Fatalf("search left genre %+v selected", c.SelectedGenre)
	}
	if got := titles(m); len(got) != 1 || got[0] != "Gone Girl" {
		t.Fatalf("search results = %v, want [Gone Girl]", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatalf("enter did not close the search box")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if got := m.catalog.Controls().SearchQuery; got != "" {
		t.Fatalf("esc left query %q", got)
	}
	if len(titles(m)) != 4 {
		t.Fatalf("clearing search did not restore the full first page")
	}
}

func TestModel_ToggleLikeAndDelete(t *testing.T) {
	m := newSampleModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.catalog.View().Data[0].Liked {
		t.Fatalf("space did not like Airplane")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.catalog.View().Data[0].Liked {
		t.Fatalf("second space did not unlike Airplane")
	}

	m = send(t, m, runes("d"))
	if got := len(m.catalog.Movies()); got != 8 {
		t.Fatalf("movies after delete = %d, want 8", got)
	}
	if got := titles(m)[0]; got != "Die Hard" {
		t.Fatalf("first title after delete = %q, want Die Hard", got)
	}
	if !strings.Contains(m.View(), `Deleted "Airplane"`) {
		t.Fatalf("View() missing delete notice")
	}
}

func TestModel_Paging(t *testing.T) {
	m := newSampleModel(t)

	for range 3 {
		m = send(t, m, runes("]"))
	}
	if got := m.catalog.Controls().CurrentPage; got != 3 {
		t.Fatalf("page = %d, want 3 (last page)", got)
	}
	if got := titles(m); len(got) != 1 || got[0] != "Wedding Crashers" {
		t.Fatalf("last page = %v, want [Wedding Crashers]", got)
	}

	m = send(t, m, runes("["))
	if got := m.catalog.Controls().CurrentPage; got != 2 {
		t.Fatalf("page = %d, want 2", got)
	}
	if !strings.Contains(m.View(), "[2]") {
		t.Fatalf("pager does not mark page 2")
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m := newSampleModel(t)
	before := m.theme.Name

	m = send(t, m, runes("T"))
	if m.theme.Name == before {
		t.Fatalf("theme did not change from %q", before)
	}

	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", p.Theme, m.theme.Name)
	}
}

func TestModel_LogView(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "vidly.log")
	lines := "2026-01-02 10:00:00 INFO catalog loaded {\"movies\": 9}\n" +
		"2026-01-02 10:00:01 WARN catalog fetch failed {\"attempt\": 2}\n"
	if err := os.WriteFile(logPath, []byte(lines), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := newSampleModel(t)
	m.logPath = logPath

	next, cmd := m.Update(runes("L"))
	m = next.(Model)
	if m.currentView != ViewLogs {
		t.Fatalf("L did not open the log view")
	}
	if cmd == nil {
		t.Fatalf("L returned no read command")
	}
	m = send(t, m, cmd())

	if got := len(m.logState.lines); got != 2 {
		t.Fatalf("log lines = %d, want 2", got)
	}
	if out := m.View(); !strings.Contains(out, "catalog fetch failed") {
		t.Fatalf("log view missing WARN line")
	}

	m = send(t, m, runes("v"))
	m = send(t, m, runes("v"))
	if m.logState.minLevel != "WARN" {
		t.Fatalf("minLevel = %q, want WARN", m.logState.minLevel)
	}
	if out := m.View(); strings.Contains(out, "catalog loaded") || !strings.Contains(out, "Log (WARN+)") {
		t.Fatalf("WARN filter not applied")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.currentView != ViewCatalog {
		t.Fatalf("esc did not return to the catalog")
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newSampleModel(t)
	m = send(t, m, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = send(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("dial tcp: connection refused"), "OFFLINE"},
		{errors.New("lookup movies: no such host"), "HOST NOT FOUND"},
		{context.DeadlineExceeded, "TIMEOUT"},
		{&catalog.ValidationError{Fields: map[string]string{"title": "is required"}}, "INVALID CATALOG"},
		{errors.New("boom"), "ERROR"},
	}
	for _, tc := range cases {
		if got := classifyConnectionError(tc.err); got != tc.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestRetryLabel(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	if got := retryLabel(time.Time{}, now); got != "Retrying..." {
		t.Fatalf("retryLabel(zero) = %q", got)
	}
	if got := retryLabel(now.Add(8*time.Second), now); got != "Retrying in 8s" {
		t.Fatalf("retryLabel(+8s) = %q", got)
	}
	if got := retryLabel(now.Add(-time.Second), now); got != "Retrying now" {
		t.Fatalf("retryLabel(past) = %q", got)
	}
}

func TestNextLogLevel(t *testing.T) {
	level := ""
	var seen []string
	for range len(logLevels) {
		level = nextLogLevel(level)
		seen = append(seen, level)
	}
	if strings.Join(seen, ",") != "INFO,WARN,ERROR," {
		t.Fatalf("level cycle = %v", seen)
	}
}
