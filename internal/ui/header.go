package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/view"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.catalog == nil {
		return m.renderLoadingHeader(styles, bg)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.buildStatusContent(styles, bg))
}

// renderLoadingHeader shows the loading or retrying state.
func (m Model) renderLoadingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)
	source := m.snapshot.Source
	if source == "" {
		source = "catalog source"
	}

	if m.snapshot.LastError != nil {
		parts := []string{
			bg.Render("vidly", styles.Logo),
			bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render(retryLabel(m.snapshot.NextAttempt, time.Now()), styles.WarningText.Bold(true)),
			bg.Render(truncate(source, 50), styles.MutedText),
		}
		if m.snapshot.IsOffline() {
			parts = append(parts, bg.Render(fmt.Sprintf("%d failed attempts", m.snapshot.ConsecutiveFailures), styles.FaintText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("vidly", styles.Logo) + sep +
			bg.Render("Loading catalog from "+source+"...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent summarizes the collection and the active controls.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	controls := m.catalog.Controls()
	compact := m.width < 100

	parts := []string{bg.Render("vidly", styles.Logo)}

	parts = append(parts,
		bg.Render("Movies:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.catalog.Movies())), styles.Text),
	)

	parts = append(parts, bg.Render(truncate(filterLabel(controls), 30), styles.AccentText))

	sortLabel := "Sort:"
	if compact {
		sortLabel = "S:"
	}
	parts = append(parts,
		bg.Render(sortLabel, styles.MutedText)+bg.Space()+
			bg.Render(sortColumnLabel(controls.Sort.Path)+" "+controls.Sort.Order.Arrow(), styles.Text),
	)

	if pages := m.catalog.PageCount(); pages > 0 {
		parts = append(parts,
			bg.Render("Page:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", controls.CurrentPage, pages), styles.Text),
		)
	}

	if !compact && m.snapshot.Source != "" {
		parts = append(parts, bg.Render(truncate(m.snapshot.Source, 40), styles.FaintText))
	}

	return bg.Join(parts, "  ")
}

func sortColumnLabel(path view.SortPath) string {
	for _, col := range view.Columns {
		if col.Path == path {
			return col.Label
		}
	}
	return string(path)
}

// retryLabel describes when the loader tries again.
func retryLabel(next, now time.Time) string {
	if next.IsZero() {
		return "Retrying..."
	}
	wait := next.Sub(now).Round(time.Second)
	if wait <= 0 {
		return "Retrying now"
	}
	return fmt.Sprintf("Retrying in %ds", int(wait.Seconds()))
}

// classifyConnectionError returns a short description of a load error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var verr *catalog.ValidationError
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case errors.As(err, &verr):
		return "INVALID CATALOG"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		followLabel := "Pause"
		if !m.logState.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"v", "Level"},
			{"j/k", "Scroll"},
			{"esc", "Catalog"},
			{"?", "More"},
		}
	default:
		if m.searching {
			commands = []cmd{
				{"enter", "Done"},
				{"esc", "Clear"},
			}
			break
		}
		commands = []cmd{
			{"tab", "Pane"},
			{"/", "Search"},
			{"1-5", "Sort"},
			{"[/]", "Page"},
			{"Space", "Like"},
			{"d", "Delete"},
			{"L", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
