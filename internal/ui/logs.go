package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vidly/internal/logtail"
)

// logTailLimit caps how many lines of the log file the view keeps.
const logTailLimit = 500

// logLevels are the minimum levels the v key cycles through. The empty
// level shows everything.
var logLevels = []string{"", "INFO", "WARN", "ERROR"}

// logState holds all log-related state.
type logState struct {
	lines    []string
	follow   bool
	minLevel string
	err      error

	// rendered is false when the viewport content is stale.
	rendered bool
}

type logLinesMsg struct {
	lines []string
	err   error
}

// readLogsCmd tails the log file off the update loop.
func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, logTailLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logState.err = msg.err
	if msg.err == nil {
		m.logState.lines = msg.lines
	}
	m.logState.rendered = false
	m.updateLogViewport()
}

// updateLogViewport sizes the viewport and refreshes its content when stale.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}

	// Box inner height = height - header - cmdbar - status - borders.
	m.logViewport.Width = max(m.width-4, 1)
	m.logViewport.Height = max(m.height-5, 1)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	if !m.logState.rendered {
		m.logViewport.SetContent(m.renderLogContent())
		m.logState.rendered = true
	}

	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogContent colors each line by level and drops lines below the
// minimum level.
func (m *Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := m.logViewport.Width

	if m.logState.err != nil {
		return bg.FillLine(bg.Render("Cannot read log: "+m.logState.err.Error(), styles.DangerText), width)
	}
	if m.logPath == "" {
		return bg.FillLine(bg.Render("Logging to a file is disabled", styles.MutedText), width)
	}

	lines := logtail.Filter(m.logState.lines, m.logState.minLevel)
	if len(lines) == 0 {
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(bg.FillLine(m.colorizeLine(line, styles, bg), width))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) colorizeLine(line string, styles Styles, bg BgStyle) string {
	entry := logtail.Parse(line)
	if entry.Level == "" {
		return bg.Render(line, styles.MutedText)
	}

	out := bg.Render(entry.Time, styles.FaintText) + bg.Space() +
		bg.Render(fmt.Sprintf("%-5s", entry.Level), styles.LevelStyle(entry.Level)) + bg.Space() +
		bg.Render(entry.Message, styles.Text)
	if entry.Fields != "" {
		out += bg.Space() + bg.Render(entry.Fields, styles.MutedText)
	}
	return out
}

// handleLogsKey processes keyboard input for the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewCatalog
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		m.updateLogViewport()
		if m.logState.follow {
			return m, readLogsCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleLevel):
		m.logState.minLevel = nextLogLevel(m.logState.minLevel)
		m.logState.rendered = false
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.logState.follow = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
		m.logState.follow = false
		return m, nil
	}

	return m, nil
}

func nextLogLevel(current string) string {
	for i, level := range logLevels {
		if level == current {
			return logLevels[(i+1)%len(logLevels)]
		}
	}
	return logLevels[0]
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	contentHeight := m.height - 3 // header + cmdbar + status bar

	title := "Log"
	if m.logState.minLevel != "" {
		title = fmt.Sprintf("Log (%s+)", m.logState.minLevel)
	}

	box := m.renderTitledBox(title, m.logViewport.View(), m.width, contentHeight, true)
	return box + "\n" + m.renderLogStatus(styles, bg)
}

// renderLogStatus renders the line below the log box.
func (m Model) renderLogStatus(styles Styles, bg BgStyle) string {
	autoTail := "off"
	if m.logState.follow {
		autoTail = "on"
	}

	var parts []string
	if m.logPath != "" {
		parts = append(parts, bg.Render(truncate(m.logPath, 50), styles.AccentText))
	}
	parts = append(parts, bg.Render(fmt.Sprintf("%d lines auto-tail %s", len(m.logState.lines), autoTail), styles.FaintText))

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return strings.Join(parts, sep)
}
