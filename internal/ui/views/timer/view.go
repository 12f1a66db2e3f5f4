package timer

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "tempo/internal/modules/tracker/dto"
	"tempo/internal/ui/theme"
)

// TickMsg drives the elapsed-time display while a session runs.
type TickMsg time.Time

// Model renders the active timer session. All mutation goes through the app
// model; this view only displays what it is told.
type Model struct {
	active    trackerdto.ActiveSessionOutput
	hasActive bool
	lastStop  trackerdto.StopOutput
	hasStop   bool
	width     int
	height    int
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// SetActive replaces the displayed session.
func (m *Model) SetActive(active trackerdto.ActiveSessionOutput) {
	m.active = active
	m.hasActive = true
	m.hasStop = false
}

// ClearActive drops the displayed session, optionally showing a stop summary.
func (m *Model) ClearActive() {
	m.active = trackerdto.ActiveSessionOutput{}
	m.hasActive = false
}

// ShowStop records the last stop result for display.
func (m *Model) ShowStop(out trackerdto.StopOutput) {
	m.lastStop = out
	m.hasStop = true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case tea.WindowSizeMsg:
		sz := msg.(tea.WindowSizeMsg)
		m.width = sz.Width
		m.height = sz.Height
	case TickMsg:
		if m.hasActive && m.active.State == "running" {
			m.active.ElapsedSeconds++
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	if m.hasActive {
		sb.WriteString(theme.Title.Render(m.active.ActivityTitle) + "\n\n")
		sb.WriteString(theme.Hot.Render(formatClock(m.active.ElapsedSeconds)) + "\n\n")
		sb.WriteString(theme.Muted.Render("state:   ") + m.active.State + "\n")
		sb.WriteString(theme.Muted.Render("started: ") + m.active.StartedAt.Format(time.Kitchen) + "\n")
		if m.active.PausedSeconds > 0 {
			sb.WriteString(theme.Muted.Render("paused:  ") + formatClock(m.active.PausedSeconds) + "\n")
		}
		sb.WriteString("\n" + theme.Muted.Render("space: pause/resume  x: stop  c: cancel"))
	} else {
		sb.WriteString(theme.Muted.Render("No active session") + "\n\n")
		if m.hasStop {
			sb.WriteString(theme.Title.Render("Last session") + "\n")
			sb.WriteString(theme.Muted.Render("tracked:   ") + formatClock(m.lastStop.DurationSeconds) + "\n")
			sb.WriteString(fmt.Sprintf("%s%d%% (%s)\n", theme.Muted.Render("completed: "), m.lastStop.CompletionPct, m.lastStop.Substatus))
			if m.lastStop.JournalPath != "" {
				sb.WriteString(theme.Muted.Render("journal:   ") + m.lastStop.JournalPath + "\n")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(theme.Muted.Render("Select an activity on the Agenda tab and press s"))
	}

	pane := theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func formatClock(seconds int64) string {
	h := seconds / 3600
	min := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, s)
	}
	return fmt.Sprintf("%02d:%02d", min, s)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
