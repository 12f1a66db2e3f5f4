package agenda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "tempo/internal/modules/catalog/dto"
	scheduledto "tempo/internal/modules/schedule/dto"
	"tempo/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListDay(ctx context.Context, day string) ([]catalogdto.ActivityOutput, error)
}

type SchedulePort interface {
	ConflictsForDay(ctx context.Context, day string) ([]scheduledto.ConflictOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type DayLoadedMsg struct {
	Day        string
	Activities []catalogdto.ActivityOutput
	Conflicts  []scheduledto.ConflictOutput
	Err        error
}

// ─── list item ───────────────────────────────────────────────────────────────

type activityItem struct {
	activity   catalogdto.ActivityOutput
	conflicted bool
}

func (i activityItem) Title() string {
	marker := ""
	if i.conflicted {
		marker = " ⚠"
	}
	return i.activity.Title + marker
}

func (i activityItem) Description() string {
	window := "unscheduled"
	if i.activity.Start != nil {
		if i.activity.End != nil {
			window = i.activity.Start.Format("15:04") + "–" + i.activity.End.Format("15:04")
		} else {
			window = i.activity.Start.Format("15:04")
		}
	}
	return fmt.Sprintf("%s  %s  %s", i.activity.Kind, window, i.activity.Status)
}

func (i activityItem) FilterValue() string { return i.activity.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	catalog   CatalogPort
	schedule  SchedulePort
	day       string
	list      list.Model
	detail    viewport.Model
	spinner   spinner.Model
	conflicts []scheduledto.ConflictOutput
	loading   bool
	width     int
	height    int
}

func New(catalog CatalogPort, schedule SchedulePort, day string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Agenda " + day
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		catalog:  catalog,
		schedule: schedule,
		day:      day,
		list:     l,
		detail:   vp,
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadDayCmd(m.day), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case DayLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Agenda — " + msg.Err.Error()
			return m, nil
		}
		m.day = msg.Day
		m.conflicts = msg.Conflicts
		m.list.Title = "Agenda " + msg.Day
		conflicted := map[string]bool{}
		for _, c := range msg.Conflicts {
			conflicted[c.AnchorID] = true
			conflicted[c.OtherID] = true
		}
		items := make([]list.Item, len(msg.Activities))
		for i, a := range msg.Activities {
			items[i] = activityItem{activity: a, conflicted: conflicted[a.ID]}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading agenda…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Day returns the currently displayed day.
func (m Model) Day() string { return m.day }

// SelectedActivity returns the current selection, if any.
func (m Model) SelectedActivity() (catalogdto.ActivityOutput, bool) {
	if item, ok := m.list.SelectedItem().(activityItem); ok {
		return item.activity, true
	}
	return catalogdto.ActivityOutput{}, false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload rebuilds the view for the given day.
func (m *Model) Reload(day string) tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadDayCmd(day), m.spinner.Tick)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(activityItem)
	if !ok {
		return theme.Muted.Render("Select an activity to see details")
	}
	a := item.activity

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(a.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:      ") + a.ID + "\n")
	sb.WriteString(theme.Muted.Render("kind:    ") + a.Kind + "\n")
	sb.WriteString(theme.Muted.Render("status:  ") + a.Status + "\n")
	if a.Start != nil {
		sb.WriteString(theme.Muted.Render("start:   ") + a.Start.Format(time.Kitchen) + "\n")
	}
	if a.End != nil {
		sb.WriteString(theme.Muted.Render("end:     ") + a.End.Format(time.Kitchen) + "\n")
	}
	if a.DoneSubstatus != "" {
		sb.WriteString(fmt.Sprintf("%s%s (%d%%)\n", theme.Muted.Render("done:    "), a.DoneSubstatus, a.CompletionPct))
	}
	if len(a.Tags) > 0 {
		sb.WriteString(theme.Muted.Render("tags:    ") + strings.Join(a.Tags, ", ") + "\n")
	}

	var mine []scheduledto.ConflictOutput
	for _, c := range m.conflicts {
		if c.AnchorID == a.ID || c.OtherID == a.ID {
			mine = append(mine, c)
		}
	}
	if len(mine) > 0 {
		sb.WriteString("\n" + theme.Bad.Render("Conflicts") + "\n")
		for _, c := range mine {
			otherID := c.OtherID
			otherStart, otherEnd := c.OtherStart, c.OtherEnd
			if c.OtherID == a.ID {
				otherID = c.AnchorID
				otherStart, otherEnd = c.AnchorStart, c.AnchorEnd
			}
			sb.WriteString(fmt.Sprintf("  %s  %s–%s\n",
				otherID, otherStart.Format("15:04"), otherEnd.Format("15:04")))
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("s: start timer  p: propose reordering"))
	return sb.String()
}

func (m Model) loadDayCmd(day string) tea.Cmd {
	return func() tea.Msg {
		activities, err := m.catalog.ListDay(context.Background(), day)
		if err != nil {
			return DayLoadedMsg{Day: day, Err: err}
		}
		conflicts, err := m.schedule.ConflictsForDay(context.Background(), day)
		if err != nil {
			return DayLoadedMsg{Day: day, Err: err}
		}
		return DayLoadedMsg{Day: day, Activities: activities, Conflicts: conflicts}
	}
}
