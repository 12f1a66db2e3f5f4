package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "tempo/internal/modules/catalog/dto"
	exportdto "tempo/internal/modules/export/dto"
	scheduledto "tempo/internal/modules/schedule/dto"
	trackerdto "tempo/internal/modules/tracker/dto"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/ui/components"
	"tempo/internal/ui/theme"
	agendaview "tempo/internal/ui/views/agenda"
	timerview "tempo/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	ListDay(ctx context.Context, day string) ([]catalogdto.ActivityOutput, error)
}

type schedulePort interface {
	ConflictsForDay(ctx context.Context, day string) ([]scheduledto.ConflictOutput, error)
	ProposeReordering(ctx context.Context, conflicts []scheduledto.ConflictOutput) (scheduledto.ProposalOutput, error)
	ApplyProposal(ctx context.Context, input scheduledto.ApplyInput) (scheduledto.ApplyOutput, error)
}

type trackerPort interface {
	Start(ctx context.Context, input trackerdto.StartInput) (trackerdto.StartOutput, error)
	Pause(ctx context.Context, input trackerdto.PauseInput) (trackerdto.ActiveSessionOutput, error)
	Resume(ctx context.Context, input trackerdto.ResumeInput) (trackerdto.ActiveSessionOutput, error)
	Stop(ctx context.Context, input trackerdto.StopInput) (trackerdto.StopOutput, error)
	Cancel(ctx context.Context, input trackerdto.CancelInput) (trackerdto.CancelOutput, error)
	GetActive(ctx context.Context) (trackerdto.ActiveSessionOutput, error)
}

type exportPort interface {
	Execute(ctx context.Context, input exportdto.ExecuteInput) (exportdto.ExecuteOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabAgenda tabID = iota
	tabTimer
	tabCount
)

var tabLabels = [tabCount]string{"Agenda", "Timer"}

// ─── async messages ───────────────────────────────────────────────────────────

type activeLoadedMsg struct {
	active trackerdto.ActiveSessionOutput
	err    error
}

type timerChangedMsg struct {
	active trackerdto.ActiveSessionOutput
	err    error
}

type timerStoppedMsg struct {
	out    trackerdto.StopOutput
	reason string
	err    error
}

type proposalReadyMsg struct {
	proposal scheduledto.ProposalOutput
	err      error
}

type proposalAppliedMsg struct {
	out scheduledto.ApplyOutput
	err error
}

type exportDoneMsg struct {
	out exportdto.ExecuteOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Propose key.Binding
	Toggle  key.Binding
	Stop    key.Binding
	Cancel  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start timer")),
		Propose: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "propose reordering")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop timer")),
		Cancel:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel timer")),
		PrevDay: key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "change day")),
		NextDay: key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "change day")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Start, k.Propose},
		{k.Toggle, k.Stop, k.Cancel},
		{k.PrevDay, k.NextDay},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, timer state,
// the global help overlay, and the command palette. All business logic is
// delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	dataPath string

	schedule schedulePort
	tracker  trackerPort
	export   exportPort

	agendaView agendaview.Model
	timerView  timerview.Model

	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	activeSession trackerdto.ActiveSessionOutput
	hasActive     bool
	proposal      *scheduledto.ProposalOutput
	status        string
	width         int
	height        int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	dataPath string,
	catalog catalogPort,
	schedule schedulePort,
	tracker trackerPort,
	export exportPort,
	today string,
) Model {
	return Model{
		dataPath:   dataPath,
		schedule:   schedule,
		tracker:    tracker,
		export:     export,
		agendaView: agendaview.New(catalogBridge{p: catalog}, scheduleBridge{p: schedule}, today),
		timerView:  timerview.New(),
		activeTab:  tabAgenda,
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.agendaView.Init(),
		m.timerView.Init(),
		m.loadActiveCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case activeLoadedMsg:
		if msg.err != nil {
			if msg.err != apperrors.ErrNoActiveSession {
				m.status = "active session check: " + msg.err.Error()
			}
			m.hasActive = false
		} else {
			m.hasActive = true
			m.activeSession = msg.active
			m.timerView.SetActive(msg.active)
			m.status = "session recovered: " + msg.active.ActivityTitle
		}

	case timerChangedMsg:
		if msg.err != nil {
			m.status = "timer: " + msg.err.Error()
		} else {
			m.hasActive = true
			m.activeSession = msg.active
			m.timerView.SetActive(msg.active)
			m.status = fmt.Sprintf("timer %s: %s", msg.active.State, msg.active.ActivityTitle)
			m.activeTab = tabTimer
		}

	case timerStoppedMsg:
		if msg.err != nil {
			m.status = "timer: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.activeSession = trackerdto.ActiveSessionOutput{}
			m.timerView.ClearActive()
			if msg.reason == "" {
				m.timerView.ShowStop(msg.out)
				m.status = fmt.Sprintf("session done: %d%% (%s)", msg.out.CompletionPct, msg.out.Substatus)
			} else {
				m.status = "session cancelled: " + msg.reason
			}
			cmds = append(cmds, m.agendaView.Reload(m.agendaView.Day()))
		}

	case proposalReadyMsg:
		if msg.err != nil {
			m.status = "propose: " + msg.err.Error()
		} else if len(msg.proposal.Changes) == 0 {
			m.proposal = nil
			m.status = "no movable activities to shift"
		} else {
			p := msg.proposal
			m.proposal = &p
			m.status = fmt.Sprintf("proposal: %d move(s), ~%ds shift; conflicts:apply to confirm",
				len(p.Changes), p.EstimatedShiftSeconds)
		}

	case proposalAppliedMsg:
		m.proposal = nil
		if msg.err != nil {
			m.status = "apply: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("applied %d change(s)", msg.out.Applied)
			cmds = append(cmds, m.agendaView.Reload(m.agendaView.Day()))
		}

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export: " + msg.err.Error()
		} else {
			out := msg.out.Stdout
			if out == "" {
				out = msg.out.OutputJSON
			}
			m.status = fmt.Sprintf("export %s/%s: %s", msg.out.PluginName, msg.out.CommandID, out)
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the agenda list when its search filter is active.
		if m.activeTab == tabAgenda && m.agendaView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "s":
			if m.activeTab == tabAgenda {
				if a, ok := m.agendaView.SelectedActivity(); ok {
					cmds = append(cmds, m.startTimerCmd(a.ID, a.Kind))
				}
			}
		case "p":
			if m.activeTab == tabAgenda {
				cmds = append(cmds, m.proposeCmd(m.agendaView.Day()))
			}
		case " ":
			if m.hasActive {
				if m.activeSession.State == "paused" {
					cmds = append(cmds, m.resumeTimerCmd())
				} else {
					cmds = append(cmds, m.pauseTimerCmd())
				}
			}
		case "x":
			if m.hasActive {
				cmds = append(cmds, m.stopTimerCmd(""))
			}
		case "c":
			if m.hasActive {
				cmds = append(cmds, m.cancelTimerCmd("cancelled from tui"))
			}
		case "left":
			if m.activeTab == tabAgenda {
				cmds = append(cmds, m.agendaView.Reload(shiftDay(m.agendaView.Day(), -1)))
			}
		case "right":
			if m.activeTab == tabAgenda {
				cmds = append(cmds, m.agendaView.Reload(shiftDay(m.agendaView.Day(), 1)))
			}
		}
	}

	// Propagate the message to the active tab's sub-view. Timer ticks always
	// go through so the elapsed display keeps moving in the background.
	var tabCmd tea.Cmd
	if _, isTick := msg.(timerview.TickMsg); isTick || m.activeTab == tabTimer {
		m.timerView, tabCmd = m.timerView.Update(msg)
	} else {
		m.agendaView, tabCmd = m.agendaView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.activeTab == tabTimer:
		content = m.timerView.View()
	default:
		content = m.agendaView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tempo  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render("● "+m.activeSession.ActivityTitle) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "timer:start":
		a, ok := m.agendaView.SelectedActivity()
		if !ok {
			m.status = "no activity selected"
			return m, nil
		}
		return m, m.startTimerCmd(a.ID, a.Kind)

	case "timer:pause":
		return m, m.pauseTimerCmd()

	case "timer:resume":
		return m, m.resumeTimerCmd()

	case "timer:stop":
		notes := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.stopTimerCmd(notes)

	case "timer:cancel":
		reason := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if reason == "" {
			reason = "cancelled from tui"
		}
		return m, m.cancelTimerCmd(reason)

	case "conflicts:check":
		return m, m.agendaView.Reload(m.agendaView.Day())

	case "conflicts:propose":
		return m, m.proposeCmd(m.agendaView.Day())

	case "conflicts:apply":
		if m.proposal == nil {
			m.status = "no pending proposal; run conflicts:propose first"
			return m, nil
		}
		return m, m.applyProposalCmd(*m.proposal)

	case "agenda:day":
		if len(parts) < 2 {
			m.status = "usage: agenda:day <yyyy-mm-dd>"
			return m, nil
		}
		if _, err := time.Parse("2006-01-02", parts[1]); err != nil {
			m.status = "invalid day: " + parts[1]
			return m, nil
		}
		m.activeTab = tabAgenda
		return m, m.agendaView.Reload(parts[1])

	case "export:run":
		if len(parts) < 3 {
			m.status = "usage: export:run <plugin> <command> [json]"
			return m, nil
		}
		prefix := parts[0] + " " + parts[1] + " " + parts[2]
		inputJSON := strings.TrimSpace(strings.TrimPrefix(input, prefix))
		return m, m.exportRunCmd(parts[1], parts[2], inputJSON)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.agendaView, _ = m.agendaView.Update(sz)
	m.timerView, _ = m.timerView.Update(sz)
}

func shiftDay(day string, delta int) string {
	t, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, delta).Format("2006-01-02")
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.tracker.GetActive(context.Background())
		return activeLoadedMsg{active: active, err: err}
	}
}

func (m Model) startTimerCmd(activityID, kind string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.Start(context.Background(), trackerdto.StartInput{ActivityID: activityID, Kind: kind})
		if err != nil {
			return timerChangedMsg{err: err}
		}
		return timerChangedMsg{active: trackerdto.ActiveSessionOutput{
			SessionID:     out.SessionID,
			ActivityID:    out.ActivityID,
			ActivityTitle: out.ActivityTitle,
			State:         "running",
			StartedAt:     out.StartedAt,
		}}
	}
}

func (m Model) pauseTimerCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.tracker.Pause(context.Background(), trackerdto.PauseInput{})
		return timerChangedMsg{active: active, err: err}
	}
}

func (m Model) resumeTimerCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.tracker.Resume(context.Background(), trackerdto.ResumeInput{})
		return timerChangedMsg{active: active, err: err}
	}
}

func (m Model) stopTimerCmd(notes string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.Stop(context.Background(), trackerdto.StopInput{Notes: notes})
		return timerStoppedMsg{out: out, err: err}
	}
}

func (m Model) cancelTimerCmd(reason string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.tracker.Cancel(context.Background(), trackerdto.CancelInput{Reason: reason})
		return timerStoppedMsg{reason: reason, err: err}
	}
}

func (m Model) proposeCmd(day string) tea.Cmd {
	return func() tea.Msg {
		conflicts, err := m.schedule.ConflictsForDay(context.Background(), day)
		if err != nil {
			return proposalReadyMsg{err: err}
		}
		if len(conflicts) == 0 {
			return proposalReadyMsg{}
		}
		proposal, err := m.schedule.ProposeReordering(context.Background(), conflicts)
		return proposalReadyMsg{proposal: proposal, err: err}
	}
}

func (m Model) applyProposalCmd(proposal scheduledto.ProposalOutput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.schedule.ApplyProposal(context.Background(), scheduledto.ApplyInput{Changes: proposal.Changes})
		return proposalAppliedMsg{out: out, err: err}
	}
}

func (m Model) exportRunCmd(pluginName, commandID, inputJSON string) tea.Cmd {
	return func() tea.Msg {
		if m.export == nil {
			return exportDoneMsg{err: fmt.Errorf("export adapter not configured")}
		}
		out, err := m.export.Execute(context.Background(), exportdto.ExecuteInput{
			PluginName: pluginName,
			CommandID:  commandID,
			InputJSON:  inputJSON,
			SessionID:  m.activeSession.SessionID,
			DataPath:   m.dataPath,
			Cwd:        m.dataPath,
		})
		return exportDoneMsg{out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type catalogBridge struct{ p catalogPort }

func (b catalogBridge) ListDay(ctx context.Context, day string) ([]catalogdto.ActivityOutput, error) {
	return b.p.ListDay(ctx, day)
}

type scheduleBridge struct{ p schedulePort }

func (b scheduleBridge) ConflictsForDay(ctx context.Context, day string) ([]scheduledto.ConflictOutput, error) {
	return b.p.ConflictsForDay(ctx, day)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
