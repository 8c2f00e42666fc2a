package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	archivedto "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
	sessiondto "github.com/shivam2408/Self-Mediation-App/internal/modules/session/dto"
	"github.com/shivam2408/Self-Mediation-App/internal/ui/components"
	"github.com/shivam2408/Self-Mediation-App/internal/ui/theme"
	historyview "github.com/shivam2408/Self-Mediation-App/internal/ui/views/history"
	sitview "github.com/shivam2408/Self-Mediation-App/internal/ui/views/session"
)

// ─── ports ─────────────────────────────────────────────────────────────────────

type sessionPort interface {
	Start(ctx context.Context) (sessiondto.SnapshotOutput, error)
	Tick(ctx context.Context) (sessiondto.SnapshotOutput, error)
	RecordThought(ctx context.Context) (sessiondto.SnapshotOutput, error)
	TogglePause(ctx context.Context) (sessiondto.SnapshotOutput, error)
	End(ctx context.Context) (sessiondto.EndOutput, error)
	Snapshot(ctx context.Context) (sessiondto.SnapshotOutput, error)
}

type historyPort interface {
	GroupedByDay(ctx context.Context) ([]archivedto.DayGroupOutput, error)
	Totals(ctx context.Context) (archivedto.TotalsOutput, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ─── tab index ─────────────────────────────────────────────────────────────────

type tabID int

const (
	tabSit tabID = iota
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Sit", "History"}

// ─── timer ─────────────────────────────────────────────────────────────────────

// tickEvery is the display cadence. The engine accumulates real deltas
// between ticks, so a late tick never skews recorded durations.
const tickEvery = 100 * time.Millisecond

// tickMsg carries the generation of the chain that scheduled it. Each start
// opens a new generation, so a tick left over from a previous sitting is
// dropped instead of spawning a second chain.
type tickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickEvery, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// ─── async messages ────────────────────────────────────────────────────────────

type snapshotLoadedMsg struct {
	snap sessiondto.SnapshotOutput
	err  error
}

// ─── key bindings ──────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Record  key.Binding
	Pause   key.Binding
	End     key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start sitting")),
		Record:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "note a thought")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		End:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end sitting")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete sitting")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Record, k.Pause, k.End},
		{k.Tab, k.Delete},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ─────────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the timer chain,
// the help overlay, and the command palette. Sitting intents run
// synchronously right here so they apply in the exact order the user (and
// the timer) produced them; only archive reads go through async commands.
type Model struct {
	session sessionPort
	history historyPort

	sitView  sitview.Model
	histView historyview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	lastSnap  sessiondto.SnapshotOutput
	tickGen   int
	status    string
	width     int
	height    int
}

// ─── constructor ───────────────────────────────────────────────────────────────

func NewModel(session sessionPort, history historyPort) Model {
	return Model{
		session:   session,
		history:   history,
		sitView:   sitview.New(),
		histView:  historyview.New(historyPortBridge{p: history}),
		activeTab: tabSit,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.histView.Init(),
		m.loadSnapshotCmd(),
	)
}

// ─── update ────────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Ticks outrank everything, including the palette overlay: the chain
	// only survives by re-arming here, and the clock must not freeze just
	// because an overlay is open.
	if t, ok := msg.(tickMsg); ok {
		return m.handleTick(t)
	}

	// The palette intercepts all other input while open.
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

	case snapshotLoadedMsg:
		if msg.err == nil {
			m.applySnapshot(msg.snap)
		}

	// Archive loads belong to the history view no matter which tab is
	// showing when they land.
	case historyview.LoadedMsg:
		var cmd tea.Cmd
		m.histView, cmd = m.histView.Update(msg)
		return m, cmd

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

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			if m.activeTab == tabHistory {
				cmds = append(cmds, m.histView.Reload())
			}
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			if m.activeTab == tabHistory {
				cmds = append(cmds, m.histView.Reload())
			}
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			return m, m.palette.Open()
		case "s":
			if m.activeTab == tabSit {
				return m.startSitting()
			}
		case " ", "enter":
			if m.activeTab == tabSit {
				return m.recordThought()
			}
		case "p":
			if m.activeTab == tabSit {
				return m.togglePause()
			}
		case "e":
			if m.activeTab == tabSit {
				return m.endSitting()
			}
		case "d":
			if m.activeTab == tabHistory {
				return m.deleteSelected()
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabSit:
		m.sitView, tabCmd = m.sitView.Update(msg)
	case tabHistory:
		m.histView, tabCmd = m.histView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── intents ───────────────────────────────────────────────────────────────────

func (m Model) handleTick(t tickMsg) (tea.Model, tea.Cmd) {
	if t.gen != m.tickGen || !m.lastSnap.Active {
		// Stale chain or the sitting ended; let it die. Start re-arms.
		return m, nil
	}
	out, err := m.session.Tick(context.Background())
	if err == nil {
		m.applySnapshot(out)
	}
	return m, tickCmd(m.tickGen)
}

func (m Model) startSitting() (tea.Model, tea.Cmd) {
	if m.lastSnap.Active {
		m.status = "already sitting"
		return m, nil
	}
	out, err := m.session.Start(context.Background())
	if err != nil {
		m.status = "start: " + err.Error()
		return m, nil
	}
	m.applySnapshot(out)
	m.status = "sitting started"
	m.tickGen++
	return m, tickCmd(m.tickGen)
}

func (m Model) recordThought() (tea.Model, tea.Cmd) {
	prevBest := m.lastSnap.BestGapMs
	out, err := m.session.RecordThought(context.Background())
	if err != nil {
		m.status = "record: " + err.Error()
		return m, nil
	}
	m.applySnapshot(out)
	switch {
	case !out.Active:
		m.status = "no sitting in progress"
	case out.Paused:
		m.status = "paused, press p to resume"
	case out.BestGapMs > prevBest:
		m.status = "new personal best · " + components.FormatGap(out.BestGapMs)
	default:
		m.status = "thought noted · " + components.FormatGap(out.LastGapMs)
	}
	return m, nil
}

func (m Model) togglePause() (tea.Model, tea.Cmd) {
	out, err := m.session.TogglePause(context.Background())
	if err != nil {
		m.status = "pause: " + err.Error()
		return m, nil
	}
	m.applySnapshot(out)
	switch {
	case !out.Active:
		m.status = "no sitting in progress"
	case out.Paused:
		m.status = "paused"
	default:
		m.status = "resumed"
	}
	return m, nil
}

func (m Model) endSitting() (tea.Model, tea.Cmd) {
	wasActive := m.lastSnap.Active
	out, err := m.session.End(context.Background())
	if err != nil {
		m.status = "end: " + err.Error()
		return m, nil
	}
	if snap, err := m.session.Snapshot(context.Background()); err == nil {
		m.applySnapshot(snap)
	}
	switch {
	case out.Archived:
		m.status = fmt.Sprintf("sitting saved · %d thoughts · avg %s",
			out.ThoughtCount, components.FormatGapFloat(out.AvgGapMs))
		return m, m.histView.Reload()
	case wasActive:
		m.status = "sitting ended, nothing to keep"
	default:
		m.status = "no sitting in progress"
	}
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	id, ok := m.histView.SelectedSessionID()
	if !ok {
		m.status = "nothing selected"
		return m, nil
	}
	return m.deleteByID(id)
}

func (m Model) deleteByID(id int64) (tea.Model, tea.Cmd) {
	removed, err := m.history.Delete(context.Background(), id)
	if err != nil {
		m.status = "delete: " + err.Error()
		return m, nil
	}
	if removed {
		m.status = "sitting deleted"
	} else {
		m.status = "no such sitting"
	}
	return m, m.histView.Reload()
}

// ─── view ──────────────────────────────────────────────────────────────────────

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
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSit:
		return m.sitView.View()
	case tabHistory:
		return m.histView.View()
	}
	return ""
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
	bar := "sati  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	switch {
	case m.lastSnap.Paused:
		left = theme.Warn.Render("‖ paused") + "  " + left
	case m.lastSnap.Active:
		left = theme.Calm.Render("● sitting") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ─────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m, nil
	}
	fields := strings.Fields(input)

	switch fields[0] {
	case "session:start":
		return m.startSitting()
	case "session:record":
		return m.recordThought()
	case "session:pause":
		return m.togglePause()
	case "session:end":
		return m.endSitting()
	case "history:delete":
		if len(fields) < 2 {
			m.status = "usage: history:delete <id>"
			return m, nil
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			m.status = "history:delete: not a session id: " + fields[1]
			return m, nil
		}
		return m.deleteByID(id)
	default:
		m.status = "unknown command: " + fields[0]
		return m, nil
	}
}

// ─── helpers ───────────────────────────────────────────────────────────────────

// applySnapshot is the single place the engine state enters the UI.
func (m *Model) applySnapshot(snap sessiondto.SnapshotOutput) {
	m.lastSnap = snap
	m.sitView.SetSnapshot(snap)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.sitView, _ = m.sitView.Update(sz)
	m.histView, _ = m.histView.Update(sz)
}

// ─── async commands ────────────────────────────────────────────────────────────

func (m Model) loadSnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.session.Snapshot(context.Background())
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

// ─── port bridges ──────────────────────────────────────────────────────────────

// historyPortBridge narrows historyPort to what the history view needs; the
// delete path stays at this orchestration level.
type historyPortBridge struct{ p historyPort }

func (b historyPortBridge) GroupedByDay(ctx context.Context) ([]archivedto.DayGroupOutput, error) {
	return b.p.GroupedByDay(ctx)
}

func (b historyPortBridge) Totals(ctx context.Context) (archivedto.TotalsOutput, error) {
	return b.p.Totals(ctx)
}
