package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	archivedto "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
	"github.com/shivam2408/Self-Mediation-App/internal/ui/components"
	"github.com/shivam2408/Self-Mediation-App/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	GroupedByDay(ctx context.Context) ([]archivedto.DayGroupOutput, error)
	Totals(ctx context.Context) (archivedto.TotalsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Groups []archivedto.DayGroupOutput
	Totals archivedto.TotalsOutput
	Err    error
}

// ─── rows ────────────────────────────────────────────────────────────────────

// row is one rendered line of the left pane: either a day heading or a
// sitting under it. The cursor only ever rests on sitting rows.
type row struct {
	header  bool
	day     string
	session archivedto.SessionOutput
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    HistoryPort
	rows    []row
	cursor  int
	totals  archivedto.TotalsOutput
	list    viewport.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	loadErr error
	width   int
	height  int
}

func New(port HistoryPort) Model {
	lv := viewport.New(0, 0)
	dv := viewport.New(0, 0)
	dv.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    lv,
		detail:  dv,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload fetches the archive again. The app model fires it after anything
// that can change history: an archived sitting, a delete, a tab switch.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		groups, err := m.port.GroupedByDay(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		totals, err := m.port.Totals(context.Background())
		return LoadedMsg{Groups: groups, Totals: totals, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()

	case LoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.rows = flatten(msg.Groups)
			m.totals = msg.Totals
			m.clampCursor()
		}
		m.refresh()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.move(-1)
			m.refresh()
		case "down", "j":
			m.move(1)
			m.refresh()
		default:
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// SelectedSessionID returns the id under the cursor, if any.
func (m Model) SelectedSessionID() (int64, bool) {
	if m.cursor >= 0 && m.cursor < len(m.rows) && !m.rows[m.cursor].header {
		return m.rows[m.cursor].session.ID, true
	}
	return 0, false
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading history…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("history unavailable: "+m.loadErr.Error()))
	}
	if len(m.rows) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("no sittings yet"))
	}

	footer := m.renderTotals()
	footerH := lipgloss.Height(footer)
	paneH := m.height - footerH
	if paneH < 1 {
		paneH = 1
	}

	listW := m.width * 6 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(paneH).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(paneH - 2).
		Render(m.detail.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
	return lipgloss.JoinVertical(lipgloss.Left, panes, footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func flatten(groups []archivedto.DayGroupOutput) []row {
	var rows []row
	for _, group := range groups {
		rows = append(rows, row{header: true, day: group.Day})
		for _, session := range group.Sessions {
			rows = append(rows, row{day: group.Day, session: session})
		}
	}
	return rows
}

// clampCursor parks the cursor on the nearest sitting row, preferring the
// one it was on before the archive changed underneath it.
func (m *Model) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if !m.rows[m.cursor].header {
		return
	}
	for i := m.cursor + 1; i < len(m.rows); i++ {
		if !m.rows[i].header {
			m.cursor = i
			return
		}
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if !m.rows[i].header {
			m.cursor = i
			return
		}
	}
}

func (m *Model) move(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.rows); i += delta {
		if !m.rows[i].header {
			m.cursor = i
			return
		}
	}
}

func (m *Model) resize() {
	listW := m.width * 6 / 10
	detailW := m.width - listW
	footerH := 1

	m.list.Width = listW
	m.list.Height = m.height - footerH
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - footerH - 4
	if m.list.Height < 1 {
		m.list.Height = 1
	}
	if m.detail.Height < 1 {
		m.detail.Height = 1
	}
}

// refresh re-renders both panes and keeps the cursor line in view.
func (m *Model) refresh() {
	m.list.SetContent(m.renderRows())
	m.detail.SetContent(m.renderDetail())

	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	}
	if m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m Model) renderRows() string {
	var sb strings.Builder
	for i, r := range m.rows {
		if r.header {
			sb.WriteString(theme.Title.Render(r.day))
		} else {
			line := fmt.Sprintf("%s  %d thoughts · avg %s · %s",
				sittingTime(r.session.DateISO),
				r.session.ThoughtCount,
				components.FormatGapFloat(r.session.AvgGapMs),
				components.FormatGap(r.session.TotalDurationMs))
			if i == m.cursor {
				sb.WriteString(theme.Hot.Render("▸ " + line))
			} else {
				sb.WriteString("  " + line)
			}
		}
		if i < len(m.rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) renderDetail() string {
	if m.cursor >= len(m.rows) || len(m.rows) == 0 || m.rows[m.cursor].header {
		return theme.Muted.Render("select a sitting")
	}
	s := m.rows[m.cursor].session

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.rows[m.cursor].day+" · "+sittingTime(s.DateISO)) + "\n\n")
	sb.WriteString(theme.Muted.Render("thoughts ") + fmt.Sprintf("%d", s.ThoughtCount) + "\n")
	sb.WriteString(theme.Muted.Render("total    ") + components.FormatGap(s.TotalDurationMs) + "\n")
	sb.WriteString(theme.Muted.Render("longest  ") + components.FormatGap(s.LongestGapMs) + "\n")
	sb.WriteString(theme.Muted.Render("average  ") + components.FormatGapFloat(s.AvgGapMs) + "\n")
	sb.WriteString("\n" + theme.Muted.Render("gaps") + "\n")
	for _, iv := range s.Intervals {
		sb.WriteString(fmt.Sprintf("  %2d  %s\n", iv.ID, components.FormatGap(iv.DurationMs)))
	}
	sb.WriteString("\n" + theme.Muted.Render("d: delete this sitting"))
	return sb.String()
}

func (m Model) renderTotals() string {
	t := m.totals
	line := fmt.Sprintf("%d sittings · %d thoughts · %s sat · avg gap %s",
		t.Sessions, t.Thoughts,
		components.FormatGap(t.DurationMs),
		components.FormatGapFloat(t.AvgGapMs))
	return theme.Muted.Render(line)
}

// sittingTime renders the local wall-clock time a sitting ended.
func sittingTime(dateISO string) string {
	endedAt, err := time.Parse(time.RFC3339, dateISO)
	if err != nil {
		return "--:--"
	}
	return endedAt.In(time.Local).Format("15:04")
}
