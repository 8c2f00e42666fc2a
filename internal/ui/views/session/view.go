package session

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "github.com/shivam2408/Self-Mediation-App/internal/modules/session/dto"
	"github.com/shivam2408/Self-Mediation-App/internal/ui/components"
	"github.com/shivam2408/Self-Mediation-App/internal/ui/theme"
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the live sitting. It holds no engine state of its own: the
// app model pushes a fresh snapshot after every intent and tick, and this
// view only draws it.
type Model struct {
	snap   sessiondto.SnapshotOutput
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sz.Width
		m.height = sz.Height
	}
	return m, nil
}

// SetSnapshot replaces the rendered state.
func (m *Model) SetSnapshot(snap sessiondto.SnapshotOutput) {
	m.snap = snap
}

// ─── view ────────────────────────────────────────────────────────────────────

var (
	clockStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	statStyle  = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

func (m Model) View() string {
	var sb strings.Builder

	switch {
	case m.snap.Paused:
		sb.WriteString(theme.Warn.Render("‖ paused") + "\n\n")
	case m.snap.Active:
		sb.WriteString(theme.Calm.Render("● sitting") + "\n\n")
	default:
		sb.WriteString(theme.Muted.Render("○ ready") + "\n\n")
	}

	if m.snap.Active {
		sb.WriteString(clockStyle.Render(components.FormatClock(m.snap.ElapsedMs)) + "\n")
		sb.WriteString(theme.Muted.Render("since the last thought") + "\n\n")
		sb.WriteString(m.statLine() + "\n\n")
		if m.snap.Paused {
			sb.WriteString(theme.Muted.Render("p: resume   e: end"))
		} else {
			sb.WriteString(theme.Muted.Render("space: note a thought   p: pause   e: end"))
		}
	} else {
		sb.WriteString(theme.Muted.Render("press s to begin a sitting") + "\n\n")
		if m.snap.BestGapMs > 0 {
			sb.WriteString(statStyle.Render("personal best  "+components.FormatGap(m.snap.BestGapMs)) + "\n")
		}
	}

	card := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) statLine() string {
	parts := []string{
		"thoughts " + theme.Title.Render(strconv.Itoa(m.snap.ThoughtCount)),
	}
	if m.snap.LastGapMs > 0 {
		parts = append(parts, "last gap "+components.FormatGap(m.snap.LastGapMs))
	}
	if m.snap.BestGapMs > 0 {
		parts = append(parts, "best "+components.FormatGap(m.snap.BestGapMs))
	}
	return statStyle.Render(strings.Join(parts, "  ·  "))
}
