// Package tui renders the interactive rename preview. The model wraps
// the computed plan in a scrollable viewport; nothing touches the
// filesystem until the user confirms.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Digital-Shane/bangumi-tidy/internal/rename"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("237")).Padding(0, 1)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// PreviewModel is the Bubble Tea model for the rename preview screen.
type PreviewModel struct {
	plan *rename.Plan
	link bool

	width    int
	height   int
	viewport viewport.Model
	ready    bool

	applied bool
	result  rename.Result
}

// NewPreviewModel wraps a computed plan. With link set, confirming
// hard-links instead of moving.
func NewPreviewModel(plan *rename.Plan, link bool) *PreviewModel {
	return &PreviewModel{plan: plan, link: link}
}

func (m *PreviewModel) Init() tea.Cmd { return nil }

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		contentHeight := max(m.height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(m.width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.renderPlan())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter", "y":
			if !m.applied {
				m.result = rename.Execute(m.plan, m.link)
				m.applied = true
				m.viewport.SetContent(m.renderPlan())
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PreviewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	verb := "move"
	if m.link {
		verb = "link"
	}
	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("bangumi-tidy · %s %d files", verb, len(m.plan.Files)))

	var status string
	if m.applied {
		status = fmt.Sprintf("moved %d  linked %d  skipped %d  errors %d · q: quit",
			m.result.Moved, m.result.Linked, m.result.Skipped, m.result.Errors)
	} else {
		status = "enter: apply · ↑/↓: scroll · q: quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		statusStyle.Width(m.width).Render(status),
	)
}

// renderPlan lays the plan out as name → destination rows. Names are
// padded by display width, not byte length, so CJK titles line up.
func (m *PreviewModel) renderPlan() string {
	nameWidth := 0
	for _, node := range m.plan.Files {
		if w := runewidth.StringWidth(node.Data().Name()); w > nameWidth {
			nameWidth = w
		}
	}
	if limit := m.width/2 - 2; nameWidth > limit && limit > 0 {
		nameWidth = limit
	}

	var b strings.Builder
	for _, node := range m.plan.Files {
		meta := rename.GetMeta(node)
		name := runewidth.FillRight(runewidth.Truncate(node.Data().Name(), nameWidth, "…"), nameWidth)
		b.WriteString(m.renderRow(name, meta))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *PreviewModel) renderRow(name string, meta *rename.Meta) string {
	if meta == nil {
		return pendingStyle.Render("· " + name)
	}
	switch meta.Status {
	case rename.StatusSkipped:
		return skipStyle.Render(fmt.Sprintf("- %s  (%s)", name, meta.SkipReason))
	case rename.StatusError:
		return errStyle.Render(fmt.Sprintf("✗ %s  %s", name, meta.Error))
	case rename.StatusSuccess:
		return okStyle.Render(fmt.Sprintf("✓ %s  → %s", name, meta.DestPath))
	default:
		return pendingStyle.Render(fmt.Sprintf("· %s  → %s", name, meta.DestPath))
	}
}

// Applied reports whether the plan was executed before the program quit.
func (m *PreviewModel) Applied() bool { return m.applied }

// Result returns the execution tally; zero until Applied.
func (m *PreviewModel) Result() rename.Result { return m.result }
