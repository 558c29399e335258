package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mazeforge/pkg/optimize"
)

// List styles
var (
	listNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Optimizer Progress Messages
// =============================================================================

type anchorStartMsg struct {
	anchor    int
	packetLen int
}

type improveMsg struct {
	anchor int
	length int
}

type completeMsg struct {
	bestLength int
	duration   time.Duration
}

// optimizeDoneMsg signals that the optimizer goroutine has returned.
type optimizeDoneMsg struct{}

// =============================================================================
// OptimizeModel - Live optimizer progress
// =============================================================================

// improvement is one accepted seed-packet change.
type improvement struct {
	anchor int
	length int
	at     time.Time
}

// OptimizeModel is the bubbletea model for the optimizer progress view.
type OptimizeModel struct {
	Width  int
	Height int

	events chan tea.Msg

	packetLen    int
	anchor       int
	anchorsSeen  int
	bestLength   int
	improvements []improvement
	started      time.Time
	done         bool
	duration     time.Duration
}

// newOptimizeModel creates a progress model fed by the given event channel.
func newOptimizeModel(opts optimize.Options, events chan tea.Msg) OptimizeModel {
	return OptimizeModel{
		Width:   opts.Width,
		Height:  opts.Height,
		events:  events,
		started: time.Now(),
	}
}

func (m OptimizeModel) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent blocks on the hook channel and delivers the next event.
func (m OptimizeModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m OptimizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case anchorStartMsg:
		m.anchor = msg.anchor
		m.packetLen = msg.packetLen
		m.anchorsSeen++
		return m, m.waitForEvent()
	case improveMsg:
		m.bestLength = msg.length
		m.improvements = append(m.improvements, improvement{
			anchor: msg.anchor,
			length: msg.length,
			at:     time.Now(),
		})
		return m, m.waitForEvent()
	case completeMsg:
		m.bestLength = msg.bestLength
		m.duration = msg.duration
		m.done = true
		return m, m.waitForEvent()
	case optimizeDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m OptimizeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Optimizing %dx%d maze", m.Width, m.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("q quit"))
	b.WriteString("\n\n")

	status := fmt.Sprintf("anchor %d", m.anchor)
	if m.done {
		status = "done"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		listDimStyle.Render("status"), listNormalStyle.Render(status)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		listDimStyle.Render("best"), StyleNumber.Render(strconv.Itoa(m.bestLength))))

	elapsed := time.Since(m.started)
	if m.done {
		elapsed = m.duration
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		listDimStyle.Render("elapsed"), listNormalStyle.Render(elapsed.Round(time.Second).String())))

	if len(m.improvements) > 0 {
		b.WriteString("\n")
		b.WriteString(m.improvementTable())
		b.WriteString("\n")
	}

	return b.String()
}

// improvementTable renders the most recent accepted changes.
func (m OptimizeModel) improvementTable() string {
	const maxRows = 10
	start := 0
	if len(m.improvements) > maxRows {
		start = len(m.improvements) - maxRows
	}

	rows := [][]string{}
	for _, imp := range m.improvements[start:] {
		rows = append(rows, []string{
			strconv.Itoa(imp.anchor),
			strconv.Itoa(imp.length),
			imp.at.Format("15:04:05"),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Anchor", "Length", "Found").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleNumber
			}
			return listNormalStyle
		})

	return t.Render()
}
