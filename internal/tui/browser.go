// Package tui provides an interactive browser for figural arrangements
// built on the Bubble Tea framework.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/plot"
	"github.com/san-kum/figural/internal/render"
)

const maxIndex = 50

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(34)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the browser state: the family being viewed, the current
// index, and the drawing toggles.
type Model struct {
	families []figural.Family
	family   int
	index    int
	opts     plot.Options
	showHelp bool
}

// NewModel starts the browser at index n of family f.
func NewModel(f figural.Family, n int, opts plot.Options) Model {
	families := figural.Families()
	sel := 0
	for i, cand := range families {
		if cand.Name() == f.Name() {
			sel = i
		}
	}
	if n < 1 {
		n = 1
	}
	opts.WithLabel = true
	return Model{families: families, family: sel, index: n, opts: opts}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.index > 1 {
			m.index--
		}
	case "right", "l":
		if m.index < maxIndex {
			m.index++
		}
	case "f", "tab":
		m.family = (m.family + 1) % len(m.families)
	case "o":
		m.opts.WithOutline = !m.opts.WithOutline
	case "t":
		m.opts.WithLabel = !m.opts.WithLabel
	case "+", "=":
		m.opts.Distance *= 1.25
	case "-":
		m.opts.Distance /= 1.25
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// View renders the current arrangement next to a stats panel.
func (m Model) View() string {
	f := m.families[m.family]

	term := render.NewTerminal()
	frame := ""
	if err := plot.One(term, f, m.index, m.opts); err != nil {
		frame = errStyle.Render(err.Error())
	} else {
		out, err := term.Output()
		if err != nil {
			frame = errStyle.Render(err.Error())
		} else {
			frame = out
		}
	}

	header := headerStyle.Render(fmt.Sprintf("figural browser — %s numbers", f.Name()))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(frame),
		statsStyle.Render(m.stats(f)),
	)

	help := helpStyle.Render("←/→ index · f family · o outline · t label · +/- spacing · ? help · q quit")
	if m.showHelp {
		help = helpStyle.Render(strings.Join([]string{
			"←/h, →/l   previous / next index",
			"f, tab     switch family",
			"o          toggle outline",
			"t          toggle label",
			"+, -       adjust dot spacing",
			"?          toggle this help",
			"q          quit",
		}, "\n"))
	}
	return header + "\n" + body + "\n" + help
}

func (m Model) stats(f figural.Family) string {
	value := f.Ith(m.index)
	var b strings.Builder
	row := func(label, val string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(val))
		b.WriteByte('\n')
	}
	row("index", fmt.Sprintf("%d / %d", m.index, maxIndex))
	row("value", fmt.Sprintf("%d", value))
	row("gnomon", fmt.Sprintf("+%d dots", value-f.Ith(m.index-1)))
	row("spacing", fmt.Sprintf("%.3f", m.opts.Distance))
	row("member", fmt.Sprintf("%s(%d) → %v", f.Symbol(), value, figural.Classify(f, value)))
	row("next-up", fmt.Sprintf("%s(%d) → %v", f.Symbol(), value+1, figural.Classify(f, value+1)))
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the browser program.
func Run(f figural.Family, n int, opts plot.Options) error {
	p := tea.NewProgram(NewModel(f, n, opts))
	_, err := p.Run()
	return err
}
