package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultPanelWidth  = 36 // character cells per panel
	defaultPanelHeight = 13
)

var (
	panelLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderColor     = lipgloss.Color("240")
)

// Terminal renders panels onto Braille canvases and composes them into
// one frame with lipgloss, honoring the per-panel border flags.
type Terminal struct {
	scene
	PanelWidth  int
	PanelHeight int
}

// NewTerminal returns a terminal renderer with the default panel size.
func NewTerminal() *Terminal {
	return &Terminal{PanelWidth: defaultPanelWidth, PanelHeight: defaultPanelHeight}
}

// Output renders every buffered panel and joins them row-major.
func (t *Terminal) Output() (string, error) {
	if len(t.panels) == 0 {
		return "", nil
	}

	cells := make([]string, len(t.panels))
	for i, p := range t.panels {
		cells[i] = t.renderPanel(p)
	}

	rows := make([]string, 0, t.rows)
	for r := 0; r < t.rows; r++ {
		lo := r * t.cols
		hi := lo + t.cols
		if hi > len(cells) {
			hi = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[lo:hi]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}

func (t *Terminal) renderPanel(p *panelState) string {
	window := p.effectiveWindow()
	canvas := NewCanvas(t.PanelWidth, t.PanelHeight)
	subW, subH := t.PanelWidth*2, t.PanelHeight*4

	// Outlines first so dots stay on top of strokes.
	for _, pl := range p.lines {
		for i := 1; i < len(pl.vertices); i++ {
			x0, y0 := project(pl.vertices[i-1], window, subW, subH)
			x1, y1 := project(pl.vertices[i], window, subW, subH)
			canvas.DrawLine(x0, y0, x1, y1)
		}
	}
	var color string
	for _, ps := range p.points {
		if color == "" {
			color = ps.style.Color
		}
		for _, pt := range ps.pts {
			x, y := project(pt, window, subW, subH)
			canvas.DrawDot(x, y)
		}
	}

	body := canvas.String()
	if color != "" {
		body = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(body)
	}

	lines := []string{body}
	for _, l := range p.labels {
		caption := panelLabelStyle.Width(t.PanelWidth).Align(lipgloss.Center).Render(l.text)
		lines = append(lines, caption)
	}
	block := strings.Join(lines, "\n")

	if !p.hasBorders {
		return block
	}
	b := p.borders
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), b.Top, b.Right, b.Bottom, b.Left).
		BorderForeground(borderColor).
		Render(block)
}
