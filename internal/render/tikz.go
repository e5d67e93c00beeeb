package render

import (
	"fmt"
	"strings"
)

// TikZ renders the buffered panels as tikzpicture source. Coordinates
// stay in world units; each panel is a shifted, clipped scope so the
// output can be pasted into a TeX document unchanged. Label text is
// emitted verbatim; escaping is the document author's concern.
type TikZ struct {
	scene
}

func NewTikZ() *TikZ {
	return &TikZ{}
}

func (t *TikZ) Output() (string, error) {
	if len(t.panels) == 0 {
		return "", nil
	}

	w0 := t.panels[0].effectiveWindow()
	cellW, cellH := w0.Width(), w0.Height()

	var sb strings.Builder
	sb.WriteString("\\begin{tikzpicture}[x=1cm,y=1cm]\n")

	for i, p := range t.panels {
		row, col := i/t.cols, i%t.cols
		window := p.effectiveWindow()

		// Shift so the panel window fills cell (row, col), rows going
		// downward from the first.
		dx := float64(col)*cellW - window.XMin
		dy := -float64(row)*cellH - window.YMax

		sb.WriteString(fmt.Sprintf("\\begin{scope}[shift={(%.4f,%.4f)}]\n", dx, dy))
		sb.WriteString(fmt.Sprintf("\\clip (%.4f,%.4f) rectangle (%.4f,%.4f);\n",
			window.XMin, window.YMin, window.XMax, window.YMax))

		for _, pl := range p.lines {
			if len(pl.vertices) < 2 {
				continue
			}
			color := pl.style.Color
			if color == "" {
				color = "black"
			}
			sb.WriteString(fmt.Sprintf("\\draw[%s, line width=%.1fpt]", color, lineWidthPt(pl.style.Width)))
			for j, v := range pl.vertices {
				if j > 0 {
					sb.WriteString(" --")
				}
				sb.WriteString(fmt.Sprintf(" (%.4f,%.4f)", v.X, v.Y))
			}
			sb.WriteString(";\n")
		}

		for _, ps := range p.points {
			color := ps.style.Color
			if color == "" {
				color = "black"
			}
			r := ps.style.Size / 100
			if r <= 0 {
				r = 0.08
			}
			for _, pt := range ps.pts {
				sb.WriteString(fmt.Sprintf("\\fill[%s] (%.4f,%.4f) circle[radius=%.3f];\n",
					color, pt.X, pt.Y, r))
			}
		}

		for _, l := range p.labels {
			sb.WriteString(fmt.Sprintf("\\node[anchor=%s, font=\\small] at (%.4f,%.4f) {%s};\n",
				nodeAnchor(l.style), l.at.X, l.at.Y, l.text))
		}
		sb.WriteString("\\end{scope}\n")

		t.writeBorders(&sb, p, row, col, cellW, cellH)
	}

	sb.WriteString("\\end{tikzpicture}\n")
	return sb.String(), nil
}

func (t *TikZ) writeBorders(sb *strings.Builder, p *panelState, row, col int, cellW, cellH float64) {
	if !p.hasBorders {
		return
	}
	x0 := float64(col) * cellW
	y0 := -float64(row) * cellH
	x1 := x0 + cellW
	y1 := y0 - cellH

	edge := func(ax, ay, bx, by float64) {
		sb.WriteString(fmt.Sprintf("\\draw[black, line width=0.4pt] (%.4f,%.4f) -- (%.4f,%.4f);\n",
			ax, ay, bx, by))
	}
	if p.borders.Top {
		edge(x0, y0, x1, y0)
	}
	if p.borders.Bottom {
		edge(x0, y1, x1, y1)
	}
	if p.borders.Left {
		edge(x0, y0, x0, y1)
	}
	if p.borders.Right {
		edge(x1, y0, x1, y1)
	}
}

func lineWidthPt(w float64) float64 {
	if w <= 0 {
		return 0.4
	}
	return w * 0.4
}

// nodeAnchor maps the alignment pair onto a TikZ anchor; the anchor
// names the side of the node touching the point, so vertical alignment
// inverts.
func nodeAnchor(s TextStyle) string {
	switch s.VAlign {
	case "top":
		return "north"
	case "bottom":
		return "south"
	default:
		return "center"
	}
}
