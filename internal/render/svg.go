package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/figural/internal/geometry"
)

const defaultCellPx = 320.0

// SVG renders the buffered panels into a standalone SVG document. Each
// panel occupies one grid cell; the cell height follows the viewport
// aspect so world coordinates stay isotropic.
type SVG struct {
	scene
	CellWidth  float64 // pixels per panel column
	Background string  // background fill, empty for none
}

func NewSVG() *SVG {
	return &SVG{CellWidth: defaultCellPx, Background: "white"}
}

func (s *SVG) Output() (string, error) {
	if len(s.panels) == 0 {
		return "", nil
	}

	cellW := s.CellWidth
	// Windows share one size across the grid; the first panel fixes the
	// cell aspect.
	w0 := s.panels[0].effectiveWindow()
	cellH := cellW * w0.Height() / w0.Width()

	totalW := cellW * float64(s.cols)
	totalH := cellH * float64(s.rows)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, totalW, totalH, totalW, totalH))
	if s.Background != "" {
		sb.WriteString(fmt.Sprintf("<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", s.Background))
	}

	for i, p := range s.panels {
		row, col := i/s.cols, i%s.cols
		window := p.effectiveWindow()
		scale := cellW / window.Width()
		toPx := func(pt geometry.Point) (float64, float64) {
			x := float64(col)*cellW + (pt.X-window.XMin)*scale
			y := float64(row)*cellH + (window.YMax-pt.Y)*scale
			return x, y
		}

		s.writeLines(&sb, p, toPx, true)
		s.writePoints(&sb, p, toPx)
		s.writeLines(&sb, p, toPx, false)
		s.writeLabels(&sb, p, toPx)
		s.writeBorders(&sb, p, row, col, cellW, cellH)
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

func (s *SVG) writeLines(sb *strings.Builder, p *panelState, toPx func(geometry.Point) (float64, float64), under bool) {
	for _, pl := range p.lines {
		if pl.style.Under != under || len(pl.vertices) < 2 {
			continue
		}
		color := pl.style.Color
		if color == "" {
			color = "black"
		}
		width := pl.style.Width
		if width == 0 {
			width = 1
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, color, width))
		for i, v := range pl.vertices {
			x, y := toPx(v)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}
}

func (s *SVG) writePoints(sb *strings.Builder, p *panelState, toPx func(geometry.Point) (float64, float64)) {
	for _, ps := range p.points {
		color := ps.style.Color
		if color == "" {
			color = "black"
		}
		r := ps.style.Size / 2
		if r <= 0 {
			r = 4
		}
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", color))
		for _, pt := range ps.pts {
			x, y := toPx(pt)
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", x, y, r))
		}
		sb.WriteString("</g>\n")
	}
}

func (s *SVG) writeLabels(sb *strings.Builder, p *panelState, toPx func(geometry.Point) (float64, float64)) {
	for _, l := range p.labels {
		x, y := toPx(l.at)
		anchor := "middle"
		switch l.style.HAlign {
		case "left":
			anchor = "start"
		case "right":
			anchor = "end"
		}
		baseline := "auto"
		if l.style.VAlign == "top" {
			baseline = "hanging"
		}
		size := l.style.FontSize
		if size == 0 {
			size = 14
		}
		sb.WriteString(fmt.Sprintf(
			"<text x=\"%.1f\" y=\"%.1f\" text-anchor=\"%s\" dominant-baseline=\"%s\" font-size=\"%.0f\" font-family=\"sans-serif\">%s</text>\n",
			x, y, anchor, baseline, size, l.text))
	}
}

func (s *SVG) writeBorders(sb *strings.Builder, p *panelState, row, col int, cellW, cellH float64) {
	if !p.hasBorders {
		return
	}
	x0 := float64(col) * cellW
	y0 := float64(row) * cellH
	x1 := x0 + cellW
	y1 := y0 + cellH

	edge := func(ax, ay, bx, by float64) {
		sb.WriteString(fmt.Sprintf(
			"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"black\" stroke-width=\"1\"/>\n",
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
