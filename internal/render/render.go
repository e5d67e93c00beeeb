package render

import (
	"fmt"

	"github.com/san-kum/figural/internal/geometry"
	"github.com/san-kum/figural/internal/layout"
)

// PointStyle controls how a point set is marked.
type PointStyle struct {
	Marker string  // marker name, "o" circles by default
	Size   float64 // marker size in renderer points
	Color  string  // color token, passed through to the backend
}

// LineStyle controls polyline strokes.
type LineStyle struct {
	Color string
	Width float64
	Under bool // draw beneath the point layer
}

// TextStyle controls label placement.
type TextStyle struct {
	HAlign   string // "left", "center", "right"
	VAlign   string // "top", "middle", "bottom"
	FontSize float64
}

// Renderer is the capability the pipeline draws through. Panels are
// indexed row-major as created by CreateGrid; a single drawing is a
// 1x1 grid.
type Renderer interface {
	CreateGrid(rows, cols int) error
	SetViewport(panel int, window geometry.Rect) error
	SetBorders(panel int, b layout.Borders) error
	PlotPoints(panel int, pts []geometry.Point, s PointStyle) error
	PlotPolyline(panel int, vertices []geometry.Point, s LineStyle) error
	PlaceLabel(panel int, at geometry.Point, text string, s TextStyle) error

	// Output finalizes the artifact: the composed terminal frame, the
	// SVG document, or the TikZ source.
	Output() (string, error)
}

type pointSet struct {
	pts   []geometry.Point
	style PointStyle
}

type polyline struct {
	vertices []geometry.Point
	style    LineStyle
}

type textLabel struct {
	at    geometry.Point
	text  string
	style TextStyle
}

type panelState struct {
	window     geometry.Rect
	hasWindow  bool
	borders    layout.Borders
	hasBorders bool
	points     []pointSet
	lines      []polyline
	labels     []textLabel
}

// scene buffers draw calls per panel; every backend embeds it and
// interprets the buffered panels in Output.
type scene struct {
	rows, cols int
	panels     []*panelState
}

func (s *scene) CreateGrid(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("render: invalid grid %dx%d", rows, cols)
	}
	s.rows, s.cols = rows, cols
	s.panels = make([]*panelState, rows*cols)
	for i := range s.panels {
		s.panels[i] = &panelState{}
	}
	return nil
}

func (s *scene) panel(i int) (*panelState, error) {
	if i < 0 || i >= len(s.panels) {
		return nil, fmt.Errorf("render: panel %d out of range (grid has %d)", i, len(s.panels))
	}
	return s.panels[i], nil
}

func (s *scene) SetViewport(panel int, window geometry.Rect) error {
	p, err := s.panel(panel)
	if err != nil {
		return err
	}
	if window.Width() <= 0 || window.Height() <= 0 {
		return fmt.Errorf("render: degenerate viewport %+v", window)
	}
	p.window = window
	p.hasWindow = true
	return nil
}

func (s *scene) SetBorders(panel int, b layout.Borders) error {
	p, err := s.panel(panel)
	if err != nil {
		return err
	}
	p.borders = b
	p.hasBorders = true
	return nil
}

func (s *scene) PlotPoints(panel int, pts []geometry.Point, style PointStyle) error {
	p, err := s.panel(panel)
	if err != nil {
		return err
	}
	p.points = append(p.points, pointSet{pts: pts, style: style})
	return nil
}

func (s *scene) PlotPolyline(panel int, vertices []geometry.Point, style LineStyle) error {
	p, err := s.panel(panel)
	if err != nil {
		return err
	}
	p.lines = append(p.lines, polyline{vertices: vertices, style: style})
	return nil
}

func (s *scene) PlaceLabel(panel int, at geometry.Point, text string, style TextStyle) error {
	p, err := s.panel(panel)
	if err != nil {
		return err
	}
	p.labels = append(p.labels, textLabel{at: at, text: text, style: style})
	return nil
}

// fallbackWindow derives a window from the buffered geometry when the
// caller never set a viewport for the panel.
func (p *panelState) fallbackWindow() geometry.Rect {
	var all []geometry.Point
	for _, ps := range p.points {
		all = append(all, ps.pts...)
	}
	for _, pl := range p.lines {
		all = append(all, pl.vertices...)
	}
	b := geometry.BoundsOf(all)
	if b.Width() == 0 {
		b.XMin, b.XMax = b.XMin-0.5, b.XMax+0.5
	}
	if b.Height() == 0 {
		b.YMin, b.YMax = b.YMin-0.5, b.YMax+0.5
	}
	return b.Expand(0.5)
}

func (p *panelState) effectiveWindow() geometry.Rect {
	if p.hasWindow {
		return p.window
	}
	return p.fallbackWindow()
}
