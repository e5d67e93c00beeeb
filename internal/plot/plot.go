// Package plot drives the rendering pipeline: sequence engine to layout
// to viewport to renderer. It is written once over the family
// capability and instantiated for both families.
package plot

import (
	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/layout"
	"github.com/san-kum/figural/internal/render"
)

// Options are the enumerated drawing options.
type Options struct {
	Distance    float64
	MarkerStyle string
	MarkerSize  float64
	Color       string
	WithLabel   bool
	WithOutline bool
	Columns     int
	DrawGrid    bool
}

// DefaultOptions mirrors the defaults of the drawing entry points.
func DefaultOptions() Options {
	return Options{
		Distance:    0.5,
		MarkerStyle: "o",
		MarkerSize:  10,
		Color:       "black",
		WithOutline: true,
		Columns:     4,
		DrawGrid:    true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Distance <= 0 {
		o.Distance = d.Distance
	}
	if o.MarkerStyle == "" {
		o.MarkerStyle = d.MarkerStyle
	}
	if o.MarkerSize <= 0 {
		o.MarkerSize = d.MarkerSize
	}
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.Columns < 1 {
		o.Columns = d.Columns
	}
	return o
}

// One renders the n-th arrangement of f as a single panel. The panel
// window comes from the same composer as grids, so a lone drawing and a
// one-element range look identical.
func One(r render.Renderer, f figural.Family, n int, opts Options) error {
	opts = opts.withDefaults()

	grid, err := layout.Compose(f, n, n, opts.Distance, 1)
	if err != nil {
		return err
	}
	lay, err := layout.Of(f, n, opts.Distance, opts.WithOutline, opts.WithLabel)
	if err != nil {
		return err
	}

	if err := r.CreateGrid(1, 1); err != nil {
		return err
	}
	if err := r.SetViewport(0, grid.Panels[0].Window); err != nil {
		return err
	}
	return drawPanel(r, 0, lay, opts)
}

// Range renders the arrangements for indices [start, end] as a grid of
// uniformly scaled panels.
func Range(r render.Renderer, f figural.Family, start, end int, opts Options) error {
	opts = opts.withDefaults()

	grid, err := layout.Compose(f, start, end, opts.Distance, opts.Columns)
	if err != nil {
		return err
	}
	if err := r.CreateGrid(grid.Rows, grid.Cols); err != nil {
		return err
	}

	for i, panel := range grid.Panels {
		lay, err := layout.Of(f, panel.Index, opts.Distance, opts.WithOutline, opts.WithLabel)
		if err != nil {
			return err
		}
		if err := r.SetViewport(i, panel.Window); err != nil {
			return err
		}
		if opts.DrawGrid {
			if err := r.SetBorders(i, panel.Borders); err != nil {
				return err
			}
		}
		if err := drawPanel(r, i, lay, opts); err != nil {
			return err
		}
	}
	return nil
}

func drawPanel(r render.Renderer, i int, lay *layout.Layout, opts Options) error {
	for _, loop := range lay.Outlines {
		err := r.PlotPolyline(i, loop, render.LineStyle{Color: "black", Width: 1, Under: true})
		if err != nil {
			return err
		}
	}
	err := r.PlotPoints(i, lay.Points, render.PointStyle{
		Marker: opts.MarkerStyle,
		Size:   opts.MarkerSize,
		Color:  opts.Color,
	})
	if err != nil {
		return err
	}
	if lay.Label != nil {
		err := r.PlaceLabel(i, lay.Label.Anchor, lay.Label.Text, render.TextStyle{
			HAlign:   "center",
			VAlign:   "top",
			FontSize: 12,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
