package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Facet is one panel of a faceted count plot.
type Facet struct {
	Title  string
	Counts plotter.Values
}

// FacetGrid is a set of count plots sharing a category axis and a y scale,
// wrapped after Wrap panels per row.
type FacetGrid struct {
	plots [][]*plot.Plot
}

// NewFacetGrid builds one bar plot per facet. Every facet must have one
// count per category.
func NewFacetGrid(xLabel string, categories []string, facets []Facet, wrap int) (*FacetGrid, error) {
	if len(facets) == 0 {
		return nil, errors.New("facet grid: no facets")
	}
	if len(categories) == 0 {
		return nil, errors.New("facet grid: no categories")
	}
	if wrap < 1 {
		wrap = 1
	}
	peak := 0.0
	for _, f := range facets {
		if len(f.Counts) != len(categories) {
			return nil, fmt.Errorf("facet %q: %d counts for %d categories", f.Title, len(f.Counts), len(categories))
		}
		peak = max(peak, floats.Max(f.Counts))
	}

	rows := (len(facets) + wrap - 1) / wrap
	g := &FacetGrid{plots: make([][]*plot.Plot, rows)}
	for r := range g.plots {
		g.plots[r] = make([]*plot.Plot, wrap)
	}
	for i, f := range facets {
		p := plot.New()
		p.Title.Text = f.Title
		p.X.Label.Text = xLabel
		p.Y.Label.Text = "count"
		p.Y.Min = 0
		p.Y.Max = peak
		p.Add(plotter.NewGrid())
		bars, err := plotter.NewBarChart(f.Counts, vg.Points(18))
		if err != nil {
			return nil, fmt.Errorf("facet %q: %w", f.Title, err)
		}
		bars.Color = plotutil.Color(0)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		p.NominalX(categories...)
		g.plots[i/wrap][i%wrap] = p
	}
	for r := range g.plots {
		for c := range g.plots[r] {
			if g.plots[r][c] == nil {
				p := plot.New()
				p.HideAxes()
				g.plots[r][c] = p
			}
		}
	}
	return g, nil
}

// Panels returns the facet plots, row by row.
func (g *FacetGrid) Panels() [][]*plot.Plot { return g.plots }

// Draw implements Figure.
func (g *FacetGrid) Draw(c draw.Canvas) {
	t := draw.Tiles{
		Rows: len(g.plots), Cols: len(g.plots[0]),
		PadX: vg.Millimeter * 3, PadY: vg.Millimeter * 3,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(g.plots, t, c)
	for r := range g.plots {
		for col, p := range g.plots[r] {
			p.Draw(canvases[r][col])
		}
	}
}
