package chart

import (
	"errors"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Violin is a categorical violin plotter: for every X category it draws a
// symmetric shape whose width at each Y level is proportional to the share of
// that category's rows falling on the level. Empty values are skipped.
type Violin struct {
	XLevels []string
	YLevels []string
	// Density[i][j] is the share of rows of XLevels[i] with value YLevels[j].
	Density [][]float64

	// Width is the maximum width of a violin in X data units.
	Width     float64
	LineStyle draw.LineStyle
}

// NewViolin builds a Violin from paired category columns. Levels are taken in
// order of first appearance.
func NewViolin(x, y []string) (*Violin, error) {
	if len(x) != len(y) {
		return nil, errors.New("violin: x and y lengths differ")
	}
	xIdx := map[string]int{}
	yIdx := map[string]int{}
	v := &Violin{Width: 0.8, LineStyle: plotter.DefaultLineStyle}
	var counts [][]float64
	for i := range x {
		if x[i] == "" || y[i] == "" {
			continue
		}
		xi, ok := xIdx[x[i]]
		if !ok {
			xi = len(v.XLevels)
			xIdx[x[i]] = xi
			v.XLevels = append(v.XLevels, x[i])
			counts = append(counts, nil)
		}
		yi, ok := yIdx[y[i]]
		if !ok {
			yi = len(v.YLevels)
			yIdx[y[i]] = yi
			v.YLevels = append(v.YLevels, y[i])
		}
		for len(counts[xi]) <= yi {
			counts[xi] = append(counts[xi], 0)
		}
		counts[xi][yi]++
	}
	if len(v.XLevels) == 0 {
		return nil, errors.New("violin: no data")
	}

	v.Density = make([][]float64, len(counts))
	for i, c := range counts {
		d := make([]float64, len(v.YLevels))
		copy(d, c)
		floats.Scale(1/floats.Sum(d), d)
		v.Density[i] = d
	}
	return v, nil
}

// Plot implements plot.Plotter.
func (v *Violin) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	peak := 0.0
	for _, d := range v.Density {
		peak = max(peak, floats.Max(d))
	}
	if peak == 0 {
		return
	}
	half := v.Width / 2 / peak

	for i, d := range v.Density {
		var left, right []vg.Point
		for j, share := range d {
			w := share * half
			y := trY(float64(j))
			left = append(left, vg.Point{X: trX(float64(i) - w), Y: y})
			right = append(right, vg.Point{X: trX(float64(i) + w), Y: y})
		}
		outline := make([]vg.Point, 0, 2*len(left)+1)
		outline = append(outline, left...)
		for k := len(right) - 1; k >= 0; k-- {
			outline = append(outline, right[k])
		}
		outline = append(outline, left[0])

		fill := plotutil.Color(i)
		if rgba, ok := fill.(color.RGBA); ok {
			rgba.A = 160
			fill = rgba
		}
		c.FillPolygon(fill, c.ClipPolygonXY(outline))
		c.StrokeLines(v.LineStyle, c.ClipLinesXY(outline)...)
	}
}

// DataRange implements plot.DataRanger.
func (v *Violin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -0.5, float64(len(v.XLevels)) - 0.5, -0.5, float64(len(v.YLevels)) - 0.5
}

// ViolinPlot wraps a Violin in a titled plot with nominal axes.
func ViolinPlot(title, xLabel, yLabel string, x, y []string) (*plot.Plot, error) {
	v, err := NewViolin(x, y)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(v)
	p.NominalX(v.XLevels...)
	p.NominalY(v.YLevels...)
	return p, nil
}
