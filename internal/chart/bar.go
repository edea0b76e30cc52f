package chart

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HorizontalBars draws one bar per label, bottom to top in the given order,
// each bar colored by its value.
func HorizontalBars(title, valueLabel string, labels []string, values plotter.Values) (*plot.Plot, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("bar chart: %d labels for %d values", len(labels), len(values))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = valueLabel
	p.X.Min = 0
	p.Add(plotter.NewGrid())
	if len(values) == 0 {
		return p, nil
	}

	cm := valueColors(values)
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(14))
		if err != nil {
			return nil, err
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.LineStyle.Width = vg.Length(0)
		if c, err := cm.At(v); err == nil {
			bar.Color = c
		}
		p.Add(bar)
	}
	p.NominalY(labels...)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	return p, nil
}

func valueColors(values plotter.Values) palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	lo, hi := floats.Min(values), floats.Max(values)
	if hi <= lo {
		hi = lo + 1
	}
	cm.SetMax(hi)
	cm.SetMin(lo)
	return cm
}
