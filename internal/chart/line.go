package chart

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Values converts a numeric series into plot values.
func Values(s series.Series) plotter.Values {
	v := make(plotter.Values, s.Len())
	for i := range v {
		v[i] = s.Elem(i).Float()
	}
	return v
}

// TimeLine plots y against dates with a line and point markers.
func TimeLine(title, xLabel, yLabel string, dates []time.Time, y plotter.Values) (*plot.Plot, error) {
	if len(dates) != len(y) {
		return nil, fmt.Errorf("line chart: %d dates for %d values", len(dates), len(y))
	}
	pts := make(plotter.XYs, len(dates))
	for i := range pts {
		pts[i].X = float64(dates[i].Unix())
		pts[i].Y = y[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	if len(pts) == 0 {
		return p, nil
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	points.Color = color.RGBA{B: 255, A: 255}
	p.Add(line, points)
	return p, nil
}
