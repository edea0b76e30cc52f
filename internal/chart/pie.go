package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const piePixels = 512

// Pie is one pie chart of labelled values.
type Pie struct {
	Title  string
	Labels []string
	Values []float64
}

// renderedPie is a placed pie; img is nil for a pie without values.
type renderedPie struct {
	title string
	img   image.Image
}

// PieGrid lays pies out in a bounded grid, row-major.
type PieGrid struct {
	Title string
	grid  *Grid[renderedPie]
}

// NewPieGrid returns an empty rows x cols grid of pies.
func NewPieGrid(title string, rows, cols int) (*PieGrid, error) {
	g, err := NewGrid[renderedPie](rows, cols)
	if err != nil {
		return nil, err
	}
	return &PieGrid{Title: title, grid: g}, nil
}

// Add renders p and places it in the next free cell. A pie without values
// still takes its cell and is drawn as a title over a blank tile.
func (g *PieGrid) Add(p Pie) (row, col int, err error) {
	if g.grid.Len() == g.grid.Cap() {
		return 0, 0, fmt.Errorf("pie %q: %w", p.Title, ErrGridFull)
	}
	var img image.Image
	if len(p.Labels) > 0 || len(p.Values) > 0 {
		if img, err = renderPie(p); err != nil {
			return 0, 0, fmt.Errorf("pie %q: %w", p.Title, err)
		}
	}
	return g.grid.Place(renderedPie{title: p.Title, img: img})
}

// Len reports the number of pies placed.
func (g *PieGrid) Len() int { return g.grid.Len() }

// Titles returns the pie titles indexed by grid cell; empty cells are "".
func (g *PieGrid) Titles() [][]string {
	out := make([][]string, g.grid.Rows())
	for r := range out {
		out[r] = make([]string, g.grid.Cols())
		for c := range out[r] {
			if p, ok := g.grid.At(r, c); ok {
				out[r][c] = p.title
			}
		}
	}
	return out
}

func renderPie(p Pie) (image.Image, error) {
	if len(p.Labels) != len(p.Values) {
		return nil, fmt.Errorf("%d labels for %d values", len(p.Labels), len(p.Values))
	}
	if len(p.Values) == 0 {
		return nil, errors.New("no values")
	}
	values := make([]gochart.Value, len(p.Values))
	for i := range p.Values {
		values[i] = gochart.Value{Label: p.Labels[i], Value: p.Values[i]}
	}
	pc := gochart.PieChart{
		Width:  piePixels,
		Height: piePixels,
		Values: values,
	}
	var b bytes.Buffer
	if err := pc.Render(gochart.PNG, &b); err != nil {
		return nil, err
	}
	return png.Decode(&b)
}

func titleStyle(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
	}
}

// Draw implements Figure.
func (g *PieGrid) Draw(c draw.Canvas) {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())

	head := titleStyle(vg.Points(16))
	top := c.Max.Y
	if g.Title != "" {
		c.FillText(head, vg.Point{X: c.Center().X, Y: top - vg.Points(4)}, g.Title)
		top -= head.Height(g.Title) + vg.Points(8)
	}
	body := draw.Canvas{Canvas: c.Canvas, Rectangle: vg.Rectangle{Min: c.Min, Max: vg.Point{X: c.Max.X, Y: top}}}

	tiles := draw.Tiles{
		Rows: g.grid.Rows(), Cols: g.grid.Cols(),
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	sub := titleStyle(vg.Points(12))
	for r := 0; r < g.grid.Rows(); r++ {
		for col := 0; col < g.grid.Cols(); col++ {
			p, ok := g.grid.At(r, col)
			if !ok {
				continue
			}
			tc := tiles.At(body, col, r)
			c.FillText(sub, vg.Point{X: tc.Center().X, Y: tc.Max.Y}, p.title)
			if p.img == nil {
				continue
			}
			avail := tc.Max.Y - sub.Height(p.title) - vg.Points(2)

			side := min(tc.Max.X-tc.Min.X, avail-tc.Min.Y)
			if side <= 0 {
				continue
			}
			x0 := tc.Center().X - side/2
			y0 := tc.Min.Y + (avail-tc.Min.Y-side)/2
			c.DrawImage(vg.Rectangle{
				Min: vg.Point{X: x0, Y: y0},
				Max: vg.Point{X: x0 + side, Y: y0 + side},
			}, p.img)
		}
	}
}
