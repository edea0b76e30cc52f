package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Word is a word and its weight in a cloud.
type Word struct {
	Text  string
	Count int
}

// WordCloud draws words sized by count, most frequent in the middle.
// Words that do not fit are dropped.
type WordCloud struct {
	Words      []Word
	MinSize    vg.Length
	MaxSize    vg.Length
	Background color.Color
}

// NewWordCloud expects words sorted by descending count.
func NewWordCloud(words []Word) *WordCloud {
	return &WordCloud{
		Words:      words,
		MinSize:    vg.Points(8),
		MaxSize:    vg.Points(72),
		Background: color.White,
	}
}

// Placement is where a word ended up on the canvas.
type Placement struct {
	Word  Word
	Size  vg.Length
	Box   vg.Rectangle
	Color color.Color
}

func (wc *WordCloud) style(size vg.Length, clr color.Color) text.Style {
	return text.Style{
		Color:   clr,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
	}
}

func (wc *WordCloud) fontSize(count, peak int) vg.Length {
	if peak <= 0 {
		return wc.MinSize
	}
	return wc.MinSize + (wc.MaxSize-wc.MinSize)*vg.Length(float64(count)/float64(peak))
}

// Layout places the words inside area using the canvas font metrics.
func (wc *WordCloud) Layout(area vg.Rectangle) []Placement {
	return wc.layout(area, func(w string, size vg.Length) (vg.Length, vg.Length) {
		sty := wc.style(size, color.Black)
		return sty.Width(w), sty.Height(w)
	})
}

func (wc *WordCloud) layout(area vg.Rectangle, measure func(string, vg.Length) (vg.Length, vg.Length)) []Placement {
	if len(wc.Words) == 0 {
		return nil
	}
	peak := wc.Words[0].Count
	cx := float64(area.Min.X+area.Max.X) / 2
	cy := float64(area.Min.Y+area.Max.Y) / 2
	maxR := math.Hypot(float64(area.Max.X-area.Min.X), float64(area.Max.Y-area.Min.Y)) / 2

	var placed []Placement
	for i, w := range wc.Words {
		size := wc.fontSize(w.Count, peak)
		bw, bh := measure(w.Text, size)

		// Archimedean spiral r = a*t out from the centre.
		const step = 0.1
		a := float64(size) / 8
		for t := 0.0; a*t <= maxR; t += step {
			x := cx + a*t*math.Cos(t)
			y := cy + a*t*math.Sin(t)
			box := vg.Rectangle{
				Min: vg.Point{X: vg.Length(x) - bw/2, Y: vg.Length(y) - bh/2},
				Max: vg.Point{X: vg.Length(x) + bw/2, Y: vg.Length(y) + bh/2},
			}
			if !inside(box, area) || overlapsAny(box, placed) {
				continue
			}
			placed = append(placed, Placement{Word: w, Size: size, Box: box, Color: plotutil.Color(i)})
			break
		}
	}
	return placed
}

func inside(b, area vg.Rectangle) bool {
	return b.Min.X >= area.Min.X && b.Min.Y >= area.Min.Y && b.Max.X <= area.Max.X && b.Max.Y <= area.Max.Y
}

func overlaps(a, b vg.Rectangle) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

func overlapsAny(b vg.Rectangle, placed []Placement) bool {
	for _, p := range placed {
		if overlaps(b, p.Box) {
			return true
		}
	}
	return false
}

// Draw implements Figure.
func (wc *WordCloud) Draw(c draw.Canvas) {
	if wc.Background != nil {
		c.SetColor(wc.Background)
		c.Fill(c.Rectangle.Path())
	}
	for _, p := range wc.Layout(c.Rectangle) {
		mid := vg.Point{X: (p.Box.Min.X + p.Box.Max.X) / 2, Y: (p.Box.Min.Y + p.Box.Max.Y) / 2}
		c.FillText(wc.style(p.Size, p.Color), mid, p.Word.Text)
	}
}
