// Package chart builds the figures used by the survey reports on top of
// gonum/plot. Single charts are plain *plot.Plot values; composite figures
// (facet grids, pie grids, word clouds) draw themselves onto a canvas.
package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is anything that can be drawn onto a canvas. *plot.Plot satisfies it.
type Figure interface {
	Draw(c draw.Canvas)
}

// Encode renders fig into the given format ("png", "svg", "pdf", "jpg", ...).
func Encode(fig Figure, w, h vg.Length, format string) ([]byte, error) {
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	fig.Draw(draw.New(c))

	var b bytes.Buffer
	if _, err := c.WriteTo(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Save renders fig to path, picking the format from the file extension.
func Save(fig Figure, w, h vg.Length, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("no image format in file name %q", path)
	}
	b, err := Encode(fig, w, h, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return os.WriteFile(path, b, 0644)
}

// FileDisplay shows figures by saving them under Dir.
type FileDisplay struct {
	Dir    string
	Format string
	Width  vg.Length
	Height vg.Length
}

// Show writes fig to <Dir>/<name>.<Format>.
func (d FileDisplay) Show(name string, fig Figure) error {
	format := d.Format
	if format == "" {
		format = "png"
	}
	w, h := d.Width, d.Height
	if w == 0 || h == 0 {
		w, h = 12*vg.Inch, 8*vg.Inch
	}
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return err
	}
	return Save(fig, w, h, filepath.Join(d.Dir, name+"."+format))
}
