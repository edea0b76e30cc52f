package chart

import (
	"errors"
	"fmt"
)

// ErrGridFull is returned when placing more items than a grid has cells.
var ErrGridFull = errors.New("grid is full")

// Grid is a fixed-capacity rows x cols layout filled in row-major order.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// NewGrid returns an empty grid. Both dimensions must be positive.
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid grid size %dx%d", rows, cols)
	}
	return &Grid[T]{rows: rows, cols: cols}, nil
}

// Place puts item into the next free cell and reports its position.
func (g *Grid[T]) Place(item T) (row, col int, err error) {
	if len(g.cells) == g.Cap() {
		return 0, 0, fmt.Errorf("place item %d in %dx%d grid: %w", len(g.cells)+1, g.rows, g.cols, ErrGridFull)
	}
	i := len(g.cells)
	g.cells = append(g.cells, item)
	return i / g.cols, i % g.cols, nil
}

// At returns the item in the given cell, if one was placed there.
func (g *Grid[T]) At(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return zero, false
	}
	i := row*g.cols + col
	if i >= len(g.cells) {
		return zero, false
	}
	return g.cells[i], true
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }
func (g *Grid[T]) Cap() int  { return g.rows * g.cols }
func (g *Grid[T]) Len() int  { return len(g.cells) }
