// Package schematic reads engine schematics and finds the part numbers and
// gear ratios drawn on them.
package schematic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGrid  = errors.New("schematic has no rows")
	ErrRaggedGrid = errors.New("schematic rows have different widths")
)

// Cell is a zero-based (row, col) position on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable, rectangular view of a schematic.
type Grid struct {
	rows  [][]rune
	width int
}

// Parse builds a grid from raw text. Every non-empty line is one row.
func Parse(input string) (*Grid, error) {
	var rows [][]rune
	for line := range strings.SplitSeq(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", i, len(row), width, ErrRaggedGrid)
		}
	}

	return &Grid{rows: rows, width: width}, nil
}

func (g *Grid) Height() int {
	return len(g.rows)
}

func (g *Grid) Width() int {
	return g.width
}

// At returns the character at (row, col). The position must be in bounds.
func (g *Grid) At(row, col int) rune {
	return g.rows[row][col]
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.width
}

// Neighbors returns the in-bounds cells around (row, col), diagonals included.
// Edge and corner cells have fewer than eight.
func (g *Grid) Neighbors(row, col int) []Cell {
	cells := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		r, c := row+off.Row, col+off.Col
		if g.InBounds(r, c) {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

func (g *Grid) touchesSymbol(row, col int) bool {
	for _, n := range g.Neighbors(row, col) {
		if IsSymbol(g.At(n.Row, n.Col)) {
			return true
		}
	}
	return false
}

func (g *Grid) isDigitAt(row, col int) bool {
	return g.InBounds(row, col) && IsDigit(g.At(row, col))
}

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol reports whether r is neither an ASCII digit nor '.'.
func IsSymbol(r rune) bool {
	return !IsDigit(r) && r != '.'
}
