package board

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular board stored row-major in one buffer.
// A grid with zero rows still remembers its width so the borders survive
// a round trip.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid copies rows into a fresh grid. Every row must have the same length.
func NewGrid(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}
	cols := len(rows[0])
	cells := make([]Cell, 0, len(rows)*cols)
	for y, row := range rows {
		if len(row) != cols {
			return Grid{}, fmt.Errorf(
				"ragged row %d: have %d cells, want %d", y, len(row), cols,
			)
		}
		cells = append(cells, row...)
	}
	return Grid{rows: len(rows), cols: cols, cells: cells}, nil
}

func newGrid(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }
func (g Grid) Len() int  { return len(g.cells) }

func (g Grid) InBounds(r, c int) bool {
	return 0 <= r && r < g.rows && 0 <= c && c < g.cols
}

// At panics when (r, c) lies outside the grid.
func (g Grid) At(r, c int) Cell {
	if !g.InBounds(r, c) {
		panic(AssertionError{fmt.Sprintf("cell %d:%d outside %dx%d grid", r, c, g.rows, g.cols)})
	}
	return g.cells[r*g.cols+c]
}

// Row returns a copy of row r.
func (g Grid) Row(r int) []Cell {
	row := make([]Cell, g.cols)
	copy(row, g.cells[r*g.cols:(r+1)*g.cols])
	return row
}

func (g Grid) Mines() (count int) {
	for _, c := range g.cells {
		if c == Mine {
			count++
		}
	}
	return
}

func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g Grid) String() string {
	var b strings.Builder
	for y := range g.rows {
		for x := range g.cols {
			fmt.Fprint(&b, g.cells[y*g.cols+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
