package seam

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Grid is a dense row-major matrix of int64 cells.
type Grid struct {
	Rows  int
	Cols  int
	cells []int64
}

// NewGrid allocates a zeroed rows×cols grid.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("seam: negative grid size %dx%d", rows, cols))
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]int64, rows*cols)}
}

// GridFromRows builds a grid from a slice of equal-length rows.
func GridFromRows(rows [][]int64) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidInput, r, len(row), g.Cols)
		}
		copy(g.Row(r), row)
	}
	return g, nil
}

// At returns the cell at (r, c).
func (g *Grid) At(r, c int) int64 {
	return g.cells[r*g.Cols+c]
}

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v int64) {
	g.cells[r*g.Cols+c] = v
}

// Row returns row r as a slice sharing the grid's storage.
func (g *Grid) Row(r int) []int64 {
	return g.cells[r*g.Cols : (r+1)*g.Cols]
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return g.Rows == 0 || g.Cols == 0
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, cells: make([]int64, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// ToRows copies the grid out as nested slices.
func (g *Grid) ToRows() [][]int64 {
	out := make([][]int64, g.Rows)
	for r := range out {
		out[r] = append([]int64(nil), g.Row(r)...)
	}
	return out
}

// Dense converts the grid to a gonum matrix. Returns nil for an empty grid,
// which gonum cannot represent.
func (g *Grid) Dense() *mat.Dense {
	if g.Empty() {
		return nil
	}
	data := make([]float64, len(g.cells))
	for i, v := range g.cells {
		data[i] = float64(v)
	}
	return mat.NewDense(g.Rows, g.Cols, data)
}
