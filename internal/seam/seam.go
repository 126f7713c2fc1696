package seam

import "fmt"

// Seam holds one column index per image row, top to bottom.
type Seam []int

// Validate checks that s has one entry per row of an image of the given
// width, every entry in range and adjacent entries at most one apart.
func (s Seam) Validate(height, width int) error {
	if len(s) != height {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSeam, len(s), height)
	}
	for r, c := range s {
		if c < 0 || c >= width {
			return fmt.Errorf("%w: row %d column %d outside [0,%d)", ErrInvalidSeam, r, c, width)
		}
		if r > 0 {
			if d := c - s[r-1]; d < -1 || d > 1 {
				return fmt.Errorf("%w: rows %d-%d jump %d columns", ErrInvalidSeam, r-1, r, d)
			}
		}
	}
	return nil
}

// Cost sums g along the seam. The seam must fit g.
func (s Seam) Cost(g *Grid) int64 {
	var total int64
	for r, c := range s {
		total += g.At(r, c)
	}
	return total
}

// Points returns the seam as (x, y) pairs, the form a renderer consumes.
func (s Seam) Points() [][2]int {
	pts := make([][2]int, len(s))
	for y, x := range s {
		pts[y] = [2]int{x, y}
	}
	return pts
}
