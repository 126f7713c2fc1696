package seam

import (
	"math/rand"

	"seam-carver/pkg/colorutil"
)

// pixels is an in-memory Image indexed [row][col].
type pixels [][]colorutil.RGB

func (p pixels) Height() int { return len(p) }

func (p pixels) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

func (p pixels) ColorAt(row, col int) colorutil.RGB { return p[row][col] }

// sized reports fixed dimensions and fails loudly if any pixel is read.
type sized struct{ h, w int }

func (s sized) Height() int { return s.h }
func (s sized) Width() int  { return s.w }
func (s sized) ColorAt(row, col int) colorutil.RGB {
	panic("ColorAt called on empty image")
}

func uniform(h, w int, c colorutil.RGB) pixels {
	p := make(pixels, h)
	for r := range p {
		p[r] = make([]colorutil.RGB, w)
		for col := range p[r] {
			p[r][col] = c
		}
	}
	return p
}

func randomPixels(rng *rand.Rand, h, w int) pixels {
	p := make(pixels, h)
	for r := range p {
		p[r] = make([]colorutil.RGB, w)
		for c := range p[r] {
			p[r][c] = colorutil.RGB{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			}
		}
	}
	return p
}

func randomGrid(rng *rand.Rand, h, w int, maxVal int64) *Grid {
	g := NewGrid(h, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			g.Set(r, c, rng.Int63n(maxVal+1))
		}
	}
	return g
}

// bruteForceMin enumerates every 8-connected vertical seam through g and
// returns the smallest total.
func bruteForceMin(g *Grid) int64 {
	best := int64(-1)
	var walk func(r, c int, acc int64)
	walk = func(r, c int, acc int64) {
		acc += g.At(r, c)
		if r == g.Rows-1 {
			if best < 0 || acc < best {
				best = acc
			}
			return
		}
		for d := -1; d <= 1; d++ {
			if nc := c + d; nc >= 0 && nc < g.Cols {
				walk(r+1, nc, acc)
			}
		}
	}
	for c := 0; c < g.Cols; c++ {
		walk(0, c, 0)
	}
	return best
}
