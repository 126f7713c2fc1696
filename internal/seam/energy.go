package seam

import (
	"fmt"

	"seam-carver/pkg/colorutil"
)

// Image is the read-only pixel access the solver needs. ColorAt must be
// defined for every 0 <= row < Height() and 0 <= col < Width().
type Image interface {
	Height() int
	Width() int
	ColorAt(row, col int) colorutil.RGB
}

// Axis neighbors in visit order: left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// ComputeImportance returns the per-pixel energy of img.
//
// Each pixel is compared against its in-bounds axis neighbors. The
// accumulator is re-averaged after every neighbor, acc = (acc+diff)/n,
// using floor division, so with three or four neighbors the result is not
// the plain mean of the differences.
func ComputeImportance(img Image) (*Grid, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}

	h, w := img.Height(), img.Width()
	energy := NewGrid(h, w)

	for r := 0; r < h; r++ {
		row := energy.Row(r)
		for c := 0; c < w; c++ {
			row[c] = pixelImportance(img, r, c, h, w)
		}
	}

	return energy, nil
}

func pixelImportance(img Image, r, c, h, w int) int64 {
	here := img.ColorAt(r, c)

	var acc int64
	var n int64
	for _, off := range neighborOffsets {
		nr, nc := r+off[0], c+off[1]
		if nr < 0 || nr >= h || nc < 0 || nc >= w {
			continue
		}
		n++
		acc = (acc + int64(here.Diff(img.ColorAt(nr, nc)))) / n
	}
	return acc
}

func checkImage(img Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	h, w := img.Height(), img.Width()
	if h <= 0 || w <= 0 {
		return fmt.Errorf("%w: image is %dx%d", ErrInvalidInput, w, h)
	}
	return nil
}
