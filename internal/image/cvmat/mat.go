// Package cvmat exposes OpenCV matrices to the seam solver.
package cvmat

import (
	"errors"
	"fmt"
	"image"

	"seam-carver/pkg/colorutil"

	"gocv.io/x/gocv"
)

// ErrUnsupportedMat is returned by Wrap for mats that are not 8-bit BGR.
var ErrUnsupportedMat = errors.New("cvmat: unsupported mat")

// Mat reads pixels from an 8-bit, 3-channel BGR gocv.Mat.
// It does not own the underlying mat; the caller closes it.
type Mat struct {
	mat gocv.Mat
}

// Wrap checks that m is a non-empty CV_8UC3 mat and wraps it.
func Wrap(m gocv.Mat) (*Mat, error) {
	if m.Empty() {
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedMat)
	}
	if m.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("%w: type %v, want CV_8UC3", ErrUnsupportedMat, m.Type())
	}
	return &Mat{mat: m}, nil
}

func (m *Mat) Height() int { return m.mat.Rows() }
func (m *Mat) Width() int  { return m.mat.Cols() }

// ColorAt returns the pixel at (row, col), converted from BGR.
func (m *Mat) ColorAt(row, col int) colorutil.RGB {
	vec := m.mat.GetVecbAt(row, col)
	return colorutil.FromBGR(vec[0], vec[1], vec[2])
}

// FromImage converts a Go image.Image to a gocv.Mat in BGR format.
// The caller must Close the returned mat.
func FromImage(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return gocv.NewMat(), fmt.Errorf("%w: image is %dx%d", ErrUnsupportedMat, w, h)
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colorutil.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			mat.SetUCharAt(y, x*3+0, c.B)
			mat.SetUCharAt(y, x*3+1, c.G)
			mat.SetUCharAt(y, x*3+2, c.R)
		}
	}

	return mat, nil
}
