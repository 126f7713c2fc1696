// Package colorutil provides shared color utilities for the seam carver.
package colorutil

import "image/color"

// Common reference colors used by tests and adapters.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
	Red   = RGB{R: 255, G: 0, B: 0}
	Green = RGB{R: 0, G: 255, B: 0}
	Blue  = RGB{R: 0, G: 0, B: 255}
)

// MaxDiff is the largest value Diff can return.
const MaxDiff = 3 * 255

// RGB is an 8-bit-per-channel color without alpha.
type RGB struct {
	R, G, B uint8
}

// FromColor converts any color.Color to RGB, dropping alpha.
// 16-bit channels are shifted down to 8 bits.
func FromColor(c color.Color) RGB {
	if rgba, ok := c.(color.RGBA); ok {
		return RGB{R: rgba.R, G: rgba.G, B: rgba.B}
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// FromBGR builds an RGB from channels in OpenCV's BGR order.
func FromBGR(b, g, r uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Diff returns |ΔR| + |ΔG| + |ΔB| between c and o.
func (c RGB) Diff(o RGB) int {
	return absDiff(c.R, o.R) + absDiff(c.G, o.G) + absDiff(c.B, o.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
