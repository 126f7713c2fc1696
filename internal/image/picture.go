// Package image adapts decoded images to the seam solver's pixel interface.
package image

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"seam-carver/pkg/colorutil"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Picture wraps an image.Image as a row/column pixel grid.
type Picture struct {
	Path   string      // Source file, empty for in-memory images
	Format string      // Decoder name reported by image.Decode
	Image  image.Image // Decoded image data
}

// NewPicture wraps an in-memory image.
func NewPicture(img image.Image) *Picture {
	return &Picture{Image: img}
}

// Load decodes the image at path.
func Load(path string) (*Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}

	return &Picture{Path: path, Format: format, Image: img}, nil
}

// Width returns the image width in pixels.
func (p *Picture) Width() int {
	if p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (p *Picture) Height() int {
	if p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dy()
}

// ColorAt returns the color at (row, col), relative to the image's bounds.
func (p *Picture) ColorAt(row, col int) colorutil.RGB {
	origin := p.Image.Bounds().Min
	x, y := origin.X+col, origin.Y+row
	switch img := p.Image.(type) {
	case *image.RGBA:
		i := img.PixOffset(x, y)
		return colorutil.RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
	case *image.NRGBA:
		// Straight alpha: report the stored color, ignoring transparency.
		i := img.PixOffset(x, y)
		return colorutil.RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
	}
	return colorutil.FromColor(p.Image.At(x, y))
}

// SupportedFormats returns the file extensions Load can decode.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".bmp", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
