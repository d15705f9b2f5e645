// Package preprocess provides image scaling helpers used to speed up
// template matching on large images.
package preprocess

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/mtmatch/go-mtm/geometry"
)

// Downscaler shrinks images by an integer factor before correlation and
// maps detected regions back to the source resolution afterwards
type Downscaler struct {
	// factor is the integer downscale factor, 1 meaning no scaling
	factor int
}

// NewDownscaler returns a downscaler for the given factor.  Factors below 1
// are treated as 1.
func NewDownscaler(factor int) *Downscaler {

	if factor < 1 {
		factor = 1
	}

	return &Downscaler{
		factor: factor,
	}
}

// Factor returns the downscale factor
func (d *Downscaler) Factor() int {
	return d.factor
}

// Apply shrinks src by the downscale factor into dst.  With a factor of 1
// the source is copied unchanged.
func (d *Downscaler) Apply(src gocv.Mat, dst *gocv.Mat) {

	if d.factor == 1 {
		src.CopyTo(dst)
		return
	}

	gocv.Resize(src, dst,
		image.Pt(src.Cols()/d.factor, src.Rows()/d.factor),
		0, 0, gocv.InterpolationArea)
}

// Rescale maps a rectangle detected on the downscaled image back to source
// image resolution
func (d *Downscaler) Rescale(r geometry.Rect) geometry.Rect {

	f := float32(d.factor)

	return geometry.NewRect(r.X*f, r.Y*f, r.W*f, r.H*f)
}
