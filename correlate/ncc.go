package correlate

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NCC is a pure Go correlation engine computing zero-mean normalized
// cross-correlation on the grayscale plane of the inputs.  It produces
// scores in the range -1 to 1 like CCoeffNormed but does not require the
// OpenCV runtime, at the cost of speed on large images.
type NCC struct{}

// NewNCC returns a pure Go normalized cross-correlation engine
func NewNCC() *NCC {
	return &NCC{}
}

// Correlate converts both inputs to grayscale matrices and runs the
// correlation
func (e *NCC) Correlate(img, tpl gocv.Mat) (*Map, error) {

	imgPlane, err := grayDense(img)

	if err != nil {
		return nil, fmt.Errorf("error converting image: %w", err)
	}

	tplPlane, err := grayDense(tpl)

	if err != nil {
		return nil, fmt.Errorf("error converting template: %w", err)
	}

	return nccCorrelate(imgPlane, tplPlane), nil
}

// grayDense converts a Mat to a dense matrix of grayscale values in the
// range 0 to 255
func grayDense(m gocv.Mat) (*mat.Dense, error) {

	src, err := m.ToImage()

	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	d := mat.NewDense(bounds.Dy(), bounds.Dx(), nil)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			r, g, b, _ := src.At(x, y).RGBA()

			// ITU-R BT.601 luma weights on 16 bit channel values
			luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0

			d.Set(y-bounds.Min.Y, x-bounds.Min.X, luma)
		}
	}

	return d, nil
}

// nccCorrelate slides the template over every placement position of the
// image and scores each window with zero-mean normalized cross-correlation
func nccCorrelate(img, tpl *mat.Dense) *Map {

	imgH, imgW := img.Dims()
	tplH, tplW := tpl.Dims()

	mapW := imgW - tplW + 1
	mapH := imgH - tplH + 1

	n := tplH * tplW

	// flatten the template and remove its mean once up front
	tplVec := make([]float64, 0, n)

	for r := 0; r < tplH; r++ {
		tplVec = append(tplVec, rowSlice(tpl, r, 0, tplW)...)
	}

	floats.AddConst(-floats.Sum(tplVec)/float64(n), tplVec)
	tplNorm := math.Sqrt(floats.Dot(tplVec, tplVec))

	window := make([]float64, n)
	scores := make([]float32, mapW*mapH)

	for y := 0; y < mapH; y++ {
		for x := 0; x < mapW; x++ {

			// gather the image window under this placement
			at := 0
			for r := 0; r < tplH; r++ {
				at += copy(window[at:], rowSlice(img, y+r, x, tplW))
			}

			floats.AddConst(-floats.Sum(window)/float64(n), window)

			denom := tplNorm * math.Sqrt(floats.Dot(window, window))

			// flat windows or flat templates have no correlation
			score := float64(0)

			if denom > 0 {
				score = floats.Dot(window, tplVec) / denom
			}

			scores[y*mapW+x] = float32(score)
		}
	}

	return NewMap(mapW, mapH, scores)
}

// rowSlice returns a view of width w starting at column c of row r
func rowSlice(d *mat.Dense, r, c, w int) []float64 {
	return d.RawRowView(r)[c : c+w]
}
