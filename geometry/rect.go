package geometry

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangular region with X,Y the top left corner
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a new Rect with the given top left corner and dimensions
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Area returns the rectangle surface area in square pixels
func (r Rect) Area() float64 {

	if r.W <= 0 || r.H <= 0 {
		return 0
	}

	return float64(r.W) * float64(r.H)
}

// Corners returns the four rectangle vertices in clockwise order starting
// from the top left
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Bounds returns the rectangle itself
func (r Rect) Bounds() Rect {
	return r
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r Rect) BRX() float32 {
	return r.X + r.W
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r Rect) BRY() float32 {
	return r.Y + r.H
}

// ToImageRect converts the rectangle to an image.Rectangle with coordinates
// rounded to whole pixels
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.X))),
		int(math.Round(float64(r.Y))),
		int(math.Round(float64(r.X+r.W))),
		int(math.Round(float64(r.Y+r.H))),
	)
}

// rectIntersection returns the overlap area of two axis-aligned rectangles
func rectIntersection(a, b Rect) float64 {

	w := math.Min(float64(a.BRX()), float64(b.BRX())) - math.Max(float64(a.X), float64(b.X))

	if w <= 0 {
		return 0
	}

	h := math.Min(float64(a.BRY()), float64(b.BRY())) - math.Max(float64(a.Y), float64(b.Y))

	if h <= 0 {
		return 0
	}

	return w * h
}
