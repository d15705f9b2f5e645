package geometry

import (
	"math"
)

// Quad is a rotated rectangular region defined by its center point, width,
// height and rotation angle in radians.  It represents detections produced
// by rotated template variants.
type Quad struct {
	CX, CY float32
	W, H   float32
	Angle  float32
}

// NewQuad creates a new Quad with the given center, dimensions and rotation
// angle in radians
func NewQuad(cx, cy, w, h, angle float32) Quad {
	return Quad{CX: cx, CY: cy, W: w, H: h, Angle: angle}
}

// Area returns the quad surface area in square pixels
func (q Quad) Area() float64 {

	if q.W <= 0 || q.H <= 0 {
		return 0
	}

	return float64(q.W) * float64(q.H)
}

// Corners returns the four quad vertices by rotating the half extents
// around the center point
func (q Quad) Corners() []Point {

	cosA := float32(math.Cos(float64(q.Angle)))
	sinA := float32(math.Sin(float64(q.Angle)))

	halfW := q.W / 2
	halfH := q.H / 2

	// offsets of the unrotated corners relative to the center
	offsets := [4][2]float32{
		{-halfW, -halfH},
		{halfW, -halfH},
		{halfW, halfH},
		{-halfW, halfH},
	}

	corners := make([]Point, 4)

	for i, off := range offsets {
		corners[i] = Point{
			X: q.CX + off[0]*cosA - off[1]*sinA,
			Y: q.CY + off[0]*sinA + off[1]*cosA,
		}
	}

	return corners
}

// Bounds returns the axis-aligned rectangle enclosing the rotated corners
func (q Quad) Bounds() Rect {

	corners := q.Corners()

	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y

	for _, pt := range corners[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	return NewRect(minX, minY, maxX-minX, maxY-minY)
}
