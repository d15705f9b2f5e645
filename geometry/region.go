package geometry

// Point represents an x,y coordinate in image space
type Point struct {
	X, Y float32
}

// Region is the capability required of a detection area.  Any shape able to
// report its surface area, outline corners, and axis-aligned bounds can be
// used in overlap queries and Non-Maximum Suppression, which keeps the
// suppression code shape agnostic.
type Region interface {
	// Area returns the surface area in square pixels.  Degenerate regions
	// report an area of 0.
	Area() float64
	// Corners returns the vertices of the region outline in drawing order
	Corners() []Point
	// Bounds returns the axis-aligned bounding rectangle of the region
	Bounds() Rect
}

// IntersectionArea returns the area of overlap between two regions.  A pair
// of axis-aligned rectangles is computed directly, any other combination of
// shapes goes through polygon clipping.
func IntersectionArea(a, b Region) float64 {

	ra, aIsRect := a.(Rect)
	rb, bIsRect := b.(Rect)

	if aIsRect && bIsRect {
		return rectIntersection(ra, rb)
	}

	// cheap reject when the bounding rectangles don't touch
	if rectIntersection(a.Bounds(), b.Bounds()) == 0 {
		return 0
	}

	return polygonIntersection(a, b)
}

// UnionArea returns the combined area covered by two regions
func UnionArea(a, b Region) float64 {
	return a.Area() + b.Area() - IntersectionArea(a, b)
}

// IoU returns the Intersection over Union ratio between two regions.  The
// value is 1 when the regions coincide and 0 when they are disjoint.
func IoU(a, b Region) float64 {

	union := UnionArea(a, b)

	if union <= 0 {
		return 0
	}

	return IntersectionArea(a, b) / union
}

// OverlapRatio returns the intersection area between two regions divided by
// the area of the smaller region.  A small region fully contained in a
// larger one always has a ratio of 1, whichever of the two it is.  If
// either region is degenerate the ratio is 0.
func OverlapRatio(a, b Region) float64 {

	minArea := a.Area()

	if b.Area() < minArea {
		minArea = b.Area()
	}

	if minArea <= 0 {
		return 0
	}

	return IntersectionArea(a, b) / minArea
}
