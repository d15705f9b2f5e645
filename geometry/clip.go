package geometry

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// clipScale is the fixed point scaling factor used when converting float
// coordinates to the integer coordinates required by the clipping library
const clipScale = 256

// toPath converts a region outline to a clipper Path in fixed point
// coordinates
func toPath(r Region) clipper.Path {

	corners := r.Corners()
	path := make(clipper.Path, 0, len(corners))

	for _, pt := range corners {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(float64(pt.X) * clipScale)),
			Y: clipper.CInt(math.Round(float64(pt.Y) * clipScale)),
		})
	}

	return path
}

// polygonIntersection computes the overlap area between two arbitrary
// polygonal regions using polygon clipping
func polygonIntersection(a, b Region) float64 {

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(toPath(a), clipper.PtSubject, true)
	c.AddPath(toPath(b), clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection,
		clipper.PftNonZero, clipper.PftNonZero)

	if !ok {
		return 0
	}

	area := float64(0)

	// the intersection of convex outlines is a single polygon, but clipping
	// of self-intersecting input can produce several
	for _, path := range solution {
		area += math.Abs(clipper.Area(path))
	}

	return area / (clipScale * clipScale)
}
