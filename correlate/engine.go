// Package correlate provides the image correlation engines used to score
// template placements against a search image.  Each engine produces a
// confidence Map where a higher score always means a better match,
// regardless of the underlying correlation metric.
package correlate

import (
	"image"

	"gocv.io/x/gocv"
)

// Engine computes a confidence map for one template against a search image.
// Scores follow a single convention across all engines: higher is better.
// Engines based on a distance metric must invert their scores before
// returning the map.
type Engine interface {
	Correlate(img, tpl gocv.Mat) (*Map, error)
}

// Peak is a candidate placement position in a confidence map together with
// its score
type Peak struct {
	Point image.Point
	Score float32
}

// Map is a confidence map over template placement positions.  Position x,y
// is the top left corner of the template placed on the search image, so a
// map for an image of WxH and a template of wxh has size (W-w+1)x(H-h+1).
type Map struct {
	scores []float32
	w, h   int
}

// NewMap creates a confidence map of the given dimensions from a row-major
// score slice
func NewMap(w, h int, scores []float32) *Map {
	return &Map{
		scores: scores,
		w:      w,
		h:      h,
	}
}

// Width returns the number of placement positions per row
func (m *Map) Width() int {
	return m.w
}

// Height returns the number of placement rows
func (m *Map) Height() int {
	return m.h
}

// At returns the score at placement position x,y
func (m *Map) At(x, y int) float32 {
	return m.scores[y*m.w+x]
}

// Best returns the placement position with the highest score.  When several
// positions share the highest score the first one in row-major order is
// returned.
func (m *Map) Best() (image.Point, float32) {

	bestIdx := 0
	bestScore := m.scores[0]

	for i, s := range m.scores {
		if s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}

	return image.Pt(bestIdx%m.w, bestIdx/m.w), bestScore
}

// Peaks returns all local maxima with a score of at least the given
// threshold.  A position is a local maximum when its score is greater than
// or equal to all its neighbours in the surrounding 8-neighbourhood, with
// map borders included.  Results are in row-major scan order.
func (m *Map) Peaks(threshold float32) []Peak {

	var peaks []Peak

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {

			score := m.At(x, y)

			if score < threshold {
				continue
			}

			if m.isLocalMax(x, y, score) {
				peaks = append(peaks, Peak{
					Point: image.Pt(x, y),
					Score: score,
				})
			}
		}
	}

	return peaks
}

// isLocalMax reports whether the score at x,y is greater than or equal to
// all its in-bounds neighbours
func (m *Map) isLocalMax(x, y int, score float32) bool {

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {

			if dx == 0 && dy == 0 {
				continue
			}

			nx := x + dx
			ny := y + dy

			if nx < 0 || nx >= m.w || ny < 0 || ny >= m.h {
				continue
			}

			if m.At(nx, ny) > score {
				return false
			}
		}
	}

	return true
}
