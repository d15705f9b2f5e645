package mtm

import (
	"fmt"

	"github.com/mtmatch/go-mtm/geometry"
)

// Detection is a single template match found in the search image.  A
// Detection is an immutable value once created, suppression only selects or
// discards whole Detections.
type Detection struct {
	// Region is the detected area in image coordinates
	Region geometry.Region
	// Score is the match confidence where higher is always better
	Score float32
	// TemplateIndex is the positional index of the template that produced
	// this detection in the list of templates searched
	TemplateIndex int
	// Label is the label of the template that produced this detection.  It
	// is carried for reporting only and plays no part in suppression.
	Label string
}

// String returns a printable description of the detection
func (d Detection) String() string {

	b := d.Region.Bounds()

	name := fmt.Sprintf("(Detection, score:%.2f, xywh:(%.0f %.0f %.0f %.0f), index:%d",
		d.Score, b.X, b.Y, b.W, b.H, d.TemplateIndex)

	if d.Label != "" {
		name += ", " + d.Label
	}

	return name + ")"
}

// OverlapRatio returns the overlap between two detections as the ratio of
// the intersection area over the area of the smaller region.  This is the
// same measure Non-Maximum Suppression uses.
func (d Detection) OverlapRatio(other Detection) float64 {
	return geometry.OverlapRatio(d.Region, other.Region)
}

// IoU returns the Intersection over Union ratio between two detections
func (d Detection) IoU(other Detection) float64 {
	return geometry.IoU(d.Region, other.Region)
}
