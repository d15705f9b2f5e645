package correlate

import (
	"fmt"

	"gocv.io/x/gocv"
)

// CCoeffNormed is the default correlation engine.  It computes normalized
// cross-correlation (OpenCV TM_CCOEFF_NORMED) where scores range from -1 to
// 1 and higher is better.
type CCoeffNormed struct{}

// NewCCoeffNormed returns a normalized cross-correlation engine
func NewCCoeffNormed() *CCoeffNormed {
	return &CCoeffNormed{}
}

// Correlate runs template matching and returns the confidence map
func (e *CCoeffNormed) Correlate(img, tpl gocv.Mat) (*Map, error) {
	return matchTemplate(img, tpl, gocv.TmCcoeffNormed, false)
}

// SqDiffNormed is a correlation engine based on the normalized squared
// difference metric (OpenCV TM_SQDIFF_NORMED).  The raw metric is a
// distance where lower means better, so scores are inverted to 1-d before
// entering the confidence map, keeping the higher-is-better convention.
type SqDiffNormed struct{}

// NewSqDiffNormed returns a normalized squared difference engine
func NewSqDiffNormed() *SqDiffNormed {
	return &SqDiffNormed{}
}

// Correlate runs template matching and returns the confidence map with
// inverted scores
func (e *SqDiffNormed) Correlate(img, tpl gocv.Mat) (*Map, error) {
	return matchTemplate(img, tpl, gocv.TmSqdiffNormed, true)
}

// matchTemplate runs OpenCV template matching with the given method and
// copies the result into a confidence map
func matchTemplate(img, tpl gocv.Mat, method gocv.TemplateMatchMode,
	invert bool) (*Map, error) {

	result := gocv.NewMat()
	defer result.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	gocv.MatchTemplate(img, tpl, &result, method, mask)

	if result.Empty() {
		return nil, fmt.Errorf("template matching produced an empty result")
	}

	data, err := result.DataPtrFloat32()

	if err != nil {
		return nil, fmt.Errorf("error reading match result: %w", err)
	}

	// copy the scores out of the Mat buffer before it is closed
	scores := make([]float32, len(data))

	if invert {
		for i, v := range data {
			scores[i] = 1 - v
		}
	} else {
		copy(scores, data)
	}

	return NewMap(result.Cols(), result.Rows(), scores), nil
}
