package mtm

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"github.com/mtmatch/go-mtm/correlate"
	"github.com/mtmatch/go-mtm/geometry"
	"github.com/mtmatch/go-mtm/preprocess"
)

const (
	// DefaultScoreThreshold is the default minimum confidence score for a
	// candidate detection
	DefaultScoreThreshold = 0.5
	// DefaultMaxOverlap is the default maximum overlap ratio allowed
	// between two detections kept by suppression
	DefaultMaxOverlap = 0.25
	// Unlimited places no cap on the number of detections returned
	Unlimited = math.MaxInt
)

// MatchParams defines the parameters of a template matching search
type MatchParams struct {
	// ScoreThreshold is the minimum confidence score for a candidate
	// detection, in the range -1 to 1.  A template Threshold field
	// overrides it for that template.
	ScoreThreshold float32
	// MaxOverlap is the maximum allowed overlap ratio between two
	// detections, in the range 0 to 1.  The ratio is the intersection area
	// over the area of the smaller region.
	MaxOverlap float32
	// MaxObjects is the expected number of objects in the image.  Fewer
	// detections are returned when fewer candidates pass the score
	// threshold.  Use Unlimited for no cap.
	MaxObjects int
	// SingleMatch returns only the single best scoring candidate per
	// template, ignoring ScoreThreshold.  Suitable when each template is
	// known to appear exactly once.
	SingleMatch bool
	// SearchBox restricts the search to a rectangular sub-region of the
	// image.  The zero value searches the whole image.  Detection
	// coordinates are always reported in full image space.
	SearchBox image.Rectangle
	// Downscale shrinks the image and templates by an integer factor
	// before correlation to speed up the search.  Detected regions are
	// rescaled to the source resolution.  Values 0 and 1 disable scaling.
	Downscale int
	// Workers is the number of goroutines candidate extraction runs
	// across.  Extraction is independent per template, results are always
	// concatenated in template order.  Values 0 and 1 run serially.
	Workers int
}

// NewMatchParams returns matching parameters set to their defaults
func NewMatchParams() MatchParams {
	return MatchParams{
		ScoreThreshold: DefaultScoreThreshold,
		MaxOverlap:     DefaultMaxOverlap,
		MaxObjects:     Unlimited,
		Downscale:      1,
		Workers:        1,
	}
}

// Matcher runs template matching searches with a fixed correlation engine
// and parameter set.  A Matcher holds no state between calls and is safe
// for concurrent use.
type Matcher struct {
	// Params are the matching parameters in use
	Params MatchParams

	engine correlate.Engine
}

// NewMatcher returns a Matcher using the given correlation engine.  A nil
// engine selects normalized cross-correlation.
func NewMatcher(engine correlate.Engine, p MatchParams) *Matcher {

	if engine == nil {
		engine = correlate.NewCCoeffNormed()
	}

	return &Matcher{
		Params: p,
		engine: engine,
	}
}

// FindMatches searches every template in the image and returns all
// candidate detections above the score threshold, concatenated in template
// order.  No suppression is applied, candidates from different templates
// firing on the same object will overlap.  Use MatchTemplates for the
// reconciled result.
//
// An empty template list returns an empty result.  If any template fails
// shape validation no detections are returned at all.
func (m *Matcher) FindMatches(img gocv.Mat, templates []Template) ([]Detection, error) {

	if err := m.validate(); err != nil {
		return nil, err
	}

	if len(templates) == 0 {
		return []Detection{}, nil
	}

	search := img
	var offX, offY int

	if !m.Params.SearchBox.Empty() {
		region := img.Region(m.Params.SearchBox)
		defer region.Close()

		search = region
		offX = m.Params.SearchBox.Min.X
		offY = m.Params.SearchBox.Min.Y
	}

	// every template is checked before any correlation work begins, a
	// search either processes all templates or none
	for i := range templates {
		if err := checkShape(search, templates[i], i); err != nil {
			return nil, err
		}
	}

	var down *preprocess.Downscaler

	if m.Params.Downscale > 1 {
		down = preprocess.NewDownscaler(m.Params.Downscale)

		scaled := gocv.NewMat()
		defer scaled.Close()

		down.Apply(search, &scaled)
		search = scaled
	}

	results := make([][]Detection, len(templates))

	workers := m.Params.Workers

	if workers > 1 {
		if err := m.extractAll(search, templates, results, down,
			offX, offY, workers); err != nil {
			return nil, err
		}
	} else {
		for i := range templates {
			dets, err := m.extract(search, templates[i], i, down, offX, offY)

			if err != nil {
				return nil, err
			}

			results[i] = dets
		}
	}

	// concatenate per template candidates in template order
	pool := make([]Detection, 0)

	for _, dets := range results {
		pool = append(pool, dets...)
	}

	return pool, nil
}

// MatchTemplates searches every template in the image and reconciles the
// pooled candidates with Non-Maximum Suppression, returning up to
// MaxObjects non-redundant detections ranked by score.  This is the main
// entry point.
func (m *Matcher) MatchTemplates(img gocv.Mat, templates []Template) ([]Detection, error) {

	pool, err := m.FindMatches(img, templates)

	if err != nil {
		return nil, err
	}

	return NMS(pool, m.Params.MaxOverlap, m.Params.MaxObjects), nil
}

// extract runs the correlation engine for one template and turns the
// confidence map into candidate detections
func (m *Matcher) extract(search gocv.Mat, tpl Template, index int,
	down *preprocess.Downscaler, offX, offY int) ([]Detection, error) {

	tplImg := tpl.Image

	if down != nil {
		scaled := gocv.NewMat()
		defer scaled.Close()

		down.Apply(tpl.Image, &scaled)
		tplImg = scaled
	}

	confMap, err := m.engine.Correlate(search, tplImg)

	if err != nil {
		return nil, fmt.Errorf("template %d: %w", index, err)
	}

	var peaks []correlate.Peak

	if m.Params.SingleMatch {
		// best guess per template, the score threshold does not apply
		pt, score := confMap.Best()
		peaks = []correlate.Peak{{Point: pt, Score: score}}
	} else {
		threshold := m.Params.ScoreThreshold

		if tpl.Threshold != 0 {
			threshold = tpl.Threshold
		}

		peaks = confMap.Peaks(threshold)
	}

	width := float32(tplImg.Cols())
	height := float32(tplImg.Rows())

	dets := make([]Detection, 0, len(peaks))

	for _, pk := range peaks {

		rect := geometry.NewRect(float32(pk.Point.X), float32(pk.Point.Y),
			width, height)

		if down != nil {
			rect = down.Rescale(rect)
		}

		rect.X += float32(offX)
		rect.Y += float32(offY)

		dets = append(dets, Detection{
			Region:        rect,
			Score:         pk.Score,
			TemplateIndex: index,
			Label:         tpl.Label,
		})
	}

	return dets, nil
}

// validate checks the matching parameters before any correlation work
// begins
func (m *Matcher) validate() error {

	p := m.Params

	if p.ScoreThreshold < -1 || p.ScoreThreshold > 1 {
		return fmt.Errorf("%w: %v is outside -1 to 1",
			ErrInvalidThreshold, p.ScoreThreshold)
	}

	if p.MaxOverlap < 0 || p.MaxOverlap > 1 {
		return fmt.Errorf("%w: %v is outside 0 to 1",
			ErrInvalidOverlap, p.MaxOverlap)
	}

	if p.MaxObjects < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxObjects, p.MaxObjects)
	}

	if p.Downscale < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDownscale, p.Downscale)
	}

	return nil
}

// checkShape verifies a template fits inside the search image and shares
// its channel count and bit depth
func checkShape(img gocv.Mat, tpl Template, index int) error {

	t := tpl.Image

	if img.Empty() || t.Empty() {
		return fmt.Errorf("%w: template %d or search image is empty",
			ErrShapeMismatch, index)
	}

	if t.Cols() > img.Cols() || t.Rows() > img.Rows() {
		return fmt.Errorf("%w: template %d (%dx%d) is larger than the search image (%dx%d)",
			ErrShapeMismatch, index, t.Cols(), t.Rows(), img.Cols(), img.Rows())
	}

	if t.Type() != img.Type() {
		return fmt.Errorf("%w: template %d type %v does not match image type %v",
			ErrShapeMismatch, index, t.Type(), img.Type())
	}

	return nil
}

// FindMatches searches every template in the image with the default
// normalized cross-correlation engine and returns all candidate detections
// without suppression
func FindMatches(img gocv.Mat, templates []Template, p MatchParams) ([]Detection, error) {
	return NewMatcher(nil, p).FindMatches(img, templates)
}

// MatchTemplates searches every template in the image with the default
// normalized cross-correlation engine and returns the suppressed detection
// list
func MatchTemplates(img gocv.Mat, templates []Template, p MatchParams) ([]Detection, error) {
	return NewMatcher(nil, p).MatchTemplates(img, templates)
}
