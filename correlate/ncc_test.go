package correlate

import (
	"image"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// almostEqual checks if two float32 values are approximately equal
func almostEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a)-float64(b))) <= tolerance
}

func TestNCCCorrelateExactMatch(t *testing.T) {

	// 6x6 image with a textured 2x2 block placed at x=2, y=1
	img := mat.NewDense(6, 6, nil)
	img.Set(1, 2, 10)
	img.Set(1, 3, 20)
	img.Set(2, 2, 30)
	img.Set(2, 3, 40)

	tpl := mat.NewDense(2, 2, []float64{
		10, 20,
		30, 40,
	})

	confMap := nccCorrelate(img, tpl)

	if confMap.Width() != 5 || confMap.Height() != 5 {
		t.Fatalf("expected 5x5 map, got %dx%d", confMap.Width(), confMap.Height())
	}

	pt, score := confMap.Best()

	if pt != image.Pt(2, 1) {
		t.Errorf("expected best position (2,1), got (%d,%d)", pt.X, pt.Y)
	}

	if !almostEqual(score, 1.0, 1e-5) {
		t.Errorf("expected perfect correlation 1.0, got %f", score)
	}
}

func TestNCCCorrelateFlatWindows(t *testing.T) {

	// a window with no variance has no correlation with anything
	img := mat.NewDense(4, 4, nil)

	tpl := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})

	confMap := nccCorrelate(img, tpl)

	for y := 0; y < confMap.Height(); y++ {
		for x := 0; x < confMap.Width(); x++ {
			if confMap.At(x, y) != 0 {
				t.Errorf("expected score 0 at (%d,%d), got %f", x, y, confMap.At(x, y))
			}
		}
	}
}

func TestNCCCorrelateInverted(t *testing.T) {

	// an inverted pattern correlates perfectly negatively
	img := mat.NewDense(2, 2, []float64{
		40, 30,
		20, 10,
	})

	tpl := mat.NewDense(2, 2, []float64{
		10, 20,
		30, 40,
	})

	confMap := nccCorrelate(img, tpl)

	if confMap.Width() != 1 || confMap.Height() != 1 {
		t.Fatalf("expected 1x1 map, got %dx%d", confMap.Width(), confMap.Height())
	}

	if !almostEqual(confMap.At(0, 0), -1.0, 1e-5) {
		t.Errorf("expected correlation -1.0, got %f", confMap.At(0, 0))
	}
}

func TestNCCCorrelateScaleInvariant(t *testing.T) {

	// scaling intensity does not change the normalized score
	img := mat.NewDense(3, 3, []float64{
		2, 4, 0,
		6, 8, 0,
		0, 0, 0,
	})

	tpl := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})

	confMap := nccCorrelate(img, tpl)

	if !almostEqual(confMap.At(0, 0), 1.0, 1e-5) {
		t.Errorf("expected correlation 1.0 at (0,0), got %f", confMap.At(0, 0))
	}
}
