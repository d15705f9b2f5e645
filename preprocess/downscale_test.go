package preprocess

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/mtmatch/go-mtm/geometry"
)

func TestDownscalerApply(t *testing.T) {

	tests := []struct {
		srcWidth  int
		srcHeight int
		factor    int
		expWidth  int
		expHeight int
	}{
		{640, 480, 2, 320, 240},
		{100, 100, 4, 25, 25},
		// factor 1 leaves dimensions unchanged
		{33, 47, 1, 33, 47},
		// factors below 1 are treated as 1
		{33, 47, 0, 33, 47},
	}

	for _, tc := range tests {
		src := gocv.NewMatWithSize(tc.srcHeight, tc.srcWidth, gocv.MatTypeCV8UC1)
		dst := gocv.NewMat()

		d := NewDownscaler(tc.factor)
		d.Apply(src, &dst)

		if dst.Cols() != tc.expWidth || dst.Rows() != tc.expHeight {
			t.Errorf("src (%d, %d) factor %d: expected %dx%d, got %dx%d",
				tc.srcWidth, tc.srcHeight, tc.factor,
				tc.expWidth, tc.expHeight, dst.Cols(), dst.Rows())
		}

		src.Close()
		dst.Close()
	}
}

func TestDownscalerRescale(t *testing.T) {

	d := NewDownscaler(4)

	got := d.Rescale(geometry.NewRect(10, 20, 8, 6))
	expected := geometry.NewRect(40, 80, 32, 24)

	if got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}
