package mtm

import (
	"testing"

	"github.com/mtmatch/go-mtm/geometry"
)

func det(x, y, w, h, score float32, index int, label string) Detection {
	return Detection{
		Region:        geometry.NewRect(x, y, w, h),
		Score:         score,
		TemplateIndex: index,
		Label:         label,
	}
}

func TestNMSSuppressesOverlap(t *testing.T) {

	// two template variants firing on the same object, the higher score
	// survives and keeps its label
	pool := []Detection{
		det(20, 20, 10, 10, 0.9, 0, "upright"),
		det(22, 22, 10, 10, 0.7, 1, "rotated"),
	}

	got := NMS(pool, 0.5, Unlimited)

	if len(got) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(got))
	}

	if got[0].Score != 0.9 || got[0].Label != "upright" {
		t.Errorf("expected the 0.9 upright detection to survive, got %+v", got[0])
	}
}

func TestNMSKeepsSeparated(t *testing.T) {

	pool := []Detection{
		det(10, 10, 10, 10, 0.95, 0, ""),
		det(60, 60, 10, 10, 0.90, 0, ""),
	}

	got := NMS(pool, 0.5, Unlimited)

	if len(got) != 2 {
		t.Fatalf("expected both separated detections kept, got %d", len(got))
	}

	// output is ranked by score
	if got[0].Score != 0.95 || got[1].Score != 0.90 {
		t.Errorf("expected scores (0.95, 0.90), got (%f, %f)", got[0].Score, got[1].Score)
	}
}

func TestNMSMaxObjects(t *testing.T) {

	pool := []Detection{
		det(0, 0, 10, 10, 0.8, 0, ""),
		det(50, 0, 10, 10, 0.7, 0, ""),
		det(0, 50, 10, 10, 0.6, 0, ""),
	}

	tests := []struct {
		maxObjects int
		expected   int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		// fewer qualifying detections than the cap
		{10, 3},
		{Unlimited, 3},
	}

	for _, tc := range tests {
		got := NMS(pool, 0.5, tc.maxObjects)

		if len(got) != tc.expected {
			t.Errorf("maxObjects=%d: expected %d detections, got %d",
				tc.maxObjects, tc.expected, len(got))
		}
	}

	// with a cap of 1 the best detection is the one returned
	got := NMS(pool, 0.5, 1)

	if got[0].Score != 0.8 {
		t.Errorf("expected the 0.8 detection, got %f", got[0].Score)
	}
}

func TestNMSDuplicatesCollapse(t *testing.T) {

	// identical region and score twice, the twin has overlap ratio 1 and
	// is always suppressed
	pool := []Detection{
		det(10, 10, 20, 20, 0.6, 0, "a"),
		det(10, 10, 20, 20, 0.6, 1, "b"),
	}

	got := NMS(pool, 0.9, Unlimited)

	if len(got) != 1 {
		t.Fatalf("expected duplicate to collapse, got %d detections", len(got))
	}

	// stable ordering keeps the first of the tied pair
	if got[0].Label != "a" {
		t.Errorf("expected the earlier pool entry to survive, got %q", got[0].Label)
	}
}

func TestNMSContainment(t *testing.T) {

	// a small detection fully inside a larger one is suppressed even when
	// the large one holds only a tiny share of its own area in common
	pool := []Detection{
		det(0, 0, 100, 100, 0.9, 0, "large"),
		det(40, 40, 5, 5, 0.8, 1, "small"),
	}

	got := NMS(pool, 0.5, Unlimited)

	if len(got) != 1 || got[0].Label != "large" {
		t.Fatalf("expected the contained detection to be suppressed, got %v", got)
	}

	// and the same with the scores reversed, containment suppression does
	// not depend on which region scored higher
	pool[0].Score, pool[1].Score = 0.8, 0.9

	got = NMS(pool, 0.5, Unlimited)

	if len(got) != 1 || got[0].Label != "small" {
		t.Fatalf("expected only the higher scored detection kept, got %v", got)
	}
}

func TestNMSDeterministicTieBreak(t *testing.T) {

	pool := []Detection{
		det(0, 0, 10, 10, 0.7, 0, "first"),
		det(50, 50, 10, 10, 0.7, 1, "second"),
		det(100, 100, 10, 10, 0.7, 2, "third"),
	}

	for run := 0; run < 5; run++ {
		got := NMS(pool, 0.5, Unlimited)

		if len(got) != 3 {
			t.Fatalf("expected 3 detections, got %d", len(got))
		}

		for i, label := range []string{"first", "second", "third"} {
			if got[i].Label != label {
				t.Errorf("run %d: tied scores must keep pool order, position %d is %q",
					run, i, got[i].Label)
			}
		}
	}
}

func TestNMSDoesNotMutatePool(t *testing.T) {

	pool := []Detection{
		det(0, 0, 10, 10, 0.1, 0, "low"),
		det(50, 50, 10, 10, 0.9, 1, "high"),
	}

	_ = NMS(pool, 0.5, Unlimited)

	if pool[0].Label != "low" || pool[1].Label != "high" {
		t.Errorf("input pool order was modified: %v", pool)
	}
}

func TestNMSEmptyPool(t *testing.T) {

	got := NMS(nil, 0.5, Unlimited)

	if len(got) != 0 {
		t.Errorf("expected empty result, got %d detections", len(got))
	}
}

func TestNMSMonotonic(t *testing.T) {

	// suppression never increases the candidate count
	pool := []Detection{
		det(0, 0, 10, 10, 0.9, 0, ""),
		det(2, 2, 10, 10, 0.8, 0, ""),
		det(4, 4, 10, 10, 0.7, 0, ""),
		det(60, 60, 10, 10, 0.6, 0, ""),
	}

	got := NMS(pool, 0.3, Unlimited)

	if len(got) > len(pool) {
		t.Fatalf("suppression grew the pool from %d to %d", len(pool), len(got))
	}

	if len(got) != 2 {
		t.Errorf("expected the overlapping chain reduced to 2, got %d", len(got))
	}
}
