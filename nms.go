package mtm

import (
	"sort"

	"github.com/mtmatch/go-mtm/geometry"
)

// NMS performs greedy overlap based Non-Maximum Suppression on a pool of
// candidate detections and returns the reduced list.
//
// Candidates are visited in order of descending score.  A candidate is kept
// when its overlap ratio with every already kept detection does not exceed
// maxOverlap, where the ratio is the intersection area over the area of the
// smaller of the two regions.  Exact duplicates have a ratio of 1 with
// their twin and are always suppressed.
//
// At most maxObjects detections are returned, possibly fewer when the pool
// is exhausted first.  Pass Unlimited for no cap.  The sort is stable, so
// candidates with equal scores keep their pool order and identical input
// always yields identical output.  The pool itself is never modified.
func NMS(pool []Detection, maxOverlap float32, maxObjects int) []Detection {

	keep := make([]Detection, 0, len(pool))

	if len(pool) == 0 || maxObjects <= 0 {
		return keep
	}

	sorted := make([]Detection, len(pool))
	copy(sorted, pool)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	for _, cand := range sorted {

		if len(keep) >= maxObjects {
			break
		}

		suppressed := false

		// test the candidate against every confirmed detection
		for _, kept := range keep {
			if geometry.OverlapRatio(kept.Region, cand.Region) > float64(maxOverlap) {
				suppressed = true
				break
			}
		}

		if !suppressed {
			keep = append(keep, cand)
		}
	}

	return keep
}
