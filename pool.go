package mtm

import (
	"sync"

	"gocv.io/x/gocv"

	"github.com/mtmatch/go-mtm/preprocess"
)

// extractAll runs candidate extraction for all templates across a pool of
// worker goroutines.  Extraction is independent per template and only reads
// the shared search image, results are written into the slot matching the
// template index so the concatenated pool is identical to a serial run.
func (m *Matcher) extractAll(search gocv.Mat, templates []Template,
	results [][]Detection, down *preprocess.Downscaler,
	offX, offY, workers int) error {

	if workers > len(templates) {
		workers = len(templates)
	}

	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				dets, err := m.extract(search, templates[i], i, down, offX, offY)

				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}

				results[i] = dets
			}
		}()
	}

	for i := range templates {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	return firstErr
}
