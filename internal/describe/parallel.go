package describe

import (
	"runtime"
	"sync"
)

// WorkItem holds one sample ready for extraction against the shared
// reference.
type WorkItem struct {
	Seq    int
	Name   string
	Sample []byte
}

// WorkResult holds the extraction output for a single sample.
type WorkResult struct {
	Seq        int
	Name       string
	Extraction *Extraction
	Err        error
}

// ParallelDescribe extracts work items using a pool of workers; the
// per-call extraction context makes concurrent runs safe. Results are
// sent to the returned channel in arrival order (not sequence order);
// use OrderedCollect to consume them in sequence-number order. If
// workers is 0, runtime.NumCPU() is used.
func (d *Describer) ParallelDescribe(reference []byte, items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				extraction, err := d.Describe(reference, item.Sample)
				results <- WorkResult{
					Seq:        item.Seq,
					Name:       item.Name,
					Extraction: extraction,
					Err:        err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect consumes results in sequence-number order, buffering
// out-of-order arrivals.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
