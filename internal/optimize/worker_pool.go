package optimize

import (
	"math/rand/v2"
	"sync"
)

// parallelFor splits [0, n) into numWorkers contiguous chunks and runs fn
// once per chunk on its own goroutine with its own worker-local PRNG,
// joining all of them before returning — the same snapshot/compute/join
// shape as the teacher's chunked ECS worker pool, specialized to GA
// population slots instead of entities. It is a barrier: the caller only
// proceeds once every chunk (and therefore every slot in [0,n)) has been
// written, which is exactly the happens-before the spec requires between
// one generation's offspring and the next.
//
// fn receives the half-open index range [i0, i1) to fill and a PRNG private
// to that goroutine. The first non-nil error from any chunk is returned;
// other chunks still run to completion (their partial writes are discarded
// by the caller on error).
func parallelFor(n, numWorkers int, fn func(i0, i1 int, rng *rand.Rand) error) error {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > n {
		numWorkers = n
	}
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(i0, i1 int) {
			defer wg.Done()
			rng := newWorkerRand()
			if err := fn(i0, i1, rng); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(start, end)
	}
	wg.Wait()

	return firstErr
}
