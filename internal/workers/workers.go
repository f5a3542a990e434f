// Package workers runs batches of independent jobs with bounded
// parallelism.
//
// RunChunked is the concurrency primitive behind the sync engine's remote
// write batches: jobs run in fixed-width chunks, and every job of a chunk
// settles before the next chunk starts. This keeps the number of in-flight
// API calls at or under the width without a long-lived worker pool.
package workers

import "sync"

// RunChunked invokes run(i) for every i in [0, count), at most width at a
// time. Jobs within a chunk run concurrently; chunks run sequentially. A
// width below 1 is treated as 1. Each job is responsible for recording its
// own outcome; RunChunked never stops early.
func RunChunked(count, width int, run func(i int)) {
	if width < 1 {
		width = 1
	}

	for offset := 0; offset < count; offset += width {
		end := offset + width
		if end > count {
			end = count
		}

		var wg sync.WaitGroup
		for i := offset; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	}
}
