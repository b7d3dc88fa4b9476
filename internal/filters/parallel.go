package filters

import (
	"runtime"
	"sync"
	"sync/atomic"
)

var workerCount atomic.Int64

func init() {
	workerCount.Store(int64(runtime.NumCPU()))
}

// SetParallelism sets the number of goroutines filters spread row work
// across. Values below 1 select single-threaded execution. The setting
// never changes filter output, only how it is computed.
func SetParallelism(n int) {
	if n < 1 {
		n = 1
	}
	workerCount.Store(int64(n))
}

// Parallelism returns the current worker count.
func Parallelism() int {
	return int(workerCount.Load())
}

// forEachRow calls fn over [0,height) split into contiguous row bands, one
// band per worker. Bands never overlap, so fn may write rows without
// synchronization.
func forEachRow(height int, fn func(y0, y1 int)) {
	workers := Parallelism()
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	chunk := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < height; start += chunk {
		end := start + chunk
		if end > height {
			end = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(start, end)
	}
	wg.Wait()
}
