package sweep

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/steady"
)

// RunParallel is Run fanned out over a worker pool. Rows own their
// state and parameters, results land by index, and the only shared
// value is f, pure by contract, so no locking is needed. workers <= 0
// selects GOMAXPROCS. Cancelling ctx abandons rows not yet started;
// rows already solving run to their horizon.
func RunParallel(ctx context.Context, f ecomod.Field, rows []Row, opts steady.Options, workers int) ([]ResultRow, error) {
	if err := validate(f, rows); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(rows) {
		workers = len(rows)
	}

	out := make([]ResultRow, len(rows))
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				out[i] = solveRow(f, rows[i], opts)
			}
		}()
	}

	var err error
feed:
	for i := range rows {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return out, nil
}
