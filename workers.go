package fastblur

import (
	"sync"

	"github.com/gogpu/fastblur/internal/boxblur"
	"github.com/gogpu/fastblur/internal/parallel"
)

// rowGrain is the minimum number of rows (or flip strips) per work item.
const rowGrain = 16

var (
	sharedPoolOnce sync.Once
	sharedPool     *parallel.WorkerPool
)

// workerPool returns the process-wide pool, starting it on first use.
// It has GOMAXPROCS workers and lives for the rest of the process.
func workerPool() *parallel.WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = parallel.NewWorkerPool(0)
		Logger().Debug("fastblur: worker pool started", "workers", sharedPool.Workers())
	})
	return sharedPool
}

// poolRunner adapts a WorkerPool to boxblur.Runner.
type poolRunner struct {
	pool  *parallel.WorkerPool
	grain int
}

func (r poolRunner) Run(n int, fn func(lo, hi int)) {
	r.pool.ParallelFor(n, r.grain, fn)
}

// runnerFor returns the runner selected by the options.
func runnerFor(o options) boxblur.Runner {
	if !o.parallel {
		return boxblur.Serial{}
	}
	return poolRunner{pool: workerPool(), grain: rowGrain}
}
