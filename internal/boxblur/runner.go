package boxblur

// Runner executes fn over the index range [0, n), possibly split into
// disjoint [lo, hi) chunks running concurrently. Run must not return
// before every chunk has completed.
type Runner interface {
	Run(n int, fn func(lo, hi int))
}

// Serial runs the whole range on the calling goroutine.
type Serial struct{}

// Run implements Runner.
func (Serial) Run(n int, fn func(lo, hi int)) {
	if n > 0 {
		fn(0, n)
	}
}

func runnerOrSerial(run Runner) Runner {
	if run == nil {
		return Serial{}
	}
	return run
}
