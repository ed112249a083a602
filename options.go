package fastblur

// Option configures a blur call.
// Use functional options to override the defaults.
//
// Example:
//
//	// Default: 3 passes, extended edges, serial
//	err := fastblur.GaussianBlur(&in, &out, w, h, 4, 5)
//
//	// Closer to a true Gaussian, cropped edges, rows spread across CPUs
//	err := fastblur.GaussianBlur(&in, &out, w, h, 4, 5,
//	    fastblur.WithPasses(5),
//	    fastblur.WithEdge(fastblur.EdgeCrop),
//	    fastblur.WithParallel(true))
type Option func(*options)

// DefaultPasses balances quality against cost.
const DefaultPasses = 3

// options holds the settings of one blur call.
type options struct {
	passes   int
	edge     Edge
	parallel bool
}

// defaultOptions returns the default blur options.
func defaultOptions() options {
	return options{
		passes: DefaultPasses,
		edge:   EdgeExtend,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPasses sets the number of box passes per axis (1..10).
// More passes approximate a Gaussian more closely at proportional cost.
func WithPasses(n int) Option {
	return func(o *options) {
		o.passes = n
	}
}

// WithEdge selects the edge policy.
func WithEdge(e Edge) Option {
	return func(o *options) {
		o.edge = e
	}
}

// WithParallel spreads rows across the shared worker pool.
// The result is identical to a serial blur.
func WithParallel(enabled bool) Option {
	return func(o *options) {
		o.parallel = enabled
	}
}
