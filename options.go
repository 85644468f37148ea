package scanline

// Option configures a Rasterizer during creation.
//
// Example:
//
//	// Default sequential engine
//	r, err := scanline.New(1000)
//
//	// Parallel fill with validation after every pass
//	r, err := scanline.New(1000, scanline.WithWorkers(4), scanline.WithValidate(true))
type Option func(*options)

// options holds optional configuration for Rasterizer creation.
type options struct {
	workers      int
	validate     bool
	spanCapacity int
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() options {
	return options{
		workers: 1, // sequential fill
	}
}

// WithWorkers sets the number of goroutines used for the fill pass.
// Values above 1 enable the worker pool; 0 or negative selects GOMAXPROCS.
// The fill output is bit-identical regardless of worker count because
// every segment's buffer range is assigned before any fill runs.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithValidate makes every ComputeAll pass run Validate on its own output
// before returning. Test suites enable this unconditionally; production
// callers usually validate only when ingesting untrusted geometry.
func WithValidate(v bool) Option {
	return func(o *options) {
		o.validate = v
	}
}

// WithSpanCapacity preallocates both intersection buffers for the given
// number of samples per axis, avoiding growth during the first passes.
// Buffers grow on demand either way and are retained across passes.
func WithSpanCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.spanCapacity = n
		}
	}
}
