package dtype

import "go.uber.org/zap"

// Option configures a single Display or Repr call.
type Option func(*options)

type options struct {
	maxDepth int
	logger   *zap.Logger
}

func defaultOptions() *options {
	return &options{
		maxDepth: MaxNestingDepth,
	}
}

// WithMaxDepth limits how deep nested subarrays and structs may go.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithLogger routes diagnostics for this call to l instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
