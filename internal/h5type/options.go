package h5type

import (
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dtype/dtype"
)

// Option configures a single Decode call.
type Option func(*options)

type options struct {
	maxDepth int
	logger   *zap.Logger
}

func defaultOptions() *options {
	return &options{
		maxDepth: dtype.MaxNestingDepth,
	}
}

// WithMaxDepth limits how deep nested compound, array, enum and
// variable-length types may go. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithLogger routes decode diagnostics to l instead of the dtype package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
