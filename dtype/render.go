package dtype

import (
	"fmt"

	"go.uber.org/zap"
)

// renderer carries per-call settings through the recursive builders.
type renderer struct {
	log      *zap.Logger
	maxDepth int
}

func newRenderer(opts []Option) *renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}
	return &renderer{log: log, maxDepth: o.maxDepth}
}

// enter checks the nesting limit before descending into d.
func (r *renderer) enter(d *Descriptor, depth int) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if depth > r.maxDepth {
		r.log.Warn("descriptor nesting limit reached",
			zap.Int("limit", r.maxDepth),
			zap.Stringer("kind", d.Kind))
		return fmt.Errorf("%w: limit %d", ErrTooDeep, r.maxDepth)
	}
	return nil
}

func (r *renderer) internal(op string, d *Descriptor, reason string, cause error) error {
	r.log.Error("descriptor invariant violated",
		zap.String("op", op),
		zap.Stringer("kind", d.Kind),
		zap.String("reason", reason))
	return &InternalError{Op: op, Kind: d.Kind, Reason: reason, Cause: cause}
}
