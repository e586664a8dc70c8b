package dtype

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrNilDescriptor    = errors.New("nil descriptor")
	ErrTooDeep          = errors.New("descriptor nesting too deep")
	ErrUnknownKindChar  = errors.New("unknown numeric kind character")
	ErrUnrecognizedType = errors.New("unrecognized type number")
)

// MaxNestingDepth is the default limit on subarray and struct nesting a
// single rendering will descend through.
const MaxNestingDepth = 64

// InternalError reports a descriptor that violates the invariants the
// renderer relies on. It never describes bad user input.
type InternalError struct {
	Cause  error
	Op     string
	Reason string
	Kind   Kind
}

func (e *InternalError) Error() string {
	var b strings.Builder
	b.WriteString("internal dtype repr error")

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	b.WriteString(" (kind ")
	b.WriteString(e.Kind.String())
	b.WriteString(")")

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
