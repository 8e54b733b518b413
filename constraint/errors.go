package constraint

import "github.com/pkg/errors"

var (
	// ErrPropertyNotFound flags a dotted path with a missing segment.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrUnsupportedDerivedProperty flags a derived name outside the
	// fixed set the engine computes.
	ErrUnsupportedDerivedProperty = errors.New("unsupported derived property")

	// ErrMissingEngineContext flags a derived property evaluated
	// without an engine to compute it.
	ErrMissingEngineContext = errors.New("engine context required for derived properties")

	// ErrUnsupportedOperator flags an unrecognized comparison operator.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrTypeMismatch flags operands an operator cannot compare.
	ErrTypeMismatch = errors.New("type mismatch")
)
