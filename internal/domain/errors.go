package domain

import "errors"

// Engine error taxonomy. All three are recoverable by the caller: re-validate
// the input, widen the horizon, or surface a "not affordable" message.
var (
	// ErrInvalidAssumption indicates a malformed or out-of-domain numeric
	// input (non-finite number, growth rate below -100%, negative target
	// amount or savings).
	ErrInvalidAssumption = errors.New("invalid assumption")

	// ErrYearNotInProjection indicates a comparison was requested for a year
	// outside the computed horizon.
	ErrYearNotInProjection = errors.New("year not in projection")

	// ErrHorizonExceeded indicates no affordable year was found within the
	// capped simulation horizon.
	ErrHorizonExceeded = errors.New("no affordable year within simulation horizon")
)
