package grid

import "errors"

// Error taxonomy for the layout engine. Range and key errors are recovered
// locally (clamp or skip, log a warning) rather than propagated; callers only
// see them through validation reports.
var (
	// ErrInvalidBreakpoint marks an unrecognized breakpoint key in a
	// responsive mapping or a parse request.
	ErrInvalidBreakpoint = errors.New("grid: invalid breakpoint")

	// ErrInvalidStrategy marks an unrecognized resolution strategy name.
	ErrInvalidStrategy = errors.New("grid: invalid strategy")

	// ErrInvalidRegistry marks breakpoint thresholds that do not partition
	// the width axis. This is the only hard-failure condition in the engine.
	ErrInvalidRegistry = errors.New("grid: invalid breakpoint registry")

	// ErrInvalidSpan marks a column span outside 1..totalColumns.
	ErrInvalidSpan = errors.New("grid: invalid span")

	// ErrInvalidOffset marks a column offset outside 0..totalColumns-1.
	ErrInvalidOffset = errors.New("grid: invalid offset")

	// ErrNoValue is returned when a responsive mapping has no entries and
	// no fallback applies. Callers should substitute the field's default.
	ErrNoValue = errors.New("grid: no value resolvable")
)
