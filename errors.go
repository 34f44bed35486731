package ephcore

import "errors"

// Error taxonomy (spec.md §7). These are kinds, not concrete error
// types: every error the engine returns wraps exactly one of these via
// %w, so callers can classify failures with errors.Is regardless of
// the message text.
var (
	// ErrKernelInvalid means a kernel file is not a valid DAF/SPK
	// container, or holds a segment data type this engine does not
	// support.
	ErrKernelInvalid = errors.New("ephcore: kernel invalid")

	// ErrKernelTruncated means a kernel file is shorter than its own
	// headers claim.
	ErrKernelTruncated = errors.New("ephcore: kernel truncated")

	// ErrEpochOutOfRange means the requested epoch lies outside the
	// union of segment windows covering the requested chain.
	ErrEpochOutOfRange = errors.New("ephcore: epoch out of range")

	// ErrNoSegment means no chain from the target (or observer) to the
	// Solar System Barycenter exists in the loaded kernels at the
	// requested epoch.
	ErrNoSegment = errors.New("ephcore: no segment chain to SSB")

	// ErrTimeError means a leap-second or EOP lookup failed: a
	// malformed line, a non-monotonic leap-second table, or similar.
	ErrTimeError = errors.New("ephcore: time conversion error")

	// ErrConfigError means the engine configuration was missing a
	// required field or contained contradictory options.
	ErrConfigError = errors.New("ephcore: configuration error")

	// ErrNotInitialized is returned by the package-level singleton
	// accessor Default before Initialize has succeeded.
	ErrNotInitialized = errors.New("ephcore: global engine not initialized")

	// ErrAlreadyInitialized is returned by Initialize on any call after
	// the first.
	ErrAlreadyInitialized = errors.New("ephcore: global engine already initialized")
)
