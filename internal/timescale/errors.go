package timescale

import "errors"

var (
	ErrMalformedLSK = errors.New("timescale: malformed leap-second kernel")
	ErrMalformedEOP = errors.New("timescale: malformed EOP table")
)
