package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrInvalidRecord = errors.New("invalid note record")
)
