package synthesis

import "errors"

// Sentinel kinds for synthesis errors.
var (
	ErrInvalidRankedTopic = errors.New("invalid ranked topic")
)
