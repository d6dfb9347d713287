package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrEmptyInput   = errors.New("no topics to rank")
	ErrInvalidLimit = errors.New("invalid top-k limit")
)
