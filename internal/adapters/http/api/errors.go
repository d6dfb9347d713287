package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNoAnalysis = errors.New("no analysis available yet")
	ErrNoDrafts   = errors.New("no drafts available yet")
)
