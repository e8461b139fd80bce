package embossy

import "errors"

var (
	// ErrNoContent reports a source document with no drawable content. It is
	// a valid terminal state, not a failure: callers should tell the user the
	// source had nothing to extrude.
	ErrNoContent = errors.New("no drawable content")
)
