package svgpath

import "errors"

var (
	// ErrBadPathData reports path data that cannot be matched to the command
	// grammar. The wrapping error carries the offending fragment.
	ErrBadPathData = errors.New("bad path data")
)
