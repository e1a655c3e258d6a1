package ldglog

import "errors"

// ErrClosed indicates a write was attempted on a RunLogger that has
// already been closed.
var ErrClosed = errors.New("ldglog: run logger is closed")
