package vecmath

import "errors"

// Sentinel errors for vecmath operations.
var (
	// ErrLengthMismatch indicates two vectors of differing, non-zero length.
	ErrLengthMismatch = errors.New("vecmath: vector length mismatch")
	// ErrEmptyInput indicates an aggregation or find-min call with no vectors.
	ErrEmptyInput = errors.New("vecmath: no vectors supplied")
)
