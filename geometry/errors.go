package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("geometry: rows and columns must be positive")
	// ErrHeightOutOfRange indicates a height outside [0, Depth).
	ErrHeightOutOfRange = errors.New("geometry: height out of range")
)
