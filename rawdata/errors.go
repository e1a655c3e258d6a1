package rawdata

import "errors"

// Sentinel errors for rawdata operations.
var (
	// ErrUnsupportedWidth indicates a bit width other than 32 or 64.
	ErrUnsupportedWidth = errors.New("rawdata: bit width must be 32 or 64")
	// ErrTruncated indicates a raw payload shorter than length*dims.
	ErrTruncated = errors.New("rawdata: payload shorter than declared length")
)
