package ioconfig

import "errors"

// Sentinel errors for ioconfig operations.
var (
	// ErrInvalidConfig indicates a structurally invalid input configuration
	// (missing grid dimensions, zero-length data, ...).
	ErrInvalidConfig = errors.New("ioconfig: invalid input configuration")
	// ErrUnknownType indicates a "type" field other than "data" or
	// "visualization".
	ErrUnknownType = errors.New("ioconfig: unknown configuration type")
	// ErrGridTooSmall indicates data.length exceeds the grid's leaf
	// capacity (grid.rows * grid.columns) -- there is nowhere to place
	// every data element even before padding for void cells.
	ErrGridTooSmall = errors.New("ioconfig: grid too small for data")
)
