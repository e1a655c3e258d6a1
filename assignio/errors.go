package assignio

import "errors"

// Sentinel errors for assignio operations.
var (
	// ErrSizeMismatch indicates a loaded assignment file whose length does
	// not match the tree's required capacity.
	ErrSizeMismatch = errors.New("assignio: assignment length does not match tree capacity")
	// ErrIndexOutOfRange indicates a decoded index beyond the data pool's
	// bounds and not the void sentinel.
	ErrIndexOutOfRange = errors.New("assignio: decoded index out of range")
	// ErrRowMajorToHierarchyUnsupported indicates a conversion from a flat
	// row-major assignment dump straight into a multi-height hierarchy was
	// requested. The package provides no such conversion, and no function
	// of it returns this error.
	ErrRowMajorToHierarchyUnsupported = errors.New("assignio: row-major-to-hierarchy conversion is not supported")
)
