package quadtree

import "errors"

// Sentinel errors for quadtree operations.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("quadtree: rows and columns must be positive")
	// ErrAssignmentSizeMismatch indicates an assignment array whose length
	// does not match the tree's required capacity.
	ErrAssignmentSizeMismatch = errors.New("quadtree: assignment length does not match tree capacity")
	// ErrInvariantViolation indicates the leaf sub-range of the assignment
	// array is not a permutation of its own index range. Only raised when
	// the caller opts into debug-mode invariant checking.
	ErrInvariantViolation = errors.New("quadtree: leaf assignment range is not a permutation")
	// ErrUnknownParentKind indicates an unrecognized ParentKind value.
	ErrUnknownParentKind = errors.New("quadtree: unknown parent aggregation kind")
)
