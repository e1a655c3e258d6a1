package exchange

import "errors"

// Sentinel errors for exchange operations.
var (
	// ErrTooManyNodes indicates more than four candidate cells were
	// supplied; the permutation search is only tractable for small groups.
	ErrTooManyNodes = errors.New("exchange: at most four nodes may be exchanged at once")
	// ErrNodeTargetMismatch indicates the nodes and targets slices have
	// different lengths.
	ErrNodeTargetMismatch = errors.New("exchange: nodes and targets must have the same length")
)
