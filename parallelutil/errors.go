package parallelutil

// This package has no sentinel errors of its own: ForEach and
// ForEachReduce propagate whatever error the caller's worker function
// returns, or the context's cancellation error.
