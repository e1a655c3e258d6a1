package metrics

// This package has no sentinel errors: NewCollector registers its metrics
// with MustRegister, which panics on a registration failure.
