// Package metrics exposes optional in-process Prometheus instrumentation
// for a run: the current HND, the running total of exchanges across the
// run, and the active pass/height. It is off by default; the CLI's
// "serve-metrics" subcommand wires it to an HTTP handler. This stays
// in-process-only instrumentation, not a distributed metrics pipeline, so
// it does not conflict with the no-distributed-execution non-goal.
package metrics
