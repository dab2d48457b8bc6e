// Package metrics exposes Prometheus metrics for rule evaluation:
// evaluation counts by outcome, evaluation latency, and per-rule
// hit/miss counters. The handler serves the standard exposition format
// on the configured path.
package metrics
