// Package metrics holds shared metric conventions.
package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds reused
// across the application for latency and job duration metrics.
var DefaultBuckets = []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300} //nolint: gochecknoglobals
