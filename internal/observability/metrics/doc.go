// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes every pipeline stage's metrics:
//   - Source fetch metrics (C4)
//   - Content extraction metrics (C2, C5)
//   - Classification and ranking metrics (C7, C11)
//   - Feed health metrics (C8)
//   - Storage and dedup metrics (C9, C10)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint that cmd/radar serves on its own
// listener (health port plus one).
//
// Example usage:
//
//	import "policyradar/internal/observability/metrics"
//
//	func processSource(source string) {
//	    start := time.Now()
//	    // ... fetch and parse the feed ...
//	    metrics.RecordSourceFetch(source, "success", time.Since(start))
//	}
package metrics
