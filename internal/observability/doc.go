// Package observability provides production-grade observability infrastructure
// including structured logging and Prometheus metrics. It has no tracing
// subpackage.
//
// This package centralizes observability concerns to enable:
//   - Run ID correlation across one scrape run
//   - Structured logging with context propagation
//   - Prometheus metrics for monitoring
//   - Performance profiling and debugging
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//
// Example usage:
//
//	import (
//	    "policyradar/internal/observability/logging"
//	    "policyradar/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordArticlesFetched("example-source", 10)
//	}
package observability
