// Package vmadapters implements library.MetricsCollector on top of VictoriaMetrics/metrics.
//
// Metrics are registered lazily in a metrics.Set under their Prometheus name plus sorted labels,
// so the same set can be written on the /metrics endpoint next to the HTTP metrics.
package vmadapters
