package vmadapters

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/AntonStoeckl/library-desk-go/library"
)

var durationBuckets = metrics.ExponentialBuckets(1e-4, 4, 8) //nolint: mnd // 100µs up to ~1.6s

// MetricsCollector implements library.MetricsCollector using a VictoriaMetrics metrics.Set.
type MetricsCollector struct {
	set *metrics.Set
}

var _ library.MetricsCollector = (*MetricsCollector)(nil)

// NewMetricsCollector creates a MetricsCollector writing into the given set.
func NewMetricsCollector(set *metrics.Set) *MetricsCollector {
	return &MetricsCollector{set: set}
}

// RecordDuration observes the duration in seconds in a Prometheus histogram.
func (c *MetricsCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	c.set.GetOrCreatePrometheusHistogramExt(metricName(metric, labels), durationBuckets).Update(duration.Seconds())
}

// IncrementCounter increments a counter by one.
func (c *MetricsCollector) IncrementCounter(metric string, labels map[string]string) {
	c.set.GetOrCreateCounter(metricName(metric, labels)).Inc()
}

// RecordValue sets a gauge to the given value.
func (c *MetricsCollector) RecordValue(metric string, value float64, labels map[string]string) {
	c.set.GetOrCreateGauge(metricName(metric, labels), nil).Set(value)
}

// metricName renders name{k1="v1",k2="v2"} with the label keys sorted, so equal label sets map to one series.
func metricName(metric string, labels map[string]string) string {
	if len(labels) == 0 {
		return metric
	}

	var b strings.Builder
	b.WriteString(metric)
	b.WriteByte('{')

	for i, key := range slices.Sorted(maps.Keys(labels)) {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(labels[key]))
	}

	b.WriteByte('}')

	return b.String()
}
