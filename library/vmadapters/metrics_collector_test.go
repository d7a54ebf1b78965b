package vmadapters_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/library/vmadapters"
)

func Test_MetricsCollector_WritesPrometheusSeries(t *testing.T) {
	// setup
	set := metrics.NewSet()
	collector := vmadapters.NewMetricsCollector(set)

	// act
	collector.IncrementCounter("library_store_lending_conflicts_total", map[string]string{"operation": "lend_book"})
	collector.IncrementCounter("library_store_lending_conflicts_total", map[string]string{"operation": "lend_book"})
	collector.RecordDuration("library_store_operation_duration_seconds", 3*time.Millisecond,
		map[string]string{"status": "success", "operation": "list_books"})
	collector.RecordValue("library_books_listed", 7, nil)

	var out bytes.Buffer
	set.WritePrometheus(&out)

	// assert
	assert.Contains(t, out.String(), `library_store_lending_conflicts_total{operation="lend_book"} 2`)
	assert.Contains(t, out.String(), `library_store_operation_duration_seconds_count{operation="list_books",status="success"} 1`)
	assert.Contains(t, out.String(), `library_books_listed 7`)
}

func Test_MetricsCollector_SameLabelsInAnyOrder_ShareOneSeries(t *testing.T) {
	// setup
	set := metrics.NewSet()
	collector := vmadapters.NewMetricsCollector(set)

	// act
	collector.IncrementCounter("errors_total", map[string]string{"a": "1", "b": "2"})
	collector.IncrementCounter("errors_total", map[string]string{"b": "2", "a": "1"})

	var out bytes.Buffer
	set.WritePrometheus(&out)

	// assert
	assert.Contains(t, out.String(), `errors_total{a="1",b="2"} 2`)
}
