// Package helper provides test doubles and fixtures shared by the library test suites.
//
// It contains a slog.Handler spy for asserting on log output, a MetricsCollector spy,
// and builders for valid books and readers.
package helper
