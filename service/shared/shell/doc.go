// Package shell holds the infrastructure contracts shared by all feature slices of the library service:
// command and query handler interfaces, the HandlerResult of a command, and the observability
// helpers (metric names, log messages, status classification) used by the observable wrappers.
package shell
