// Package observable provides generic wrappers that add logging and metrics around any command or query handler.
//
// The core handlers in the feature slices contain no observability code; the wrappers translate
// their HandlerResult and errors into log records and metrics.
package observable
