// Package registerreader implements the Register Reader use case.
//
// A reader is identified by phone. Registering a phone that is already taken fails and
// leaves the existing reader untouched. The registration date is set to today by the store.
package registerreader
