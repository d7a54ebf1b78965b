// Package registeredreaders implements the Registered Readers query use case.
//
// The query returns all readers ordered by last name.
package registeredreaders
