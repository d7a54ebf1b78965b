// Package desk is the client data layer of the library desk.
//
// A Desk mirrors the books and readers of a running service. Every mutating action goes to the
// server first and, once confirmed, re-fetches both collections instead of patching local state.
// Only one mutating action runs at a time per Desk; a second one fails fast with ErrBusy.
//
// Derived values are pure functions over the mirrored collections: View filters and sorts the
// catalog, ComputeStats counts books, borrowed books and readers. They are recomputed on every
// call and never cached.
package desk
