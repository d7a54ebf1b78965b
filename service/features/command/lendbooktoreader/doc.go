// Package lendbooktoreader implements the Lend Book To Reader use case.
//
// Business rules:
//   - the reader must be registered
//   - the book must exist and be AVAILABLE
//   - of many concurrent attempts on the same book, exactly one succeeds
//
// The last rule is enforced by the store with a single conditional update, not by a check here.
package lendbooktoreader
