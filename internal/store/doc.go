// Package store provides file-based persistence for preptogether's client state.
//
// It contains concrete implementations of the domain storage interfaces. All
// methods are concurrency-safe via internal locking and every write goes
// through a temp file followed by a rename. Stored files live under the
// configured home directory.
//
// The package includes stores for:
//   - The access token (TokenFileStore), a single 0600 file
//   - Remembered login e-mails per server (AccountFileStore), as JSON
package store
