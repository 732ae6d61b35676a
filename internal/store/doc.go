// Package store provides file-based persistence for the client's local state,
// the command-line counterpart of the browser storage the web frontend used.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the configured home directory.
//
// The package includes stores for:
//   - The handshake record: session id and server key fingerprint (SessionFileStore)
//   - The logged-in account and its bearer token (ProfileFileStore), optionally
//     sealed under a passphrase
//
// The derived session key is never written here.
package store
