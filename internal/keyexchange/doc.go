// Package keyexchange establishes a shared secret with the backend and uses
// it to encrypt request bodies and decrypt response bodies.
//
// # Handshake
//
//  1. Generate a fresh P-256 key pair.
//  2. Fetch the server public key.
//  3. Send our public key; the server answers with a session id.
//  4. ECDH, then derive the AES-256 key (raw or HKDF-SHA256).
//  5. Keep key and session id in memory; persist the session record.
//
// A failed handshake leaves the Client uninitialized, and callers fall back to
// the plaintext path. There is no retry and no rotation: one handshake per
// process, redone after Reset. The key itself never touches disk.
package keyexchange
