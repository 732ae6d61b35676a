// Package crypto exposes the minimal primitives used by the session handshake.
//
// Contents
//
//   - P-256 ECDH key generation, public key encoding/parsing and shared-secret
//     computation (GenerateKeyPair, EncodePublicKey, ParsePublicKey, SharedSecret)
//   - Session key derivation from the ECDH output (DeriveSessionKey)
//   - AES-256-GCM sealing with the IV prepended, base64 framed (Seal, Open)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// The encodings mirror what the browser's WebCrypto produces: public keys are
// exported as the uncompressed SEC1 point ("raw") or as SPKI DER ("spki"), and
// the default key derivation takes the 32-byte ECDH output as the AES key, the
// same bits deriveBits(ECDH, 256) yields.
package crypto
