package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KDF names how the AES key is derived from the ECDH output.
type KDF string

const (
	// KDFRaw uses the ECDH output directly.
	KDFRaw KDF = "raw"
	// KDFHKDFSHA256 runs HKDF-SHA256, salted with the session id.
	KDFHKDFSHA256 KDF = "hkdf-sha256"
)

// KeyBytes is the AES-256 key size.
const KeyBytes = 32

var hkdfInfo = []byte("supplyline session key v1")

// Valid reports whether k names a supported derivation.
func (k KDF) Valid() bool { return k == KDFRaw || k == KDFHKDFSHA256 }

// DeriveSessionKey turns the ECDH shared secret into a KeyBytes-long key.
// The returned slice is a fresh copy; callers own and should wipe it.
func DeriveSessionKey(kdf KDF, shared []byte, sessionID string) ([]byte, error) {
	switch kdf {
	case KDFRaw, "":
		if len(shared) != KeyBytes {
			return nil, fmt.Errorf("raw kdf: want %d byte secret, got %d", KeyBytes, len(shared))
		}
		return append([]byte(nil), shared...), nil
	case KDFHKDFSHA256:
		key := make([]byte, KeyBytes)
		r := hkdf.New(sha256.New, shared, []byte(sessionID), hkdfInfo)
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, err
		}
		return key, nil
	default:
		return nil, fmt.Errorf("unknown kdf %q", kdf)
	}
}
