package interfaces

import (
	"context"

	domaintypes "supplyline/internal/domain/types"
)

// KeyExchangeTransport is the backend side of the handshake.
type KeyExchangeTransport interface {
	FetchServerPublicKey(ctx context.Context) (string, error)
	ExchangeKeys(ctx context.Context, clientPublicKey string) (domaintypes.SessionID, error)
}

// SessionCipher encrypts request bodies and decrypts response bodies with
// the negotiated key.
type SessionCipher interface {
	IsInitialized() bool
	SessionID() domaintypes.SessionID
	Encrypt(plaintext []byte) (string, error)
	EncryptWithSession(plaintext []byte) (string, domaintypes.SessionID, error)
	Decrypt(ciphertext string) ([]byte, error)
}

// KeyExchange performs the handshake and exposes the resulting cipher.
type KeyExchange interface {
	SessionCipher
	Initialize(ctx context.Context) error
	// EnsureInitialized handshakes if needed and reports whether the cipher
	// is usable afterwards. A false result means "use plaintext".
	EnsureInitialized(ctx context.Context) bool
	Reset()
}
