package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
)

// IVBytes is the AES-GCM nonce size used on the wire.
const IVBytes = 12

var (
	// ErrCiphertextTooShort is returned when the framed input cannot hold an IV and a tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecrypt is returned when authentication fails.
	ErrDecrypt = errors.New("decryption failed")
)

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under key with a fresh random IV and returns
// base64(iv || ciphertext || tag).
func Seal(key, plaintext []byte) (string, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}
	out := make([]byte, IVBytes, IVBytes+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(out); err != nil {
		return "", err
	}
	out = aead.Seal(out, out[:IVBytes], plaintext, nil)
	return B64(out), nil
}

// Open reverses Seal.
func Open(key []byte, framed string) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	raw, err := UnB64(framed)
	if err != nil {
		return nil, err
	}
	if len(raw) < IVBytes+aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	pt, err := aead.Open(nil, raw[:IVBytes], raw[IVBytes:], nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return pt, nil
}
