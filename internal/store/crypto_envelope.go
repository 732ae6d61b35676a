package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"supplyline/internal/util/memzero"
)

const (
	// The current supported version of the sealed blob format stored on disk.
	sealedFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted profile")

	// ErrPassphraseRequired is returned when a sealed file is read without a passphrase.
	ErrPassphraseRequired = errors.New("profile is sealed; passphrase required (-p)")
)

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from passphrase and seals raw into a sealed blob.
func seal(passphrase string, raw []byte, N, r, p int) (sealed, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return sealed{}, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return sealed{}, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return sealed{}, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return sealed{}, err
	}
	return sealed{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, salt[:]),
	}, nil
}

// unseal opens a sealed blob using a key derived from passphrase.
func unseal(passphrase string, bl sealed) ([]byte, error) {
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported profile format version %d", bl.V)
	}
	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(bl.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, bl.Nonce, bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// isSealed reports whether b looks like a sealed blob rather than plain JSON.
func isSealed(b []byte) (sealed, bool) {
	var bl sealed
	if err := json.Unmarshal(b, &bl); err != nil {
		return sealed{}, false
	}
	return bl, bl.V > 0 && len(bl.Cipher) > 0
}
