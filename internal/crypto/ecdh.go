package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"errors"
	"fmt"
)

// ErrBadPublicKey is returned when a peer key is not a valid P-256 point.
var ErrBadPublicKey = errors.New("invalid P-256 public key")

// Curve is the only curve the handshake speaks.
var Curve = ecdh.P256()

// GenerateKeyPair returns a fresh P-256 ECDH key pair.
func GenerateKeyPair() (*ecdh.PrivateKey, error) {
	return Curve.GenerateKey(rand.Reader)
}

// EncodePublicKey returns the base64 uncompressed SEC1 point.
func EncodePublicKey(pub *ecdh.PublicKey) string { return B64(pub.Bytes()) }

// EncodePublicKeySPKI returns the base64 PKIX (SPKI) DER encoding.
func EncodePublicKeySPKI(pub *ecdh.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", err
	}
	return B64(der), nil
}

// ParsePublicKey accepts base64 of either an uncompressed SEC1 point or an
// SPKI DER structure and returns the P-256 key it carries.
func ParsePublicKey(s string) (*ecdh.PublicKey, error) {
	raw, err := UnB64(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPublicKey, err)
	}
	if pub, err := Curve.NewPublicKey(raw); err == nil {
		return pub, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(raw)
	if err != nil {
		return nil, ErrBadPublicKey
	}
	var pub *ecdh.PublicKey
	switch k := parsed.(type) {
	case *ecdsa.PublicKey:
		if pub, err = k.ECDH(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPublicKey, err)
		}
	case *ecdh.PublicKey:
		pub = k
	default:
		return nil, fmt.Errorf("%w: unexpected key type %T", ErrBadPublicKey, parsed)
	}
	if pub.Curve() != Curve {
		return nil, fmt.Errorf("%w: not a P-256 key", ErrBadPublicKey)
	}
	return pub, nil
}

// SharedSecret computes ECDH(priv, peer): the 32-byte x-coordinate.
func SharedSecret(priv *ecdh.PrivateKey, peer *ecdh.PublicKey) ([]byte, error) {
	return priv.ECDH(peer)
}
