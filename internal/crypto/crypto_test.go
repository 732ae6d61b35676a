package crypto_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"supplyline/internal/crypto"
)

func mustPair(t *testing.T) (a, b []byte, sid string) {
	t.Helper()
	alice, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	bob, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	s1, err := crypto.SharedSecret(alice, bob.PublicKey())
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	s2, err := crypto.SharedSecret(bob, alice.PublicKey())
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	return s1, s2, "session-1"
}

func TestSharedSecret_BothSidesAgree(t *testing.T) {
	s1, s2, _ := mustPair(t)
	if !bytes.Equal(s1, s2) {
		t.Fatal("shared secrets differ")
	}
	if len(s1) != crypto.KeyBytes {
		t.Fatalf("want %d byte secret, got %d", crypto.KeyBytes, len(s1))
	}
}

func TestDeriveSessionKey_KDFsAgreeAcrossSides(t *testing.T) {
	s1, s2, sid := mustPair(t)
	for _, kdf := range []crypto.KDF{crypto.KDFRaw, crypto.KDFHKDFSHA256} {
		k1, err := crypto.DeriveSessionKey(kdf, s1, sid)
		if err != nil {
			t.Fatalf("%s: %v", kdf, err)
		}
		k2, err := crypto.DeriveSessionKey(kdf, s2, sid)
		if err != nil {
			t.Fatalf("%s: %v", kdf, err)
		}
		if !bytes.Equal(k1, k2) || len(k1) != crypto.KeyBytes {
			t.Fatalf("%s: keys differ or wrong size", kdf)
		}
	}

	raw, _ := crypto.DeriveSessionKey(crypto.KDFRaw, s1, sid)
	hk, _ := crypto.DeriveSessionKey(crypto.KDFHKDFSHA256, s1, sid)
	if bytes.Equal(raw, hk) {
		t.Fatal("hkdf output should differ from the raw secret")
	}
	other, _ := crypto.DeriveSessionKey(crypto.KDFHKDFSHA256, s1, "session-2")
	if bytes.Equal(hk, other) {
		t.Fatal("hkdf output should depend on the session id")
	}
}

func TestDeriveSessionKey_RejectsUnknownKDF(t *testing.T) {
	s1, _, sid := mustPair(t)
	if _, err := crypto.DeriveSessionKey("pbkdf2", s1, sid); err == nil {
		t.Fatal("expected error for unknown kdf")
	}
	if _, err := crypto.DeriveSessionKey(crypto.KDFRaw, s1[:16], sid); err == nil {
		t.Fatal("expected error for short raw secret")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, _, _ := mustPair(t)
	msg := []byte(`{"username":"ana","password":"s3cret!"}`)

	framed, err := crypto.Seal(key, msg)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	got, err := crypto.Open(key, framed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("round trip mismatch: %q", got)
	}

	again, _ := crypto.Seal(key, msg)
	if again == framed {
		t.Fatal("two seals of the same plaintext must use different IVs")
	}
}

func TestOpen_Failures(t *testing.T) {
	key, other, _ := mustPair(t)
	framed, err := crypto.Seal(key, []byte("hello"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	wrong := make([]byte, len(other))
	copy(wrong, other)
	wrong[0] ^= 0xff
	if _, err := crypto.Open(wrong, framed); !errors.Is(err, crypto.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt with wrong key, got %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(framed)
	raw[len(raw)-1] ^= 0x01
	if _, err := crypto.Open(key, crypto.B64(raw)); !errors.Is(err, crypto.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt on tamper, got %v", err)
	}

	if _, err := crypto.Open(key, crypto.B64([]byte("short"))); !errors.Is(err, crypto.ErrCiphertextTooShort) {
		t.Fatalf("want ErrCiphertextTooShort, got %v", err)
	}
	if _, err := crypto.Open(key, "***not base64***"); err == nil {
		t.Fatal("expected error for bad encoding")
	}
}

func TestParsePublicKey_RawAndSPKI(t *testing.T) {
	priv, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	pub := priv.PublicKey()

	raw := crypto.EncodePublicKey(pub)
	spki, err := crypto.EncodePublicKeySPKI(pub)
	if err != nil {
		t.Fatalf("EncodePublicKeySPKI: %v", err)
	}
	urlRaw := base64.RawURLEncoding.EncodeToString(pub.Bytes())

	for name, enc := range map[string]string{"raw": raw, "spki": spki, "url": urlRaw} {
		got, err := crypto.ParsePublicKey(enc)
		if err != nil {
			t.Fatalf("%s: ParsePublicKey: %v", name, err)
		}
		if !got.Equal(pub) {
			t.Fatalf("%s: parsed key differs", name)
		}
	}

	if _, err := crypto.ParsePublicKey(crypto.B64(make([]byte, 65))); !errors.Is(err, crypto.ErrBadPublicKey) {
		t.Fatalf("want ErrBadPublicKey for zero point, got %v", err)
	}
}

func TestFingerprint_Format(t *testing.T) {
	fp := crypto.Fingerprint([]byte("key"))
	if len(strings.Split(fp, ":")) != 5 {
		t.Fatalf("want 5 groups, got %q", fp)
	}
	if fp != crypto.Fingerprint([]byte("key")) {
		t.Fatal("fingerprint not deterministic")
	}
}
