package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"supplyline/internal/domain"
	"supplyline/internal/store"
)

func TestSession_SaveLoadDelete(t *testing.T) {
	home := t.TempDir()
	var ss domain.SessionStore = store.NewSessionFileStore(home)

	if _, ok, err := ss.LoadSession(); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	rec := domain.SessionRecord{
		ServerURL:            "http://127.0.0.1:8080",
		SessionID:            "c5f0d6a2-0000",
		ServerKeyFingerprint: "aaaa:bbbb",
		CreatedUTC:           1700000000,
	}
	if err := ss.SaveSession(rec); err != nil {
		t.Fatalf("save session: %v", err)
	}
	got, ok, err := ss.LoadSession()
	if err != nil || !ok {
		t.Fatalf("load session: ok=%v err=%v", ok, err)
	}
	if got != rec {
		t.Fatalf("mismatch after load: %+v", got)
	}

	fi, err := os.Stat(filepath.Join(home, "session.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("want 0600, got %v", fi.Mode().Perm())
	}

	if err := ss.DeleteSession(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := ss.DeleteSession(); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if _, ok, _ := ss.LoadSession(); ok {
		t.Fatal("session still present after delete")
	}
}

func testProfile() domain.AuthProfile {
	return domain.AuthProfile{
		ServerURL:   "http://127.0.0.1:8080",
		UserID:      "u-1",
		Username:    "ana",
		Role:        domain.RoleClient,
		Token:       "tok-123",
		LoggedInUTC: 1700000000,
	}
}

func TestProfile_Plain(t *testing.T) {
	home := t.TempDir()
	var ps domain.ProfileStore = store.NewProfileFileStore(home)

	if err := ps.SaveProfile("", testProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := ps.LoadProfile("")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != testProfile() {
		t.Fatalf("mismatch: %+v", got)
	}
}

func TestProfile_SealedHidesToken(t *testing.T) {
	home := t.TempDir()
	ps := store.NewProfileFileStore(home)

	if err := ps.SaveProfile("correct horse", testProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(home, "profile.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "tok-123") {
		t.Fatal("token visible in sealed profile")
	}

	got, ok, err := ps.LoadProfile("correct horse")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Token != "tok-123" {
		t.Fatalf("token mismatch: %q", got.Token)
	}

	if _, _, err := ps.LoadProfile("wrong"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
	if _, _, err := ps.LoadProfile(""); !errors.Is(err, store.ErrPassphraseRequired) {
		t.Fatalf("want ErrPassphraseRequired, got %v", err)
	}

	if err := ps.DeleteProfile(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := ps.LoadProfile("correct horse"); ok {
		t.Fatal("profile still present after delete")
	}
}
