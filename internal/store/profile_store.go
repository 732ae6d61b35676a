package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"supplyline/internal/domain"
)

const profileFilename = "profile.json"

// ProfileFileStore persists the logged-in account. With a passphrase the
// profile (and so the bearer token) is sealed with scrypt + XChaCha20-Poly1305.
type ProfileFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{dir: dir}
}

// SaveProfile writes the profile, sealed when passphrase is non-empty.
func (s *ProfileFileStore) SaveProfile(passphrase string, profile domain.AuthProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profileFilename)
	if passphrase == "" {
		return writeJSON(path, profile, 0o600)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	bl, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeJSON(path, bl, 0o600)
}

// LoadProfile reads the profile and reports whether one was present.
func (s *ProfileFileStore) LoadProfile(passphrase string) (domain.AuthProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, profileFilename))
	if err != nil || b == nil {
		return domain.AuthProfile{}, false, err
	}

	if bl, ok := isSealed(b); ok {
		if passphrase == "" {
			return domain.AuthProfile{}, false, ErrPassphraseRequired
		}
		if b, err = unseal(passphrase, bl); err != nil {
			return domain.AuthProfile{}, false, err
		}
	}

	var profile domain.AuthProfile
	if err := json.Unmarshal(b, &profile); err != nil {
		return domain.AuthProfile{}, false, err
	}
	if profile.Token == "" {
		return domain.AuthProfile{}, false, nil
	}
	return profile, true, nil
}

// DeleteProfile removes the stored profile.
func (s *ProfileFileStore) DeleteProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(filepath.Join(s.dir, profileFilename))
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
