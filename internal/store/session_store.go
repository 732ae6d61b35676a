package store

import (
	"path/filepath"
	"sync"

	"supplyline/internal/domain"
)

const sessionFilename = "session.json"

// SessionFileStore persists the last handshake record to disk.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession writes the record, replacing any previous one.
func (s *SessionFileStore) SaveSession(record domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, sessionFilename), record, 0o600)
}

// LoadSession returns the stored record and whether one was present.
func (s *SessionFileStore) LoadSession() (domain.SessionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record domain.SessionRecord
	ok, err := readJSON(filepath.Join(s.dir, sessionFilename), &record)
	if err != nil || !ok || record.SessionID == "" {
		return domain.SessionRecord{}, false, err
	}
	return record, true, nil
}

// DeleteSession forgets the stored record.
func (s *SessionFileStore) DeleteSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(filepath.Join(s.dir, sessionFilename))
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
