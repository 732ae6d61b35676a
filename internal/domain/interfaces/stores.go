package interfaces

import domaintypes "supplyline/internal/domain/types"

// SessionStore persists the handshake record between runs.
type SessionStore interface {
	SaveSession(record domaintypes.SessionRecord) error
	LoadSession() (domaintypes.SessionRecord, bool, error)
	DeleteSession() error
}

// ProfileStore persists the logged-in account. An empty passphrase stores
// the profile unsealed.
type ProfileStore interface {
	SaveProfile(passphrase string, profile domaintypes.AuthProfile) error
	LoadProfile(passphrase string) (domaintypes.AuthProfile, bool, error)
	DeleteProfile() error
}
