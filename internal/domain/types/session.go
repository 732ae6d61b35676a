package types

// SessionRecord is what survives a handshake on disk. The derived key is
// never part of it.
type SessionRecord struct {
	ServerURL            string    `json:"server_url"`
	SessionID            SessionID `json:"session_id"`
	ServerKeyFingerprint string    `json:"server_key_fingerprint"`
	CreatedUTC           int64     `json:"created_utc"`
}

// AuthProfile is the persisted result of a login.
type AuthProfile struct {
	ServerURL   string   `json:"server_url"`
	UserID      UserID   `json:"user_id"`
	Username    Username `json:"username"`
	Role        Role     `json:"role"`
	Token       string   `json:"token"`
	LoggedInUTC int64    `json:"logged_in_utc"`
}

// KeyExchangeRequest carries the client's public key.
type KeyExchangeRequest struct {
	ClientPublicKey string `json:"clientPublicKey"`
}

// KeyExchangeResponse carries the session id issued for the exchange.
type KeyExchangeResponse struct {
	SessionID SessionID `json:"sessionId"`
}

// ServerKeyResponse carries the backend's ECDH public key.
type ServerKeyResponse struct {
	PublicKey string `json:"publicKey"`
}
