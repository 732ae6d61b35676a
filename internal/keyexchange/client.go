package keyexchange

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gopkg.in/op/go-logging.v1"

	"supplyline/internal/crypto"
	"supplyline/internal/domain"
	"supplyline/internal/util/memzero"
)

var (
	// ErrNotInitialized is returned by Encrypt/Decrypt before a successful handshake.
	ErrNotInitialized = errors.New("key exchange not initialized")

	// ErrNoSessionID is returned when the server accepts our key but issues no session id.
	ErrNoSessionID = errors.New("server did not issue a session id")
)

// Client holds the negotiated key and session id for one process lifetime.
type Client struct {
	transport domain.KeyExchangeTransport
	store     domain.SessionStore
	serverURL string
	kdf       crypto.KDF
	log       *logging.Logger
	now       func() time.Time

	handshake sync.Mutex // serialises Initialize

	mu        sync.RWMutex
	key       []byte
	sessionID domain.SessionID
}

// Option configures a Client.
type Option func(*Client)

// WithStore persists the session record after each handshake.
func WithStore(s domain.SessionStore, serverURL string) Option {
	return func(c *Client) {
		c.store = s
		c.serverURL = serverURL
	}
}

// WithKDF selects the key derivation; it must match the server's.
func WithKDF(kdf crypto.KDF) Option {
	return func(c *Client) { c.kdf = kdf }
}

// WithLogger sets the module logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns an uninitialized Client speaking to transport.
func New(transport domain.KeyExchangeTransport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		kdf:       crypto.KDFRaw,
		log:       logging.MustGetLogger("keyexchange"),
		now:       time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Initialize runs the handshake. On failure the Client is left
// uninitialized and the error says which step failed.
func (c *Client) Initialize(ctx context.Context) error {
	c.handshake.Lock()
	defer c.handshake.Unlock()
	return c.runHandshake(ctx)
}

// runHandshake performs the exchange. Callers hold c.handshake.
func (c *Client) runHandshake(ctx context.Context) error {
	c.clear()

	priv, err := crypto.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("key exchange: generate key pair: %w", err)
	}

	serverKey, err := c.transport.FetchServerPublicKey(ctx)
	if err != nil {
		return fmt.Errorf("key exchange: fetch server key: %w", err)
	}
	serverPub, err := crypto.ParsePublicKey(serverKey)
	if err != nil {
		return fmt.Errorf("key exchange: %w", err)
	}

	sid, err := c.transport.ExchangeKeys(ctx, crypto.EncodePublicKey(priv.PublicKey()))
	if err != nil {
		return fmt.Errorf("key exchange: exchange keys: %w", err)
	}
	if sid == "" {
		return fmt.Errorf("key exchange: %w", ErrNoSessionID)
	}

	shared, err := crypto.SharedSecret(priv, serverPub)
	if err != nil {
		return fmt.Errorf("key exchange: derive secret: %w", err)
	}
	defer memzero.Zero(shared)

	key, err := crypto.DeriveSessionKey(c.kdf, shared, sid.String())
	if err != nil {
		return fmt.Errorf("key exchange: derive key: %w", err)
	}

	c.mu.Lock()
	c.key = key
	c.sessionID = sid
	c.mu.Unlock()

	fp := crypto.Fingerprint(serverPub.Bytes())
	c.log.Infof("handshake complete: session %s, server key %s, kdf %s", sid.Short(), fp, c.kdf)

	if c.store != nil {
		record := domain.SessionRecord{
			ServerURL:            c.serverURL,
			SessionID:            sid,
			ServerKeyFingerprint: fp,
			CreatedUTC:           c.now().UTC().Unix(),
		}
		// Losing the record only loses diagnostics; the key is in memory.
		if err := c.store.SaveSession(record); err != nil {
			c.log.Warningf("failed to persist session record: %v", err)
		}
	}
	return nil
}

// EnsureInitialized reports whether a usable key is held, attempting one
// handshake if none is. Concurrent callers share that one handshake. The
// handshake error, if any, is logged and dropped so callers can take the
// plaintext path.
func (c *Client) EnsureInitialized(ctx context.Context) bool {
	if c.IsInitialized() {
		return true
	}
	c.handshake.Lock()
	defer c.handshake.Unlock()
	if c.IsInitialized() {
		return true
	}
	if err := c.runHandshake(ctx); err != nil {
		c.log.Warningf("%v; continuing without encryption", err)
		return false
	}
	return true
}

// IsInitialized reports whether a handshake has succeeded.
func (c *Client) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key != nil
}

// SessionID returns the server-issued session id, or "" when uninitialized.
func (c *Client) SessionID() domain.SessionID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// Encrypt seals plaintext under the session key.
func (c *Client) Encrypt(plaintext []byte) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.key == nil {
		return "", ErrNotInitialized
	}
	return crypto.Seal(c.key, plaintext)
}

// EncryptWithSession seals plaintext and returns the session id of the key
// that sealed it, read together so a concurrent handshake cannot pair
// ciphertext with another session's id.
func (c *Client) EncryptWithSession(plaintext []byte) (string, domain.SessionID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.key == nil {
		return "", "", ErrNotInitialized
	}
	sealed, err := crypto.Seal(c.key, plaintext)
	if err != nil {
		return "", "", err
	}
	return sealed, c.sessionID, nil
}

// Decrypt opens a body produced by the server under the session key.
func (c *Client) Decrypt(ciphertext string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.key == nil {
		return nil, ErrNotInitialized
	}
	return crypto.Open(c.key, ciphertext)
}

// Reset wipes the key, forgets the session id and removes the stored record.
func (c *Client) Reset() {
	c.clear()
	if c.store != nil {
		if err := c.store.DeleteSession(); err != nil {
			c.log.Warningf("failed to remove session record: %v", err)
		}
	}
}

func (c *Client) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	memzero.Zero(c.key)
	c.key = nil
	c.sessionID = ""
}

// Compile-time assertion that Client implements domain.KeyExchange.
var _ domain.KeyExchange = (*Client)(nil)
