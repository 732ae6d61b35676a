// Package config loads the supplyline client configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// TOML file, SUPPLYLINE_* environment variables, and finally CLI flags (applied
// by the caller).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"supplyline/internal/crypto"
)

const (
	defaultServerURL = "http://127.0.0.1:8080"
	defaultTimeout   = 15 * time.Second
	defaultLogLevel  = "NOTICE"
	defaultHomeDir   = ".supplyline"
)

// Backend selects the remote service.
type Backend struct {
	// URL is the base URL of the REST API, e.g. https://api.example.org.
	URL string

	// Timeout bounds each request, as a Go duration string.
	Timeout string

	timeout time.Duration
}

// RequestTimeout returns the parsed Timeout.
func (b *Backend) RequestTimeout() time.Duration { return b.timeout }

// Encryption controls the encrypted login/registration path.
type Encryption struct {
	// Enabled turns on the handshake before login and registration.
	Enabled bool

	// KDF selects how the AES key is derived; "raw" or "hkdf-sha256".
	KDF string
}

// Logging controls the log backend.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

// Storage controls where session and profile files live.
type Storage struct {
	// Home is the state directory; defaults to ~/.supplyline.
	Home string
}

// Config is the top level client configuration.
type Config struct {
	Backend    Backend
	Encryption Encryption
	Logging    Logging
	Storage    Storage
}

// Default returns a configuration with every default applied. It fails
// when no home directory can be determined for Storage.Home.
func Default() (*Config, error) {
	cfg := &Config{Encryption: Encryption{Enabled: true}}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FixupAndValidate applies defaults to unset fields and validates the rest.
func (c *Config) FixupAndValidate() error {
	if c.Backend.URL == "" {
		c.Backend.URL = defaultServerURL
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: Backend: URL '%v' is invalid", c.Backend.URL)
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")

	c.Backend.timeout = defaultTimeout
	if c.Backend.Timeout != "" {
		d, err := time.ParseDuration(c.Backend.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("config: Backend: Timeout '%v' is invalid", c.Backend.Timeout)
		}
		c.Backend.timeout = d
	}

	if c.Encryption.KDF == "" {
		c.Encryption.KDF = string(crypto.KDFRaw)
	}
	if !crypto.KDF(c.Encryption.KDF).Valid() {
		return fmt.Errorf("config: Encryption: KDF '%v' is invalid", c.Encryption.KDF)
	}

	lvl := strings.ToUpper(c.Logging.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", c.Logging.Level)
	}
	c.Logging.Level = lvl

	if c.Storage.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: Storage: %v", err)
		}
		c.Storage.Home = filepath.Join(dir, defaultHomeDir)
	}
	return nil
}

// ApplyEnv overrides fields from SUPPLYLINE_* environment variables.
func (c *Config) ApplyEnv() {
	c.Backend.URL = getEnv("SUPPLYLINE_SERVER_URL", c.Backend.URL)
	c.Backend.Timeout = getEnv("SUPPLYLINE_TIMEOUT", c.Backend.Timeout)
	c.Encryption.Enabled = getBoolEnv("SUPPLYLINE_ENCRYPTION", c.Encryption.Enabled)
	c.Encryption.KDF = getEnv("SUPPLYLINE_KDF", c.Encryption.KDF)
	c.Logging.Level = getEnv("SUPPLYLINE_LOG_LEVEL", c.Logging.Level)
	c.Logging.File = getEnv("SUPPLYLINE_LOG_FILE", c.Logging.File)
	c.Storage.Home = getEnv("SUPPLYLINE_HOME", c.Storage.Home)
}

// Load parses the provided buffer b as a config file body, applies the
// environment and returns the validated Config.
func Load(b []byte) (*Config, error) {
	if b == nil {
		return nil, errors.New("no nil buffer as config file")
	}
	cfg := &Config{Encryption: Encryption{Enabled: true}}
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses, and validates the provided file. An empty path
// yields the defaults with the environment applied.
func LoadFile(f string) (*Config, error) {
	if f == "" {
		return Load([]byte{})
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return Load(b)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
