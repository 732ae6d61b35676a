package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	_, err := Load(nil)
	require.EqualError(err, "no nil buffer as config file")

	home := t.TempDir()
	basicConfig := `# A basic configuration example.
[Backend]
URL = "https://relief.example.org/"
Timeout = "3s"

[Encryption]
Enabled = true
KDF = "hkdf-sha256"

[Logging]
Level = "debug"

[Storage]
Home = "` + home + `"
`
	cfg, err := Load([]byte(basicConfig))
	require.NoError(err)
	require.Equal("https://relief.example.org", cfg.Backend.URL)
	require.Equal(3*time.Second, cfg.Backend.RequestTimeout())
	require.Equal("hkdf-sha256", cfg.Encryption.KDF)
	require.Equal("DEBUG", cfg.Logging.Level)
	require.Equal(home, cfg.Storage.Home)
}

func TestConfig_Defaults(t *testing.T) {
	require := require.New(t)
	t.Setenv("SUPPLYLINE_HOME", t.TempDir())

	cfg, err := Load([]byte{})
	require.NoError(err)
	require.Equal(defaultServerURL, cfg.Backend.URL)
	require.Equal(defaultTimeout, cfg.Backend.RequestTimeout())
	require.True(cfg.Encryption.Enabled)
	require.Equal("raw", cfg.Encryption.KDF)
	require.Equal(defaultLogLevel, cfg.Logging.Level)
}

func TestConfig_DefaultWithoutHome(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", "")

	_, err := Default()
	require.Error(err)

	t.Setenv("HOME", t.TempDir())
	cfg, err := Default()
	require.NoError(err)
	require.Equal(filepath.Join(os.Getenv("HOME"), defaultHomeDir), cfg.Storage.Home)
}

func TestConfig_EnvOverridesFile(t *testing.T) {
	require := require.New(t)
	t.Setenv("SUPPLYLINE_SERVER_URL", "http://10.0.0.5:9000")
	t.Setenv("SUPPLYLINE_ENCRYPTION", "false")
	t.Setenv("SUPPLYLINE_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(os.WriteFile(path, []byte("[Backend]\nURL = \"http://file.example\"\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(err)
	require.Equal("http://10.0.0.5:9000", cfg.Backend.URL)
	require.False(cfg.Encryption.Enabled)
}

func TestConfig_Invalid(t *testing.T) {
	t.Setenv("SUPPLYLINE_HOME", t.TempDir())
	for name, body := range map[string]string{
		"url":     "[Backend]\nURL = \"not a url\"\n",
		"timeout": "[Backend]\nTimeout = \"soon\"\n",
		"kdf":     "[Encryption]\nKDF = \"md5\"\n",
		"level":   "[Logging]\nLevel = \"LOUD\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(body))
			require.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "failed to load config file")
}
