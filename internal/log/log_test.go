package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("", "LOUD", false)
	require.Error(t, err)
}

func TestNew_WritesModuleLinesToFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "supplyline.log")
	b, err := New(path, "info", false)
	require.NoError(err)

	l := b.GetLogger("keyexchange")
	l.Info("handshake complete")
	l.Debug("dropped below level")
	require.NoError(b.Close())

	raw, err := os.ReadFile(path)
	require.NoError(err)
	out := string(raw)
	require.Contains(out, "keyexchange: handshake complete")
	require.False(strings.Contains(out, "dropped below level"))
}
