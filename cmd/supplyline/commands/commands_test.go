package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/stretchr/testify/require"

	"supplyline/internal/domain"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"c1=3", "c2"})
	require.NoError(t, err)
	require.Equal(t, []domain.OrderItem{
		{CargoID: "c1", Quantity: 3},
		{CargoID: "c2", Quantity: 1},
	}, items)

	_, err = parseItems([]string{"c1=lots"})
	require.Error(t, err)
	require.True(t, isUsageError(err))
}

func TestIsUsageError(t *testing.T) {
	require.True(t, isUsageError(errors.New(`unknown flag: --nope`)))
	require.True(t, isUsageError(errors.New("accepts 1 arg(s), received 0")))
	require.False(t, isUsageError(domain.ErrNotLoggedIn))
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCommand()
	for _, path := range [][]string{
		{"login"}, {"order", "place"}, {"cargo", "update"}, {"application", "approve"},
		{"round", "draw"}, {"feedback", "send"}, {"user", "role"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestErrorHandlerPrintsUsageToSameWriter(t *testing.T) {
	root := newRootCommand()
	var buf bytes.Buffer
	errorHandler(root)(&buf, fang.Styles{}, errors.New("unknown flag: --nope"))
	require.Contains(t, buf.String(), "unknown flag: --nope.")
	require.Contains(t, buf.String(), "Usage:")

	buf.Reset()
	errorHandler(root)(&buf, fang.Styles{}, domain.ErrNotLoggedIn)
	require.NotContains(t, buf.String(), "Usage:")
	require.Contains(t, buf.String(), "--help")
}
