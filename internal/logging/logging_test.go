package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_WritesCombinedAndErrorSinks(t *testing.T) {
	dir := t.TempDir()

	logger, closeSinks := New(Options{Dir: dir, Production: true})
	logger.Info().Str("path", "/graphql").Msg("request completed")
	logger.Error().Str("path", "/graphql").Msg("resolver failed")
	closeSinks()

	combined, err := os.ReadFile(filepath.Join(dir, "combined.log"))
	require.NoError(t, err)
	require.Contains(t, string(combined), "request completed")
	require.Contains(t, string(combined), "resolver failed")
	require.Contains(t, string(combined), `"time"`)

	errOnly, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	require.Contains(t, string(errOnly), "resolver failed")
	require.NotContains(t, string(errOnly), "request completed")
}

func TestNew_UnwritableDirStillLogs(t *testing.T) {
	// A file path used as the directory makes MkdirAll fail; the logger must
	// still come up with the console sink alone.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	logger, closeSinks := New(Options{Dir: filepath.Join(blocker, "logs"), Production: true})
	defer closeSinks()

	// Must not panic.
	logger.Info().Msg("still alive")
}
