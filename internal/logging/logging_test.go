package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/focusdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "focusdeck.log")
	logger, closer, err := New(config.LogConfig{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "field", "tasks")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hidden")
	assert.Contains(t, string(raw), "msg=shown field=tasks")
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	logger.Error("nowhere")
	assert.NoError(t, closer.Close())
}
