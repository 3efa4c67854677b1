package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points storage and logs at a temp dir so tests never touch $HOME.
func writeConfig(t *testing.T, backend string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	body := "storage:\n  backend: " + backend + "\n  path: " + data + "\n" +
		"log:\n  file: " + filepath.Join(dir, "focusdeck.log") + "\n  level: debug\n"
	path := filepath.Join(dir, "focusdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path, dir
}

func execute(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	cmd := New(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestHeadlessCommandsPersistAcrossRuns(t *testing.T) {
	for _, backend := range []string{"file", "diskv", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			cfg, _ := writeConfig(t, backend)

			out, err := execute(t, cfg, "add", "--today", "--priority", "high", "ship", "the", "release")
			require.NoError(t, err)
			assert.Contains(t, out, `added "ship the release" to Today`)

			_, err = execute(t, cfg, "add", "read", "papers")
			require.NoError(t, err)

			out, err = execute(t, cfg, "tasks")
			require.NoError(t, err)
			assert.Contains(t, out, "Today - 1")
			assert.Contains(t, out, "ship the release")
			assert.Contains(t, out, "high")
			assert.NotContains(t, out, "read papers")

			out, err = execute(t, cfg, "tasks", "inbox")
			require.NoError(t, err)
			assert.Contains(t, out, "read papers")
		})
	}
}

func TestFocusBMIAndStatus(t *testing.T) {
	cfg, _ := writeConfig(t, "file")

	_, err := execute(t, cfg, "focus", "finish", "the", "plan")
	require.NoError(t, err)

	out, err := execute(t, cfg, "bmi", "180", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "BMI 27.8 (Overweight)")

	out, err = execute(t, cfg, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "focus: finish the plan")
	assert.Contains(t, out, "bmi: 27.8 (Overweight)")
	assert.Contains(t, out, "tasks: 0 inbox, 0 today, 0 done")
	assert.Contains(t, out, "Midnight Study")
}

func TestValidationErrors(t *testing.T) {
	cfg, _ := writeConfig(t, "file")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad priority", args: []string{"add", "--priority", "urgent", "x"}, want: "unknown priority"},
		{name: "bad view", args: []string{"tasks", "someday"}, want: "unknown view"},
		{name: "bad bmi", args: []string{"bmi", "20", "70"}, want: "invalid_argument"},
		{name: "focus too long", args: []string{"focus", strings.Repeat("x", 101)}, want: "invalid_argument"},
		{name: "reset needs confirmation", args: []string{"reset"}, want: "--yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, cfg, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNotesExport(t *testing.T) {
	cfg, dir := writeConfig(t, "file")
	outDir := filepath.Join(dir, "exports")

	_, err := execute(t, cfg, "notes", "export", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to export")
}

func TestResetClearsState(t *testing.T) {
	cfg, _ := writeConfig(t, "file")

	out, err := execute(t, cfg, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing stored")

	_, err = execute(t, cfg, "add", "temp")
	require.NoError(t, err)
	out, err = execute(t, cfg, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "state reset")

	out, err = execute(t, cfg, "tasks", "inbox")
	require.NoError(t, err)
	assert.Contains(t, out, "Inbox - 0")
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	cfg, _ := writeConfig(t, "file")

	_, err := execute(t, cfg, "--ephemeral", "add", "gone")
	require.NoError(t, err)

	out, err := execute(t, cfg, "tasks", "inbox")
	require.NoError(t, err)
	assert.NotContains(t, out, "gone")
}

func TestVersion(t *testing.T) {
	cfg, _ := writeConfig(t, "file")
	out, err := execute(t, cfg, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}
