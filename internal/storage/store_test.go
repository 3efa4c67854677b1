package storage

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]*Store {
	t.Helper()
	out := map[string]*Store{}
	for _, name := range []string{BackendFile, BackendDiskv, BackendSQLite, BackendMemory} {
		s, err := Open(Options{Backend: name, Path: filepath.Join(t.TempDir(), name)})
		require.NoError(t, err, "open %s", name)
		t.Cleanup(func() { _ = s.Close() })
		out[name] = s
	}
	return out
}

func TestStoreRoundTripPerBackend(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := s.Load(t.Context())
			assert.False(t, ok, "empty backend has nothing to load")

			want := RecordFrom(sampleState())
			require.NoError(t, s.Save(t.Context(), want))

			got, ok := s.Load(t.Context())
			require.True(t, ok)
			assert.Equal(t, want, got)

			notes := "second"
			want.Notes = &notes
			require.NoError(t, s.Save(t.Context(), want))
			got, ok = s.Load(t.Context())
			require.True(t, ok)
			assert.Equal(t, "second", *got.Notes)

			require.NoError(t, s.Reset(t.Context()))
			_, ok = s.Load(t.Context())
			assert.False(t, ok)

			err := s.Reset(t.Context())
			assert.True(t, errors.Is(err, ErrNotFound), "reset of missing record: %v", err)
		})
	}
}

func TestStoreLoadMalformedRecordLogsAndReportsNothing(t *testing.T) {
	var logs bytes.Buffer
	backend := NewMemoryBackend()
	require.NoError(t, backend.Write(t.Context(), StateKey, []byte(`{{garbage`)))
	s := New(backend, slog.New(slog.NewTextHandler(&logs, nil)))

	_, ok := s.Load(t.Context())
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "discarding persisted state")
}

func TestStoreRoundTripWithDefaultClock(t *testing.T) {
	st := store.New(model.DefaultState())
	st.Dispatch(store.AddTask{Title: "stamp me", Category: model.CategoryToday})
	want := RecordFrom(st.State())

	s := New(NewMemoryBackend(), nil)
	require.NoError(t, s.Save(t.Context(), want))
	got, ok := s.Load(t.Context())
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, (*got.Tasks)[0].CreatedAt.Equal((*want.Tasks)[0].CreatedAt))
}

func TestStoreSaveLogsTaskThatWillNotReload(t *testing.T) {
	var logs bytes.Buffer
	s := New(NewMemoryBackend(), slog.New(slog.NewTextHandler(&logs, nil)))
	st := store.New(model.DefaultState())
	st.Dispatch(store.AddTask{Title: ""})
	st.Dispatch(store.AddTask{Title: "kept", Category: model.CategoryInbox})

	require.NoError(t, s.Save(t.Context(), RecordFrom(st.State())))
	assert.Contains(t, logs.String(), "saving task that will not reload")

	got, ok := s.Load(t.Context())
	require.True(t, ok)
	require.Len(t, *got.Tasks, 1)
	assert.Equal(t, "kept", (*got.Tasks)[0].Title)
	assert.Contains(t, logs.String(), "skipping persisted task")
}

func TestFileBackendWriteLeavesCallerBufferAlone(t *testing.T) {
	buf := []byte("{}x")[:2]
	b := NewFileBackend(t.TempDir())
	require.NoError(t, b.Write(t.Context(), StateKey, buf))
	assert.Equal(t, "{}x", string(buf[:3]))
}

func TestFileBackendWritesAtomically(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	b := NewFileBackend(dir)
	require.NoError(t, b.Write(t.Context(), StateKey, []byte(`{}`)))

	raw, err := os.ReadFile(filepath.Join(dir, StateKey+".json"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(raw))
	_, err = os.Stat(filepath.Join(dir, StateKey+".json.tmp"))
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
}

func TestSQLiteBackendTracksUpdatedAt(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	fixed := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	_, err = b.UpdatedAt(t.Context(), StateKey)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, b.Write(t.Context(), StateKey, []byte(`{}`)))
	got, err := b.UpdatedAt(t.Context(), StateKey)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(got))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Options{Backend: "redis", Path: t.TempDir()})
	assert.Error(t, err)
}

func TestExportNotes(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)

	_, err := ExportNotes(dir, "   ", day)
	assert.True(t, errors.Is(err, ErrEmptyNotes))

	path, err := ExportNotes(dir, "# hello", day)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "productivity-notes-2026-03-04.txt"), path)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# hello", string(raw))
}
