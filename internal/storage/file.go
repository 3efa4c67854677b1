package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend keeps each key in its own JSON file under dir.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) Name() string { return BackendFile }

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Read(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (b *FileBackend) Write(_ context.Context, key string, value []byte) error {
	payload := make([]byte, len(value), len(value)+1)
	copy(payload, value)
	return writeFileAtomic(b.path(key), append(payload, '\n'))
}

func (b *FileBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (b *FileBackend) Close() error { return nil }

// writeFileAtomic replaces path through a temporary sibling and a rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
