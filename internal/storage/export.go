package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrEmptyNotes = errors.New("storage: no notes to export")

// NotesFileName is the export name for notes written on day t.
func NotesFileName(t time.Time) string {
	return "productivity-notes-" + t.Format("2006-01-02") + ".txt"
}

// ExportNotes writes notes to dir and returns the file path.
func ExportNotes(dir, notes string, now time.Time) (string, error) {
	if strings.TrimSpace(notes) == "" {
		return "", ErrEmptyNotes
	}
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	path := filepath.Join(dir, NotesFileName(now))
	if err := writeFileAtomic(path, []byte(notes)); err != nil {
		return "", err
	}
	return path, nil
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
