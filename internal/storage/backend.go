package storage

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("storage: not found")

// Backend stores opaque values by key.
type Backend interface {
	Name() string
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Error wraps a backend failure with the operation that caused it.
type Error struct {
	Op      string
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Backend, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	BackendFile   = "file"
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

func ValidBackend(name string) bool {
	switch name {
	case BackendFile, BackendDiskv, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}
