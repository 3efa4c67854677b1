package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Store persists the dashboard record through a Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger.With("backend", backend.Name())}
}

type Options struct {
	Backend string
	Path    string
	Logger  *slog.Logger
}

// Open builds the backend named in opts rooted at opts.Path.
func Open(opts Options) (*Store, error) {
	var (
		backend Backend
		err     error
	)
	switch opts.Backend {
	case BackendFile, "":
		backend = NewFileBackend(opts.Path)
	case BackendDiskv:
		backend = NewDiskvBackend(opts.Path)
	case BackendSQLite:
		if err := ensureDir(opts.Path); err != nil {
			return nil, &Error{Op: "open", Backend: BackendSQLite, Err: err}
		}
		backend, err = OpenSQLite(filepath.Join(opts.Path, "focusdeck.db"))
		if err != nil {
			return nil, &Error{Op: "open", Backend: BackendSQLite, Err: err}
		}
	case BackendMemory:
		backend = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Backend)
	}
	return New(backend, opts.Logger), nil
}

func (s *Store) Backend() string { return s.backend.Name() }

// Load returns the stored record. A missing or wholly malformed record
// reports false; callers then keep their defaults.
func (s *Store) Load(ctx context.Context) (Record, bool) {
	raw, err := s.backend.Read(ctx, StateKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("load persisted state", "err", err)
		}
		return Record{}, false
	}
	rec, err := DecodeRecord(raw, s.logger)
	if err != nil {
		s.logger.Warn("discarding persisted state", "err", err)
		return Record{}, false
	}
	return rec, true
}

// Save writes rec. Tasks that fail validation are still written but are
// logged, since the next Load skips them.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.Tasks != nil {
		for i, t := range *rec.Tasks {
			if err := t.Validate(); err != nil {
				s.logger.Warn("saving task that will not reload", "index", i, "id", t.ID, "err", err)
			}
		}
	}
	payload, err := EncodeRecord(rec)
	if err != nil {
		return &Error{Op: "encode", Backend: s.backend.Name(), Err: err}
	}
	if err := s.backend.Write(ctx, StateKey, payload); err != nil {
		return &Error{Op: "save", Backend: s.backend.Name(), Err: err}
	}
	return nil
}

// Reset removes the stored record. ErrNotFound means nothing was stored.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.backend.Delete(ctx, StateKey); err != nil {
		return &Error{Op: "reset", Backend: s.backend.Name(), Err: err}
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}
