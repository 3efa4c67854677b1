package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sandeepkv93/focusdeck/internal/commands"
	"github.com/sandeepkv93/focusdeck/internal/config"
	"github.com/sandeepkv93/focusdeck/internal/logging"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/storage"
	"github.com/sandeepkv93/focusdeck/internal/store"
)

// session is one headless load-dispatch-save cycle against the configured
// storage.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	logs    io.Closer
	storage *storage.Store
	store   *store.Store
}

func loadConfig(ro *rootOptions) (config.Config, error) {
	cfg, err := config.Load(ro.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if ro.ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}
	return cfg, nil
}

func openStorage(cfg config.Config) (*slog.Logger, io.Closer, *storage.Store, error) {
	logger, logs, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := storage.Open(storage.Options{
		Backend: cfg.Storage.Backend,
		Path:    cfg.Storage.Path,
		Logger:  logger,
	})
	if err != nil {
		_ = logs.Close()
		return nil, nil, nil, err
	}
	return logger, logs, st, nil
}

func openSession(ctx context.Context, ro *rootOptions) (*session, error) {
	cfg, err := loadConfig(ro)
	if err != nil {
		return nil, err
	}
	logger, logs, st, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:     cfg,
		logger:  logger,
		logs:    logs,
		storage: st,
		store:   store.New(model.DefaultState(), store.WithLogger(logger)),
	}
	if rec, ok := st.Load(ctx); ok {
		s.store.Dispatch(store.LoadFromStorage{Patch: rec.Patch()})
	}
	return s, nil
}

func (s *session) State() model.AppState {
	return s.store.State()
}

// run parses line with the palette grammar, applies it and saves.
func (s *session) run(ctx context.Context, line string) (commands.Result, error) {
	cmd, err := commands.Parse(line)
	if err != nil {
		return commands.Result{}, err
	}
	res, err := commands.Execute(cmd, commands.NewHandlers(s.store, nil))
	if err != nil {
		return commands.Result{}, err
	}
	if err := s.save(ctx); err != nil {
		return commands.Result{}, err
	}
	return res, nil
}

func (s *session) save(ctx context.Context) error {
	if err := s.storage.Save(ctx, storage.RecordFrom(s.store.State())); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *session) Close() error {
	return errors.Join(s.storage.Close(), s.logs.Close())
}
