package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/focusdeck/internal/model"
)

// Listener observes a completed transition. It runs after the store lock
// is released, so it may call State or Dispatch.
type Listener func(prev, next model.AppState, a Action)

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	mu     sync.Mutex
	state  model.AppState
	subs   []subscription
	nextID int

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(initial model.AppState, opts ...Option) *Store {
	s := &Store{
		state:  initial.Clone(),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID:  uuid.NewString,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a and notifies listeners in registration order.
// Transitions are serialized; the returned state is the one a produced.
func (s *Store) Dispatch(a Action) model.AppState {
	if a == nil {
		return s.State()
	}
	a = s.stamp(a)

	s.mu.Lock()
	prev := s.state
	next := Apply(prev, a)
	s.state = next
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if a.Kind() != KindTickTimer {
		s.logger.Debug("dispatch", "action", a.Kind())
	}
	for _, sub := range subs {
		sub.fn(prev.Clone(), next.Clone(), a)
	}
	return next.Clone()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) stamp(a Action) Action {
	add, ok := a.(AddTask)
	if !ok {
		return a
	}
	if strings.TrimSpace(add.ID) == "" {
		add.ID = s.newID()
	}
	if add.CreatedAt.IsZero() {
		add.CreatedAt = s.now()
	}
	// Records keep millisecond timestamps.
	add.CreatedAt = add.CreatedAt.Truncate(time.Millisecond)
	return add
}
