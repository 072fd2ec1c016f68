// Package store owns the single in-memory application state, funnels every
// change through the reducer, and persists the result.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/starford/boreacrutis/internal/checksum"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/snapshot"
	"github.com/starford/boreacrutis/internal/storage"
	"github.com/starford/boreacrutis/internal/workspace"
)

// Change is delivered to subscribers after each dispatch.
type Change struct {
	Action workspace.Action
	State  domain.State
}

// Store serialises dispatches. Persistence is best effort: a failed save is
// logged and the in-memory state still advances.
type Store struct {
	mu      sync.Mutex
	state   domain.State
	lastSum string

	notifyMu sync.Mutex
	subs     map[int]func(Change)
	nextSub  int

	reducer  *workspace.Reducer
	provider storage.Provider
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithReducer replaces the default reducer.
func WithReducer(r *workspace.Reducer) Option {
	return func(s *Store) { s.reducer = r }
}

// WithProvider sets where snapshots are saved. Without one nothing is
// persisted.
func WithProvider(p storage.Provider) Option {
	return func(s *Store) { s.provider = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a Store starting from initial.
func New(initial domain.State, opts ...Option) *Store {
	s := &Store{
		state:  initial,
		subs:   make(map[int]func(Change)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reducer == nil {
		s.reducer = workspace.NewReducer()
	}
	return s
}

// Open loads the snapshot from p (falling back to seed data) and returns a
// Store persisting to p.
func Open(ctx context.Context, p storage.Provider, logger *slog.Logger, now time.Time, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	initial := snapshot.Load(ctx, p, logger, now)
	s := New(initial, append([]Option{WithProvider(p), WithLogger(logger)}, opts...)...)
	if data, err := snapshot.Encode(initial); err == nil {
		s.lastSum = checksum.Sum(data)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a, persists the new state and notifies subscribers before
// returning it. Subscribers run on the calling goroutine in dispatch order
// and may call State but must not Dispatch.
func (s *Store) Dispatch(ctx context.Context, a workspace.Action) domain.State {
	s.mu.Lock()
	next := s.reducer.Reduce(s.state, a)
	s.state = next
	s.persist(ctx, next)

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	change := Change{Action: a, State: next}
	for _, fn := range s.subs {
		fn(change)
	}
	return next
}

// Subscribe registers fn for every subsequent change. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.notifyMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.notifyMu.Lock()
			delete(s.subs, id)
			s.notifyMu.Unlock()
		})
	}
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context, st domain.State) {
	if s.provider == nil {
		return
	}
	data, err := snapshot.Encode(st)
	if err != nil {
		s.logger.Error("encode snapshot failed", slog.String("error", err.Error()))
		return
	}
	sum := checksum.Sum(data)
	if sum == s.lastSum {
		return
	}
	if err := s.provider.Save(ctx, data); err != nil {
		s.logger.Error("persist snapshot failed", slog.String("error", err.Error()))
		return
	}
	s.lastSum = sum
	s.logger.Debug("snapshot persisted", slog.Int("bytes", len(data)))
}
