package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/config"
	"github.com/tailored-agentic-units/actions/middleware"
	"github.com/tailored-agentic-units/actions/observability"
)

// Reducer is the state function a Store drives. *reducer.Reducer satisfies it.
type Reducer[S any] interface {
	Initial() S
	Reduce(state S, a action.Action) S
}

// handles is implemented by reducers that can report their routed types.
type handles interface {
	Handles(typ string) bool
}

// zeroer is implemented by reducers that can report a nil receiver.
type zeroer interface {
	IsZero() bool
}

// API is the store surface handed to middleware.
type API[S any] interface {
	State() S
	Dispatch(a action.Action) any
}

// Listener receives the state after each reduction.
type Listener[S any] func(state S)

type Store[S any] struct {
	id   string
	name string
	ctx  context.Context

	reducer Reducer[S]
	state   S
	mu      sync.RWMutex

	listeners   map[uint64]Listener[S]
	nextID      uint64
	listenersMu sync.RWMutex

	history      []string
	historyLimit int
	historyMu    sync.Mutex

	middleware []middleware.Middleware[API[S]]
	dispatch   middleware.Dispatch

	logger   *slog.Logger
	observer observability.Observer
	metrics  *Metrics
}

// New creates a Store seeded with r.Initial(). A nil reducer, including a nil
// *reducer.Reducer, returns ErrReducerNil. The observer named by cfg.Observer
// is resolved from the observability registry unless WithObserver overrides
// it.
func New[S any](ctx context.Context, r Reducer[S], cfg config.StoreConfig, opts ...Option[S]) (*Store[S], error) {
	if r == nil {
		return nil, ErrReducerNil
	}
	if z, ok := r.(zeroer); ok && z.IsZero() {
		return nil, ErrReducerNil
	}

	s := &Store[S]{
		id:           uuid.Must(uuid.NewV7()).String(),
		name:         cfg.Name,
		ctx:          ctx,
		reducer:      r,
		state:        r.Initial(),
		listeners:    make(map[uint64]Listener[S]),
		historyLimit: cfg.History,
		metrics:      NewMetrics(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.observer == nil {
		name := cfg.Observer
		if name == "" {
			name = "noop"
		}
		observer, err := observability.GetObserver(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		s.observer = observer
	}

	s.dispatch = middleware.Chain[API[S]](s, s.reduce, s.middleware...)

	s.observer.OnEvent(ctx, observability.Event{
		Type:      observability.EventStoreCreate,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "store.New",
		Data: map[string]any{
			"store":      s.name,
			"id":         s.id,
			"middleware": len(s.middleware),
		},
	})

	return s, nil
}

func (s *Store[S]) ID() string {
	return s.id
}

func (s *Store[S]) Name() string {
	return s.name
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch sends a through the middleware chain. Without middleware
// intervention the result is the action that was reduced.
func (s *Store[S]) Dispatch(a action.Action) any {
	s.metrics.RecordDispatched()

	s.observer.OnEvent(s.ctx, observability.Event{
		Type:      observability.EventActionDispatch,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "store.Dispatch",
		Data: map[string]any{
			"store": s.name,
			"type":  a.Type,
		},
	})

	return s.dispatch(a)
}

// Subscribe registers fn to run after every reduction. The returned function
// removes it; calling it more than once is harmless.
func (s *Store[S]) Subscribe(fn Listener[S]) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	s.metrics.RecordSubscriber(1)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
			s.metrics.RecordSubscriber(-1)
		})
	}
}

// History returns the most recent reduced action types, oldest first. It is
// empty unless the store was configured with a history size.
func (s *Store[S]) History() []string {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	return append([]string(nil), s.history...)
}

// Observer returns the observer receiving store events.
func (s *Store[S]) Observer() observability.Observer {
	return s.observer
}

func (s *Store[S]) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// reduce is the innermost dispatch of the chain.
func (s *Store[S]) reduce(a action.Action) any {
	next := s.apply(a)

	s.metrics.RecordReduced()
	s.record(a.Type)

	if h, ok := s.reducer.(handles); ok && !h.Handles(a.Type) {
		s.metrics.RecordUnhandled()
		s.observer.OnEvent(s.ctx, observability.Event{
			Type:      observability.EventActionUnhandled,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "store.reduce",
			Data: map[string]any{
				"store": s.name,
				"type":  a.Type,
			},
		})
	} else {
		s.observer.OnEvent(s.ctx, observability.Event{
			Type:      observability.EventStateChange,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "store.reduce",
			Data: map[string]any{
				"store": s.name,
				"type":  a.Type,
			},
		})
	}

	s.notify(next)
	return a
}

// apply runs the reducer under the write lock. A panicking handler leaves the
// state unchanged and the lock released.
func (s *Store[S]) apply(a action.Action) S {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.reducer.Reduce(s.state, a)
	return s.state
}

func (s *Store[S]) record(typ string) {
	if s.historyLimit <= 0 {
		return
	}

	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	s.history = append(s.history, typ)
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

func (s *Store[S]) notify(state S) {
	s.listenersMu.RLock()
	listeners := make([]Listener[S], 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(state)
	}

	s.logger.DebugContext(
		s.ctx,
		"state reduced",
		slog.String("store", s.name),
		slog.Int("listeners", len(listeners)),
	)
}
