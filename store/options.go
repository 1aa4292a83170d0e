package store

import (
	"log/slog"

	"github.com/tailored-agentic-units/actions/middleware"
	"github.com/tailored-agentic-units/actions/observability"
)

// Option configures a Store.
type Option[S any] func(*Store[S])

// WithMiddleware appends middleware to the dispatch chain. The first
// middleware given sees each action first.
func WithMiddleware[S any](mws ...middleware.Middleware[API[S]]) Option[S] {
	return func(s *Store[S]) {
		s.middleware = append(s.middleware, mws...)
	}
}

// WithObserver replaces the observer named in the store configuration.
func WithObserver[S any](observer observability.Observer) Option[S] {
	return func(s *Store[S]) {
		s.observer = observer
	}
}

// WithLogger sets the logger for store diagnostics.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(s *Store[S]) {
		s.logger = logger
	}
}
