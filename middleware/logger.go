package middleware

import (
	"context"
	"log/slog"

	"github.com/tailored-agentic-units/actions/action"
)

// Logger logs every action at debug level before forwarding it.
func Logger[St any](logger *slog.Logger) Middleware[St] {
	if logger == nil {
		logger = slog.Default()
	}

	return func(store St) func(Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) any {
				logger.DebugContext(
					context.Background(),
					"action dispatched",
					slog.String("type", a.Type),
					slog.Bool("payload", a.HasPayload()),
					slog.Bool("meta", a.HasMeta()),
					slog.Bool("error", a.Error),
				)
				return next(a)
			}
		}
	}
}
