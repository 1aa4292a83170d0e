// Package observability carries store and middleware events to loggers and
// tracers. Level values follow OpenTelemetry SeverityNumbers so events can be
// forwarded to OTel without translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is event severity aligned with OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8)
	LevelInfo    Level = 9  // OTel INFO (9-12)
	LevelWarning Level = 13 // OTel WARN (13-16)
	LevelError   Level = 17 // OTel ERROR (17-20)
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps the level onto slog.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names a store or middleware occurrence. The prefix groups the
// emitter: store.* and state.* come from store.Store, action.* from dispatch
// and reduction, task.* from middleware.Tasks.
type EventType string

const (
	// EventStoreCreate fires once from store.New with the store name, id and
	// middleware count.
	EventStoreCreate EventType = "store.create"

	// EventActionDispatch fires as an action enters the middleware chain,
	// before any middleware can swallow it.
	EventActionDispatch EventType = "action.dispatch"

	// EventActionUnhandled fires when an action reaches the reducer but no
	// handler is routed for its type; state is left as it was.
	EventActionUnhandled EventType = "action.unhandled"

	// EventStateChange fires after a routed handler produced the next state.
	EventStateChange EventType = "state.change"

	// EventTaskStart fires when middleware.Tasks dispatches the pending
	// action and starts the Task.
	EventTaskStart EventType = "task.start"

	// EventTaskSettle fires with the fulfilled or rejected type just before
	// it is dispatched. Rejections are reported at LevelWarning.
	EventTaskSettle EventType = "task.settle"
)

// Event is one store or task occurrence. Data carries the store name and the
// action type; payloads stay out of events so observers never retain state.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives store and task events. A store calls OnEvent
// synchronously on the dispatching goroutine, and middleware.Tasks calls it
// from task goroutines, so implementations must be safe for concurrent use
// and should return quickly.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
