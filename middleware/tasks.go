package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/observability"
	"github.com/tailored-agentic-units/actions/table"
)

// observed is implemented by stores that publish events.
type observed interface {
	Observer() observability.Observer
}

type baseType string

func (b baseType) Type() string {
	return string(b)
}

// Tasks runs the Task payloads of the given async creators.
//
// A base async action is not forwarded. Instead the middleware dispatches the
// pending action through the store, runs the Task on its own goroutine with
// ctx, then dispatches the fulfilled or rejected action. The handler returns a
// <-chan action.Action that receives the settling action once and is closed.
// A panicking Task settles as rejected. Stores that expose an Observer receive
// task.start and task.settle events.
//
// Calls are not correlated: when invocations overlap, the one that settles
// last determines the reduced state.
func Tasks[St Dispatcher](ctx context.Context, logger *slog.Logger, creators ...*action.AsyncCreator) Middleware[St] {
	if logger == nil {
		logger = slog.Default()
	}

	tables := make([]table.Table[Handler[St]], 0, len(creators))
	for _, ac := range creators {
		tables = append(tables, table.Build(runTask[St](ctx, logger, ac), baseType(ac.BaseType())))
	}

	return FromTable(table.Merge(tables...))
}

func runTask[St Dispatcher](ctx context.Context, logger *slog.Logger, ac *action.AsyncCreator) Handler[St] {
	return func(store St, next Dispatch, a action.Action) any {
		task, ok := action.TaskOf(a)
		if !ok || task == nil {
			return next(a)
		}

		observer := observerOf(store)

		store.Dispatch(ac.Pending.Create())

		logger.DebugContext(
			ctx,
			"task started",
			slog.String("type", a.Type),
		)
		observer.OnEvent(ctx, observability.Event{
			Type:      observability.EventTaskStart,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "middleware.Tasks",
			Data:      map[string]any{"type": a.Type},
		})

		settled := make(chan action.Action, 1)
		go func() {
			defer close(settled)

			result, err := execute(ctx, task)
			out := ac.Settle(result, err)

			if err != nil {
				logger.WarnContext(
					ctx,
					"task rejected",
					slog.String("type", a.Type),
					slog.String("error", err.Error()),
				)
			} else {
				logger.DebugContext(
					ctx,
					"task fulfilled",
					slog.String("type", a.Type),
				)
			}

			level := observability.LevelInfo
			if err != nil {
				level = observability.LevelWarning
			}
			observer.OnEvent(ctx, observability.Event{
				Type:      observability.EventTaskSettle,
				Level:     level,
				Timestamp: time.Now(),
				Source:    "middleware.Tasks",
				Data:      map[string]any{"type": out.Type},
			})

			store.Dispatch(out)
			settled <- out
		}()

		return (<-chan action.Action)(settled)
	}
}

func execute(ctx context.Context, task action.Task) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()
	return task(ctx)
}

func observerOf(store any) observability.Observer {
	if o, ok := store.(observed); ok && o.Observer() != nil {
		return o.Observer()
	}
	return observability.NoOpObserver{}
}
