package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/middleware"
	"github.com/tailored-agentic-units/actions/reducer"
	"github.com/tailored-agentic-units/actions/store"
	"github.com/tailored-agentic-units/actions/table"
)

type Todo struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type State struct {
	Todos []Todo
	Load  reducer.AsyncState[[]Todo]
}

var (
	addTodo    = action.New("ADD_TODO", action.WithPayload(action.Identity))
	toggleTodo = action.New("TOGGLE_TODO", action.WithPayload(action.Identity))
)

// newLoadTodos reads a JSON array of titles from the path passed to Create.
func newLoadTodos(delimiter string) *action.AsyncCreator {
	return action.NewAsync("LOAD_TODOS", func(args ...any) action.Task {
		path := ""
		if len(args) > 0 {
			path, _ = args[0].(string)
		}

		return func(ctx context.Context) (any, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read todos: %w", err)
			}

			var titles []string
			if err := json.Unmarshal(data, &titles); err != nil {
				return nil, fmt.Errorf("failed to parse todos: %w", err)
			}

			todos := make([]Todo, len(titles))
			for i, title := range titles {
				todos[i] = Todo{Title: title}
			}
			return todos, nil
		}
	}, action.WithDelimiter(delimiter))
}

type todoTables = []table.Table[reducer.Handler[State]]

func newTodoReducer(load *action.AsyncCreator) *reducer.Reducer[State] {
	loadState := reducer.Async[[]Todo](load)

	return reducer.New(State{}, func(on table.Builder[reducer.Handler[State]]) todoTables {
		return todoTables{
			on(func(s State, a action.Action) State {
				title, ok := action.PayloadOf[string](a)
				if !ok || title == "" {
					return s
				}
				s.Todos = append(slices.Clone(s.Todos), Todo{Title: title})
				return s
			}, addTodo),
			on(func(s State, a action.Action) State {
				i, ok := action.PayloadOf[int](a)
				if !ok || i < 0 || i >= len(s.Todos) {
					return s
				}
				s.Todos = slices.Clone(s.Todos)
				s.Todos[i].Done = !s.Todos[i].Done
				return s
			}, toggleTodo),
			on(func(s State, a action.Action) State {
				s.Load = loadState.Reduce(s.Load, a)
				if load.Fulfilled.Match(a) {
					s.Todos = append(slices.Clone(s.Todos), s.Load.Data...)
				}
				return s
			}, load.Pending, load.Fulfilled, load.Rejected),
		}
	})
}

// traceActions writes every action as a JSON line before forwarding it.
// Payload or meta values JSON cannot hold, such as the Task of a base async
// action, are printed as a "(type)" placeholder.
func traceActions(w io.Writer, logger *slog.Logger) middleware.Middleware[store.API[State]] {
	return func(store.API[State]) func(middleware.Dispatch) middleware.Dispatch {
		return func(next middleware.Dispatch) middleware.Dispatch {
			return func(a action.Action) any {
				data, err := json.Marshal(a)
				if err != nil {
					logger.Debug(
						"trace encoding fell back to placeholders",
						slog.String("type", a.Type),
						slog.String("error", err.Error()),
					)
					data, err = json.Marshal(placeholders(a))
				}
				if err == nil {
					fmt.Fprintf(w, "%s\n", data)
				}
				return next(a)
			}
		}
	}
}

func placeholders(a action.Action) action.Action {
	out := action.Of(a.Type)
	if a.HasPayload() {
		out = out.WithPayload(fmt.Sprintf("(%T)", a.Payload))
	}
	if a.HasMeta() {
		out = out.WithMeta(fmt.Sprintf("(%T)", a.Meta))
	}
	out.Error = a.Error
	return out
}

func printState(w io.Writer, s State) {
	fmt.Fprintf(w, "Todos (%d):\n", len(s.Todos))
	for i, todo := range s.Todos {
		mark := " "
		if todo.Done {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %d. %s\n", mark, i, todo.Title)
	}

	fmt.Fprintf(w, "\nLoad: %s", s.Load.Status)
	if s.Load.Error != nil {
		fmt.Fprintf(w, " (%v)", s.Load.Error)
	}
	fmt.Fprintln(w)
}
