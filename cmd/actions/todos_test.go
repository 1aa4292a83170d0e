package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/reducer"
)

func TestTodoReducer(t *testing.T) {
	load := newLoadTodos(action.DefaultDelimiter)
	r := newTodoReducer(load)

	s := r.Start(addTodo.Create("write docs"))
	s = r.Reduce(s, addTodo.Create(""))
	s = r.Reduce(s, load.Pending.Create())

	if !s.Load.Pending || s.Load.Status != reducer.StatusPending {
		t.Errorf("Load = %+v, want pending", s.Load)
	}

	before := s
	s = r.Reduce(s, load.Fulfilled.Create([]Todo{{Title: "ship"}}))
	s = r.Reduce(s, toggleTodo.Create(1))
	s = r.Reduce(s, toggleTodo.Create(9))

	if len(s.Todos) != 2 || s.Todos[0].Title != "write docs" || !s.Todos[1].Done {
		t.Errorf("Todos = %+v, want [write docs, ship(done)]", s.Todos)
	}
	if len(before.Todos) != 1 {
		t.Errorf("previous state mutated: %+v", before.Todos)
	}
}

func TestLoadTodos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := os.WriteFile(path, []byte(`["a", "b"]`), 0o600); err != nil {
		t.Fatalf("write todos: %v", err)
	}

	load := newLoadTodos("/")
	task, ok := action.TaskOf(load.Create(path))
	if !ok {
		t.Fatal("Create() payload is not a Task")
	}

	result, err := task(context.Background())
	if err != nil {
		t.Fatalf("task() error = %v", err)
	}

	todos, ok := result.([]Todo)
	if !ok || len(todos) != 2 || todos[1].Title != "b" {
		t.Errorf("task() = %v, want [a b]", result)
	}
	if load.Fulfilled.Type() != "LOAD_TODOS/FULFILLED" {
		t.Errorf("Fulfilled.Type() = %q, want LOAD_TODOS/FULFILLED", load.Fulfilled.Type())
	}

	missing, _ := action.TaskOf(load.Create(filepath.Join(t.TempDir(), "none.json")))
	if _, err := missing(context.Background()); err == nil {
		t.Error("task() error = nil for missing file")
	}
}

func TestPrintState(t *testing.T) {
	var buf bytes.Buffer
	printState(&buf, State{
		Todos: []Todo{{Title: "a", Done: true}},
		Load:  reducer.AsyncState[[]Todo]{Status: reducer.StatusFulfilled},
	})

	output := buf.String()
	for _, want := range []string{"[x] 0. a", "Load: fulfilled"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestTraceActions(t *testing.T) {
	var buf bytes.Buffer
	load := newLoadTodos(action.DefaultDelimiter)

	dispatch := traceActions(&buf, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(nil)(
		func(a action.Action) any { return a.Type },
	)

	dispatch(addTodo.Create("write docs"))
	if got := dispatch(load.Create("todos.json")); got != "LOAD_TODOS" {
		t.Errorf("dispatch() = %v, want forwarded", got)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`{"type":"ADD_TODO","payload":"write docs"}`,
		`{"type":"LOAD_TODOS","payload":"(action.Task)"}`,
	}
	if len(lines) != len(want) {
		t.Fatalf("trace lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %s, want %s", i, lines[i], want[i])
		}
	}
}
