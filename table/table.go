// Package table builds immutable dispatch tables keyed by action type.
//
// A Table maps type strings to handlers of any shape. Tables are built once
// from (handler, creators) registrations and merged left to right; a later
// registration for the same type replaces an earlier one. After construction a
// Table is never mutated and is safe to share across goroutines.
//
//	t := table.Merge(
//	    table.Build(onIncrement, inc),
//	    table.Build(onReset, reset, clear),
//	)
//	h, ok := t.Lookup(inc.Type())
package table

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tailored-agentic-units/actions/action"
)

// Table is an immutable mapping from action type to handler.
type Table[H any] struct {
	entries map[string]H
}

// Builder registers one handler for one or more creators. Composers pass a
// Builder to their build callbacks.
type Builder[H any] func(handler H, creators ...action.Typer) Table[H]

// Build returns a table mapping each creator's type to handler.
func Build[H any](handler H, creators ...action.Typer) Table[H] {
	entries := make(map[string]H, len(creators))
	for _, c := range creators {
		entries[c.Type()] = handler
	}
	return Table[H]{entries: entries}
}

// Merge combines tables in order. On a type collision the later table wins.
func Merge[H any](tables ...Table[H]) Table[H] {
	size := 0
	for _, t := range tables {
		size += len(t.entries)
	}

	entries := make(map[string]H, size)
	for _, t := range tables {
		maps.Copy(entries, t.entries)
	}
	return Table[H]{entries: entries}
}

// Compose runs a build callback with Build and merges its result.
func Compose[H any](build func(on Builder[H]) []Table[H]) Table[H] {
	if build == nil {
		return Table[H]{}
	}
	return Merge(build(Build[H])...)
}

// Lookup returns the handler registered for typ.
func (t Table[H]) Lookup(typ string) (H, bool) {
	h, ok := t.entries[typ]
	return h, ok
}

// Has reports whether typ has a handler.
func (t Table[H]) Has(typ string) bool {
	_, ok := t.entries[typ]
	return ok
}

// Len returns the number of registered types.
func (t Table[H]) Len() int {
	return len(t.entries)
}

// Types returns the registered types in sorted order.
func (t Table[H]) Types() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

func (t Table[H]) String() string {
	return fmt.Sprintf("Table{%s}", strings.Join(t.Types(), ", "))
}

// Exhaustive checks that every creator's type is handled by t.
// The returned error wraps ErrUnhandled and names the missing types.
func Exhaustive[H any](t Table[H], creators ...action.Typer) error {
	var missing []string
	for _, c := range creators {
		if !t.Has(c.Type()) {
			missing = append(missing, c.Type())
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnhandled, strings.Join(missing, ", "))
}
