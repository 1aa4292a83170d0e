// Package reducer composes pure state reducers from dispatch tables.
//
// A Reducer is built once from a default state and a list of tables. Reduce
// routes an action to the handler registered for its type and returns the
// handler's result; unmatched actions return the input state unchanged.
//
//	inc := action.New("INC")
//	reset := action.New("RESET", action.WithPayload(action.Identity))
//
//	counter := reducer.New(0, func(on table.Builder[reducer.Handler[int]]) []table.Table[reducer.Handler[int]] {
//	    return []table.Table[reducer.Handler[int]]{
//	        on(func(s int, _ action.Action) int { return s + 1 }, inc),
//	        on(func(_ int, a action.Action) int { n, _ := action.PayloadOf[int](a); return n }, reset),
//	    }
//	})
//
//	counter.Start(inc.Create())        // 1
//	counter.Reduce(3, reset.Create(0)) // 0
//
// Async builds the canonical pending / fulfilled / rejected reducer for an
// action.AsyncCreator.
package reducer

import (
	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/table"
)

// Handler computes the next state for one matched action. Handlers must not
// mutate the input state.
type Handler[S any] func(state S, a action.Action) S

// Func is the plain function form of a reducer.
type Func[S any] func(state S, a action.Action) S

// Reducer routes actions to handlers through an immutable dispatch table.
type Reducer[S any] struct {
	initial  S
	handlers table.Table[Handler[S]]
}

// New composes a Reducer. build receives the table builder and returns the
// tables to merge; later tables win on type collisions. The merge happens
// once, here.
func New[S any](initial S, build func(on table.Builder[Handler[S]]) []table.Table[Handler[S]]) *Reducer[S] {
	return &Reducer[S]{
		initial:  initial,
		handlers: table.Compose(build),
	}
}

// FromTable wraps an already merged table.
func FromTable[S any](initial S, handlers table.Table[Handler[S]]) *Reducer[S] {
	return &Reducer[S]{
		initial:  initial,
		handlers: handlers,
	}
}

// Reduce returns the next state. Actions without a handler return state as
// given.
func (r *Reducer[S]) Reduce(state S, a action.Action) S {
	h, ok := r.handlers.Lookup(a.Type)
	if !ok {
		return state
	}
	return h(state, a)
}

// IsZero reports whether r is nil.
func (r *Reducer[S]) IsZero() bool {
	return r == nil
}

// Initial returns the default state.
func (r *Reducer[S]) Initial() S {
	return r.initial
}

// Start reduces a from the default state.
func (r *Reducer[S]) Start(a action.Action) S {
	return r.Reduce(r.initial, a)
}

// Handles reports whether typ is routed to a handler.
func (r *Reducer[S]) Handles(typ string) bool {
	return r.handlers.Has(typ)
}

// Table returns the reducer's dispatch table.
func (r *Reducer[S]) Table() table.Table[Handler[S]] {
	return r.handlers
}

// Func returns Reduce as a plain function.
func (r *Reducer[S]) Func() Func[S] {
	return r.Reduce
}
