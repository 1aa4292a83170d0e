// Package middleware composes store interceptors from dispatch tables.
//
// A Middleware has the curried shape store → next → action. Matched actions
// are handed to their handler together with next; the handler decides whether
// and how to forward. Unmatched actions go straight to next.
//
//	audit := middleware.New(func(on table.Builder[middleware.Handler[S]]) []table.Table[middleware.Handler[S]] {
//	    return []table.Table[middleware.Handler[S]]{
//	        on(func(s S, next middleware.Dispatch, a action.Action) any {
//	            log.Println("deleting", a.Payload)
//	            return next(a)
//	        }, deleteItem),
//	    }
//	})
//
// Chain wraps a final dispatch function in several middleware, the first one
// listed running first.
package middleware

import (
	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/table"
)

// Dispatch delivers an action and returns whatever the chain produces.
type Dispatch func(a action.Action) any

// Handler intercepts one matched action.
type Handler[St any] func(store St, next Dispatch, a action.Action) any

// Middleware binds to a store, then wraps the next dispatch in the chain.
type Middleware[St any] func(store St) func(next Dispatch) Dispatch

// Dispatcher is the store surface middleware may dispatch back into.
type Dispatcher interface {
	Dispatch(a action.Action) any
}

// New composes a Middleware from the tables returned by build. Tables merge
// once, here; later tables win on type collisions.
func New[St any](build func(on table.Builder[Handler[St]]) []table.Table[Handler[St]]) Middleware[St] {
	return FromTable(table.Compose(build))
}

// FromTable wraps an already merged table.
func FromTable[St any](handlers table.Table[Handler[St]]) Middleware[St] {
	return func(store St) func(Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) any {
				if h, ok := handlers.Lookup(a.Type); ok {
					return h(store, next, a)
				}
				return next(a)
			}
		}
	}
}

// Chain binds each middleware to store and wraps final. The first middleware
// sees each action first.
func Chain[St any](store St, final Dispatch, middleware ...Middleware[St]) Dispatch {
	dispatch := final
	for i := len(middleware) - 1; i >= 0; i-- {
		if middleware[i] == nil {
			continue
		}
		dispatch = middleware[i](store)(dispatch)
	}
	return dispatch
}
