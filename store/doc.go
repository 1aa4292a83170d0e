// Package store is a minimal state container for reducers and middleware
// built with this module.
//
// A Store holds one state value. Dispatch runs the action through the
// configured middleware chain, reduces it under a mutex and notifies
// subscribers with the new state. Middleware receive the store through the
// API interface so they can read state and dispatch follow-up actions.
//
//	s, err := store.New[int](ctx, counter, config.DefaultStoreConfig(),
//	    store.WithMiddleware(middleware.Logger[store.API[int]](logger)),
//	)
//	s.Dispatch(inc.Create())
//	s.State() // 1
package store
