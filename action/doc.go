// Package action provides tagged action values and the creators that build them.
//
// An Action is an in-process message identified by its Type string. It may carry
// a Payload and a Meta value, and an Error flag set on rejected lifecycle actions.
//
// # Creators
//
// A Creator is bound to one fixed type string. Its payload and metadata functions
// are applied independently to the same call arguments:
//
//	add := action.New("todo.add",
//	    action.WithPayload(func(args ...any) any { return args[0] }),
//	    action.WithMeta(func(args ...any) any { return time.Now() }),
//	)
//	a := add.Create("buy milk")
//	// a.Type == "todo.add", a.Payload == "buy milk"
//
// A Creator built without a payload function produces actions with no payload
// at all (HasPayload reports false), which is different from a nil payload.
//
// # Async Lifecycle
//
// NewAsync expands one asynchronous operation into a pending / fulfilled /
// rejected triad. The derived type strings are fixed at construction:
//
//	fetch := action.NewAsync("user.fetch", func(args ...any) action.Task {
//	    id := args[0].(string)
//	    return func(ctx context.Context) (any, error) { return api.User(ctx, id) }
//	})
//	fetch.Pending.Type()   // "user.fetch_PENDING"
//	fetch.Fulfilled.Type() // "user.fetch_FULFILLED"
//	fetch.Rejected.Type()  // "user.fetch_REJECTED"
//
// Calling fetch.Create builds an action whose payload is the unstarted Task.
// Running it and dispatching the lifecycle actions belongs to the caller (see
// the middleware package for a ready-made runner).
//
// The async creator itself has no usable type string: String panics with a
// *BareAsyncError and the type does not implement Typer, so it cannot be
// registered in a dispatch table by mistake.
package action
