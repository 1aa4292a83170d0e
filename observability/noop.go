package observability

import "context"

// NoOpObserver discards events. store.New resolves it when the store
// configuration names no observer, so unobserved stores pay only the call.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}
