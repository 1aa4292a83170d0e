package observability

import "context"

// MultiObserver fans store events out to several observers, for example a
// SlogObserver for diagnostics next to a SpanObserver for traces. Observers
// are called in the order given.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver skips nil observers, so optional sinks can be passed
// unconditionally.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// Len returns the number of wrapped observers.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
