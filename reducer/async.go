package reducer

import (
	"time"

	"github.com/tailored-agentic-units/actions/action"
	"github.com/tailored-agentic-units/actions/table"
)

// Status is the lifecycle position of an AsyncState.
type Status int

const (
	StatusUnstarted Status = iota
	StatusPending
	StatusFulfilled
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusUnstarted:
		return "unstarted"
	case StatusPending:
		return "pending"
	case StatusFulfilled:
		return "fulfilled"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// AsyncState is the last known state of one async action family. The zero
// value is the unstarted state.
//
// Overlapping calls are not correlated: whichever call settles last decides
// Data and Error.
type AsyncState[P any] struct {
	Status    Status
	Pending   bool
	Data      P
	Error     error
	UpdatedAt time.Time
}

// Settled reports whether the last call has finished.
func (s AsyncState[P]) Settled() bool {
	return s.Status == StatusFulfilled || s.Status == StatusRejected
}

// AsyncOption configures Async.
type AsyncOption func(*asyncConfig)

type asyncConfig struct {
	clock func() time.Time
}

// WithClock sets the time source used to stamp UpdatedAt on fulfilment.
func WithClock(clock func() time.Time) AsyncOption {
	return func(c *asyncConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// Async returns the canonical reducer for ac, starting from the unstarted
// state.
func Async[P any](ac *action.AsyncCreator, opts ...AsyncOption) *Reducer[AsyncState[P]] {
	return AsyncFrom(ac, AsyncState[P]{}, opts...)
}

// AsyncFrom is Async with a caller-supplied default state.
//
// Transitions:
//   - pending:   Pending=true
//   - fulfilled: Pending=false, Error=nil, Data=payload, UpdatedAt=now
//   - rejected:  Pending=false, Error=payload
//
// A fulfilled payload that is not a P leaves Data at its zero value. No
// numeric conversion happens: actions decoded from JSON carry float64 numbers,
// so pair them with AsyncState[float64] or convert before dispatch. A
// rejected payload that is not an error is wrapped in *action.RejectionError.
func AsyncFrom[P any](ac *action.AsyncCreator, initial AsyncState[P], opts ...AsyncOption) *Reducer[AsyncState[P]] {
	cfg := asyncConfig{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(initial, func(on table.Builder[Handler[AsyncState[P]]]) []table.Table[Handler[AsyncState[P]]] {
		return []table.Table[Handler[AsyncState[P]]]{
			on(func(state AsyncState[P], _ action.Action) AsyncState[P] {
				state.Status = StatusPending
				state.Pending = true
				return state
			}, ac.Pending),
			on(func(state AsyncState[P], a action.Action) AsyncState[P] {
				data, _ := a.Payload.(P)
				state.Status = StatusFulfilled
				state.Pending = false
				state.Error = nil
				state.Data = data
				state.UpdatedAt = cfg.clock()
				return state
			}, ac.Fulfilled),
			on(func(state AsyncState[P], a action.Action) AsyncState[P] {
				state.Status = StatusRejected
				state.Pending = false
				state.Error = action.AsError(a.Payload)
				return state
			}, ac.Rejected),
		}
	})
}
