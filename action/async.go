package action

import "context"

// Task is an unstarted asynchronous computation carried as an async action's
// payload.
type Task func(ctx context.Context) (any, error)

// AsyncFunc builds the Task for one invocation of an async action.
type AsyncFunc func(args ...any) Task

// AsyncCreator bundles a base creator with the three lifecycle creators of
// one asynchronous operation.
//
// AsyncCreator does not implement Typer. Its base type is not a dispatch
// target; handle Pending, Fulfilled or Rejected instead.
type AsyncCreator struct {
	base      *Creator
	delimiter string

	Pending   *Creator
	Fulfilled *Creator
	Rejected  *Creator
}

// NewAsync returns an AsyncCreator for typ. The fn result becomes the payload
// of actions built by Create. WithMeta applies to the base action;
// WithDelimiter controls the lifecycle type strings.
func NewAsync(typ string, fn AsyncFunc, opts ...Option) *AsyncCreator {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	if o.delimiter == "" {
		o.delimiter = DefaultDelimiter
	}

	var payload PayloadFunc
	if fn != nil {
		payload = func(args ...any) any {
			return fn(args...)
		}
	}

	return &AsyncCreator{
		base:      New(typ, WithPayload(payload), WithMeta(o.meta)),
		delimiter: o.delimiter,
		Pending:   New(Derive(typ, PhasePending, o.delimiter)),
		Fulfilled: New(Derive(typ, PhaseFulfilled, o.delimiter), WithPayload(Identity)),
		Rejected:  New(Derive(typ, PhaseRejected, o.delimiter), WithPayload(Identity), withError()),
	}
}

// Create runs the async function and returns the base action with the
// resulting Task as payload. The Task is not started.
func (c *AsyncCreator) Create(args ...any) Action {
	return c.base.Create(args...)
}

// BaseType returns the undecorated type string. It exists for infrastructure
// that intercepts base actions; handlers should key on the lifecycle creators.
func (c *AsyncCreator) BaseType() string {
	return c.base.typ
}

// Delimiter returns the separator used for the lifecycle types.
func (c *AsyncCreator) Delimiter() string {
	return c.delimiter
}

// Phases returns the pending, fulfilled and rejected creators in order.
func (c *AsyncCreator) Phases() []*Creator {
	return []*Creator{c.Pending, c.Fulfilled, c.Rejected}
}

// Phase returns the creator for p, or nil for an unknown phase.
func (c *AsyncCreator) Phase(p Phase) *Creator {
	switch p {
	case PhasePending:
		return c.Pending
	case PhaseFulfilled:
		return c.Fulfilled
	case PhaseRejected:
		return c.Rejected
	default:
		return nil
	}
}

// Settle maps a Task outcome to the matching lifecycle action.
func (c *AsyncCreator) Settle(result any, err error) Action {
	if err != nil {
		return c.Rejected.Create(err)
	}
	return c.Fulfilled.Create(result)
}

// String always panics with a *BareAsyncError.
func (c *AsyncCreator) String() string {
	panic(&BareAsyncError{Type: c.base.typ})
}

// TaskOf extracts the Task payload of a base async action.
func TaskOf(a Action) (Task, bool) {
	return PayloadOf[Task](a)
}

// TypeOf coerces v to its action type string. It is the checked form of the
// string coercion: an *AsyncCreator yields a *BareAsyncError and values that
// are neither Typer nor string yield ErrNotTyped.
func TypeOf(v any) (string, error) {
	switch t := v.(type) {
	case *AsyncCreator:
		return "", &BareAsyncError{Type: t.base.typ}
	case Typer:
		return t.Type(), nil
	case string:
		return t, nil
	default:
		return "", ErrNotTyped
	}
}
