package action

// PayloadFunc derives an action payload from creator call arguments.
type PayloadFunc func(args ...any) any

// MetaFunc derives action metadata from creator call arguments. It never sees
// the payload.
type MetaFunc func(args ...any) any

// Typer is implemented by anything with a canonical action type string.
// Dispatch tables are keyed through this interface.
type Typer interface {
	Type() string
}

// Option configures a Creator or AsyncCreator.
type Option func(*options)

type options struct {
	payload   PayloadFunc
	meta      MetaFunc
	delimiter string
	isError   bool
}

// WithPayload sets the payload function. Creators without one produce actions
// with no payload field.
func WithPayload(fn PayloadFunc) Option {
	return func(o *options) {
		o.payload = fn
	}
}

// WithMeta sets the metadata function.
func WithMeta(fn MetaFunc) Option {
	return func(o *options) {
		o.meta = fn
	}
}

// WithDelimiter sets the separator used to derive lifecycle type strings.
// Only NewAsync reads it.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

func withError() Option {
	return func(o *options) {
		o.isError = true
	}
}

// Identity forwards its first argument unchanged, or nil when called without
// arguments.
func Identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Creator produces actions of one fixed type.
type Creator struct {
	typ     string
	payload PayloadFunc
	meta    MetaFunc
	isError bool
}

var _ Typer = (*Creator)(nil)

// New returns a Creator for typ. It panics if typ is empty.
func New(typ string, opts ...Option) *Creator {
	if typ == "" {
		panic(ErrEmptyType)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Creator{
		typ:     typ,
		payload: o.payload,
		meta:    o.meta,
		isError: o.isError,
	}
}

// Create builds an action. The payload and metadata functions each receive
// args as given.
func (c *Creator) Create(args ...any) Action {
	a := Action{
		Type:  c.typ,
		Error: c.isError,
	}
	if c.payload != nil {
		a = a.WithPayload(c.payload(args...))
	}
	if c.meta != nil {
		a = a.WithMeta(c.meta(args...))
	}
	return a
}

// Type returns the creator's action type.
func (c *Creator) Type() string {
	return c.typ
}

func (c *Creator) String() string {
	return c.typ
}

// Match reports whether a was produced for this creator's type.
func (c *Creator) Match(a Action) bool {
	return a.Type == c.typ
}
