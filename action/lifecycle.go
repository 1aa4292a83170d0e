package action

// DefaultDelimiter separates a base type from its lifecycle phase.
const DefaultDelimiter = "_"

// Phase names one stage of an asynchronous operation.
type Phase string

const (
	PhasePending   Phase = "PENDING"
	PhaseFulfilled Phase = "FULFILLED"
	PhaseRejected  Phase = "REJECTED"
)

// Phases lists the lifecycle phases in the order they occur.
var Phases = []Phase{PhasePending, PhaseFulfilled, PhaseRejected}

// Derive builds <typ><delimiter><phase>. An empty delimiter means
// DefaultDelimiter.
func Derive(typ string, phase Phase, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return typ + delimiter + string(phase)
}

// OnPending returns the pending type for typ. At most one delimiter is read.
func OnPending(typ string, delimiter ...string) string {
	return Derive(typ, PhasePending, firstOr(delimiter))
}

// OnFulfilled returns the fulfilled type for typ.
func OnFulfilled(typ string, delimiter ...string) string {
	return Derive(typ, PhaseFulfilled, firstOr(delimiter))
}

// OnRejected returns the rejected type for typ.
func OnRejected(typ string, delimiter ...string) string {
	return Derive(typ, PhaseRejected, firstOr(delimiter))
}

func firstOr(delimiter []string) string {
	if len(delimiter) == 0 {
		return DefaultDelimiter
	}
	return delimiter[0]
}
