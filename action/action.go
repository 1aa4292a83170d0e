package action

import "fmt"

// Action is a tagged message describing an intended state change.
//
// Payload and Meta are structurally optional: the presence flags record whether
// the producing creator supplied them, independent of their value.
type Action struct {
	Type    string
	Payload any
	Meta    any
	Error   bool

	hasPayload bool
	hasMeta    bool
}

// Of builds a bare action with the given type and no payload or metadata.
func Of(typ string) Action {
	return Action{Type: typ}
}

// WithPayload returns a copy of the action carrying payload.
func (a Action) WithPayload(payload any) Action {
	a.Payload = payload
	a.hasPayload = true
	return a
}

// WithMeta returns a copy of the action carrying meta.
func (a Action) WithMeta(meta any) Action {
	a.Meta = meta
	a.hasMeta = true
	return a
}

// HasPayload reports whether the action carries a payload field: one set by a
// creator or WithPayload, or a non-nil Payload on a literal.
func (a Action) HasPayload() bool {
	return a.hasPayload || a.Payload != nil
}

// HasMeta reports whether the action carries a meta field.
func (a Action) HasMeta() bool {
	return a.hasMeta || a.Meta != nil
}

func (a Action) String() string {
	return fmt.Sprintf(
		"Action{Type: %s, Payload: %t, Meta: %t, Error: %t}",
		a.Type,
		a.HasPayload(),
		a.HasMeta(),
		a.Error,
	)
}

// PayloadOf returns the payload as T. The boolean is false when the payload
// is nil or not a T. Presence is not consulted, so literal actions such as
// Action{Type: "GET_FULFILLED", Payload: 42} read the same as created ones.
func PayloadOf[T any](a Action) (T, bool) {
	v, ok := a.Payload.(T)
	return v, ok
}

// MetaOf returns the metadata as T.
func MetaOf[T any](a Action) (T, bool) {
	v, ok := a.Meta.(T)
	return v, ok
}
