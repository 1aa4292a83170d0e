package action

import (
	"errors"
	"fmt"
)

// Sentinel errors for action construction and coercion.
var (
	ErrEmptyType = errors.New("action: empty type")
	ErrBareAsync = errors.New("action: bare async type")
	ErrNotTyped  = errors.New("action: value has no action type")
)

// BareAsyncError reports an attempt to use an async creator's base type as a
// dispatch target.
type BareAsyncError struct {
	Type string
}

func (e *BareAsyncError) Error() string {
	return fmt.Sprintf("Async action %s must be handled with pending, fulfilled or rejected", e.Type)
}

func (e *BareAsyncError) Is(target error) bool {
	return target == ErrBareAsync
}

// RejectionError holds a rejected payload that was not itself an error.
type RejectionError struct {
	Value any
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("rejected: %v", e.Value)
}

// AsError returns v as an error: errors pass through, nil stays nil, and
// any other value is wrapped in a *RejectionError.
func AsError(v any) error {
	switch e := v.(type) {
	case nil:
		return nil
	case error:
		return e
	default:
		return &RejectionError{Value: v}
	}
}
