package table

import "errors"

// ErrUnhandled is returned by Exhaustive when a table lacks a handler for a
// required type.
var ErrUnhandled = errors.New("table: unhandled action type")
