package middleware

import "errors"

// ErrTaskPanic wraps the value recovered from a panicking Task.
var ErrTaskPanic = errors.New("middleware: task panic")
