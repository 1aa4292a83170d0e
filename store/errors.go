package store

import "errors"

var ErrReducerNil = errors.New("store requires a reducer")
