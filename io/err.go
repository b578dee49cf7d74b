package io

import (
	"errors"

	"github.com/ezrec/tis/translate"
)

var f = translate.From

var (
	// Boundary node errors
	ErrUnlinked = errors.New(f("boundary node has no neighbor"))
)

// ErrTapeValue is an unparsable value in a tape stream.
type ErrTapeValue struct {
	Index int
	Word  string
}

func (err ErrTapeValue) Error() string {
	return f("tape value %d '%v' is not an integer", err.Index, err.Word)
}
