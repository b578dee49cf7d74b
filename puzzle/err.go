package puzzle

import (
	"errors"

	"github.com/ezrec/tis/node"
	"github.com/ezrec/tis/translate"
)

var f = translate.From

var (
	ErrRandomRange = errors.New(f("random range is empty"))
	ErrValueRange  = errors.New(f("value outside of [%d, %d]", node.INT_MIN, node.INT_MAX))
	ErrLayout      = errors.New(f("layout must be positive"))
)

// ErrGlobal is a script global of the wrong type.
type ErrGlobal string

func (err ErrGlobal) Error() string {
	return f("global '%v' must be a string", string(err))
}

// ErrStreamDuplicate is a stream name defined more than once.
type ErrStreamDuplicate string

func (err ErrStreamDuplicate) Error() string {
	return f("stream '%v' is already defined", string(err))
}

// ErrStreamValue is a stream value that is not an integer in range.
type ErrStreamValue struct {
	Name  string
	Index int
	Err   error
}

func (err *ErrStreamValue) Error() string {
	return f("stream '%v' value %d: %v", err.Name, err.Index, err.Err)
}

func (err *ErrStreamValue) Unwrap() error {
	return err.Err
}

// ErrScript indicates the puzzle script that failed.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
