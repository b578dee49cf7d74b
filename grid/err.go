package grid

import (
	"errors"

	"github.com/ezrec/tis/translate"
)

var f = translate.From

var (
	// Layout errors
	ErrLayout      = errors.New(f("grid layout must have at least one row and column"))
	ErrColumn      = errors.New(f("stream column outside of grid"))
	ErrColumnInUse = errors.New(f("stream column already in use"))
	ErrNodeIndex   = errors.New(f("node index outside of grid"))
)

// ErrNode indicates the grid node whose program failed to assemble.
type ErrNode struct {
	Index int
	Err   error
}

func (err *ErrNode) Error() string {
	return f("node %d: %v", err.Index, err.Err)
}

func (err *ErrNode) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Node   int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("node %d: line %d %v", err.Node, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrStream indicates a boundary stream setup error.
type ErrStream struct {
	Name string
	Err  error
}

func (err *ErrStream) Error() string {
	return f("stream %v: %v", err.Name, err.Err)
}

func (err *ErrStream) Unwrap() error {
	return err.Err
}
