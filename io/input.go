package io

import (
	"log"

	"github.com/ezrec/tis/node"
)

// Input injects a finite sequence of values into the grid, through
// its single neighbor.
type Input struct {
	node.Port

	Verbose bool // Set to enable verbose logging.

	Name   string // Stream name.
	Column int    // Grid column it feeds.
	Values []int  // Values to send, in order.

	Cursor    int  // Index of the next value to send.
	Exhausted bool // Set once every value has been taken.
}

var _ node.Unit = (*Input)(nil)

// Reset rewinds the input to its first value. Links are kept.
func (in *Input) Reset() {
	in.ResetPort()
	in.Cursor = 0
	in.Exhausted = false
}

// Take completes the pending write, and moves to the next value.
func (in *Input) Take(dir node.Direction) (value int, ok bool) {
	value, ok = in.Yield(dir)
	if !ok {
		return
	}

	if in.Verbose {
		log.Printf("input %v: %v taken", in.Name, value)
	}

	in.Cursor++
	if in.Cursor >= len(in.Values) {
		in.Exhausted = true
	}

	return
}

// BeforeTick does nothing, as an input never reads.
func (in *Input) BeforeTick(fab node.Fabric) {
}

// Tick publishes the value at the cursor, unless a prior value is
// still waiting to be taken.
func (in *Input) Tick() (err error) {
	if in.Exhausted || in.Blocked {
		return
	}

	if in.Cursor >= len(in.Values) {
		in.Exhausted = true
		return
	}

	dir, _, ok := in.Only()
	if !ok {
		err = ErrUnlinked
		return
	}

	in.Write(dir, in.Values[in.Cursor])

	return
}
