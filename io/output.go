package io

import (
	"log"
	"slices"

	"github.com/ezrec/tis/node"
)

// Output collects values from the grid, through its single neighbor.
type Output struct {
	node.Port

	Verbose bool // Set to enable verbose logging.

	Name     string // Stream name.
	Column   int    // Grid column it drains.
	Expected []int  // Values expected, in order.

	Values []int // Values received, in order.
}

var _ node.Unit = (*Output)(nil)

// Reset discards all received values. Links are kept.
func (out *Output) Reset() {
	out.ResetPort()
	out.Values = nil
}

// Take never succeeds, as an output never writes.
func (out *Output) Take(dir node.Direction) (value int, ok bool) {
	return
}

// BeforeTick retries the blocked read against the neighbor.
func (out *Output) BeforeTick(fab node.Fabric) {
	out.Retry(fab)
}

// Tick receives a value from the neighbor, or blocks until one arrives.
func (out *Output) Tick() (err error) {
	if out.Blocked {
		return
	}

	dir, _, ok := out.Only()
	if !ok {
		err = ErrUnlinked
		return
	}

	value, ok := out.Read(dir)
	if !ok {
		return
	}

	if out.Verbose {
		log.Printf("output %v: %v received", out.Name, value)
	}

	out.Values = append(out.Values, value)

	return
}

// Complete returns true once as many values as expected were received.
func (out *Output) Complete() bool {
	return len(out.Values) >= len(out.Expected)
}

// Mismatch returns the index of the first received value that differs
// from the expected value, or -1 if they all match so far.
func (out *Output) Mismatch() int {
	for n, value := range out.Values {
		if n >= len(out.Expected) || value != out.Expected[n] {
			return n
		}
	}

	return -1
}

// Passed returns true if exactly the expected values were received.
func (out *Output) Passed() bool {
	return slices.Equal(out.Values, out.Expected)
}
