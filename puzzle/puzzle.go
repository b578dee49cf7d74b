// Package puzzle loads puzzle definitions from Starlark scripts.
//
// A puzzle script may set the globals 'name' and 'comment', and calls
// these builtins:
//
//	layout(rows, cols)             grid size
//	input(name, column, values)    input stream, fed into a top row column
//	output(name, column, values)   expected output stream, from a bottom row column
//	random(lo, hi)                 random integer in [lo, hi], from a seeded source
//
// For example:
//
//	name = "DOUBLER"
//	values = [random(-99, 99) for _ in range(39)]
//	input("IN.A", 1, values)
//	output("OUT.A", 2, [v * 2 for v in values])
package puzzle

import (
	"log"
	"math/rand"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tis/grid"
	"github.com/ezrec/tis/node"
)

const (
	DEFAULT_SEED = 1 // Default random source seed.
)

// Puzzle is a grid layout, with its input and expected output streams.
type Puzzle struct {
	Name          string
	CommentMarker string

	Rows    int
	Columns int

	Inputs  []grid.Stream
	Outputs []grid.Stream
}

// Config returns the grid configuration of the puzzle.
func (p *Puzzle) Config() grid.Config {
	return grid.Config{
		Rows:          p.Rows,
		Columns:       p.Columns,
		CommentMarker: p.CommentMarker,
		Inputs:        p.Inputs,
		Outputs:       p.Outputs,
	}
}

// Loader evaluates puzzle scripts.
type Loader struct {
	Verbose bool  // If set, logs the script print() output.
	Seed    int64 // Random source seed, DEFAULT_SEED if zero.

	puzzle *Puzzle
	names  map[string]bool
	random *rand.Rand
}

// Load evaluates a puzzle script with the default loader.
// If src is nil, the script is read from filename.
func Load(filename string, src any) (p *Puzzle, err error) {
	ld := &Loader{}
	return ld.Load(filename, src)
}

// Load evaluates a puzzle script. If src is nil, the script is read
// from filename.
func (ld *Loader) Load(filename string, src any) (p *Puzzle, err error) {
	seed := ld.Seed
	if seed == 0 {
		seed = DEFAULT_SEED
	}

	ld.puzzle = &Puzzle{
		Name:    strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		Rows:    grid.DEFAULT_ROWS,
		Columns: grid.DEFAULT_COLUMNS,
	}
	ld.names = map[string]bool{}
	ld.random = rand.New(rand.NewSource(seed))

	defer func() {
		if err == nil {
			p = ld.puzzle
		} else {
			err = &ErrScript{Filename: filename, Err: err}
		}
		ld.puzzle = nil
		ld.names = nil
		ld.random = nil
	}()

	thread := &starlark.Thread{
		Name: "puzzle",
		Print: func(_ *starlark.Thread, msg string) {
			if ld.Verbose {
				log.Printf("puzzle: %v", msg)
			}
		},
	}
	opts := &syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
		GlobalReassign:  true,
	}
	predeclared := starlark.StringDict{
		"layout": starlark.NewBuiltin("layout", ld.layout),
		"input":  starlark.NewBuiltin("input", ld.input),
		"output": starlark.NewBuiltin("output", ld.output),
		"random": starlark.NewBuiltin("random", ld.randomInt),
	}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	err = globalString(globals, "name", &ld.puzzle.Name)
	if err != nil {
		return
	}

	err = globalString(globals, "comment", &ld.puzzle.CommentMarker)
	if err != nil {
		return
	}

	return
}

// globalString sets value from a string global, if present.
func globalString(globals starlark.StringDict, key string, value *string) (err error) {
	global, ok := globals[key]
	if !ok {
		return
	}

	str, ok := starlark.AsString(global)
	if !ok {
		err = ErrGlobal(key)
		return
	}

	*value = str

	return
}

// layout(rows, cols)
func (ld *Loader) layout(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var rows, cols int
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "rows", &rows, "cols", &cols)
	if err != nil {
		return
	}

	if rows <= 0 || cols <= 0 {
		err = ErrLayout
		return
	}

	ld.puzzle.Rows = rows
	ld.puzzle.Columns = cols

	rc = starlark.None

	return
}

// stream unpacks the arguments of input() and output().
func (ld *Loader) stream(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (stream grid.Stream, err error) {
	var values starlark.Iterable
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &stream.Name, "column", &stream.Column, "values", &values)
	if err != nil {
		return
	}

	if ld.names[stream.Name] {
		err = ErrStreamDuplicate(stream.Name)
		return
	}
	ld.names[stream.Name] = true

	iter := values.Iterate()
	defer iter.Done()

	var value starlark.Value
	for index := 0; iter.Next(&value); index++ {
		var n int
		n, err = starlark.AsInt32(value)
		if err != nil {
			err = &ErrStreamValue{Name: stream.Name, Index: index, Err: err}
			return
		}
		if n < node.INT_MIN || n > node.INT_MAX {
			err = &ErrStreamValue{Name: stream.Name, Index: index, Err: ErrValueRange}
			return
		}
		stream.Values = append(stream.Values, n)
	}

	return
}

// input(name, column, values)
func (ld *Loader) input(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	stream, err := ld.stream(fn, args, kwargs)
	if err != nil {
		return
	}

	ld.puzzle.Inputs = append(ld.puzzle.Inputs, stream)

	rc = starlark.None

	return
}

// output(name, column, values)
func (ld *Loader) output(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	stream, err := ld.stream(fn, args, kwargs)
	if err != nil {
		return
	}

	ld.puzzle.Outputs = append(ld.puzzle.Outputs, stream)

	rc = starlark.None

	return
}

// random(lo, hi)
func (ld *Loader) randomInt(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var lo, hi int
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "lo", &lo, "hi", &hi)
	if err != nil {
		return
	}

	if hi < lo {
		err = ErrRandomRange
		return
	}

	rc = starlark.MakeInt(lo + ld.random.Intn(hi-lo+1))

	return
}
