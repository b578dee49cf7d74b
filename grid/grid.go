// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package grid

import (
	"iter"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/tis/internal"
	"github.com/ezrec/tis/io"
	"github.com/ezrec/tis/node"
)

const (
	DEFAULT_ROWS    = 3 // Default grid rows.
	DEFAULT_COLUMNS = 4 // Default grid columns.
)

// Stream is a named boundary value sequence, attached to a grid column.
type Stream struct {
	Name   string
	Column int
	Values []int
}

// Config describes the grid layout, and its boundary streams.
type Config struct {
	Rows          int    // Grid rows, DEFAULT_ROWS if zero.
	Columns       int    // Grid columns, DEFAULT_COLUMNS if zero.
	CommentMarker string // Program comment marker, node.DEFAULT_COMMENT if empty.

	Inputs  []Stream // Input streams, fed into the top row.
	Outputs []Stream // Output streams, drained from the bottom row.
}

// Result of a grid run.
type Result struct {
	Ticks int  // Ticks since the last reset.
	Done  bool // Set if the grid reached its termination condition.
}

// Verdict is the comparison of an output stream against its expected values.
type Verdict struct {
	Name     string
	Expected []int
	Values   []int
	Mismatch int // Index of the first mismatch, -1 if none.
	Passed   bool
}

// Stats are the grid solution statistics.
type Stats struct {
	Ticks        int // Ticks since the last reset.
	Nodes        int // Nodes with a program.
	Instructions int // Total instructions over all nodes, labels excluded.
}

// Grid state. Execution nodes, plus boundary inputs and outputs.
//
// All units share a single index space: grid nodes first, in row-major
// order, then inputs, then outputs.
type Grid struct {
	Verbose bool // If set, enables verbose logging.

	Rows          int
	Columns       int
	CommentMarker string

	Nodes   []*node.Node
	Inputs  []*io.Input
	Outputs []*io.Output

	Ticks int // Ticks since the last reset.

	units []node.Unit
}

var _ node.Fabric = (*Grid)(nil)

// NewGrid creates a new grid, with all adjacent nodes connected and the
// boundary streams attached.
func NewGrid(config Config) (g *Grid, err error) {
	rows := config.Rows
	if rows == 0 {
		rows = DEFAULT_ROWS
	}
	cols := config.Columns
	if cols == 0 {
		cols = DEFAULT_COLUMNS
	}
	if rows < 0 || cols < 0 {
		err = ErrLayout
		return
	}

	grid := &Grid{
		Rows:          rows,
		Columns:       cols,
		CommentMarker: config.CommentMarker,
	}

	for index := range rows * cols {
		nd := node.NewNode(index)
		grid.Nodes = append(grid.Nodes, nd)
		grid.units = append(grid.units, nd)
	}

	for row := range rows {
		for col := range cols {
			index := grid.Index(row, col)
			if col+1 < cols {
				_ = grid.Connect(index, index+1, node.DIR_RIGHT)
			}
			if row+1 < rows {
				_ = grid.Connect(index, index+cols, node.DIR_DOWN)
			}
		}
	}

	inUse := map[int]bool{}
	for _, stream := range config.Inputs {
		err = grid.checkColumn(stream, inUse)
		if err != nil {
			return
		}
		in := &io.Input{
			Name:   stream.Name,
			Column: stream.Column,
			Values: slices.Clone(stream.Values),
		}
		grid.Inputs = append(grid.Inputs, in)
		grid.units = append(grid.units, in)
		_ = grid.Connect(len(grid.units)-1, grid.Index(0, stream.Column), node.DIR_DOWN)
	}

	clear(inUse)
	for _, stream := range config.Outputs {
		err = grid.checkColumn(stream, inUse)
		if err != nil {
			return
		}
		out := &io.Output{
			Name:     stream.Name,
			Column:   stream.Column,
			Expected: slices.Clone(stream.Values),
		}
		grid.Outputs = append(grid.Outputs, out)
		grid.units = append(grid.units, out)
		_ = grid.Connect(grid.Index(rows-1, stream.Column), len(grid.units)-1, node.DIR_DOWN)
	}

	g = grid

	return
}

// checkColumn verifies a stream column is on the grid, and not already used.
func (g *Grid) checkColumn(stream Stream, inUse map[int]bool) (err error) {
	if stream.Column < 0 || stream.Column >= g.Columns {
		err = &ErrStream{Name: stream.Name, Err: ErrColumn}
		return
	}
	if inUse[stream.Column] {
		err = &ErrStream{Name: stream.Name, Err: ErrColumnInUse}
		return
	}
	inUse[stream.Column] = true

	return
}

// Index returns the unit index of the grid node at a row and column.
func (g *Grid) Index(row, col int) int {
	return row*g.Columns + col
}

// Connect links unit a to unit b in direction dir, and unit b back to
// unit a in the opposite direction. No other link changes.
func (g *Grid) Connect(a, b int, dir node.Direction) (err error) {
	if a < 0 || a >= len(g.units) || b < 0 || b >= len(g.units) {
		err = ErrNodeIndex
		return
	}

	g.units[a].Link().SetNeighbor(dir, b)
	g.units[b].Link().SetNeighbor(dir.Opposite(), a)

	return
}

// Peer returns the unit at an index.
func (g *Grid) Peer(index int) (peer node.Peer, ok bool) {
	if index < 0 || index >= len(g.units) {
		return
	}

	return g.units[index], true
}

// Unit returns the unit at an index.
func (g *Grid) Unit(index int) (unit node.Unit, ok bool) {
	if index < 0 || index >= len(g.units) {
		return
	}

	return g.units[index], true
}

// Load assembles the program text of each grid node, by node index.
// Nodes not present keep their current program. If any program fails to
// assemble, no node is changed. The programs must be finalized by
// FirstPass before the grid can tick.
func (g *Grid) Load(sources map[int]string) (err error) {
	asm := &node.Assembler{
		Verbose:       g.Verbose,
		CommentMarker: g.CommentMarker,
	}

	progs := make(map[int]*node.Program, len(sources))
	for _, index := range slices.Sorted(maps.Keys(sources)) {
		if index < 0 || index >= len(g.Nodes) {
			err = &ErrNode{Index: index, Err: ErrNodeIndex}
			return
		}

		var prog *node.Program
		prog, err = asm.Parse(strings.NewReader(sources[index]))
		if err != nil {
			err = &ErrNode{Index: index, Err: err}
			return
		}

		progs[index] = prog
	}

	for index, prog := range progs {
		g.Nodes[index].Load(prog)
	}

	return
}

// FirstPass finalizes the program of every grid node.
func (g *Grid) FirstPass() (err error) {
	for _, nd := range g.Nodes {
		err = nd.Program.Finalize()
		if err != nil {
			err = &ErrNode{Index: nd.Id, Err: err}
			return
		}
	}

	return
}

// Reset the grid state. Programs and links are kept.
func (g *Grid) Reset() {
	for _, nd := range g.Nodes {
		nd.Reset()
	}
	for _, in := range g.Inputs {
		in.Reset()
	}
	for _, out := range g.Outputs {
		out.Reset()
	}

	g.Ticks = 0
}

// sweep iterates over all units in tick order: inputs, grid nodes in
// row-major order, then outputs.
func (g *Grid) sweep() iter.Seq[node.Unit] {
	return internal.IterSeqConcat(
		internal.IterSeqAs[node.Unit](g.Inputs),
		internal.IterSeqAs[node.Unit](g.Nodes),
		internal.IterSeqAs[node.Unit](g.Outputs),
	)
}

// setVerbose propagates the grid verbosity to every unit.
func (g *Grid) setVerbose() {
	for _, nd := range g.Nodes {
		nd.Verbose = g.Verbose
	}
	for _, in := range g.Inputs {
		in.Verbose = g.Verbose
	}
	for _, out := range g.Outputs {
		out.Verbose = g.Verbose
	}
}

// Tick performs a single tick of the grid.
func (g *Grid) Tick() (done bool, err error) {
	g.setVerbose()

	g.Ticks++
	if g.Verbose {
		log.Printf("grid: tick %d", g.Ticks)
	}

	for unit := range g.sweep() {
		unit.BeforeTick(g)
	}

	for unit := range g.sweep() {
		err = unit.Tick()
		if err != nil {
			err = g.runtimeError(unit, err)
			return
		}
	}

	for unit := range g.sweep() {
		unit.AfterTick()
	}

	done = g.Done()

	return
}

// runtimeError wraps a unit error with its location.
func (g *Grid) runtimeError(unit node.Unit, err error) error {
	rerr := &ErrRuntime{Node: slices.Index(g.units, unit), Err: err}
	if nd, ok := unit.(*node.Node); ok {
		rerr.LineNo = nd.LineNo()
	}

	return rerr
}

// Done returns true once any grid node has halted, or every output has
// received as many values as expected. A grid with no outputs is only
// done once a node halts.
func (g *Grid) Done() bool {
	for _, nd := range g.Nodes {
		if nd.Halted {
			return true
		}
	}

	if len(g.Outputs) == 0 {
		return false
	}

	for _, out := range g.Outputs {
		if !out.Complete() {
			return false
		}
	}

	return true
}

// Run ticks the grid until it is done, or until limit ticks have been
// performed since the last reset. Hitting the limit is not an error.
// If limit is not positive, there is no limit, and a deadlocked grid
// never returns.
func (g *Grid) Run(limit int) (result Result, err error) {
	for limit <= 0 || g.Ticks < limit {
		var done bool
		done, err = g.Tick()
		if err != nil {
			break
		}
		if done {
			result.Done = true
			break
		}
	}

	result.Ticks = g.Ticks

	return
}

// Verify compares the values received by every output with its expected
// values. Returns true if they all match.
func (g *Grid) Verify() (verdicts []Verdict, passed bool) {
	passed = true

	for _, out := range g.Outputs {
		verdict := Verdict{
			Name:     out.Name,
			Expected: out.Expected,
			Values:   out.Values,
			Mismatch: out.Mismatch(),
			Passed:   out.Passed(),
		}
		verdicts = append(verdicts, verdict)
		passed = passed && verdict.Passed
	}

	return
}

// Stats returns the solution statistics.
func (g *Grid) Stats() (stats Stats) {
	stats.Ticks = g.Ticks

	for _, nd := range g.Nodes {
		if nd.Idle() {
			continue
		}
		stats.Nodes++
		for _, in := range nd.Program.Instructions {
			if in.Op != node.OP_LABEL {
				stats.Instructions++
			}
		}
	}

	return
}

// String returns the state of every grid node with a program.
func (g *Grid) String() string {
	var sb strings.Builder

	for _, nd := range g.Nodes {
		if nd.Idle() {
			continue
		}
		sb.WriteString(nd.String())
	}

	return sb.String()
}
