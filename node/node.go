package node

import (
	"fmt"
	"log"
	"strings"
)

// Node is the simulation context for a single programmable grid cell.
type Node struct {
	Port

	Verbose bool // Set to enable verbose logging.

	Id      int      // Grid index.
	Program *Program // Finalized program.

	Ip  int // Program counter.
	Acc int // Accumulator.
	Bak int // Backup register.

	Halted bool // Set once HALT has executed.
	Cycles int  // Ticks counter.
}

var _ Unit = (*Node)(nil)

// NewNode creates a node with an empty program.
func NewNode(id int) (node *Node) {
	node = &Node{
		Id:      id,
		Program: &Program{final: true},
	}

	return
}

// Load installs a program, and resets the node.
func (node *Node) Load(prog *Program) {
	node.Program = prog
	node.Reset()
}

// Reset the node state. Links are kept.
func (node *Node) Reset() {
	node.ResetPort()
	node.Ip = 0
	node.Acc = 0
	node.Bak = 0
	node.Halted = false
	node.Cycles = 0
}

// Idle returns true if the node has no instructions.
func (node *Node) Idle() bool {
	return node.Program == nil || node.Program.Len() == 0
}

// limit is the number of addressable instructions.
func (node *Node) limit() int {
	return min(node.Program.Len(), NODE_MAX_INSTRUCTIONS)
}

// advance moves to the next instruction, wrapping to the start.
func (node *Node) advance() {
	node.Ip++
	if node.Ip >= node.limit() {
		node.Ip = 0
	}
}

// Fetch returns the instruction at the program counter.
func (node *Node) Fetch() (in Instruction, ok bool) {
	if node.Idle() || node.Ip < 0 || node.Ip >= node.Program.Len() {
		return
	}

	return node.Program.Instructions[node.Ip], true
}

// Take completes a write that a neighbor reading in direction dir has
// reached, and moves past the writing instruction.
func (node *Node) Take(dir Direction) (value int, ok bool) {
	value, ok = node.Yield(dir)
	if ok {
		if node.Verbose {
			log.Printf("node %d: %v taken by %v", node.Id, value, dir.Opposite())
		}
		node.advance()
	}

	return
}

// BeforeTick retries a blocked read against the neighbor.
func (node *Node) BeforeTick(fab Fabric) {
	if node.Halted {
		return
	}

	if node.Retry(fab) && node.Verbose {
		log.Printf("node %d: read from %v ready", node.Id, node.reading)
	}
}

// source returns the value of an operand, blocking on ports.
func (node *Node) source(opr Operand) (value int, ok bool) {
	switch opr.Kind {
	case OPERAND_IMMEDIATE:
		return opr.Value, true
	case OPERAND_PORT:
		dir, _ := opr.Port()
		return node.Read(dir)
	}

	switch opr.Register {
	case REG_ACC:
		value = node.Acc
	case REG_BAK:
		value = node.Bak
	case REG_NIL:
		value = 0
	}

	return value, true
}

// store sets a register. Writes to NIL are discarded.
func (node *Node) store(reg Register, value int) {
	switch reg {
	case REG_ACC:
		node.Acc = value
	case REG_BAK:
		node.Bak = value
	}
}

// Tick executes a single node cycle.
func (node *Node) Tick() (err error) {
	node.Cycles++

	if node.Halted || node.Idle() || node.Blocked {
		return
	}

	if !node.Program.Final() {
		err = ErrProgramFinal
		return
	}

	in, _ := node.Fetch()

	if node.Verbose {
		log.Printf("node %d: %02d: %v", node.Id, node.Ip, in)
	}

	jumped := false

	switch in.Op {
	case OP_NOP:
		// pass
	case OP_MOV:
		value, ok := node.source(in.Src)
		if !ok {
			return
		}
		if dir, ok := in.Dst.Port(); ok {
			node.Write(dir, value)
			return
		}
		node.store(in.Dst.Register, value)
	case OP_ADD:
		value, ok := node.source(in.Src)
		if !ok {
			return
		}
		node.Acc = clamp(node.Acc + value)
	case OP_SUB:
		value, ok := node.source(in.Src)
		if !ok {
			return
		}
		node.Acc = clamp(node.Acc - value)
	case OP_NEG:
		node.Acc = -node.Acc
	case OP_SAV:
		node.Bak = node.Acc
	case OP_SWP:
		node.Acc, node.Bak = node.Bak, node.Acc
	case OP_JMP:
		jumped = node.jump(in.Target, true)
	case OP_JEZ:
		jumped = node.jump(in.Target, node.Acc == 0)
	case OP_JNZ:
		jumped = node.jump(in.Target, node.Acc != 0)
	case OP_JGZ:
		jumped = node.jump(in.Target, node.Acc > 0)
	case OP_JLZ:
		jumped = node.jump(in.Target, node.Acc < 0)
	case OP_JRO:
		// Absolute, despite the name.
		jumped = node.jump(min(max(node.Acc, 0), node.Program.Len()-1), true)
	case OP_HALT:
		node.Halted = true
		if node.Verbose {
			log.Printf("node %d: halted", node.Id)
		}
	default:
		err = ErrOpcode(in)
		return
	}

	node.State = STATE_RUNNING

	if !jumped {
		node.advance()
	}

	return
}

// jump sets the program counter if the condition holds.
func (node *Node) jump(target int, cond bool) bool {
	if cond {
		node.Ip = target
	}
	return cond
}

// LineNo returns the source line of the instruction at the program counter.
func (node *Node) LineNo() int {
	in, ok := node.Fetch()
	if !ok {
		return 0
	}
	return in.LineNo
}

// String returns the current node state as a string.
func (node *Node) String() (text string) {
	var sb strings.Builder

	in, ok := node.Fetch()
	instr := "-"
	if ok {
		instr = in.String()
	}

	fmt.Fprintf(&sb, "% 7s: %v\n", "node", node.Id)
	fmt.Fprintf(&sb, "% 7s: %02d %v\n", "ip", node.Ip, instr)
	fmt.Fprintf(&sb, "% 7s: %d\n", "acc", node.Acc)
	fmt.Fprintf(&sb, "% 7s: %d\n", "bak", node.Bak)
	fmt.Fprintf(&sb, "% 7s: %v\n", "state", node.State)
	for dir := range Direction(DIRECTIONS) {
		strval := "-"
		if value, ok := node.Slot[dir].Peek(); ok {
			strval = fmt.Sprintf("%d", value)
		}
		fmt.Fprintf(&sb, "% 7s: %v\n", strings.ToLower(dir.String()), strval)
	}
	if node.Halted {
		fmt.Fprintf(&sb, "% 7s: true\n", "halted")
	}

	return sb.String()
}
