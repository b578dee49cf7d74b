package node

import (
	"fmt"
	"strings"
)

// Architecture limits.
const (
	INT_MIN               = -999 // Smallest value a register may hold.
	INT_MAX               = 999  // Largest value a register may hold.
	NODE_MAX_INSTRUCTIONS = 15   // Instruction capacity of a single node.
)

// Opcode is an instruction operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0)  // NOP
	OP_MOV   = Opcode(1)  // MOV
	OP_SWP   = Opcode(2)  // SWP
	OP_SAV   = Opcode(3)  // SAV
	OP_ADD   = Opcode(4)  // ADD
	OP_SUB   = Opcode(5)  // SUB
	OP_NEG   = Opcode(6)  // NEG
	OP_JMP   = Opcode(7)  // JMP
	OP_JEZ   = Opcode(8)  // JEZ
	OP_JNZ   = Opcode(9)  // JNZ
	OP_JGZ   = Opcode(10) // JGZ
	OP_JLZ   = Opcode(11) // JLZ
	OP_JRO   = Opcode(12) // JRO
	OP_HALT  = Opcode(13) // HALT
	OP_LABEL = Opcode(14) // LABEL
)

// IsJump returns true for the label-targeted jump opcodes.
func (op Opcode) IsJump() bool {
	return op >= OP_JMP && op <= OP_JRO
}

// Register is a register name.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_ACC   = Register(0) // ACC
	REG_BAK   = Register(1) // BAK
	REG_NIL   = Register(2) // NIL
	REG_LEFT  = Register(3) // LEFT
	REG_RIGHT = Register(4) // RIGHT
	REG_UP    = Register(5) // UP
	REG_DOWN  = Register(6) // DOWN
	REG_ANY   = Register(7) // ANY
	REG_LAST  = Register(8) // LAST
)

// Direction returns the port direction named by the register, if any.
func (reg Register) Direction() (dir Direction, ok bool) {
	if reg < REG_LEFT || reg > REG_DOWN {
		return
	}

	return Direction(reg - REG_LEFT), true
}

// Direction is one of the four port directions.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_LEFT  = Direction(0) // LEFT
	DIR_RIGHT = Direction(1) // RIGHT
	DIR_UP    = Direction(2) // UP
	DIR_DOWN  = Direction(3) // DOWN
)

// DIRECTIONS is the number of port directions.
const DIRECTIONS = 4

// Opposite returns the direction facing back along the same link.
func (dir Direction) Opposite() Direction {
	return dir ^ 1
}

// Register returns the port register for the direction.
func (dir Direction) Register() Register {
	return REG_LEFT + Register(dir)
}

// OperandKind is the kind of an instruction operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE      = OperandKind(0) // none
	OPERAND_REGISTER  = OperandKind(1) // register
	OPERAND_PORT      = OperandKind(2) // port
	OPERAND_IMMEDIATE = OperandKind(3) // immediate
)

// Operand is an instruction source or destination.
type Operand struct {
	Kind     OperandKind
	Register Register // For OPERAND_REGISTER and OPERAND_PORT.
	Value    int      // For OPERAND_IMMEDIATE.
}

// Port returns the direction of a port operand.
func (opr Operand) Port() (dir Direction, ok bool) {
	if opr.Kind != OPERAND_PORT {
		return
	}
	return opr.Register.Direction()
}

func (opr Operand) String() string {
	switch opr.Kind {
	case OPERAND_REGISTER, OPERAND_PORT:
		return opr.Register.String()
	case OPERAND_IMMEDIATE:
		return fmt.Sprintf("%d", opr.Value)
	}
	return ""
}

// Instruction is a single assembled instruction.
type Instruction struct {
	LineNo int     // Source line number.
	Op     Opcode  // Operation.
	Src    Operand // Primary operand.
	Dst    Operand // Destination, MOV only.
	Label  string  // Declared label (LABEL) or jump target.
	Target int     // Resolved jump address, after finalization.
}

// String returns the assembly language representation of this instruction.
func (in Instruction) String() string {
	var sb strings.Builder

	switch in.Op {
	case OP_LABEL:
		return in.Label + ":"
	case OP_MOV:
		fmt.Fprintf(&sb, "%v %v, %v", in.Op, in.Src, in.Dst)
	case OP_ADD, OP_SUB:
		fmt.Fprintf(&sb, "%v %v", in.Op, in.Src)
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ, OP_JRO:
		fmt.Fprintf(&sb, "%v %v", in.Op, in.Label)
	default:
		sb.WriteString(in.Op.String())
	}

	return sb.String()
}

// State is the per-tick state of a unit on the grid.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE    = State(0) // IDLE
	STATE_READING = State(1) // READING
	STATE_WRITING = State(2) // WRITING
	STATE_RUNNING = State(3) // RUNNING
)

// clamp saturates a value into the architecture integer range.
func clamp(value int) int {
	return min(max(value, INT_MIN), INT_MAX)
}
