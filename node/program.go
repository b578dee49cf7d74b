package node

import (
	"fmt"
	"strings"
)

// Program is the assembled instruction list and symbol table of one node.
type Program struct {
	Instructions []Instruction
	Symbols      SymbolTable

	count int  // Real (non-LABEL) instructions seen by the assembler.
	final bool // Set once Finalize has succeeded.
}

// Final returns true once the program has been finalized.
func (prog *Program) Final() bool {
	return prog.final
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Finalize strips the LABEL pseudo-instructions, resolves jump targets,
// and validates immediate operands.
//
// Each label resolves to the index of the first real instruction that
// follows it. A label at the end of the program resolves past the last
// instruction, and jumps to it wrap to 0 as the program counter would.
func (prog *Program) Finalize() (err error) {
	if prog.final {
		return
	}

	var symbols SymbolTable
	code := make([]Instruction, 0, len(prog.Instructions))

	for _, in := range prog.Instructions {
		if in.Op == OP_LABEL {
			err = symbols.Insert(in.Label, len(code))
			if err != nil {
				err = ErrLabelDuplicate{LineNo: in.LineNo, Label: in.Label}
				return
			}
			continue
		}

		for _, opr := range []Operand{in.Src, in.Dst} {
			if opr.Kind != OPERAND_IMMEDIATE {
				continue
			}
			if opr.Value < INT_MIN || opr.Value > INT_MAX {
				err = ErrOperandRange{LineNo: in.LineNo, Value: opr.Value}
				return
			}
		}

		code = append(code, in)
	}

	for n := range code {
		in := &code[n]
		if !in.Op.IsJump() {
			continue
		}
		target, ok := symbols.Lookup(in.Label)
		if !ok {
			err = ErrLabelMissing{LineNo: in.LineNo, Label: in.Label}
			return
		}
		if target >= len(code) {
			target = 0
		}
		in.Target = target
	}

	prog.Instructions = code
	prog.Symbols = symbols
	prog.count = len(code)
	prog.final = true

	return
}

// Listing returns the program as assembly text, one instruction per
// line, with labels placed before the instruction they resolve to.
func (prog *Program) Listing() string {
	var sb strings.Builder

	if !prog.final {
		for _, in := range prog.Instructions {
			fmt.Fprintf(&sb, "%v\n", in)
		}
		return sb.String()
	}

	labels := map[int][]string{}
	for label, index := range prog.Symbols.All() {
		labels[index] = append(labels[index], label)
	}

	for ip, in := range prog.Instructions {
		for _, label := range labels[ip] {
			fmt.Fprintf(&sb, "%v:\n", label)
		}
		fmt.Fprintf(&sb, "%2d: %v\n", ip, in)
	}
	for _, label := range labels[len(prog.Instructions)] {
		fmt.Fprintf(&sb, "%v:\n", label)
	}

	return sb.String()
}
