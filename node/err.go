package node

import (
	"errors"

	"github.com/ezrec/tis/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrTokenMissing    = errors.New(f("unexpected end of program"))
	ErrPortUnsupported = errors.New(f("port unsupported"))

	// Node errors
	ErrProgramFinal = errors.New(f("program not finalized"))
)

// ErrLex is an unrecognized lexical fragment.
type ErrLex struct {
	LineNo int
	Word   string
}

func (err ErrLex) Error() string {
	return f("line %d: unknown token '%v'", err.LineNo, err.Word)
}

// ErrSyntax is a grammar mismatch.
type ErrSyntax struct {
	LineNo   int
	Expected TokenKind
	Value    string // Expected value, if any.
	Found    string
	Err      error
}

func (err ErrSyntax) Error() string {
	var text string
	if len(err.Value) != 0 {
		text = f("line %d: expected %v '%v', found '%v'", err.LineNo, err.Expected, err.Value, err.Found)
	} else {
		text = f("line %d: expected %v, found '%v'", err.LineNo, err.Expected, err.Found)
	}
	if err.Err != nil {
		text += ": " + err.Err.Error()
	}
	return text
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrLabelDuplicate is a label declared twice in one program.
type ErrLabelDuplicate struct {
	LineNo int
	Label  string
}

func (err ErrLabelDuplicate) Error() string {
	return f("line %d: label %v duplicated", err.LineNo, err.Label)
}

// ErrLabelMissing is a jump to a label that was never declared.
type ErrLabelMissing struct {
	LineNo int
	Label  string
}

func (err ErrLabelMissing) Error() string {
	return f("line %d: label %v missing", err.LineNo, err.Label)
}

// ErrOperandRange is an immediate outside of [INT_MIN, INT_MAX].
type ErrOperandRange struct {
	LineNo int
	Value  int
}

func (err ErrOperandRange) Error() string {
	return f("line %d: value %v out of range [%v, %v]", err.LineNo, err.Value, INT_MIN, INT_MAX)
}

// ErrOpcode is an opcode the node does not know how to execute.
// It always indicates an internal defect, never a user error.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v at line %d", eo.Op.String(), eo.LineNo)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
