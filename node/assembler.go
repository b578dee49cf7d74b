// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package node

import (
	"errors"
	"io"
	"log"
)

// Assembler is a recursive descent assembler for a single node program.
type Assembler struct {
	Verbose       bool   // If set, verbosely logs the assembler actions.
	CommentMarker string // Line comment marker, DEFAULT_COMMENT if empty.

	tokens []Token
	index  int // Index of the next unconsumed token.
	lineno int // Line of the last consumed token.
	prog   *Program
}

// peek returns the next token, without consuming it.
func (asm *Assembler) peek() (tok Token, ok bool) {
	if asm.index >= len(asm.tokens) {
		return
	}

	return asm.tokens[asm.index], true
}

// advance consumes the next token.
func (asm *Assembler) advance() (tok Token, ok bool) {
	tok, ok = asm.peek()
	if ok {
		asm.index++
		asm.lineno = tok.LineNo
	}
	return
}

// isToken returns true if the next token is of the kind and, if not empty, text.
func (asm *Assembler) isToken(kind TokenKind, text string) bool {
	tok, ok := asm.peek()
	if !ok {
		return false
	}
	return tok.Kind == kind && (len(text) == 0 || tok.Text == text)
}

// expect consumes the next token, which must be of the kind and, if not empty, text.
func (asm *Assembler) expect(kind TokenKind, text string) (tok Token, err error) {
	tok, ok := asm.advance()
	if !ok {
		err = ErrSyntax{LineNo: asm.lineno, Expected: kind, Value: text, Err: ErrTokenMissing}
		return
	}

	if tok.Kind != kind || (len(text) != 0 && tok.Text != text) {
		err = ErrSyntax{LineNo: tok.LineNo, Expected: kind, Value: text, Found: tok.Text}
		return
	}

	return
}

// operand consumes a source or destination operand.
// Immediates are only permitted for sources.
func (asm *Assembler) operand(immediate bool) (opr Operand, err error) {
	if immediate && asm.isToken(TOKEN_INTEGER, "") {
		tok, _ := asm.advance()
		opr = Operand{Kind: OPERAND_IMMEDIATE, Value: tok.Value}
		return
	}

	tok, err := asm.expect(TOKEN_REGISTER, "")
	if err != nil {
		return
	}

	switch tok.Register {
	case REG_ANY, REG_LAST:
		err = ErrSyntax{LineNo: tok.LineNo, Expected: TOKEN_REGISTER, Found: tok.Text, Err: ErrPortUnsupported}
		return
	}

	opr = Operand{Kind: OPERAND_REGISTER, Register: tok.Register}
	if _, ok := tok.Register.Direction(); ok {
		opr.Kind = OPERAND_PORT
	}

	return
}

// compileLabel compiles 'IDENTIFIER :'
func (asm *Assembler) compileLabel() (err error) {
	tok, err := asm.expect(TOKEN_IDENTIFIER, "")
	if err != nil {
		return
	}

	_, err = asm.expect(TOKEN_SYMBOL, ":")
	if err != nil {
		return
	}

	err = asm.prog.Symbols.Insert(tok.Text, asm.prog.count)
	if err != nil {
		err = ErrLabelDuplicate{LineNo: tok.LineNo, Label: tok.Text}
		return
	}

	asm.emit(Instruction{LineNo: tok.LineNo, Op: OP_LABEL, Label: tok.Text})

	return
}

// compileCommand compiles a single instruction.
func (asm *Assembler) compileCommand() (err error) {
	tok, err := asm.expect(TOKEN_COMMAND, "")
	if err != nil {
		return
	}

	in := Instruction{LineNo: tok.LineNo, Op: tok.Opcode}

	switch tok.Opcode {
	case OP_MOV:
		in.Src, err = asm.operand(true)
		if err != nil {
			return
		}
		if asm.isToken(TOKEN_SYMBOL, "") {
			_, err = asm.expect(TOKEN_SYMBOL, ",")
			if err != nil {
				return
			}
		}
		in.Dst, err = asm.operand(false)
		if err != nil {
			return
		}
	case OP_ADD, OP_SUB:
		in.Src, err = asm.operand(true)
		if err != nil {
			return
		}
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ, OP_JRO:
		var label Token
		label, err = asm.expect(TOKEN_IDENTIFIER, "")
		if err != nil {
			return
		}
		in.Label = label.Text
	case OP_NOP, OP_SWP, OP_SAV, OP_NEG, OP_HALT:
		// No operands.
	}

	asm.emit(in)
	asm.prog.count++

	return
}

// emit appends an instruction to the program.
func (asm *Assembler) emit(in Instruction) {
	if asm.Verbose {
		log.Printf("asm: %v: %v", in.LineNo, in)
	}

	asm.prog.Instructions = append(asm.prog.Instructions, in)
}

// Parse parses an input stream into a Program.
// The program still carries its LABEL pseudo-instructions, and must
// be finalized before it can run.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lex := &Lexer{CommentMarker: asm.CommentMarker}

	asm.tokens, err = lex.Tokenize(input)
	if err != nil {
		return
	}
	asm.index = 0
	asm.lineno = 0
	asm.prog = &Program{}

	defer func() {
		asm.tokens = nil
		if err == nil {
			prog = asm.prog
		}
		asm.prog = nil
	}()

	for {
		tok, ok := asm.peek()
		if !ok {
			break
		}

		switch tok.Kind {
		case TOKEN_COMMAND:
			err = asm.compileCommand()
		case TOKEN_IDENTIFIER:
			err = asm.compileLabel()
		default:
			err = ErrSyntax{LineNo: tok.LineNo, Expected: TOKEN_COMMAND, Found: tok.Text}
		}
		if err != nil {
			return
		}
	}

	return
}

// Assemble parses and finalizes a program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	err = prog.Finalize()
	if err != nil {
		prog = nil
	}

	return
}

// IsAssemblyError returns true if the error is an assembly error.
func IsAssemblyError(err error) bool {
	var errLex ErrLex
	var errSyntax ErrSyntax
	var errDuplicate ErrLabelDuplicate
	var errMissing ErrLabelMissing
	var errRange ErrOperandRange

	return errors.As(err, &errLex) ||
		errors.As(err, &errSyntax) ||
		errors.As(err, &errDuplicate) ||
		errors.As(err, &errMissing) ||
		errors.As(err, &errRange)
}
