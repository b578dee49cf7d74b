package node

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(program ...string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func assemble(t *testing.T, program ...string) (prog *Program) {
	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse("")
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	prog, err = parse("# only a comment", "", "   ")
	assert.NoError(err)
	assert.Equal(0, prog.Len())
}

func TestAssemblerOperands(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(
		"MOV 5, ACC",
		"MOV UP DOWN",
		"MOV -3,NIL",
		"ADD BAK",
		"SUB LEFT",
		"SWP",
		"SAV",
		"NEG",
		"NOP",
		"HALT",
	)
	assert.NoError(err)

	imm := func(v int) Operand { return Operand{Kind: OPERAND_IMMEDIATE, Value: v} }
	reg := func(r Register) Operand { return Operand{Kind: OPERAND_REGISTER, Register: r} }
	port := func(r Register) Operand { return Operand{Kind: OPERAND_PORT, Register: r} }

	expected := []Instruction{
		{LineNo: 1, Op: OP_MOV, Src: imm(5), Dst: reg(REG_ACC)},
		{LineNo: 2, Op: OP_MOV, Src: port(REG_UP), Dst: port(REG_DOWN)},
		{LineNo: 3, Op: OP_MOV, Src: imm(-3), Dst: reg(REG_NIL)},
		{LineNo: 4, Op: OP_ADD, Src: reg(REG_BAK)},
		{LineNo: 5, Op: OP_SUB, Src: port(REG_LEFT)},
		{LineNo: 6, Op: OP_SWP},
		{LineNo: 7, Op: OP_SAV},
		{LineNo: 8, Op: OP_NEG},
		{LineNo: 9, Op: OP_NOP},
		{LineNo: 10, Op: OP_HALT},
	}

	assert.Equal(expected, prog.Instructions)
	assert.False(prog.Final())
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(
		"start: JEZ end",
		"SUB 1",
		"JMP start",
		"end:",
		"HALT",
	)
	assert.NoError(err)

	// LABEL pseudo-instructions are kept until finalization.
	assert.Equal(6, prog.Len())
	assert.Equal(OP_LABEL, prog.Instructions[0].Op)
	assert.Equal("start", prog.Instructions[0].Label)
	assert.Equal(OP_LABEL, prog.Instructions[4].Op)

	// Labels are recorded at the current real instruction count.
	index, ok := prog.Symbols.Lookup("start")
	assert.True(ok)
	assert.Equal(0, index)
	index, ok = prog.Symbols.Lookup("end")
	assert.True(ok)
	assert.Equal(3, index)

	assert.Equal("JEZ end", prog.Instructions[1].String())
}

func TestAssemblerDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	_, err := parse(
		"a: NOP",
		"b: NOP",
		"a: NOP",
	)

	var errDup ErrLabelDuplicate
	if assert.True(errors.As(err, &errDup)) {
		assert.Equal("a", errDup.Label)
		assert.Equal(3, errDup.LineNo)
	}
	assert.True(IsAssemblyError(err))
}

func TestAssemblerSyntax(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		program  []string
		lineno   int
		expected TokenKind
		value    string
		found    string
		err      error
	}{
		{"missing dest", []string{"MOV 5"}, 1, TOKEN_REGISTER, "", "", ErrTokenMissing},
		{"bad separator", []string{"NOP", "MOV 5: ACC"}, 2, TOKEN_SYMBOL, ",", ":", nil},
		{"immediate dest", []string{"MOV ACC, 5"}, 1, TOKEN_REGISTER, "", "5", nil},
		{"no command", []string{"5"}, 1, TOKEN_COMMAND, "", "5", nil},
		{"label no colon", []string{"loop NOP"}, 1, TOKEN_SYMBOL, ":", "NOP", nil},
		{"jump to register", []string{"JMP ACC"}, 1, TOKEN_IDENTIFIER, "", "ACC", nil},
		{"stray comma", []string{"NOP", ", NOP"}, 2, TOKEN_COMMAND, "", ",", nil},
		{"any", []string{"MOV ANY, ACC"}, 1, TOKEN_REGISTER, "", "ANY", ErrPortUnsupported},
		{"last", []string{"ADD LAST"}, 1, TOKEN_REGISTER, "", "LAST", ErrPortUnsupported},
	}

	for _, entry := range table {
		_, err := parse(entry.program...)
		var errSyntax ErrSyntax
		if !assert.True(errors.As(err, &errSyntax), entry.name) {
			continue
		}
		assert.Equal(entry.lineno, errSyntax.LineNo, entry.name)
		assert.Equal(entry.expected, errSyntax.Expected, entry.name)
		assert.Equal(entry.value, errSyntax.Value, entry.name)
		assert.Equal(entry.found, errSyntax.Found, entry.name)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
		assert.True(IsAssemblyError(err), entry.name)
	}
}

func TestAssemblerLexError(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("NOP", "MOV @, ACC")
	var errLex ErrLex
	assert.True(errors.As(err, &errLex))
	assert.Equal(2, errLex.LineNo)
	assert.True(IsAssemblyError(err))
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog1, err := asm.Parse(strings.NewReader("a: NOP"))
	assert.NoError(err)
	prog2, err := asm.Parse(strings.NewReader("a: HALT"))
	assert.NoError(err)

	assert.Equal(OP_NOP, prog1.Instructions[1].Op)
	assert.Equal(OP_HALT, prog2.Instructions[1].Op)
}
