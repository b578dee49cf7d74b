package node

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	assert := assert.New(t)

	lex := &Lexer{}

	program := []string{
		"# header comment",
		"loop: MOV UP,ACC # read",
		"  ADD -12",
		"JNZ loop",
	}

	tokens, err := lex.Tokenize(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	type expect struct {
		kind   TokenKind
		text   string
		lineno int
	}

	expected := []expect{
		{TOKEN_IDENTIFIER, "loop", 2},
		{TOKEN_SYMBOL, ":", 2},
		{TOKEN_COMMAND, "MOV", 2},
		{TOKEN_REGISTER, "UP", 2},
		{TOKEN_SYMBOL, ",", 2},
		{TOKEN_REGISTER, "ACC", 2},
		{TOKEN_COMMAND, "ADD", 3},
		{TOKEN_INTEGER, "-12", 3},
		{TOKEN_COMMAND, "JNZ", 4},
		{TOKEN_IDENTIFIER, "loop", 4},
	}

	assert.Equal(len(expected), len(tokens))
	if len(expected) == len(tokens) {
		for n, tok := range tokens {
			assert.Equal(expected[n].kind, tok.Kind, tok.String())
			assert.Equal(expected[n].text, tok.Text, tok.String())
			assert.Equal(expected[n].lineno, tok.LineNo, tok.String())
		}
		assert.Equal(OP_MOV, tokens[2].Opcode)
		assert.Equal(REG_UP, tokens[3].Register)
		assert.Equal(-12, tokens[7].Value)
	}
}

func TestLexerCommentMarker(t *testing.T) {
	assert := assert.New(t)

	lex := &Lexer{CommentMarker: "//"}

	tokens, err := lex.Tokenize(strings.NewReader("NOP // # ignored $\nHALT"))
	assert.NoError(err)
	assert.Equal(2, len(tokens))

	// With the default marker, '//' is not a comment.
	lex = &Lexer{}
	_, err = lex.Tokenize(strings.NewReader("NOP // ignored"))
	var errLex ErrLex
	assert.True(errors.As(err, &errLex))
	assert.Equal(1, errLex.LineNo)
	assert.Equal("//", errLex.Word)
}

func TestLexerErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		source string
		lineno int
		word   string
	}{
		{"dollar", "NOP\nMOV $5, ACC", 2, "$5"},
		{"dash", "ADD 1-2", 1, "1-2"},
		{"dot", "\n\nlabel.x:", 3, "label.x"},
	}

	for _, entry := range table {
		lex := &Lexer{}
		_, err := lex.Tokenize(strings.NewReader(entry.source))
		var errLex ErrLex
		if assert.True(errors.As(err, &errLex), entry.name) {
			assert.Equal(entry.lineno, errLex.LineNo, entry.name)
			assert.Equal(entry.word, errLex.Word, entry.name)
		}
	}
}

func TestLexerPriority(t *testing.T) {
	assert := assert.New(t)

	lex := &Lexer{}
	tokens, err := lex.Tokenize(strings.NewReader("HALT halt 42 4a2 NIL"))
	assert.NoError(err)

	kinds := []TokenKind{}
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal([]TokenKind{TOKEN_COMMAND, TOKEN_IDENTIFIER, TOKEN_INTEGER, TOKEN_IDENTIFIER, TOKEN_REGISTER}, kinds)
}

func TestLexerSaturate(t *testing.T) {
	assert := assert.New(t)

	lex := &Lexer{}
	tokens, err := lex.Tokenize(strings.NewReader("99999999999999999999999 -99999999999999999999999"))
	assert.NoError(err)
	if assert.Equal(2, len(tokens)) {
		assert.Equal(math.MaxInt, tokens[0].Value)
		assert.Equal(math.MinInt, tokens[1].Value)
	}
}
