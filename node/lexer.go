package node

import (
	"bufio"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DEFAULT_COMMENT is the default line comment marker.
const DEFAULT_COMMENT = "#"

// TokenKind is a lexical category.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_NONE       = TokenKind(0) // none
	TOKEN_COMMAND    = TokenKind(1) // command
	TOKEN_REGISTER   = TokenKind(2) // register
	TOKEN_INTEGER    = TokenKind(3) // integer
	TOKEN_IDENTIFIER = TokenKind(4) // identifier
	TOKEN_SYMBOL     = TokenKind(5) // symbol
)

// Token is a single lexical token.
type Token struct {
	Kind     TokenKind
	Text     string
	LineNo   int
	Opcode   Opcode   // TOKEN_COMMAND
	Register Register // TOKEN_REGISTER
	Value    int      // TOKEN_INTEGER
}

func (tok Token) String() string {
	return tok.Kind.String() + "(" + tok.Text + ")"
}

// commandMap maps command keywords to opcodes.
var commandMap = map[string]Opcode{
	"NOP":  OP_NOP,
	"MOV":  OP_MOV,
	"SWP":  OP_SWP,
	"SAV":  OP_SAV,
	"ADD":  OP_ADD,
	"SUB":  OP_SUB,
	"NEG":  OP_NEG,
	"JMP":  OP_JMP,
	"JEZ":  OP_JEZ,
	"JNZ":  OP_JNZ,
	"JGZ":  OP_JGZ,
	"JLZ":  OP_JLZ,
	"JRO":  OP_JRO,
	"HALT": OP_HALT,
}

// registerMap maps register keywords to registers.
var registerMap = map[string]Register{
	"ACC":   REG_ACC,
	"BAK":   REG_BAK,
	"NIL":   REG_NIL,
	"LEFT":  REG_LEFT,
	"RIGHT": REG_RIGHT,
	"UP":    REG_UP,
	"DOWN":  REG_DOWN,
	"ANY":   REG_ANY,
	"LAST":  REG_LAST,
}

var (
	reInteger    = regexp.MustCompile(`^-?[0-9]+$`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Lexer turns a node's source text into tokens.
type Lexer struct {
	CommentMarker string // Line comment marker, DEFAULT_COMMENT if empty.
}

// splitWords splits a line on whitespace, and separates the ':' and ','
// symbols from the words they are attached to.
func splitWords(line string) (words []string) {
	for _, field := range strings.Fields(line) {
		start := 0
		for n, c := range field {
			if c != ':' && c != ',' {
				continue
			}
			if n > start {
				words = append(words, field[start:n])
			}
			words = append(words, field[n:n+1])
			start = n + 1
		}
		if start < len(field) {
			words = append(words, field[start:])
		}
	}

	return
}

// makeToken classifies a single word.
func makeToken(word string, lineno int) (tok Token, err error) {
	tok = Token{Text: word, LineNo: lineno}

	if op, ok := commandMap[word]; ok {
		tok.Kind = TOKEN_COMMAND
		tok.Opcode = op
		return
	}

	if reg, ok := registerMap[word]; ok {
		tok.Kind = TOKEN_REGISTER
		tok.Register = reg
		return
	}

	switch {
	case reInteger.MatchString(word):
		tok.Kind = TOKEN_INTEGER
		tok.Value, err = strconv.Atoi(word)
		if errors.Is(err, strconv.ErrRange) {
			// Saturate, so finalization reports the range.
			err = nil
			if word[0] == '-' {
				tok.Value = math.MinInt
			} else {
				tok.Value = math.MaxInt
			}
		}
	case reIdentifier.MatchString(word):
		tok.Kind = TOKEN_IDENTIFIER
	case word == ":" || word == ",":
		tok.Kind = TOKEN_SYMBOL
	default:
		err = ErrLex{LineNo: lineno, Word: word}
	}

	return
}

// Tokenize scans an input stream into a list of tokens.
func (lex *Lexer) Tokenize(input io.Reader) (tokens []Token, err error) {
	marker := lex.CommentMarker
	if len(marker) == 0 {
		marker = DEFAULT_COMMENT
	}

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno++
		line, _, _ := strings.Cut(scanner.Text(), marker)

		for _, word := range splitWords(line) {
			var tok Token
			tok, err = makeToken(word, lineno)
			if err != nil {
				return
			}
			tokens = append(tokens, tok)
		}
	}

	err = scanner.Err()

	return
}
