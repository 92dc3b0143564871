/*
File    : numexpr/internal/lexer/lexer.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package lexer implements the streaming tokenizer described in spec.md
4.1: one token per Advance call, whitespace-skipping, numeric literals
with an optional leading dot and decimal exponent, and identifiers
resolved against a caller table then a sorted built-in table.
*/
package lexer

import (
	"strconv"

	"github.com/rverma/numexpr/internal/symtab"
)

// Lexer tokenizes a source string against a caller-supplied symbol table
// and a sorted built-in table. It holds no evaluation state of its own —
// resolution only classifies identifiers, it never calls anything.
type Lexer struct {
	src      string
	pos      int // current byte index
	length   int
	user     []symtab.Symbol
	builtins symtab.Table
}

// New creates a Lexer over src. builtins must already be sorted by name
// (symtab.Table.SortByName) for identifier resolution to work.
func New(src string, user []symtab.Symbol, builtins symtab.Table) *Lexer {
	return &Lexer{src: src, length: len(src), user: user, builtins: builtins}
}

// Pos returns the current 1-based byte offset, clamped to at least 1.
// This is what compile errors report per spec.md's "error_position"
// contract.
func (l *Lexer) Pos() int {
	if l.pos < 0 {
		return 1
	}
	return l.pos + 1
}

func (l *Lexer) current() byte {
	if l.pos >= l.length {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	i := l.pos + off
	if i >= l.length {
		return 0
	}
	return l.src[i]
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.current()) {
		l.pos++
	}
}

// Advance reads zero or more characters of input and returns the next
// token. It never reads past a token boundary, matching spec.md's
// "reads zero or more characters ... updates the lexer state with the
// next token" contract.
func (l *Lexer) Advance() Token {
	l.skipWhitespace()
	start := l.pos

	c := l.current()
	switch {
	case c == 0:
		return Token{Type: END, Pos: start + 1}
	case isDigit(c) || (c == '.' && isDigit(l.peekAt(1))):
		return l.readNumber(start)
	case isAlpha(c):
		return l.readIdent(start)
	}

	switch c {
	case '+', '-', '*', '/', '^', '%', '&', '|':
		l.pos++
		return Token{Type: INFIX, Op: c, Pos: start + 1}
	case '(':
		l.pos++
		return Token{Type: LPAREN, Pos: start + 1}
	case ')':
		l.pos++
		return Token{Type: RPAREN, Pos: start + 1}
	case '[':
		l.pos++
		return Token{Type: LBRACKET, Pos: start + 1}
	case ']':
		l.pos++
		return Token{Type: RBRACKET, Pos: start + 1}
	case ',':
		l.pos++
		return Token{Type: COMMA, Pos: start + 1}
	default:
		l.pos++
		return Token{Type: ERROR, Pos: start + 1, Err: "unexpected character " + strconv.QuoteRune(rune(c))}
	}
}

// readNumber consumes the maximal numeric-literal prefix starting at the
// current position: digits, an optional '.', more digits, and an
// optional decimal exponent ([eE][+-]?digits). A leading '.' with no
// integer part (".5") is accepted, per spec.md's preserved quirk.
func (l *Lexer) readNumber(start int) Token {
	for isDigit(l.current()) {
		l.pos++
	}
	if l.current() == '.' {
		l.pos++
		for isDigit(l.current()) {
			l.pos++
		}
	}
	if l.current() == 'e' || l.current() == 'E' {
		save := l.pos
		l.pos++
		if l.current() == '+' || l.current() == '-' {
			l.pos++
		}
		if isDigit(l.current()) {
			for isDigit(l.current()) {
				l.pos++
			}
		} else {
			// not actually an exponent; back out
			l.pos = save
		}
	}
	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{Type: ERROR, Pos: start + 1, Err: "invalid numeric literal " + strconv.Quote(text)}
	}
	return Token{Type: NUMBER, Num: v, Pos: start + 1}
}

// readIdent consumes a maximal identifier and resolves it against the
// caller table (linear scan, first match wins) then the built-in table
// (binary search). An identifier that resolves to neither becomes an
// ERROR token.
func (l *Lexer) readIdent(start int) Token {
	for isIdentCont(l.current()) {
		l.pos++
	}
	name := l.src[start:l.pos]
	sym, ok := symtab.Resolve(name, l.user, l.builtins)
	if !ok {
		return Token{Type: ERROR, Pos: start + 1, Err: "unknown identifier " + strconv.Quote(name)}
	}
	return Token{Type: IDENT, Sym: sym, Pos: start + 1}
}
