/*
File    : numexpr/internal/lexer/token.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package lexer

import "github.com/rverma/numexpr/internal/symtab"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	// NUMBER is a floating-point literal; its value is in Token.Num.
	NUMBER TokenType = iota
	// IDENT is an identifier that resolved to a symbol table entry;
	// the resolved Symbol is in Token.Sym.
	IDENT
	// INFIX is one of + - * / ^ % & |; the operator byte is in Token.Op.
	INFIX
	// COMMA is the ',' separator.
	COMMA
	// LPAREN is '('.
	LPAREN
	// RPAREN is ')'.
	RPAREN
	// LBRACKET is '['.
	LBRACKET
	// RBRACKET is ']'.
	RBRACKET
	// END marks end of input.
	END
	// ERROR marks a lexical fault (stray character or unresolved
	// identifier); Token.Pos carries the 1-based byte offset and
	// Token.Err a human-readable reason.
	ERROR
)

// Token is one unit of lexical output. Exactly the fields relevant to
// Type are meaningful.
type Token struct {
	Type TokenType
	Pos  int // 1-based byte offset into the source where this token starts

	Num float64       // NUMBER
	Sym symtab.Symbol // IDENT
	Op  byte          // INFIX: one of + - * / ^ % & |

	Err string // ERROR
}
