/*
File    : numexpr/internal/lexer/lexer_test.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rverma/numexpr/internal/symtab"
)

func builtins() symtab.Table {
	t := symtab.Table{
		{Name: "pi", Kind: symtab.KindFunction, Arity: 0, Pure: true},
		{Name: "sqrt", Kind: symtab.KindFunction, Arity: 1, Pure: true},
	}
	t.SortByName()
	return t
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{"12.5", 12.5},
		{".5", 0.5},
		{"1e3", 1000},
		{"1.5e-2", 0.015},
		{"1e", 1}, // trailing 'e' with no exponent digits is not consumed
	}
	for _, tt := range tests {
		l := New(tt.input, nil, builtins())
		tok := l.Advance()
		assert.Equal(t, NUMBER, tok.Type)
		assert.Equal(t, tt.want, tok.Num)
	}
}

func TestLexer_Operators(t *testing.T) {
	l := New("+-*/^%&|,()[]", nil, builtins())
	var ops []byte
	for {
		tok := l.Advance()
		if tok.Type == END {
			break
		}
		if tok.Type == INFIX {
			ops = append(ops, tok.Op)
		}
	}
	assert.Equal(t, []byte{'+', '-', '*', '/', '^', '%', '&', '|'}, ops)
}

func TestLexer_ResolvesUserBeforeBuiltin(t *testing.T) {
	shadow := 3.0
	user := []symtab.Symbol{{Name: "pi", Kind: symtab.KindScalar, Scalar: &shadow}}
	l := New("pi", user, builtins())
	tok := l.Advance()
	assert.Equal(t, IDENT, tok.Type)
	assert.Equal(t, symtab.KindScalar, tok.Sym.Kind)
}

func TestLexer_UnknownIdentifierIsError(t *testing.T) {
	l := New("bogus", nil, builtins())
	tok := l.Advance()
	assert.Equal(t, ERROR, tok.Type)
	assert.NotEmpty(t, tok.Err)
}

func TestLexer_SkipsWhitespace(t *testing.T) {
	l := New("  \t 12  \n", nil, builtins())
	tok := l.Advance()
	assert.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, float64(12), tok.Num)
	assert.Equal(t, END, l.Advance().Type)
}
