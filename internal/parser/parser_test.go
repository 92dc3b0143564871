/*
File    : numexpr/internal/parser/parser_test.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/eval"
	"github.com/rverma/numexpr/internal/symtab"
)

func TestParser_LiteralAndArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"2^3^2", 64}, // left-assoc default: (2^3)^2
		{"-2^2", 4},   // left-assoc default: (-2)^2
		{"10%3", 1},
		{"1,2,3", 3}, // comma returns the rightmost value
	}
	for _, tt := range tests {
		p := New(tt.input, nil)
		root, pos := p.Parse()
		assert.Equal(t, 0, pos, "input %q", tt.input)
		assert.Equal(t, tt.want, eval.Evaluate(root), "input %q", tt.input)
	}
}

func TestParser_RightAssociativePow(t *testing.T) {
	ast.RightAssocPow = true
	defer func() { ast.RightAssocPow = false }()

	p := New("-2^2", nil)
	root, pos := p.Parse()
	assert.Equal(t, 0, pos)
	assert.Equal(t, float64(-4), eval.Evaluate(root))

	p = New("2^3^2", nil)
	root, pos = p.Parse()
	assert.Equal(t, 0, pos)
	assert.Equal(t, float64(512), eval.Evaluate(root)) // 2^(3^2)
}

func TestParser_Variables(t *testing.T) {
	x := 4.0
	symbols := []symtab.Symbol{{Name: "x", Kind: symtab.KindScalar, Scalar: &x}}
	p := New("x*x+1", symbols)
	root, pos := p.Parse()
	assert.Equal(t, 0, pos)
	assert.Equal(t, float64(17), eval.Evaluate(root))
}

func TestParser_ArrayIndexing(t *testing.T) {
	backing := []float64{3, 10, 20, 30}
	symbols := []symtab.Symbol{{Name: "a", Kind: symtab.KindArray, Array: &backing}}

	p := New("a[0]+a[2]", symbols)
	root, pos := p.Parse()
	assert.Equal(t, 0, pos)
	assert.Equal(t, float64(40), eval.Evaluate(root))
}

func TestParser_FunctionArity(t *testing.T) {
	double := func(args []symtab.Arg) float64 { return 2 * args[0].Float() }
	symbols := []symtab.Symbol{{Name: "double", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: double}}

	p := New("double 5", symbols)
	root, pos := p.Parse()
	assert.Equal(t, 0, pos)
	assert.Equal(t, float64(10), eval.Evaluate(root))
}

func TestParser_ArityMismatchIsSyntaxError(t *testing.T) {
	add := func(args []symtab.Arg) float64 { return args[0].Float() + args[1].Float() }
	symbols := []symtab.Symbol{{Name: "add", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: add}}

	p := New("add(1)", symbols)
	_, pos := p.Parse()
	assert.NotEqual(t, 0, pos)
}

func TestParser_UnexpectedTrailingInput(t *testing.T) {
	p := New("1 2", nil)
	_, pos := p.Parse()
	assert.NotEqual(t, 0, pos)
}

func TestParser_UnmatchedParen(t *testing.T) {
	p := New("(1+2", nil)
	_, pos := p.Parse()
	assert.NotEqual(t, 0, pos)
}
