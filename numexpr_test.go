/*
File    : numexpr/numexpr_test.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package numexpr

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterp_Arithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"2^10", 1024},
		{"10%3", 1},
		{"sqrt(16)", 4},
		{"abs(-5)", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Interp(tt.expr), "expr %q", tt.expr)
	}
}

func TestCompile_SyntaxErrorReportsPosition(t *testing.T) {
	tree, pos := Compile("1 + ", nil)
	assert.Nil(t, tree)
	assert.Greater(t, pos, 0)
}

func TestCompile_ReusedAcrossMutation(t *testing.T) {
	x := 1.0
	tree, pos := Compile("x*x", []Symbol{{Name: "x", Kind: KindScalar, Scalar: &x}})
	assert.Equal(t, 0, pos)
	defer Free(tree)

	assert.Equal(t, float64(1), Evaluate(tree))
	x = 5
	assert.Equal(t, float64(25), Evaluate(tree))
}

func TestEvaluate_NilTreeIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Evaluate(nil)))
}

func TestArrayLengthConvention(t *testing.T) {
	backing := []float64{3, 10, 20, 30, 99}
	tree, pos := Compile("sum(a) + a[0] + arrlen(a)", []Symbol{{Name: "a", Kind: KindArray, Array: &backing}})
	assert.Equal(t, 0, pos)
	defer Free(tree)
	// sum(a) = 10+20+30 = 60, a[0] = 10, arrlen(a) = 3
	assert.Equal(t, float64(73), Evaluate(tree))
}

func TestLinearInterpolate(t *testing.T) {
	d := []float64{3, 0, 1, 2}
	r := []float64{3, 0, 10, 20}
	symbols := []Symbol{
		{Name: "d", Kind: KindArray, Array: &d},
		{Name: "r", Kind: KindArray, Array: &r},
	}
	assert.Equal(t, float64(5), evalWith(t, "linear_interpolate(d, r, 0.5)", symbols))
}

func evalWith(t *testing.T, expr string, symbols []Symbol) float64 {
	t.Helper()
	tree, pos := Compile(expr, symbols)
	assert.Equal(t, 0, pos)
	defer Free(tree)
	return Evaluate(tree)
}

func TestBitwiseLimitsAndOps(t *testing.T) {
	assert.Equal(t, float64(0b1010&0b0110), Interp("10&6"))
	assert.Equal(t, float64(0b1010|0b0110), Interp("10|6"))
	assert.True(t, math.IsNaN(Interp("-1&2")))
}

func TestClosureReceivesContext(t *testing.T) {
	type ctx struct{ scale float64 }
	c := &ctx{scale: 10}
	fn := func(raw any, args []Arg) float64 { return raw.(*ctx).scale * args[0].Float() }
	symbols := []Symbol{{Name: "scaled", Kind: KindClosure, Arity: 1, Pure: true, Closure: fn, Context: c}}
	assert.Equal(t, float64(30), evalWith(t, "scaled(3)", symbols))
}

func TestBuiltinsListedAndSorted(t *testing.T) {
	b := Builtins()
	assert.NotEmpty(t, b)
	for i := 1; i < len(b); i++ {
		assert.LessOrEqual(t, b[i-1].Name, b[i].Name)
	}
}

func TestSetNaturalLog(t *testing.T) {
	SetNaturalLog(true)
	defer SetNaturalLog(false)
	assert.InDelta(t, 1.0, Interp("log(e())"), 1e-9)
}

func TestEvaluateBatch(t *testing.T) {
	var trees []*Tree
	for i := 0; i < 5; i++ {
		tree, pos := Compile("1+1", nil)
		assert.Equal(t, 0, pos)
		trees = append(trees, tree)
	}
	results, err := EvaluateBatch(context.Background(), trees, 2)
	assert.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, float64(2), r)
	}
}

func TestErrPosition(t *testing.T) {
	src := "1 +\n+ *"
	_, pos := Compile(src, nil)
	assert.NotEqual(t, 0, pos)
	// '*' is the third character of the second line; the generic syntax
	// error reports the offset just past it.
	assert.Equal(t, "2:4", ErrPosition(src, pos))
}
