/*
File    : numexpr/internal/eval/eval_test.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package eval

import (
	"math"
	"testing"

	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/symtab"
)

func TestEvaluate_Literal(t *testing.T) {
	if got := Evaluate(ast.NewLiteral(42)); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
}

func TestEvaluate_NilTreeIsNaN(t *testing.T) {
	if got := Evaluate(nil); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestEvaluate_ScalarVar(t *testing.T) {
	x := 7.0
	n := ast.NewScalarVar("x", &x)
	if got := Evaluate(n); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
	x = 9
	if got := Evaluate(n); got != 9 {
		t.Errorf("re-reading a bound scalar should observe mutation, got %v", got)
	}
}

func TestEvaluate_Index(t *testing.T) {
	backing := []float64{3, 10, 20, 30}
	n := ast.NewIndex("a", &backing, ast.NewLiteral(1))
	if got := Evaluate(n); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
}

func TestEvaluate_IndexOutOfBoundsIsNaN(t *testing.T) {
	backing := []float64{2, 10, 20}
	n := ast.NewIndex("a", &backing, ast.NewLiteral(5))
	if got := Evaluate(n); !math.IsNaN(got) {
		t.Errorf("expected NaN for out-of-bounds index, got %v", got)
	}
}

func TestEvaluate_ArrayVarAsScalarIsNaN(t *testing.T) {
	backing := []float64{2, 10, 20}
	n := ast.NewArrayVar("a", &backing)
	if got := Evaluate(n); !math.IsNaN(got) {
		t.Errorf("expected NaN evaluating a bare array as a scalar, got %v", got)
	}
}

func TestEvaluate_CallSum(t *testing.T) {
	backing := []float64{3, 1, 2, 3}
	sum := func(args []symtab.Arg) float64 {
		total := 0.0
		for _, v := range args[0].Slice() {
			total += v
		}
		return total
	}
	n := ast.NewCall("sum", sum, true, []bool{true}, []*ast.Node{ast.NewArrayVar("a", &backing)})
	if got := Evaluate(n); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
}

func TestEvaluate_ClosureCall(t *testing.T) {
	type ctxT struct{ scale float64 }
	fn := func(ctx any, args []symtab.Arg) float64 {
		return ctx.(*ctxT).scale * args[0].Float()
	}
	n := ast.NewClosureCall("scaled", fn, &ctxT{scale: 3}, true, nil, []*ast.Node{ast.NewLiteral(4)})
	if got := Evaluate(n); got != 12 {
		t.Errorf("expected 12, got %v", got)
	}
}
