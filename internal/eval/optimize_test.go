/*
File    : numexpr/internal/eval/optimize_test.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/symtab"
)

func addNode(lhs, rhs *ast.Node) *ast.Node {
	fn := func(args []symtab.Arg) float64 { return args[0].Float() + args[1].Float() }
	return ast.NewCall("+", fn, true, nil, []*ast.Node{lhs, rhs})
}

func TestOptimize_FoldsPureConstantCall(t *testing.T) {
	n := addNode(ast.NewLiteral(1), ast.NewLiteral(2))
	folded := Optimize(n)
	assert.Equal(t, ast.Literal, folded.Kind)
	assert.Equal(t, float64(3), folded.Value)
}

func TestOptimize_LeavesVariableSubtreeAlone(t *testing.T) {
	x := 5.0
	n := addNode(ast.NewScalarVar("x", &x), ast.NewLiteral(2))
	folded := Optimize(n)
	assert.Equal(t, ast.Call, folded.Kind)
	x = 9
	assert.Equal(t, float64(11), Evaluate(folded))
}

func TestOptimize_LeavesImpureCallAlone(t *testing.T) {
	calls := 0
	impure := func(args []symtab.Arg) float64 {
		calls++
		return args[0].Float()
	}
	n := ast.NewCall("noisy", impure, false, nil, []*ast.Node{ast.NewLiteral(1)})
	folded := Optimize(n)
	assert.Equal(t, ast.Call, folded.Kind)
}

func TestOptimize_LeavesIndexAlone(t *testing.T) {
	backing := []float64{2, 10, 20}
	n := ast.NewIndex("a", &backing, addNode(ast.NewLiteral(0), ast.NewLiteral(1)))
	folded := Optimize(n)
	assert.Equal(t, ast.Index, folded.Kind)
	assert.Equal(t, ast.Literal, folded.Children[0].Kind)
	assert.Equal(t, float64(20), Evaluate(folded))
}
