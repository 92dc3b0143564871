/*
File    : numexpr/internal/eval/eval.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package eval implements the tree-walking evaluator: Evaluate reduces a
compiled ast.Node to a float64, and Optimize performs the single
constant-folding pass described by spec.md 4.5.
*/
package eval

import (
	"math"

	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/symtab"
)

// Evaluate walks n and returns its value. A nil node evaluates to NaN, so
// that a failed compile can never be silently evaluated into a bogus
// number.
func Evaluate(n *ast.Node) float64 {
	if n == nil {
		return math.NaN()
	}
	switch n.Kind {
	case ast.Literal:
		return n.Value

	case ast.ScalarVar:
		if n.Scalar == nil {
			return math.NaN()
		}
		return *n.Scalar

	case ast.ArrayVar:
		// An array referenced without an index has no scalar value of
		// its own; it is only meaningful as an ArgIsArray call argument.
		return math.NaN()

	case ast.Index:
		return evalIndex(n)

	case ast.Call:
		return evalCall(n)

	case ast.ClosureCall:
		return evalClosureCall(n)

	default:
		return math.NaN()
	}
}

func evalIndex(n *ast.Node) float64 {
	if n.Array == nil {
		return math.NaN()
	}
	backing := *n.Array
	if len(backing) == 0 {
		return math.NaN()
	}
	length := int(backing[0])
	i := int(math.Trunc(Evaluate(n.Children[0])))
	if i < 0 || i >= length || i+1 >= len(backing) {
		return math.NaN()
	}
	return backing[i+1]
}

func evalCall(n *ast.Node) float64 {
	args, ok := evalArgs(n.Children, n.ArgIsArray)
	if !ok {
		return math.NaN()
	}
	return n.Call(args)
}

func evalClosureCall(n *ast.Node) float64 {
	args, ok := evalArgs(n.Children, n.ArgIsArray)
	if !ok {
		return math.NaN()
	}
	return n.Closure(n.Context, args)
}

// evalArgs evaluates each child left-to-right. A position marked true in
// argIsArray must be a bare ast.ArrayVar child — its backing slice
// (trimmed to the length-in-element-0 convention) is passed as a raw
// array argument instead of an evaluated scalar. Per spec.md 4.4, if a
// required array argument is not a variable node, the whole call is
// invalid and evaluates to NaN without ever invoking the callee — this
// is checked once here rather than in every array-consuming builtin.
func evalArgs(children []*ast.Node, argIsArray []bool) ([]symtab.Arg, bool) {
	args := make([]symtab.Arg, len(children))
	for i, c := range children {
		if i < len(argIsArray) && argIsArray[i] {
			if c.Kind != ast.ArrayVar || c.Array == nil {
				return nil, false
			}
			args[i] = symtab.ArrayArg(boundSlice(*c.Array))
			continue
		}
		args[i] = symtab.ScalarArg(Evaluate(c))
	}
	return args, true
}

// boundSlice trims a raw bound array down to its logical data per the
// length-in-element-0 convention: element 0 is L, elements 1..L are data.
func boundSlice(backing []float64) []float64 {
	if len(backing) == 0 {
		return nil
	}
	l := int(backing[0])
	if l < 0 {
		l = 0
	}
	if l+1 > len(backing) {
		l = len(backing) - 1
	}
	return backing[1 : l+1]
}
