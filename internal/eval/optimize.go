/*
File    : numexpr/internal/eval/optimize.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package eval

import "github.com/rverma/numexpr/internal/ast"

// Optimize performs a single recursive constant-folding pass, per
// spec.md 4.5: a Call node whose children are all literals after
// recursively optimizing them, and whose callee is Pure, is replaced by a
// Literal node holding its evaluated result. Literal and variable nodes
// are left alone; array-index nodes, closure calls, impure calls, and any
// call that still touches a variable are never replaced themselves,
// though their children are still optimized in place.
func Optimize(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ast.Literal, ast.ScalarVar, ast.ArrayVar:
		return n

	case ast.Index:
		n.Children[0] = Optimize(n.Children[0])
		return n

	case ast.ClosureCall:
		for i, c := range n.Children {
			n.Children[i] = Optimize(c)
		}
		return n

	case ast.Call:
		allLiteral := true
		for i, c := range n.Children {
			oc := Optimize(c)
			n.Children[i] = oc
			if oc.Kind != ast.Literal {
				allLiteral = false
			}
		}
		if n.Pure && allLiteral && n.ArgIsArray == nil {
			return ast.NewLiteral(Evaluate(n))
		}
		return n

	default:
		return n
	}
}
