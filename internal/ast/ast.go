/*
File    : numexpr/internal/ast/ast.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package ast defines the compiled expression tree: a single tagged node
type with one variant per spec-level node kind (literal constant, scalar
variable, array-index, function call, closure call), plus tree lifecycle
helpers (Free) and a cosmetic debug printer (Sprint).
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rverma/numexpr/internal/symtab"
)

// Kind tags which variant a Node represents.
type Kind int

const (
	// Literal holds a compile-time constant float64 in Value.
	Literal Kind = iota
	// ScalarVar reads the current value at Scalar.
	ScalarVar
	// ArrayVar names a bound array variable without indexing it. It is
	// only meaningful in an ArgIsArray call position (sum, arrmin, arrmax,
	// arrlen, linear_interpolate); anywhere else, evaluating it as an
	// ordinary scalar expression yields NaN, since an array has no scalar
	// value of its own.
	ArrayVar
	// Index evaluates Children[0] to an index, truncates it, and reads
	// Array (bounds-checked).
	Index
	// Call evaluates each of Children left-to-right and invokes Fn with
	// the results (or, per ArgIsArray, with raw bound arrays).
	Call
	// ClosureCall is like Call but also passes Context to Closure ahead
	// of the evaluated arguments.
	ClosureCall
)

// RightAssocPow, when true, parses '^' as right-associative and applies
// unary minus after exponentiation (-a^b becomes -(a^b)). The default
// (false) matches spec.md's required behavior: left-associative '^' with
// -a^b == (-a)^b. This is the compile-time option spec.md's grammar
// section describes; a host flips it once at program start, before any
// Compile call — it is not meant to vary per call.
var RightAssocPow = false

// Node is a single AST node. Exactly the fields relevant to Kind are
// meaningful; the zero value of the others is ignored. A node exclusively
// owns its Children: freeing or discarding a node implies discarding its
// whole subtree.
type Node struct {
	Kind Kind

	// Literal
	Value float64

	// ScalarVar / ArrayVar / Index
	Scalar *float64   // bound pointer for a scalar variable
	Array  *[]float64 // bound pointer for an array variable
	Name   string     // identifier, kept for diagnostics/Sprint only

	// Call / ClosureCall
	Children   []*Node
	Call       symtab.Func
	Closure    symtab.ClosureFunc
	Context    any
	ArgIsArray []bool
	Pure       bool
}

// NewLiteral builds a constant-value node.
func NewLiteral(v float64) *Node {
	return &Node{Kind: Literal, Value: v}
}

// NewScalarVar builds a node that reads the current value of a bound
// scalar.
func NewScalarVar(name string, addr *float64) *Node {
	return &Node{Kind: ScalarVar, Name: name, Scalar: addr}
}

// NewArrayVar builds a node naming a bound array without indexing it, for
// use only in an ArgIsArray call argument position.
func NewArrayVar(name string, addr *[]float64) *Node {
	return &Node{Kind: ArrayVar, Name: name, Array: addr}
}

// NewIndex builds an array-index node: idx is the single index-expression
// child (invariant I4 — an index node's child always evaluates to a
// float64).
func NewIndex(name string, addr *[]float64, idx *Node) *Node {
	return &Node{Kind: Index, Name: name, Array: addr, Children: []*Node{idx}}
}

// NewCall builds a function-call node. len(children) must equal the
// declared arity (invariant I1); the parser enforces this before calling
// NewCall.
func NewCall(name string, fn symtab.Func, pure bool, argIsArray []bool, children []*Node) *Node {
	return &Node{
		Kind:       Call,
		Name:       name,
		Call:       fn,
		Pure:       pure,
		ArgIsArray: argIsArray,
		Children:   children,
	}
}

// NewClosureCall builds a closure-call node. Argument evaluation follows
// the same ArgIsArray rule as NewCall.
func NewClosureCall(name string, fn symtab.ClosureFunc, ctx any, pure bool, argIsArray []bool, children []*Node) *Node {
	return &Node{
		Kind:       ClosureCall,
		Name:       name,
		Closure:    fn,
		Context:    ctx,
		Pure:       pure,
		ArgIsArray: argIsArray,
		Children:   children,
	}
}

// Free recursively releases a tree. Go's garbage collector reclaims
// unreachable memory on its own, so Free's only real job is severing the
// Children slice (and bound pointers) so that a stray reference to a
// parent node can't keep the rest of an otherwise-discarded tree alive,
// and so that tests can assert a tree was actually torn down. Freeing a
// nil node is a no-op.
func Free(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		Free(c)
	}
	n.Children = nil
	n.Scalar = nil
	n.Array = nil
	n.Call = nil
	n.Closure = nil
	n.Context = nil
}

// Sprint renders a compiled tree as a parenthesized debug dump. It is
// cosmetic only: not part of the core contract, not exercised by
// constant folding or evaluation, and safe to change or drop entirely.
func Sprint(n *Node) string {
	var b strings.Builder
	sprint(&b, n)
	return b.String()
}

func sprint(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch n.Kind {
	case Literal:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case ScalarVar, ArrayVar:
		b.WriteString(n.Name)
	case Index:
		b.WriteString(n.Name)
		b.WriteByte('[')
		sprint(b, n.Children[0])
		b.WriteByte(']')
	case Call, ClosureCall:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			sprint(b, c)
		}
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<?kind=%d>", n.Kind)
	}
}
