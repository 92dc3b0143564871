/*
File    : numexpr/numexpr.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package numexpr is a tiny, embeddable arithmetic expression engine. It
compiles a textual expression and a caller-supplied symbol table into a
Tree, which can then be evaluated repeatedly to a float64.

The grammar, evaluation semantics, and the two error channels (a single
byte offset for Compile, NaN for Evaluate) are the whole of the public
contract; everything else (lexer, parser, AST, optimizer) is an
implementation detail under internal/.
*/
package numexpr

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/builtin"
	"github.com/rverma/numexpr/internal/eval"
	"github.com/rverma/numexpr/internal/parser"
	"github.com/rverma/numexpr/internal/symtab"
	"golang.org/x/sync/errgroup"
)

// Kind classifies a Symbol; an alias onto internal/symtab so the public
// surface doesn't need its own copy of the type.
type Kind = symtab.Kind

const (
	KindScalar   = symtab.KindScalar
	KindArray    = symtab.KindArray
	KindFunction = symtab.KindFunction
	KindClosure  = symtab.KindClosure
)

// Symbol describes one caller-supplied scalar, array, function, or
// closure binding. See internal/symtab.Symbol for field documentation.
type Symbol = symtab.Symbol

// Func and ClosureFunc are the callable shapes a Symbol of kind
// KindFunction/KindClosure may bind.
type Func = symtab.Func
type ClosureFunc = symtab.ClosureFunc

// Arg is a single evaluated call argument, scalar or array.
type Arg = symtab.Arg

// Tree is a compiled expression, ready to be evaluated any number of
// times against the bound variables it was compiled with.
type Tree struct {
	root *ast.Node
}

// Compile parses text against symbols (searched before the built-in
// table) and returns the compiled Tree. On any syntax fault, the
// returned Tree is nil and the int is the 1-based byte offset of the
// first fault; 0 means no error.
func Compile(text string, symbols []Symbol) (*Tree, int) {
	p := parser.New(text, symbols)
	root, pos := p.Parse()
	if pos != 0 {
		return nil, pos
	}
	return &Tree{root: eval.Optimize(root)}, 0
}

// CompileVerbose is like Compile but additionally returns every syntax
// fault collected during the parse, not just the first one's position —
// an ambient diagnostics convenience for hosts that want more than a
// single byte offset.
func CompileVerbose(text string, symbols []Symbol) (*Tree, int, []string) {
	p := parser.New(text, symbols)
	root, pos := p.Parse()
	if pos != 0 {
		return nil, pos, p.Errors
	}
	return &Tree{root: eval.Optimize(root)}, 0, nil
}

// Evaluate reduces a compiled Tree to its current value. A nil Tree
// evaluates to NaN.
func Evaluate(t *Tree) float64 {
	if t == nil {
		return math.NaN()
	}
	return eval.Evaluate(t.root)
}

// Interp compiles text with an empty symbol table, evaluates it once, and
// frees it. It returns NaN if text fails to compile.
func Interp(text string) float64 {
	t, pos := Compile(text, nil)
	if pos != 0 {
		return math.NaN()
	}
	defer Free(t)
	return Evaluate(t)
}

// Free tears down a compiled Tree. Go's garbage collector reclaims
// memory on its own; Free exists to honor the external lifecycle
// contract and to make a torn-down tree unusable by construction.
func Free(t *Tree) {
	if t == nil {
		return
	}
	ast.Free(t.root)
	t.root = nil
}

// Builtins returns the sorted built-in function/array-aggregate table,
// for hosts that want to introspect what identifiers are predefined.
func Builtins() []Symbol {
	out := make([]Symbol, len(builtin.Table))
	copy(out, builtin.Table)
	return out
}

// SetNaturalLog switches log(x) from base-10 (the default) to natural
// log, mirroring spec.md's build-time option. ln(x) is unaffected and
// always natural log. Call this once before compiling, not per call.
func SetNaturalLog(natural bool) {
	builtin.NaturalLog = natural
}

// SetRightAssociativePow switches '^' from its default left-associative
// parse (-a^b == (-a)^b) to right-associative (-a^b == -(a^b)). Call this
// once before compiling, not per call.
func SetRightAssociativePow(rightAssoc bool) {
	ast.RightAssocPow = rightAssoc
}

// ErrPosition formats a 1-based byte offset returned by Compile as a
// "line:column" string against source, for host error messages. It
// returns "" for a zero (no-error) offset.
func ErrPosition(source string, offset int) string {
	if offset <= 0 {
		return ""
	}
	if offset > len(source) {
		offset = len(source) + 1
	}
	line := 1 + strings.Count(source[:offset-1], "\n")
	col := offset - strings.LastIndex(source[:offset-1], "\n") - 1
	return strconv.Itoa(line) + ":" + strconv.Itoa(col)
}

// EvaluateBatch evaluates trees concurrently, bounded to limit
// simultaneous evaluations (limit <= 0 means unbounded), and returns
// their results in the same order as trees. It is a convenience for
// callers who already maintain independently-bound compiled trees and
// want to evaluate them in parallel; it performs no synchronization of
// any variables the trees are bound to; shared caller state is owned and
// synchronized by the caller. Modeled on the bounded-fan-out,
// ordered-results pattern of errgroup-based batch runners.
func EvaluateBatch(ctx context.Context, trees []*Tree, limit int) ([]float64, error) {
	results := make([]float64, len(trees))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, t := range trees {
		i, t := i, t
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = Evaluate(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
