/*
File    : numexpr/internal/symtab/symtab.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package symtab implements the symbol resolver: the data model a compiled
expression binds against (scalar variables, array variables, functions,
and closures of arity 0-7) and the two-stage lookup an identifier goes
through during lexing — first the caller's table, then the sorted
built-in table.
*/
package symtab

import "sort"

// Kind classifies a Symbol. It is the "kind tag" half of the spec's
// combined kind+purity type code; purity is tracked separately on Symbol
// so that it applies uniformly to functions and closures alike.
type Kind int

const (
	// KindScalar identifies a symbol bound to a single readable float64.
	KindScalar Kind = iota
	// KindArray identifies a symbol bound to a host array: element 0 of
	// the backing slice holds the length L, elements 1..L hold the data.
	KindArray
	// KindFunction identifies a symbol bound to a pure-Go callable of
	// declared arity 0-7.
	KindFunction
	// KindClosure identifies a symbol bound to a callable of declared
	// arity 0-7 that also receives an opaque, caller-supplied context
	// value as a hidden first argument.
	KindClosure
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// Arg is a single evaluated call argument. Most builtins only ever see
// the Float form; the handful of array-consuming aggregates (sum, min,
// max, length, linear interpolation) receive the raw bound slice instead
// by virtue of the callee's ArgIsArray attribute — see Symbol.ArgIsArray.
type Arg struct {
	scalar  float64
	array   []float64
	isArray bool
}

// ScalarArg wraps an evaluated float64 as a call argument.
func ScalarArg(f float64) Arg { return Arg{scalar: f} }

// ArrayArg wraps a raw bound slice as a call argument. The slice is
// already trimmed to its logical length (the length-in-element-0
// convention is a boundary concern resolved by the caller of ArrayArg,
// not by Arg itself).
func ArrayArg(a []float64) Arg { return Arg{array: a, isArray: true} }

// IsArray reports whether this argument carries a raw array rather than
// an evaluated scalar.
func (a Arg) IsArray() bool { return a.isArray }

// Float returns the scalar value of the argument. It is zero for an
// array argument.
func (a Arg) Float() float64 { return a.scalar }

// Slice returns the backing data of an array argument. It is nil for a
// scalar argument.
func (a Arg) Slice() []float64 { return a.array }

// Func is a plain function callable: given its evaluated arguments (in
// declaration order), it returns a float64. This models spec.md's
// "function of arity N" without needing eight distinct function-pointer
// types — arity is enforced by the parser, not the Go type system, per
// the Design Notes' "closures-over-a-vector" rewrite suggestion.
type Func func(args []Arg) float64

// ClosureFunc is like Func but additionally receives the symbol's opaque
// context value as a leading, hidden parameter.
type ClosureFunc func(ctx any, args []Arg) float64

// Symbol describes one entry of a symbol table: a caller-supplied
// variable/array/function/closure, or a built-in. Exactly one of Scalar,
// Array, Call, Closure is meaningful, selected by Kind.
type Symbol struct {
	// Name is the identifier this symbol resolves under. Case-sensitive,
	// non-empty.
	Name string
	// Kind selects which of the payload fields below is live.
	Kind Kind
	// Arity is the declared argument count for Function/Closure symbols,
	// in [0,7].
	Arity int
	// Pure marks a Function/Closure as side-effect-free and dependent
	// only on its arguments, making it eligible for constant folding.
	Pure bool

	// Scalar is the bound storage for a KindScalar symbol.
	Scalar *float64
	// Array is the bound storage for a KindArray symbol. Array[0] is the
	// length L (truncated on read); Array[1:L+1] is the data.
	Array *[]float64

	// Call is the callable for a KindFunction symbol.
	Call Func
	// Closure is the callable for a KindClosure symbol.
	Closure ClosureFunc
	// Context is the opaque value passed to Closure ahead of the real
	// arguments.
	Context any

	// ArgIsArray marks, per argument position, whether the evaluator
	// must pass the raw bound array storage of that argument instead of
	// its evaluated value; an argument there that is not a bare array
	// variable makes the whole call evaluate to NaN. Nil means "all arguments are
	// evaluated normally". This is the attribute-on-the-descriptor
	// rewrite spec.md's Design Notes call for, replacing a dispatch on
	// specific function identity.
	ArgIsArray []bool
}

// Table is a symbol table sorted by Name, suitable for binary-search
// resolution. Builtin tables are constructed once, sorted, and reused;
// caller-supplied tables are searched linearly and need not be sorted.
type Table []Symbol

// SortByName sorts t in place by Name, the precondition Resolve's binary
// search over the built-in table requires.
func (t Table) SortByName() {
	sort.Slice(t, func(i, j int) bool { return t[i].Name < t[j].Name })
}

// Lookup performs a binary search for name in a table that has already
// been sorted with SortByName. The second return value is false if no
// such symbol exists.
func (t Table) Lookup(name string) (Symbol, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Name >= name })
	if i < len(t) && t[i].Name == name {
		return t[i], true
	}
	return Symbol{}, false
}

// Resolve classifies an identifier against the caller's symbol table
// first (linear scan, first match wins — this lets a host shadow a
// built-in by listing a same-named symbol first) and falls back to the
// sorted built-in table. It reports false if neither table has an entry.
func Resolve(name string, user []Symbol, builtins Table) (Symbol, bool) {
	for _, s := range user {
		if s.Name == name {
			return s, true
		}
	}
	return builtins.Lookup(name)
}
