/*
File    : numexpr/internal/builtin/builtin.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package builtin provides the engine's standard built-in table: the
mathematical functions and array aggregates spec.md section 6 requires,
sorted by name so internal/symtab.Table.Lookup can binary-search them.
Every entry is Pure.
*/
package builtin

import "math"

import "github.com/rverma/numexpr/internal/symtab"

// Arg is an alias for symtab.Arg so builtin callbacks don't need to
// import symtab directly by name in every file.
type Arg = symtab.Arg

// NaturalLog switches log(x) from its default base-10 behavior to
// natural log, matching spec.md 6's "a build option switches it to
// natural log". ln(x) is always natural log regardless of this flag.
// Like ast.RightAssocPow, this is meant to be set once before any
// Compile call, not varied per call.
var NaturalLog = false

func num1(f func(float64) float64) symtab.Func {
	return func(args []Arg) float64 { return f(args[0].Float()) }
}

func num2(f func(float64, float64) float64) symtab.Func {
	return func(args []Arg) float64 { return f(args[0].Float(), args[1].Float()) }
}

// BitAnd implements the '&' infix operator: round both operands to the
// nearest 53-bit-safe integer and AND them, or NaN if either operand is
// out of range. Shared with the bit/xor builtins' validation via Bits53.
func BitAnd(a, b float64) float64 {
	ua, ok1 := Bits53(a)
	ub, ok2 := Bits53(b)
	if !ok1 || !ok2 {
		return math.NaN()
	}
	return float64(ua & ub)
}

// BitOr implements the '|' infix operator; see BitAnd.
func BitOr(a, b float64) float64 {
	ua, ok1 := Bits53(a)
	ub, ok2 := Bits53(b)
	if !ok1 || !ok2 {
		return math.NaN()
	}
	return float64(ua | ub)
}

func bitXor(a, b float64) float64 {
	ua, ok1 := Bits53(a)
	ub, ok2 := Bits53(b)
	if !ok1 || !ok2 {
		return math.NaN()
	}
	return float64(ua ^ ub)
}

func bitTest(n, i float64) float64 {
	un, ok := Bits53(n)
	if !ok {
		return math.NaN()
	}
	bi := math.Trunc(i)
	if bi < 0 || bi >= 53 {
		return math.NaN()
	}
	if un&(1<<uint(bi)) != 0 {
		return 1
	}
	return 0
}

func logFn(args []Arg) float64 {
	if NaturalLog {
		return math.Log(args[0].Float())
	}
	return math.Log10(args[0].Float())
}

// Table is the sorted built-in table. Sorted once at package init so
// every lookup is a binary search.
var Table symtab.Table

func init() {
	Table = symtab.Table{
		{Name: "abs", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Abs)},
		{Name: "acos", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Acos)},
		{Name: "arrlen", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: arrlen, ArgIsArray: []bool{true}},
		{Name: "arrmax", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: arrmax, ArgIsArray: []bool{true}},
		{Name: "arrmin", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: arrmin, ArgIsArray: []bool{true}},
		{Name: "asin", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Asin)},
		{Name: "atan", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Atan)},
		{Name: "atan2", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: num2(math.Atan2)},
		{Name: "bit", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: num2(bitTest)},
		{Name: "ceil", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Ceil)},
		{Name: "cos", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Cos)},
		{Name: "cosh", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Cosh)},
		{Name: "e", Kind: symtab.KindFunction, Arity: 0, Pure: true, Call: func(args []Arg) float64 { return math.E }},
		{Name: "exp", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Exp)},
		{Name: "fac", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(factorial)},
		{Name: "floor", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Floor)},
		{Name: "linear_interpolate", Kind: symtab.KindFunction, Arity: 3, Pure: true, Call: linearInterpolate, ArgIsArray: []bool{true, true, false}},
		{Name: "ln", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Log)},
		{Name: "log", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: logFn},
		{Name: "log10", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Log10)},
		{Name: "ncr", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: num2(combinations)},
		{Name: "npr", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: num2(permutations)},
		{Name: "pi", Kind: symtab.KindFunction, Arity: 0, Pure: true, Call: func(args []Arg) float64 { return math.Pi }},
		{Name: "pow", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: num2(math.Pow)},
		{Name: "sin", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Sin)},
		{Name: "sinh", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Sinh)},
		{Name: "sqrt", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Sqrt)},
		{Name: "sum", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: sum, ArgIsArray: []bool{true}},
		{Name: "tan", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Tan)},
		{Name: "tanh", Kind: symtab.KindFunction, Arity: 1, Pure: true, Call: num1(math.Tanh)},
		{Name: "xor", Kind: symtab.KindFunction, Arity: 2, Pure: true, Call: num2(bitXor)},
	}
	Table.SortByName()
}
