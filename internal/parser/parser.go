/*
File    : numexpr/internal/parser/parser.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package parser implements a hand-written recursive-descent parser for the
expression grammar:

	list    := expr (',' expr)*
	expr    := term   (('+'|'-') term)*
	term    := factor (('*'|'/'|'%'|'&'|'|') factor)*
	factor  := power  ('^' power)*
	power   := ('+'|'-')* base
	base    := number
	         | variable postfix?
	         | func0 ('(' ')')?
	         | func1 power
	         | funcN '(' expr (',' expr){N-1} ')'            N >= 2
	         | '(' list ')'
	postfix := ('[' list ']')+

Each precedence level gets its own method, mirroring the grammar directly
rather than a table-driven Pratt parser: the grammar is fixed and small
enough that the direct-recursion form reads as the spec itself.
*/
package parser

import (
	"fmt"
	"math"

	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/builtin"
	"github.com/rverma/numexpr/internal/lexer"
	"github.com/rverma/numexpr/internal/symtab"
)

// maxErrors caps the number of syntax faults collected in one parse, so a
// badly malformed input can't grow Errors without bound.
const maxErrors = 32

// Parser holds the state of one parse: the lexer it reads tokens from, a
// one-token lookahead, and the error list spec.md's ambient diagnostics
// channel calls for (see SPEC_FULL.md section 9).
type Parser struct {
	lex   *lexer.Lexer
	curr  lexer.Token
	first int // 1-based byte offset of the first error seen, 0 if none

	// Errors collects every syntax fault encountered, up to maxErrors.
	// Compile only ever surfaces the position of the first one, but
	// CompileVerbose exposes the whole list.
	Errors []string
}

// New creates a Parser over src, resolving identifiers against user first
// and then the sorted built-in table.
func New(src string, user []symtab.Symbol) *Parser {
	p := &Parser{lex: lexer.New(src, user, builtin.Table)}
	p.advance()
	return p
}

// Parse compiles the full input as a comma-separated list and returns the
// resulting tree. A non-zero int alongside the first error's 1-based byte
// offset is returned whenever any fault occurred, matching the external
// Compile contract; list always stops cleanly at an END token, reporting
// any trailing tokens as a fault.
func (p *Parser) Parse() (*ast.Node, int) {
	n := p.parseList()
	if p.curr.Type != lexer.END {
		p.errorf("unexpected trailing input")
	}
	if p.first != 0 {
		return nil, p.first
	}
	return n, 0
}

func (p *Parser) advance() {
	p.curr = p.lex.Advance()
	if p.curr.Type == lexer.ERROR {
		p.errorfAt(p.curr.Pos, "%s", p.curr.Err)
	}
}

func (p *Parser) errorf(format string, args ...any) {
	p.errorfAt(p.lex.Pos(), format, args...)
}

func (p *Parser) errorfAt(pos int, format string, args ...any) {
	if p.first == 0 {
		p.first = pos
	}
	if len(p.Errors) < maxErrors {
		p.Errors = append(p.Errors, fmt.Sprintf("%d: %s", pos, fmt.Sprintf(format, args...)))
	}
}

func (p *Parser) expect(t lexer.TokenType, what string) bool {
	if p.curr.Type != t {
		p.errorf("expected %s", what)
		return false
	}
	p.advance()
	return true
}

// parseList implements `list := expr (',' expr)*`. Each comma folds into a
// binary "comma" node whose value is its right operand — an ordinary AST
// shape, not a special grammar construct, matching spec.md's description
// of comma as a low-precedence binary operator.
func (p *Parser) parseList() *ast.Node {
	n := p.parseExpr()
	for p.curr.Type == lexer.COMMA {
		p.advance()
		rhs := p.parseExpr()
		n = commaNode(n, rhs)
	}
	return n
}

func commaNode(lhs, rhs *ast.Node) *ast.Node {
	return ast.NewCall(",", func(args []symtab.Arg) float64 {
		return args[1].Float()
	}, true, nil, []*ast.Node{lhs, rhs})
}

// parseExpr implements `expr := term (('+'|'-') term)*`.
func (p *Parser) parseExpr() *ast.Node {
	n := p.parseTerm()
	for p.curr.Type == lexer.INFIX && (p.curr.Op == '+' || p.curr.Op == '-') {
		op := p.curr.Op
		p.advance()
		rhs := p.parseTerm()
		n = addSubNode(op, n, rhs)
	}
	return n
}

func addSubNode(op byte, lhs, rhs *ast.Node) *ast.Node {
	name := "+"
	fn := func(args []symtab.Arg) float64 { return args[0].Float() + args[1].Float() }
	if op == '-' {
		name = "-"
		fn = func(args []symtab.Arg) float64 { return args[0].Float() - args[1].Float() }
	}
	return ast.NewCall(name, fn, true, nil, []*ast.Node{lhs, rhs})
}

// parseTerm implements `term := factor (('*'|'/'|'%'|'&'|'|') factor)*`.
func (p *Parser) parseTerm() *ast.Node {
	n := p.parseFactor()
	for p.curr.Type == lexer.INFIX && isTermOp(p.curr.Op) {
		op := p.curr.Op
		p.advance()
		rhs := p.parseFactor()
		n = termNode(op, n, rhs)
	}
	return n
}

func isTermOp(op byte) bool {
	switch op {
	case '*', '/', '%', '&', '|':
		return true
	}
	return false
}

func termNode(op byte, lhs, rhs *ast.Node) *ast.Node {
	name := string(op)
	var fn symtab.Func
	switch op {
	case '*':
		fn = func(args []symtab.Arg) float64 { return args[0].Float() * args[1].Float() }
	case '/':
		fn = func(args []symtab.Arg) float64 { return args[0].Float() / args[1].Float() }
	case '%':
		fn = func(args []symtab.Arg) float64 { return math.Mod(args[0].Float(), args[1].Float()) }
	case '&':
		fn = func(args []symtab.Arg) float64 { return builtin.BitAnd(args[0].Float(), args[1].Float()) }
	case '|':
		fn = func(args []symtab.Arg) float64 { return builtin.BitOr(args[0].Float(), args[1].Float()) }
	}
	return ast.NewCall(name, fn, true, nil, []*ast.Node{lhs, rhs})
}

// parseFactor implements `factor := power ('^' power)*`. Left-associative
// by default (sign applied per-operand, inside parsePower, before the fold
// — so -a^b parses as (-a)^b). ast.RightAssocPow switches to the
// right-recursive form with the sign deferred until after the whole power
// tower is built, so -a^b instead parses as -(a^b).
func (p *Parser) parseFactor() *ast.Node {
	if ast.RightAssocPow {
		return p.parseFactorRightAssoc()
	}
	n := p.parsePower()
	for p.curr.Type == lexer.INFIX && p.curr.Op == '^' {
		p.advance()
		rhs := p.parsePower()
		n = powNode(n, rhs)
	}
	return n
}

func (p *Parser) parseFactorRightAssoc() *ast.Node {
	neg := p.parseSigns()
	n := p.parseBase()
	if p.curr.Type == lexer.INFIX && p.curr.Op == '^' {
		p.advance()
		rhs := p.parseFactorRightAssoc()
		n = powNode(n, rhs)
	}
	if neg {
		n = negNode(n)
	}
	return n
}

func powNode(lhs, rhs *ast.Node) *ast.Node {
	return ast.NewCall("^", func(args []symtab.Arg) float64 {
		return math.Pow(args[0].Float(), args[1].Float())
	}, true, nil, []*ast.Node{lhs, rhs})
}

// parsePower implements `power := ('+'|'-')* base`.
func (p *Parser) parsePower() *ast.Node {
	neg := p.parseSigns()
	n := p.parseBase()
	if neg {
		n = negNode(n)
	}
	return n
}

// parseSigns consumes a run of leading '+'/'-' tokens and reports whether
// an odd number of '-' was seen.
func (p *Parser) parseSigns() bool {
	neg := false
	for p.curr.Type == lexer.INFIX && (p.curr.Op == '+' || p.curr.Op == '-') {
		if p.curr.Op == '-' {
			neg = !neg
		}
		p.advance()
	}
	return neg
}

func negNode(n *ast.Node) *ast.Node {
	return ast.NewCall("neg", func(args []symtab.Arg) float64 { return -args[0].Float() }, true, nil, []*ast.Node{n})
}
