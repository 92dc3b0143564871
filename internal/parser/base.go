/*
File    : numexpr/internal/parser/base.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

base.go implements the `base` and `postfix` productions: numeric literals,
variables (with optional chained array indexing), function/closure calls
of every declared arity, and parenthesized sublists.
*/
package parser

import (
	"github.com/rverma/numexpr/internal/ast"
	"github.com/rverma/numexpr/internal/lexer"
	"github.com/rverma/numexpr/internal/symtab"
)

// parseBase implements:
//
//	base := number
//	      | variable postfix?
//	      | func0 ('(' ')')?
//	      | func1 power
//	      | funcN '(' expr (',' expr){N-1} ')'            N >= 2
//	      | '(' list ')'
func (p *Parser) parseBase() *ast.Node {
	switch p.curr.Type {
	case lexer.NUMBER:
		v := p.curr.Num
		p.advance()
		return ast.NewLiteral(v)

	case lexer.LPAREN:
		p.advance()
		n := p.parseList()
		p.expect(lexer.RPAREN, "')'")
		return n

	case lexer.IDENT:
		return p.parseIdent()

	default:
		p.errorf("expected a number, identifier, or '('")
		p.advance()
		return ast.NewLiteral(0)
	}
}

func (p *Parser) parseIdent() *ast.Node {
	sym := p.curr.Sym
	tok := p.curr
	p.advance()

	switch sym.Kind {
	case symtab.KindScalar, symtab.KindArray:
		return p.parsePostfix(sym, tok)
	case symtab.KindFunction, symtab.KindClosure:
		return p.parseCall(sym)
	default:
		p.errorfAt(tok.Pos, "unresolvable identifier %q", sym.Name)
		return ast.NewLiteral(0)
	}
}

// parsePostfix implements `variable postfix?`. A scalar variable never
// takes an index. A bare array variable with no `[...]` evaluates to the
// array itself (meaningful only when passed to an array-consuming
// builtin); one or more `[expr]` groups index into it, each producing an
// Index node over the same backing array that replaces the node built for
// the previous group, so a[1][2] reads a[2]. Nested indexing (arr[arr[1]])
// comes from the index expression itself, which is its own Index node.
func (p *Parser) parsePostfix(sym symtab.Symbol, tok lexer.Token) *ast.Node {
	if sym.Kind == symtab.KindScalar {
		n := ast.NewScalarVar(sym.Name, sym.Scalar)
		if p.curr.Type == lexer.LBRACKET {
			p.errorfAt(tok.Pos, "%q is not an array", sym.Name)
		}
		return n
	}

	if p.curr.Type != lexer.LBRACKET {
		return ast.NewArrayVar(sym.Name, sym.Array)
	}

	n := ast.NewArrayVar(sym.Name, sym.Array)
	for p.curr.Type == lexer.LBRACKET {
		p.advance()
		idx := p.parseList()
		p.expect(lexer.RBRACKET, "']'")
		n = ast.NewIndex(sym.Name, sym.Array, idx)
	}
	return n
}

// parseCall implements the three function-call shapes: func0, func1 (no
// parens, binds like a prefix operator over one `power`), and funcN with
// a fully parenthesized, comma-separated argument list.
func (p *Parser) parseCall(sym symtab.Symbol) *ast.Node {
	var children []*ast.Node

	switch {
	case sym.Arity == 0:
		if p.curr.Type == lexer.LPAREN {
			p.advance()
			p.expect(lexer.RPAREN, "')'")
		}
	case sym.Arity == 1:
		children = []*ast.Node{p.parsePower()}
	default:
		p.expect(lexer.LPAREN, "'('")
		children = p.parseArgList(sym.Arity)
		p.expect(lexer.RPAREN, "')'")
	}

	if len(children) != sym.Arity {
		p.errorf("%q expects %d argument(s), got %d", sym.Name, sym.Arity, len(children))
	}

	if sym.Kind == symtab.KindClosure {
		return ast.NewClosureCall(sym.Name, sym.Closure, sym.Context, sym.Pure, sym.ArgIsArray, children)
	}
	return ast.NewCall(sym.Name, sym.Call, sym.Pure, sym.ArgIsArray, children)
}

// parseArgList parses one or more comma-separated `expr` productions (not
// `list`, so a bare comma inside an argument position is a separator, not
// the comma operator). n is only the expected count; parseCall reports a
// mismatch between it and the number of arguments actually parsed.
func (p *Parser) parseArgList(n int) []*ast.Node {
	args := make([]*ast.Node, 0, n)
	args = append(args, p.parseExpr())
	for p.curr.Type == lexer.COMMA {
		p.advance()
		args = append(args, p.parseExpr())
	}
	return args
}
