// Package parser implements a recursive-descent parser for infix
// arithmetic expressions and drives the compile/run pipeline.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/compiler"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/vm"
)

type parser struct {
	lex *lexer.Lexer

	curToken lexer.Token
}

func newParser(lex *lexer.Lexer) *parser {
	return &parser{lex: lex}
}

// Parse consumes the token stream and returns the expression tree.
// The whole input must be a single expression: anything left over after
// the top-level expression is an error.
func Parse(lex *lexer.Lexer) (ast.Expr, error) {
	p := newParser(lex)
	p.nextToken()

	expr, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	// The grammar alone would stop early on trailing tokens
	// (e.g. "1 + 2 3"), silently dropping input. Require EOF instead.
	if err := p.curToken.Err(); err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, &ParseError{Kind: UnexpectedToken, Token: p.curToken}
	}
	return expr, nil
}

// Run evaluates an expression end to end: lex, parse, compile, run.
func Run(input string) (float64, error) {
	expr, err := Parse(lexer.New(input))
	if err != nil {
		return 0, err
	}
	return vm.Run(compiler.Compile(expr))
}

func (p *parser) nextToken() lexer.Token {
	p.curToken = p.lex.NextToken()
	return p.curToken
}
