package parser

import (
	"fmt"
	"strconv"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// Grammar:
//
//	Expression ::= Product (('+'|'-') Expression)?
//	Product    ::= Value   (('*'|'/') Product)?
//	Value      ::= Number | '(' Expression ')'
//
// Precedence is structural: Product nests inside Expression, so '*' and
// '/' bind tighter than '+' and '-'. The grammar recurses on the right,
// which makes every operator right-associative: "10 - 5 - 2" parses as
// "10 - (5 - 2)". That quirk is intentional and pinned by tests.

func parseExpression(p *parser) (ast.Expr, error) {
	left, err := parseProduct(p)
	if err != nil {
		return nil, err
	}

	if p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		op := p.curToken.Type
		p.nextToken()
		right, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Left: left, Operator: op, Right: right}, nil
	}

	return left, nil
}

func parseProduct(p *parser) (ast.Expr, error) {
	left, err := parseValue(p)
	if err != nil {
		return nil, err
	}

	if p.curToken.Type.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		op := p.curToken.Type
		p.nextToken()
		right, err := parseProduct(p)
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Left: left, Operator: op, Right: right}, nil
	}

	return left, nil
}

func parseValue(p *parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		number, err := strconv.ParseFloat(p.curToken.Value, 64)
		if err != nil {
			// The lexer only emits digit runs, so this shouldn't happen.
			return nil, fmt.Errorf("invalid number %q: %w", p.curToken.Value, err)
		}
		p.nextToken()
		return ast.NumberExpr{Value: number}, nil

	case lexer.TokParenLeft:
		p.nextToken()
		expr, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		if p.curToken.Type != lexer.TokParenRight {
			if err := p.curToken.Err(); err != nil {
				return nil, err
			}
			return nil, &ParseError{Kind: UnmatchedParenthesis, Token: p.curToken}
		}
		p.nextToken()
		return expr, nil

	case lexer.TokError:
		return nil, p.curToken.Err()

	default:
		return nil, p.errUnexpected()
	}
}
