package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/calc/lexer"
)

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BinaryExpr is an infix operation over two sub-expressions.
// Each node exclusively owns its Left and Right subtrees.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // TokPlus, TokMinus, TokStar or TokSlash.
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator, b.Right.Dump())
}
