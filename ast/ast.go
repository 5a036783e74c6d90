// Package ast defines the expression tree produced by the parser.
package ast

// Expr represents any arithmetic expression node.
//
// The node set is closed: an expression is either a NumberExpr leaf or a
// BinaryExpr with two sub-expressions. Consumers dispatch with a type
// switch.
type Expr interface {
	Dump() string
	expr()
}
