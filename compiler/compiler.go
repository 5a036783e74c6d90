// Package compiler lowers expression trees to stack-machine programs.
package compiler

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/vm"
)

// Compile lowers the expression to a linear program in post order: left
// subtree, right subtree, then the operator. Executed on a stack machine
// this preserves left-to-right operand evaluation.
//
// The output always holds 2n-1 instructions for n literals: n pushes and
// n-1 binary ops.
func Compile(expr ast.Expr) vm.Program {
	return compileExpr(nil, expr)
}

func compileExpr(program vm.Program, expr ast.Expr) vm.Program {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return append(program, vm.Instruction{Op: vm.OpPush, Value: e.Value})
	case ast.BinaryExpr:
		program = compileExpr(program, e.Left)
		program = compileExpr(program, e.Right)
		return append(program, vm.Instruction{Op: opcode(e.Operator)})
	default:
		panic(fmt.Errorf("unsupported expression type %T", expr))
	}
}

func opcode(op lexer.TokenType) vm.Opcode {
	switch op {
	case lexer.TokPlus:
		return vm.OpAdd
	case lexer.TokMinus:
		return vm.OpSub
	case lexer.TokStar:
		return vm.OpMul
	case lexer.TokSlash:
		return vm.OpDiv
	default:
		panic(fmt.Errorf("unsupported operator %s", op))
	}
}
