package compiler_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/compiler"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/vm"
)

func push(v float64) vm.Instruction { return vm.Instruction{Op: vm.OpPush, Value: v} }

func TestCompileLiteral(t *testing.T) {
	program := compiler.Compile(ast.NumberExpr{Value: 42})
	expected := vm.Program{push(42)}
	if diff := cmp.Diff(expected, program); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestCompilePostOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected vm.Program
	}{
		{
			name:     "single binary op",
			input:    "1 + 2",
			expected: vm.Program{push(1), push(2), {Op: vm.OpAdd}},
		},
		{
			// Left subtree first, then right, then the operator.
			name:  "parens then multiply",
			input: "( 1 + 2 ) * 3",
			expected: vm.Program{
				push(1), push(2), {Op: vm.OpAdd},
				push(3),
				{Op: vm.OpMul},
			},
		},
		{
			name:  "all operators",
			input: "1 - 2 * 3 / 4",
			expected: vm.Program{
				push(1),
				push(2),
				push(3), push(4), {Op: vm.OpDiv},
				{Op: vm.OpMul},
				{Op: vm.OpSub},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.Parse(lexer.New(tt.input))
			require.NoError(t, err, "Parse failed")
			program := compiler.Compile(expr)
			if diff := cmp.Diff(tt.expected, program); diff != "" {
				t.Fatalf("program mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The output always holds 2n-1 instructions for n literals.
func TestCompileLength(t *testing.T) {
	tests := []struct {
		input    string
		literals int
	}{
		{input: "5", literals: 1},
		{input: "1 + 2", literals: 2},
		{input: "( 1 + 2 ) * 3", literals: 3},
		{input: "( 1 + 2 ) * 3 + 2 * 3", literals: 5},
		{input: "1 + 2 + 3 + 4 + 5 + 6 + 7", literals: 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := parser.Parse(lexer.New(tt.input))
			require.NoError(t, err, "Parse failed")
			program := compiler.Compile(expr)
			require.Len(t, program, 2*tt.literals-1, "instruction count mismatch")
		})
	}
}

func TestProgramDump(t *testing.T) {
	expr, err := parser.Parse(lexer.New("( 1 + 2 ) * 3"))
	require.NoError(t, err, "Parse failed")
	expected := strings.Join([]string{"push 1", "push 2", "add", "push 3", "mul"}, "\n") + "\n"
	require.Equal(t, expected, compiler.Compile(expr).Dump(), "listing mismatch")
}
