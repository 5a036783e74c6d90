package vm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/vm"
)

func push(v float64) vm.Instruction { return vm.Instruction{Op: vm.OpPush, Value: v} }

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		program  vm.Program
		expected float64
	}{
		{
			name:     "single push",
			program:  vm.Program{push(5)},
			expected: 5,
		},
		{
			name:     "add",
			program:  vm.Program{push(1), push(2), {Op: vm.OpAdd}},
			expected: 3,
		},
		{
			// Pop order: b then a, result a-b. The earlier push is the
			// left operand.
			name:     "sub operand order",
			program:  vm.Program{push(10), push(4), {Op: vm.OpSub}},
			expected: 6,
		},
		{
			name:     "div operand order",
			program:  vm.Program{push(8), push(2), {Op: vm.OpDiv}},
			expected: 4,
		},
		{
			name: "nested",
			program: vm.Program{
				push(1), push(2), {Op: vm.OpAdd},
				push(3),
				{Op: vm.OpMul},
			},
			expected: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := vm.Run(tt.program)
			require.NoError(t, err, "Run failed")
			assert.Equal(t, tt.expected, result, "Result mismatch")
		})
	}
}

func TestRunIsPure(t *testing.T) {
	program := vm.Program{push(2), push(3), {Op: vm.OpMul}}
	first, err := vm.Run(program)
	require.NoError(t, err, "first Run failed")
	second, err := vm.Run(program)
	require.NoError(t, err, "second Run failed")
	assert.Equal(t, first, second, "same program must yield the same result")
}

func TestRunDivisionByZero(t *testing.T) {
	result, err := vm.Run(vm.Program{push(1), push(0), {Op: vm.OpDiv}})
	require.NoError(t, err, "Run failed")
	assert.True(t, math.IsInf(result, 1), "expected +Inf, got %g", result)

	result, err = vm.Run(vm.Program{push(-1), push(0), {Op: vm.OpDiv}})
	require.NoError(t, err, "Run failed")
	assert.True(t, math.IsInf(result, -1), "expected -Inf, got %g", result)

	result, err = vm.Run(vm.Program{push(0), push(0), {Op: vm.OpDiv}})
	require.NoError(t, err, "Run failed")
	assert.True(t, math.IsNaN(result), "expected NaN, got %g", result)
}

func TestRunStackUnderflow(t *testing.T) {
	tests := []struct {
		name    string
		program vm.Program
		pc      int
	}{
		{name: "op on empty stack", program: vm.Program{{Op: vm.OpAdd}}, pc: 0},
		{name: "op with one operand", program: vm.Program{push(1), {Op: vm.OpMul}}, pc: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vm.Run(tt.program)
			var runtimeErr *vm.RuntimeError
			require.ErrorAs(t, err, &runtimeErr, "expected a *RuntimeError")
			assert.Equal(t, vm.StackUnderflow, runtimeErr.Kind, "wrong error kind")
			assert.Equal(t, tt.pc, runtimeErr.PC, "wrong faulting pc")
		})
	}
}

func TestRunMalformedProgram(t *testing.T) {
	tests := []struct {
		name    string
		program vm.Program
	}{
		{name: "empty program", program: nil},
		{name: "leftover operands", program: vm.Program{push(1), push(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vm.Run(tt.program)
			var runtimeErr *vm.RuntimeError
			require.ErrorAs(t, err, &runtimeErr, "expected a *RuntimeError")
			assert.Equal(t, vm.MalformedProgram, runtimeErr.Kind, "wrong error kind")
		})
	}
}
