// Package vm executes compiled expression programs on an operand stack.
package vm

import "fmt"

// RuntimeErrorKind discriminates the ways a program can fail to run.
type RuntimeErrorKind int

const (
	// StackUnderflow: a binary op ran with fewer than two operands.
	StackUnderflow RuntimeErrorKind = iota
	// MalformedProgram: the final stack doesn't hold exactly one value.
	MalformedProgram
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case StackUnderflow:
		return "stack underflow"
	case MalformedProgram:
		return "malformed program"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// RuntimeError is the typed failure for a program the VM can't execute.
// A correct compiler never produces one; the checks guard against
// hand-built programs.
type RuntimeError struct {
	Kind RuntimeErrorKind
	PC   int // Index of the faulting instruction, -1 for end-of-program checks.
}

func (e *RuntimeError) Error() string {
	if e.PC < 0 {
		return fmt.Sprintf("runtime: %s", e.Kind)
	}
	return fmt.Sprintf("runtime: %s at instruction %d", e.Kind, e.PC)
}

// Run executes the program against an empty operand stack and returns the
// single value left on it. Binary ops pop the right operand first, so the
// earlier-pushed value is the left operand.
//
// Division by zero is not an error: the IEEE 754 result (±Inf or NaN)
// propagates like any other float64.
func Run(program Program) (float64, error) {
	stack := make([]float64, 0, len(program)/2+1)

	for pc, ins := range program {
		if ins.Op == OpPush {
			stack = append(stack, ins.Value)
			continue
		}
		if len(stack) < 2 {
			return 0, &RuntimeError{Kind: StackUnderflow, PC: pc}
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v float64
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpSub:
			v = a - b
		case OpMul:
			v = a * b
		case OpDiv:
			v = a / b
		default:
			return 0, fmt.Errorf("unknown opcode %d at instruction %d", ins.Op, pc)
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, &RuntimeError{Kind: MalformedProgram, PC: -1}
	}
	return stack[0], nil
}
