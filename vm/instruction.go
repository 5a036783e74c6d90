package vm

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode identifies a stack-machine operation.
type Opcode uint8

const (
	OpPush Opcode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op Opcode) String() string {
	switch op {
	case OpPush:
		return "push"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	}
	return fmt.Sprintf("unknown(%d)", uint8(op))
}

// Instruction is a single operation. Value is only meaningful for OpPush.
type Instruction struct {
	Op    Opcode
	Value float64
}

func (ins Instruction) String() string {
	if ins.Op == OpPush {
		return "push " + strconv.FormatFloat(ins.Value, 'g', -1, 64)
	}
	return ins.Op.String()
}

// Program is an ordered instruction sequence, executed front to back.
type Program []Instruction

// Dump returns the program as one instruction per line.
func (p Program) Dump() string {
	var sb strings.Builder
	for _, ins := range p {
		sb.WriteString(ins.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
