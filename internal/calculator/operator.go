package calculator

import (
	"github.com/y-hirakaw/calc/internal/errors"
)

// Operator is the symbol of a binary arithmetic operation.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// Operators lists the supported operators in display order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOperator converts s to an Operator, failing for unknown symbols.
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.Valid() {
		return "", errors.InvalidOperator(s)
	}
	return op, nil
}

// Valid reports whether op is one of +, -, *, /.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// Verb returns the command name that performs op.
func (op Operator) Verb() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	return ""
}

func (op Operator) apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	return 0, errors.InvalidOperator(string(op))
}
