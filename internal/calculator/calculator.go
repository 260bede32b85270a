// Package calculator holds the arithmetic operations and the in-memory
// calculation history.
package calculator

import (
	"github.com/y-hirakaw/calc/internal/errors"
)

// Add returns a+b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a-b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a*b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a/b. A zero divisor yields the division-by-zero error.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.DivisionByZero()
	}
	return a / b, nil
}
