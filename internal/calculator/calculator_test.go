package calculator

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-hirakaw/calc/internal/errors"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{1, 2, 3},
		{3.5, 2.5, 6.0},
		{-1, -1, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Add(tt.a, tt.b))
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{5, 3, 2},
		{2, 5, -3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Subtract(tt.a, tt.b))
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{3, 4, 12},
		{-2, 3, -6},
		{0, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Multiply(tt.a, tt.b))
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{10, 2, 5},
		{9, 3, 3},
		{7, 2, 3.5},
	}
	for _, tt := range tests {
		got, err := Divide(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestDivide_ByZero(t *testing.T) {
	for _, a := range []float64{10, 0, -3.5} {
		_, err := Divide(a, 0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrDivisionByZero))
		assert.Equal(t, "Cannot divide by zero.", err.Error())
	}
}

func TestParseOperator(t *testing.T) {
	for _, op := range Operators {
		got, err := ParseOperator(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
		assert.NotEmpty(t, got.Verb())
	}

	_, err := ParseOperator("^")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidOperator))
	assert.Empty(t, Operator("^").Verb())
}
