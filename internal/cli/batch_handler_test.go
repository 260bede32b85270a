package cli

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/testutil"
)

func TestParseBatch(t *testing.T) {
	data := []byte(`
- [1, "+", 2]
- {a: 5, op: "-", b: 3}
- [3, "*", 4]
- {a: 10, op: "/", b: 2}
`)
	ops, err := parseBatch(data)
	require.NoError(t, err)

	assert.Equal(t, []calculator.Operation{
		{A: 1, Operator: calculator.OpAdd, B: 2},
		{A: 5, Operator: calculator.OpSubtract, B: 3},
		{A: 3, Operator: calculator.OpMultiply, B: 4},
		{A: 10, Operator: calculator.OpDivide, B: 2},
	}, ops)
}

func TestParseBatch_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a list", "a: 1\n"},
		{"short tuple", "- [1, \"+\"]\n"},
		{"missing operand", "- {a: 1, op: \"+\"}\n"},
		{"non-numeric operand", "- [x, \"+\", 2]\n"},
		{"scalar entry", "- 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBatch([]byte(tt.data))
			require.Error(t, err)
			var friendly *errors.FriendlyError
			require.True(t, stderrors.As(err, &friendly))
			assert.Equal(t, errors.ErrorTypeInput, friendly.Type)
		})
	}
}

func TestBatchCommand_Stdin(t *testing.T) {
	res := runApp(t, "- [1, \"+\", 2]\n- [5, \"-\", 3]\n- [3, \"*\", 4]\n- [10, \"/\", 2]\n", "batch")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1 + 2 = 3\n5 - 3 = 2\n3 * 4 = 12\n10 / 2 = 5\n", res.stdout)
}

func TestBatchCommand_File(t *testing.T) {
	path := testutil.CreateTestFile(t, t.TempDir(), "ops.yaml", "- {a: 7, op: \"/\", b: 2}\n")

	res := runApp(t, "", "batch", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "7 / 2 = 3.5\n", res.stdout)
}

func TestBatchCommand_ModelErrorsPropagate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"division by zero", "- [1, \"+\", 2]\n- [1, \"/\", 0]\n", "Cannot divide by zero."},
		{"invalid operator", "- [1, \"^\", 2]\n", "Invalid operator: ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runApp(t, tt.input, "batch")
			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout, "no partial history is printed")
			assert.Contains(t, res.stderr, tt.message)
		})
	}
}

func TestBatchCommand_MissingFile(t *testing.T) {
	res := runApp(t, "", "batch", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Failed to read batch operations")
}
