package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/y-hirakaw/calc/internal/calculator"
)

func TestHistoryCommands(t *testing.T) {
	var out bytes.Buffer
	history := calculator.NewCalculations()
	r := NewDefaultRegistry(&out, nil, history)

	steps := []struct {
		name     string
		args     []string
		expected string
	}{
		{"history", nil, "No calculations in history.\n"},
		{"last", nil, "An error occurred: history index out of range: no calculations recorded\n"},
		{"add", []string{"1", "2"}, "The result of 1 add 2 is equal to 3.0\n"},
		{"subtract", []string{"5", "3"}, "The result of 5 subtract 3 is equal to 2.0\n"},
		{"history", nil, "1 + 2 = 3\n5 - 3 = 2\n"},
		{"last", nil, "5 - 3 = 2\n"},
		{"last", []string{"extra"}, "Usage: last\n"},
		{"clear", nil, "History cleared.\n"},
		{"history", nil, "No calculations in history.\n"},
	}

	for _, step := range steps {
		out.Reset()
		assert.NoError(t, r.Execute(step.name, step.args))
		assert.Equal(t, step.expected, out.String(), "step %s %v", step.name, step.args)
	}
}
