package interactive

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/commands"
	"github.com/y-hirakaw/calc/internal/ui"
)

func runRepl(t *testing.T, ctx context.Context, input string) (string, *calculator.Calculations, error) {
	t.Helper()
	var out bytes.Buffer
	history := calculator.NewCalculations()
	registry := commands.NewDefaultRegistry(&out, nil, history)
	help := ui.NewHelpSystem("calc", "test")
	help.SetOutput(&out, &out)

	repl := NewRepl(strings.NewReader(input), &out, registry, help)
	repl.SetPrompt("")
	err := repl.Run(ctx)
	return out.String(), history, err
}

func TestRepl_Session(t *testing.T) {
	input := strings.Join([]string{
		"add 2 3",
		"",
		"DIVIDE 10 0",
		"multiply 3 4",
		"history",
		"pow 2 3",
		"exit",
		"add 1 1",
	}, "\n")

	out, history, err := runRepl(t, context.Background(), input)
	require.NoError(t, err)

	assert.Contains(t, out, "The result of 2 add 3 is equal to 5.0\n")
	assert.Contains(t, out, "An error occurred: Cannot divide by zero.\n")
	assert.Contains(t, out, "2 + 3 = 5\n3 * 4 = 12\n")
	assert.Contains(t, out, "No such command: pow\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	assert.NotContains(t, out, "1 add 1", "input after exit must be ignored")
	assert.Equal(t, 2, history.Len())
}

func TestRepl_Menu(t *testing.T) {
	out, _, err := runRepl(t, context.Background(), "menu\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "divide <a> <b>")
}

func TestRepl_EOFWithoutNewline(t *testing.T) {
	out, history, err := runRepl(t, context.Background(), "subtract 5 3")
	require.NoError(t, err)

	assert.Contains(t, out, "The result of 5 subtract 3 is equal to 2.0\n")
	assert.Equal(t, 1, history.Len())
}

func TestRepl_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, history, err := runRepl(t, ctx, "add 1 2\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "The result of")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	assert.Zero(t, history.Len())
}

func TestRepl_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var out bytes.Buffer
	registry := commands.NewDefaultRegistry(&out, nil, calculator.NewCalculations())
	help := ui.NewHelpSystem("calc", "test")
	help.SetOutput(&out, &out)
	repl := NewRepl(pr, &out, registry, help)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- repl.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
