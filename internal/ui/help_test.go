package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/y-hirakaw/calc/internal/commands"
	"github.com/y-hirakaw/calc/internal/errors"
)

func newTestHelp() (*HelpSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	h := NewHelpSystem("calc", "1.0.0")
	h.SetOutput(&out, &errOut)
	return h, &out, &errOut
}

func TestShowMenu(t *testing.T) {
	h, out, _ := newTestHelp()
	registry := commands.NewDefaultRegistry(&bytes.Buffer{}, nil, nil)

	h.ShowMenu(registry.Commands())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "Available commands:", lines[0])
	assert.Len(t, lines, 1+len(registry.Commands())+2)
	assert.True(t, strings.HasPrefix(lines[1], "  add <a> <b>"))
	assert.Contains(t, lines[len(lines)-1], "exit")
}

func TestShowVersionAndWelcome(t *testing.T) {
	h, out, _ := newTestHelp()

	h.ShowVersion()
	h.ShowWelcome()

	assert.Equal(t, "calc version 1.0.0\ncalc v1.0.0\nType 'menu' to list commands or 'exit' to exit.\n", out.String())
}

func TestShowError(t *testing.T) {
	h, out, errOut := newTestHelp()
	errors.SetColorEnabled(false)

	h.ShowError(errors.UnknownCommand("pow"))

	assert.Empty(t, out.String())
	assert.True(t, strings.HasPrefix(errOut.String(), "Error: Unknown command: pow"))
}
