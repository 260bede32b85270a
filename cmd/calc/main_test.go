package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainCommand_Version(t *testing.T) {
	origArgs := os.Args
	origExit := exitFunc
	defer func() {
		os.Args = origArgs
		exitFunc = origExit
	}()

	code := -1
	os.Args = []string{"calc", "version"}
	exitFunc = func(c int) { code = c }

	main()
	assert.Equal(t, 0, code)
}

func TestMainCommand_UnknownCommand(t *testing.T) {
	origArgs := os.Args
	origExit := exitFunc
	defer func() {
		os.Args = origArgs
		exitFunc = origExit
	}()

	code := -1
	os.Args = []string{"calc", "no-such-command"}
	exitFunc = func(c int) { code = c }

	main()
	assert.Equal(t, 1, code)
}
