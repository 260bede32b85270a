package interactive

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/y-hirakaw/calc/internal/commands"
	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/i18n"
	"github.com/y-hirakaw/calc/internal/ui"
	"github.com/y-hirakaw/calc/internal/utils"
)

// Repl は1行ずつコマンドを読み込んで実行する対話ループ
type Repl struct {
	reader   *bufio.Reader
	out      io.Writer
	prompt   string
	registry *commands.Registry
	help     *ui.HelpSystem
}

// NewRepl は新しいReplを作成する
func NewRepl(in io.Reader, out io.Writer, registry *commands.Registry, help *ui.HelpSystem) *Repl {
	return &Repl{
		reader:   bufio.NewReader(in),
		out:      out,
		prompt:   "> ",
		registry: registry,
		help:     help,
	}
}

// SetPrompt はプロンプト文字列を設定する
func (r *Repl) SetPrompt(prompt string) {
	r.prompt = prompt
}

type readResult struct {
	line string
	err  error
}

// Run は EOF・exit・ctx のキャンセルまでループする。
// キャンセルは読み込み待ちの間も受け付け、exit と同じく正常終了する
func (r *Repl) Run(ctx context.Context) error {
	r.help.ShowWelcome()

	lines := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	// 読み込みは ReadString で止まるので別 goroutine に逃がす。
	// キャンセル後も入力が来るまでは残るが、次の行は読まない
	go func() {
		for {
			line, err := r.reader.ReadString('\n')
			select {
			case lines <- readResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, i18n.T("repl_exit"))
			return nil
		}

		fmt.Fprint(r.out, r.prompt)

		var res readResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, i18n.T("repl_exit"))
			return nil
		case res = <-lines:
		}

		if res.err != nil && !stderrors.Is(res.err, io.EOF) {
			return fmt.Errorf("reading input: %w", res.err)
		}

		if stop := r.handleLine(res.line); stop {
			return nil
		}
		if stderrors.Is(res.err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
	}
}

// handleLine は1行を実行し、終了すべきなら true を返す
func (r *Repl) handleLine(line string) bool {
	if utils.IsEmptyOrWhitespace(line) {
		return false
	}
	fields := strings.Fields(line)

	name := strings.ToLower(fields[0])
	switch name {
	case "exit":
		fmt.Fprintln(r.out, i18n.T("repl_exit"))
		return true
	case "menu":
		r.help.ShowMenu(r.registry.Commands())
		return false
	}

	if err := r.registry.Execute(name, fields[1:]); err != nil {
		if stderrors.Is(err, errors.ErrUnknownCommand) {
			fmt.Fprintln(r.out, i18n.T("no_such_command", name))
			return false
		}
		r.help.ShowError(err)
	}
	return false
}
