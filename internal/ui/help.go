package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/y-hirakaw/calc/internal/commands"
	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/i18n"
	"github.com/y-hirakaw/calc/internal/utils"
)

// HelpSystem はメニュー・バージョン・エラー表示を提供する
type HelpSystem struct {
	version string
	appName string
	out     io.Writer
	errOut  io.Writer
}

// NewHelpSystem は新しいヘルプシステムを作成する
func NewHelpSystem(appName, version string) *HelpSystem {
	return &HelpSystem{
		version: version,
		appName: appName,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetOutput は出力先を変更する
func (h *HelpSystem) SetOutput(out, errOut io.Writer) {
	h.out = out
	h.errOut = errOut
}

// ShowWelcome はREPL開始時の案内を表示する
func (h *HelpSystem) ShowWelcome() {
	fmt.Fprintf(h.out, "%s v%s\n", h.appName, h.version)
	fmt.Fprintln(h.out, i18n.T("repl_welcome"))
}

// ShowMenu はコマンド一覧を表示する
func (h *HelpSystem) ShowMenu(cmds []commands.Command) {
	fmt.Fprintln(h.out, i18n.T("menu_header"))

	width := 0
	for _, cmd := range cmds {
		if len(cmd.Usage()) > width {
			width = len(cmd.Usage())
		}
	}
	for _, cmd := range cmds {
		fmt.Fprintf(h.out, "  %s  %s\n", utils.PadString(cmd.Usage(), width), cmd.Description())
	}
	fmt.Fprintf(h.out, "  %s  %s\n", utils.PadString("menu", width), "Show this menu")
	fmt.Fprintf(h.out, "  %s  %s\n", utils.PadString("exit", width), "Exit the calculator")
}

// ShowVersion はバージョン情報を表示する
func (h *HelpSystem) ShowVersion() {
	fmt.Fprintf(h.out, "%s version %s\n", h.appName, h.version)
}

// ShowError はエラーメッセージを標準エラー出力に表示する
func (h *HelpSystem) ShowError(err error) {
	fmt.Fprintln(h.errOut, errors.FormatError(err))
}
