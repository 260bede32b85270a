package commands

import (
	"fmt"
	"io"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/i18n"
)

// historyCommand は引数を取らない履歴操作コマンドの共通部分
type historyCommand struct {
	name        string
	description string
	out         io.Writer
	history     *calculator.Calculations
}

func (c *historyCommand) Name() string        { return c.name }
func (c *historyCommand) Usage() string       { return c.name }
func (c *historyCommand) Description() string { return c.description }

func (c *historyCommand) checkArgs(args []string) bool {
	if len(args) != 0 {
		fmt.Fprintln(c.out, i18n.T("usage_noargs", c.name))
		return false
	}
	return true
}

// HistoryCommand は履歴を古い順に1行ずつ出力する
type HistoryCommand struct {
	historyCommand
}

// NewHistoryCommand は新しいHistoryCommandを作成する
func NewHistoryCommand(out io.Writer, history *calculator.Calculations) *HistoryCommand {
	return &HistoryCommand{historyCommand{
		name:        "history",
		description: "Show all calculations of this session",
		out:         out,
		history:     history,
	}}
}

// Execute は履歴を出力する
func (c *HistoryCommand) Execute(args []string) {
	if !c.checkArgs(args) {
		return
	}
	entries := c.history.History()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, i18n.T("history_none"))
		return
	}
	for _, calc := range entries {
		fmt.Fprintln(c.out, calc)
	}
}

// LastCommand は最後の計算を出力する
type LastCommand struct {
	historyCommand
}

// NewLastCommand は新しいLastCommandを作成する
func NewLastCommand(out io.Writer, history *calculator.Calculations) *LastCommand {
	return &LastCommand{historyCommand{
		name:        "last",
		description: "Show the most recent calculation",
		out:         out,
		history:     history,
	}}
}

// Execute は最後の計算を出力する。空なら範囲外エラーのメッセージを出す
func (c *LastCommand) Execute(args []string) {
	if !c.checkArgs(args) {
		return
	}
	calc, err := c.history.GetLast()
	if err != nil {
		fmt.Fprintln(c.out, i18n.T("error_occurred", err.Error()))
		return
	}
	fmt.Fprintln(c.out, calc)
}

// ClearCommand は履歴を消去する
type ClearCommand struct {
	historyCommand
}

// NewClearCommand は新しいClearCommandを作成する
func NewClearCommand(out io.Writer, history *calculator.Calculations) *ClearCommand {
	return &ClearCommand{historyCommand{
		name:        "clear",
		description: "Clear the calculation history",
		out:         out,
		history:     history,
	}}
}

// Execute は履歴を消去する
func (c *ClearCommand) Execute(args []string) {
	if !c.checkArgs(args) {
		return
	}
	c.history.ClearHistory()
	fmt.Fprintln(c.out, i18n.T("history_cleared"))
}
