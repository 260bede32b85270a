package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/y-hirakaw/calc/internal/calculator"
)

// AddCommand は add <a> <b> を実行する
type AddCommand struct {
	arithmetic
}

// NewAddCommand は新しいAddCommandを作成する
func NewAddCommand(out io.Writer, logger logrus.FieldLogger, history *calculator.Calculations) *AddCommand {
	return &AddCommand{arithmetic{
		op:          calculator.OpAdd,
		description: "Add two numbers",
		out:         out,
		logger:      logger,
		history:     history,
	}}
}

// SubtractCommand は subtract <a> <b> を実行する。ログは出さない
type SubtractCommand struct {
	arithmetic
}

// NewSubtractCommand は新しいSubtractCommandを作成する
func NewSubtractCommand(out io.Writer, history *calculator.Calculations) *SubtractCommand {
	return &SubtractCommand{arithmetic{
		op:          calculator.OpSubtract,
		description: "Subtract b from a",
		out:         out,
		history:     history,
	}}
}

// MultiplyCommand は multiply <a> <b> を実行する
type MultiplyCommand struct {
	arithmetic
}

// NewMultiplyCommand は新しいMultiplyCommandを作成する
func NewMultiplyCommand(out io.Writer, logger logrus.FieldLogger, history *calculator.Calculations) *MultiplyCommand {
	return &MultiplyCommand{arithmetic{
		op:          calculator.OpMultiply,
		description: "Multiply two numbers",
		out:         out,
		logger:      logger,
		history:     history,
	}}
}

// DivideCommand は divide <a> <b> を実行する。ゼロ除算は出力に報告して回復する
type DivideCommand struct {
	arithmetic
}

// NewDivideCommand は新しいDivideCommandを作成する
func NewDivideCommand(out io.Writer, logger logrus.FieldLogger, history *calculator.Calculations) *DivideCommand {
	return &DivideCommand{arithmetic{
		op:          calculator.OpDivide,
		description: "Divide a by b",
		out:         out,
		logger:      logger,
		history:     history,
	}}
}
