// Package commands は CLI と REPL から呼ばれる計算コマンドを提供する
package commands

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/i18n"
	"github.com/y-hirakaw/calc/internal/utils"
)

// Command は引数を受け取って結果を出力するコマンド。
// エラーは返さず、すべて出力先に報告する
type Command interface {
	Name() string
	Usage() string
	Description() string
	Execute(args []string)
}

// arithmetic は二項演算コマンドの共通実装
type arithmetic struct {
	op          calculator.Operator
	description string
	out         io.Writer
	logger      logrus.FieldLogger // nil ならログを出さない
	history     *calculator.Calculations
}

// Name はコマンド名を返す
func (c *arithmetic) Name() string {
	return c.op.Verb()
}

// Operator はコマンドが実行する演算子を返す
func (c *arithmetic) Operator() calculator.Operator {
	return c.op
}

// Usage は使用法を返す
func (c *arithmetic) Usage() string {
	return c.Name() + " <a> <b>"
}

// Description はコマンドの説明を返す
func (c *arithmetic) Description() string {
	return c.description
}

// Execute は2つの引数を数値として解釈し、計算結果を出力する
func (c *arithmetic) Execute(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, errors.UsageError(c.Name()))
		c.warn(args, "called with invalid number of arguments")
		return
	}

	a, errA := parseOperand(args[0])
	b, errB := parseOperand(args[1])
	if errA != nil || errB != nil {
		fmt.Fprintln(c.out, errors.InvalidNumber(args[0], args[1]))
		c.fail(args, "invalid input", firstErr(errA, errB))
		return
	}

	calc := calculator.NewCalculation(a, b, c.op)
	if err := calc.Perform(); err != nil {
		fmt.Fprintln(c.out, i18n.T("error_occurred", err.Error()))
		c.fail(args, "calculation failed", err)
		return
	}

	result, _ := calc.Result()
	if c.history != nil {
		c.history.AddCalculation(calc)
	}
	c.info(a, b, result)

	fmt.Fprintln(c.out, i18n.T("result_line",
		utils.TruncateOperand(a), c.Name(), utils.TruncateOperand(b), utils.FormatDecimal(result)))
}

func (c *arithmetic) warn(args []string, msg string) {
	if c.logger == nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"command": c.Name(),
		"args":    args,
	}).Warn(msg)
}

func (c *arithmetic) fail(args []string, msg string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"command": c.Name(),
		"args":    args,
	}).WithError(err).Error(msg)
}

func (c *arithmetic) info(a, b, result float64) {
	if c.logger == nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"command": c.Name(),
		"a":       a,
		"b":       b,
		"result":  result,
	}).Info("executed")
}

// parseOperand は前後の空白を許して数値を解釈する。inf と nan は数値として扱わない
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("non-finite operand %q", s)
	}
	return v, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
