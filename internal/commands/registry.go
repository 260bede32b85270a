package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/errors"
)

// Registry はコマンドの管理と実行を行う。登録順を保持する
type Registry struct {
	order    []string
	commands map[string]Command
}

// NewRegistry は空のRegistryを作成する
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// NewDefaultRegistry は四則演算と履歴コマンドを登録したRegistryを作成する。
// history が nil なら新しい履歴を使う
func NewDefaultRegistry(out io.Writer, logger logrus.FieldLogger, history *calculator.Calculations) *Registry {
	if history == nil {
		history = calculator.NewCalculations()
	}
	r := NewRegistry()
	r.Register(NewAddCommand(out, logger, history))
	r.Register(NewSubtractCommand(out, history))
	r.Register(NewMultiplyCommand(out, logger, history))
	r.Register(NewDivideCommand(out, logger, history))
	r.Register(NewHistoryCommand(out, history))
	r.Register(NewLastCommand(out, history))
	r.Register(NewClearCommand(out, history))
	return r
}

// Register はコマンドを登録する。同名のコマンドは置き換える
func (r *Registry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Name()]; !exists {
		r.order = append(r.order, cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

// Get は名前でコマンドを取得する
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands は登録順のコマンド一覧を返す
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// Execute はコマンドを実行する
func (r *Registry) Execute(name string, args []string) error {
	cmd, exists := r.commands[name]
	if !exists {
		return errors.UnknownCommand(name)
	}
	cmd.Execute(args)
	return nil
}
