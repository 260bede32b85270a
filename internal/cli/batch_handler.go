package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/errors"
)

// batchEntry は [a, op, b] または {a, op, b} 形式の1操作
type batchEntry calculator.Operation

// UnmarshalYAML は2つの形式のどちらかを読み込む
func (e *batchEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 3 {
			return fmt.Errorf("line %d: expected [a, op, b], got %d elements", node.Line, len(node.Content))
		}
		var op string
		if err := node.Content[0].Decode(&e.A); err != nil {
			return err
		}
		if err := node.Content[1].Decode(&op); err != nil {
			return err
		}
		if err := node.Content[2].Decode(&e.B); err != nil {
			return err
		}
		e.Operator = calculator.Operator(op)
		return nil
	case yaml.MappingNode:
		var m struct {
			A  *float64 `yaml:"a"`
			Op string   `yaml:"op"`
			B  *float64 `yaml:"b"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.A == nil || m.B == nil {
			return fmt.Errorf("line %d: both a and b are required", node.Line)
		}
		e.A, e.Operator, e.B = *m.A, calculator.Operator(m.Op), *m.B
		return nil
	}
	return fmt.Errorf("line %d: unsupported operation entry", node.Line)
}

// parseBatch はYAMLの操作リストを読み込む
func parseBatch(data []byte) ([]calculator.Operation, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, errors.BatchInputFailed(err)
	}

	ops := make([]calculator.Operation, 0, len(nodes))
	for i := range nodes {
		var entry batchEntry
		if err := nodes[i].Decode(&entry); err != nil {
			return nil, errors.BatchInvalidOperation(i, err)
		}
		ops = append(ops, calculator.Operation(entry))
	}
	return ops, nil
}

// newBatchCommand は複数の操作をまとめて計算するコマンドを作成する
func (a *App) newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Perform a YAML list of operations and print the resulting history",
		Long: `Reads operations from a YAML file, or stdin when the file is omitted or "-".
Each entry is either [a, op, b] or {a: .., op: .., b: ..}. The first failing
operation (division by zero, invalid operator) aborts the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readBatchInput(args)
			if err != nil {
				return errors.BatchInputFailed(err)
			}

			ops, err := parseBatch(data)
			if err != nil {
				return err
			}

			calcs, err := calculator.FromOperations(ops)
			if err != nil {
				a.logger.WithError(err).Error("batch aborted")
				return err
			}

			for _, calc := range calcs.History() {
				fmt.Fprintln(a.out, calc)
			}
			a.logger.WithField("operations", calcs.Len()).Info("batch completed")
			return nil
		},
	}
}

func (a *App) readBatchInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(args[0])
}
