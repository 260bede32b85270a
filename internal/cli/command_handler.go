package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/i18n"
)

// newRootCommand はサブコマンドを登録したルートコマンドを作成する
func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           AppName,
		Short:         "Command-line calculator with an in-memory history",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.UnknownCommand(args[0])
			}
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: ./calc.yaml or $HOME/.config/calc/calc.yaml)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("lang", "", "message language: "+availableLocales())

	v := a.loader.Viper()
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = v.BindPFlag("lang", flags.Lookup("lang"))

	a.registerCommands(root)
	return root
}

func availableLocales() string {
	var names []string
	for _, locale := range i18n.GetAvailableLocales() {
		names = append(names, string(locale))
	}
	return strings.Join(names, ", ")
}

// registerCommands は四則演算コマンドと補助コマンドを登録する
func (a *App) registerCommands(root *cobra.Command) {
	for _, c := range a.registry.Commands() {
		if _, ok := c.(interface{ Operator() calculator.Operator }); !ok {
			continue // 履歴コマンドは REPL でのみ意味を持つ
		}
		c := c // per-iteration copy for pre-Go 1.22 loop semantics
		root.AddCommand(&cobra.Command{
			Use:   c.Usage(),
			Short: c.Description(),
			// 負の数 (-5) をフラグとして解釈させない
			DisableFlagParsing: true,
			Run: func(cmd *cobra.Command, args []string) {
				c.Execute(args)
			},
		})
	}

	root.AddCommand(
		a.newReplCommand(),
		a.newBatchCommand(),
		a.newVersionCommand(),
	)
}

// newVersionCommand はversionコマンドを作成する
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.help.ShowVersion()
		},
	}
}
