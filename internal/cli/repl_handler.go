package cli

import (
	"github.com/spf13/cobra"

	"github.com/y-hirakaw/calc/internal/config"
	"github.com/y-hirakaw/calc/internal/interactive"
	"github.com/y-hirakaw/calc/internal/logging"
)

// newReplCommand は対話モードのコマンドを作成する
func (a *App) newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session that keeps a calculation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.watchConfig()

			repl := interactive.NewRepl(a.in, a.out, a.registry, a.help)
			repl.SetPrompt(a.cfg.Prompt)
			return repl.Run(cmd.Context())
		},
	}
}

// watchConfig は設定ファイルの変更時にログレベルだけを反映する
func (a *App) watchConfig() {
	watching := a.loader.Watch(func(cfg *config.Config, err error) {
		if err != nil {
			a.logger.WithError(err).Warn("config reload failed")
			return
		}
		if err := logging.SetLevel(a.logger, cfg.LogLevel); err != nil {
			a.logger.WithError(err).Warn("config reload failed")
			return
		}
		a.logger.WithField("log_level", cfg.LogLevel).Info("config reloaded")
	})
	if watching {
		a.logger.WithField("config", a.loader.ConfigFileUsed()).Debug("watching config file")
	}
}
