package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/y-hirakaw/calc/internal/calculator"
	"github.com/y-hirakaw/calc/internal/commands"
	"github.com/y-hirakaw/calc/internal/config"
	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/i18n"
	"github.com/y-hirakaw/calc/internal/logging"
	"github.com/y-hirakaw/calc/internal/ui"
)

const (
	// Version はアプリケーションのバージョン
	Version = "1.0.0"
	// AppName はアプリケーション名
	AppName = "calc"
)

// App はCLIアプリケーションを表す
type App struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	loader     *config.Loader
	configPath string
	cfg        *config.Config

	logger   *logrus.Logger
	history  *calculator.Calculations
	registry *commands.Registry
	help     *ui.HelpSystem
}

// Option はAppの生成オプション
type Option func(*App)

// WithIO は入出力先を差し替える
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

// WithConfigLoader は設定ローダーを差し替える
func WithConfigLoader(loader *config.Loader) Option {
	return func(a *App) {
		a.loader = loader
	}
}

// NewApp は新しいCLIアプリケーションを作成する
func NewApp(opts ...Option) *App {
	a := &App{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.loader == nil {
		a.loader = config.NewLoader()
	}

	i18n.Initialize()
	errors.InitializeFormatter()

	// 設定を読むまではログを捨てる。setup で同じロガーを設定し直す
	a.logger = logging.Nop()
	a.history = calculator.NewCalculations()
	a.registry = commands.NewDefaultRegistry(a.out, a.logger, a.history)
	a.help = ui.NewHelpSystem(AppName, Version)
	a.help.SetOutput(a.out, a.errOut)

	return a
}

// Run はCLIアプリケーションを実行し、終了コードを返す
func (a *App) Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := a.newRootCommand()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		a.help.ShowError(err)
		return 1
	}
	return 0
}

// setup は設定を読み込み、ロケール・色・ロガーに反映する
func (a *App) setup() error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("CALC_CONFIG")
	}

	cfg, err := a.loader.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	i18n.SetLocale(i18n.Locale(cfg.Lang))
	if cfg.Messages != "" {
		if err := i18n.LoadMessagesFromFile(i18n.GetLocale(), cfg.Messages); err != nil {
			return errors.ConfigLoadFailed(err)
		}
	}

	switch cfg.Color {
	case "always":
		errors.SetColorEnabled(true)
	case "never":
		errors.SetColorEnabled(false)
	default:
		errors.InitializeFormatter()
	}

	if err := logging.Configure(a.logger, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: a.errOut,
	}); err != nil {
		return errors.ConfigLoadFailed(err)
	}

	a.logger.WithField("config", a.loader.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}
