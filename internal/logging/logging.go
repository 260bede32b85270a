// Package logging はコマンドが使う logrus ロガーを構築する
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options はロガーの設定
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Configure は既存のロガーを設定し直す。出力先の既定は標準エラー出力
func Configure(logger *logrus.Logger, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	if err := SetLevel(logger, opts.Level); err != nil {
		return err
	}

	switch opts.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", opts.Format)
	}

	return nil
}

// SetLevel はレベル名を解釈してロガーに設定する。空文字は warn として扱う
func SetLevel(logger *logrus.Logger, level string) error {
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(lvl)
	return nil
}

// Nop は何も出力しないロガーを返す
func Nop() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
