// Package config は設定ファイル・.env・環境変数から設定を読み込む
package config

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/y-hirakaw/calc/internal/errors"
	"github.com/y-hirakaw/calc/internal/i18n"
)

const (
	// EnvPrefix は環境変数のプレフィックス (CALC_LOG_LEVEL など)
	EnvPrefix = "CALC"
	// DefaultEnvFile は起動時に読み込む .env ファイル
	DefaultEnvFile = ".env"
)

// Config はアプリケーション設定
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Lang      string `mapstructure:"lang"`
	Prompt    string `mapstructure:"prompt"`
	Color     string `mapstructure:"color"`
	// Messages は現在のロケールの文言を上書きする JSON ファイル
	Messages  string `mapstructure:"messages"`
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
	validFormats = []string{"text", "json"}
	validColors  = []string{"auto", "always", "never"}
)

// Validate は設定値を検証する
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		valid []string
	}{
		{"log_level", c.LogLevel, validLevels},
		{"log_format", c.LogFormat, validFormats},
		{"color", c.Color, validColors},
	}
	for _, check := range checks {
		if !contains(check.valid, check.value) {
			return errors.ConfigInvalid(check.field, check.value)
		}
	}
	if !i18n.ValidateLocale(i18n.Locale(c.Lang)) {
		return errors.ConfigInvalid("lang", c.Lang)
	}
	return nil
}

// normalize は大文字小文字を区別しない設定値を小文字にそろえる
func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Lang = strings.ToLower(strings.TrimSpace(c.Lang))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Loader は viper インスタンスを保持する。フラグのバインドと監視に使う
type Loader struct {
	v       *viper.Viper
	envFile string
}

// NewLoader は既定値を設定した Loader を作成する
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("lang", "en")
	v.SetDefault("prompt", "> ")
	v.SetDefault("color", "auto")
	v.SetDefault("messages", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, envFile: DefaultEnvFile}
}

// SetEnvFile は読み込む .env ファイルを変更する。空文字なら読み込まない
func (l *Loader) SetEnvFile(path string) {
	l.envFile = path
}

// Viper は内部の viper インスタンスを返す
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load は設定を読み込む。path が空なら calc.yaml を探し、見つからなければ既定値を使う
func (l *Loader) Load(path string) (*Config, error) {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigLoadFailed(err)
		}
	}

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.ConfigLoadFailed(err)
		}
	} else {
		l.v.SetConfigName("calc")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		l.v.AddConfigPath("$HOME/.config/calc")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.ConfigLoadFailed(err)
			}
		}
	}

	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.ConfigLoadFailed(err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed は読み込んだ設定ファイルのパスを返す
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Watch は設定ファイルの変更を監視し、再読み込みした結果を onChange に渡す。
// 設定ファイルを使っていなければ false を返す
func (l *Loader) Watch(onChange func(*Config, error)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(l.decode())
	})
	l.v.WatchConfig()
	return true
}
