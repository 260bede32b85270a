package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Locale は言語ロケール
type Locale string

const (
	// LocaleEN は英語
	LocaleEN Locale = "en"
	// LocaleJA は日本語
	LocaleJA Locale = "ja"
)

// Messages は翻訳メッセージのマップ
type Messages map[string]string

// I18n は国際化システム
type I18n struct {
	currentLocale Locale
	messages      map[Locale]Messages
	fallback      Locale
}

// NewI18n は新しい国際化システムを作成する
func NewI18n() *I18n {
	i18n := &I18n{
		currentLocale: LocaleEN, // 出力文言は英語が基準
		messages:      make(map[Locale]Messages),
		fallback:      LocaleEN,
	}

	i18n.loadDefaultMessages()

	// LANG は見ない。CALC_LANG を明示したときだけ切り替える
	if lang := os.Getenv("CALC_LANG"); lang != "" {
		i18n.SetLocale(Locale(strings.ToLower(lang)))
	}

	return i18n
}

// SetLocale は現在のロケールを設定する。未知のロケールは無視する
func (i *I18n) SetLocale(locale Locale) {
	if !i.ValidateLocale(locale) {
		return
	}
	i.currentLocale = locale
}

// GetLocale は現在のロケールを取得する
func (i *I18n) GetLocale() Locale {
	return i.currentLocale
}

// T は翻訳を取得する（キーと引数を受け取る）
func (i *I18n) T(key string, args ...interface{}) string {
	if messages, exists := i.messages[i.currentLocale]; exists {
		if message, found := messages[key]; found {
			return format(message, args)
		}
	}

	// フォールバック言語で検索
	if i.currentLocale != i.fallback {
		if messages, exists := i.messages[i.fallback]; exists {
			if message, found := messages[key]; found {
				return format(message, args)
			}
		}
	}

	// メッセージが見つからない場合はキーをそのまま返す
	if len(args) > 0 {
		return fmt.Sprintf("%s: %v", key, args)
	}
	return key
}

func format(message string, args []interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

// LoadMessagesFromFile はJSONファイルから翻訳メッセージを読み込み、既存のカタログに上書きする
func (i *I18n) LoadMessagesFromFile(locale Locale, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading message file: %w", err)
	}

	var messages Messages
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("parsing message file: %w", err)
	}

	if i.messages[locale] == nil {
		i.messages[locale] = Messages{}
	}
	for key, message := range messages {
		i.messages[locale][key] = message
	}
	return nil
}

// loadDefaultMessages はデフォルトの翻訳メッセージを読み込む
func (i *I18n) loadDefaultMessages() {
	i.messages[LocaleEN] = Messages{
		"error":       "Error",
		"caused_by":   "caused by",
		"suggestions": "Suggestions",

		// コマンド出力
		"usage":                "Usage: %s <a> <b>",
		"usage_noargs":         "Usage: %s",
		"result_line":          "The result of %s %s %s is equal to %s",
		"invalid_number_input": "Invalid number input: %s or %s is not a valid number.",
		"error_occurred":       "An error occurred: %s",
		"history_none":         "No calculations in history.",
		"history_cleared":      "History cleared.",
		"no_such_command":      "No such command: %s",
		"repl_welcome":         "Type 'menu' to list commands or 'exit' to exit.",
		"repl_exit":            "Exiting...",
		"menu_header":          "Available commands:",

		// 計算エラー
		"division_by_zero": "Cannot divide by zero.",
		"invalid_operator": "Invalid operator: %s",
		"history_empty":    "history index out of range: no calculations recorded",

		// CLIエラー
		"generic_error":      "An unexpected error occurred",
		"unknown_command":    "Unknown command: %s",
		"config_load_failed": "Failed to load configuration",
		"config_invalid":     "Invalid configuration value for %s: %s",
		"batch_input_failed": "Failed to read batch operations",
		"batch_invalid_op":   "Invalid batch operation at index %d",

		// 提案
		"suggestion_help":           "Run `calc --help` to list the available commands",
		"suggestion_check_spelling": "Check the spelling of the command",
		"suggestion_operators":      "Use one of +, -, *, /",
		"suggestion_nonzero":        "Use a non-zero divisor",
		"suggestion_config_path":    "Check the --config path and the CALC_* environment variables",
		"suggestion_batch_format":   "Each entry must be [a, op, b] or {a: .., op: .., b: ..}",
	}

	i.messages[LocaleJA] = Messages{
		"error":       "エラー",
		"caused_by":   "原因",
		"suggestions": "解決策",

		"usage":                "使用法: %s <a> <b>",
		"usage_noargs":         "使用法: %s",
		"result_line":          "%[1]s %[2]s %[3]s の結果は %[4]s です",
		"invalid_number_input": "無効な数値です: %s または %s は数値ではありません。",
		"error_occurred":       "エラーが発生しました: %s",
		"history_none":         "履歴はありません。",
		"history_cleared":      "履歴を消去しました。",
		"no_such_command":      "そのようなコマンドはありません: %s",
		"repl_welcome":         "'menu' でコマンド一覧、'exit' で終了します。",
		"repl_exit":            "終了します...",
		"menu_header":          "利用可能なコマンド:",

		"division_by_zero": "ゼロで割ることはできません。",
		"invalid_operator": "Invalid operator: %s (無効な演算子)",
		"history_empty":    "履歴の範囲外です: 計算がまだありません",

		"generic_error":      "予期しないエラーが発生しました",
		"unknown_command":    "不明なコマンド: %s",
		"config_load_failed": "設定の読み込みに失敗しました",
		"config_invalid":     "設定値 %s が不正です: %s",
		"batch_input_failed": "バッチ入力の読み込みに失敗しました",
		"batch_invalid_op":   "%d 番目のバッチ操作が不正です",

		"suggestion_help":           "`calc --help` でコマンド一覧を確認してください",
		"suggestion_check_spelling": "コマンドのスペルを確認してください",
		"suggestion_operators":      "+, -, *, / のいずれかを使用してください",
		"suggestion_nonzero":        "0 以外の除数を使用してください",
		"suggestion_config_path":    "--config のパスと CALC_* 環境変数を確認してください",
		"suggestion_batch_format":   "各要素は [a, op, b] か {a: .., op: .., b: ..} の形式にしてください",
	}
}

// GetAvailableLocales は利用可能なロケール一覧を返す
func (i *I18n) GetAvailableLocales() []Locale {
	locales := make([]Locale, 0, len(i.messages))
	for locale := range i.messages {
		locales = append(locales, locale)
	}
	sort.Slice(locales, func(a, b int) bool { return locales[a] < locales[b] })
	return locales
}

// ValidateLocale はロケールが有効かどうかを確認する
func (i *I18n) ValidateLocale(locale Locale) bool {
	_, exists := i.messages[locale]
	return exists
}

// Global instance
var globalI18n *I18n

// Initialize はグローバルなi18nシステムを初期化する
func Initialize() {
	globalI18n = NewI18n()
}

// T はグローバルな翻訳関数
func T(key string, args ...interface{}) string {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.T(key, args...)
}

// SetLocale はグローバルなロケールを設定する
func SetLocale(locale Locale) {
	if globalI18n == nil {
		Initialize()
	}
	globalI18n.SetLocale(locale)
}

// GetLocale はグローバルなロケールを取得する
func GetLocale() Locale {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.GetLocale()
}

// ValidateLocale はグローバルなカタログにロケールがあるか確認する
func ValidateLocale(locale Locale) bool {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.ValidateLocale(locale)
}

// LoadMessagesFromFile はグローバルなカタログに翻訳ファイルを読み込む
func LoadMessagesFromFile(locale Locale, filePath string) error {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.LoadMessagesFromFile(locale, filePath)
}

// GetAvailableLocales はグローバルなカタログのロケール一覧を返す
func GetAvailableLocales() []Locale {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.GetAvailableLocales()
}
