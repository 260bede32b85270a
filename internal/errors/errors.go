package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/y-hirakaw/calc/internal/i18n"
)

// ErrorType はエラーの種類を定義する
type ErrorType int

const (
	// ErrorTypeGeneral は一般的なエラー
	ErrorTypeGeneral ErrorType = iota
	// ErrorTypeUsage は引数の数が合わないエラー
	ErrorTypeUsage
	// ErrorTypeParse は数値として解釈できない入力のエラー
	ErrorTypeParse
	// ErrorTypeMath はゼロ除算などの計算エラー
	ErrorTypeMath
	// ErrorTypeOperator は未知の演算子のエラー
	ErrorTypeOperator
	// ErrorTypeHistory は履歴の範囲外アクセスのエラー
	ErrorTypeHistory
	// ErrorTypeCommand はコマンド関連のエラー
	ErrorTypeCommand
	// ErrorTypeConfig は設定関連のエラー
	ErrorTypeConfig
	// ErrorTypeInput はバッチ入力関連のエラー
	ErrorTypeInput
)

// String はエラータイプ名を返す。ログのフィールド値に使う
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeUsage:
		return "usage"
	case ErrorTypeParse:
		return "parse"
	case ErrorTypeMath:
		return "math"
	case ErrorTypeOperator:
		return "operator"
	case ErrorTypeHistory:
		return "history"
	case ErrorTypeCommand:
		return "command"
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeInput:
		return "input"
	default:
		return "general"
	}
}

// FriendlyError はユーザーフレンドリーなエラー
type FriendlyError struct {
	Type        ErrorType
	Key         string
	Args        []interface{}
	Cause       error
	Suggestions []string
	Command     string
}

// Error は error インターフェースを実装する
func (e *FriendlyError) Error() string {
	return i18n.T(e.Key, e.Args...)
}

// Unwrap は内部エラーを返す
func (e *FriendlyError) Unwrap() error {
	return e.Cause
}

// Is はタイプとキーが一致すれば同じエラーとみなす。引数は比較しない
func (e *FriendlyError) Is(target error) bool {
	t, ok := target.(*FriendlyError)
	if !ok || t == nil {
		return false
	}
	return e.Type == t.Type && e.Key == t.Key
}

// GetMessage は翻訳されたメッセージを取得する
func (e *FriendlyError) GetMessage() string {
	return i18n.T(e.Key, e.Args...)
}

// GetSuggestions は解決策の提案を取得する
func (e *FriendlyError) GetSuggestions() []string {
	return e.Suggestions
}

// NewError は新しいフレンドリーエラーを作成する
func NewError(errorType ErrorType, key string, args ...interface{}) *FriendlyError {
	return &FriendlyError{
		Type: errorType,
		Key:  key,
		Args: args,
	}
}

// WrapError は既存のエラーをラップする
func WrapError(cause error, errorType ErrorType, key string, args ...interface{}) *FriendlyError {
	return &FriendlyError{
		Type:  errorType,
		Key:   key,
		Args:  args,
		Cause: cause,
	}
}

// WithSuggestions は提案を追加する
func (e *FriendlyError) WithSuggestions(suggestions ...string) *FriendlyError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithCommand はコマンドコンテキストを追加する
func (e *FriendlyError) WithCommand(command string) *FriendlyError {
	e.Command = command
	return e
}

// ErrorFormatter はエラーのフォーマッター
type ErrorFormatter struct {
	colorEnabled    bool
	showCause       bool
	showSuggestions bool
}

// NewErrorFormatter は新しいエラーフォーマッターを作成する。
// 色は標準エラー出力が端末のときだけ有効にする
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		colorEnabled:    isTerminal(os.Stderr),
		showCause:       true,
		showSuggestions: true,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled はカラー表示を設定する
func (f *ErrorFormatter) SetColorEnabled(enabled bool) {
	f.colorEnabled = enabled
}

// Format はエラーをフォーマットする
func (f *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var result strings.Builder

	if friendlyErr, ok := err.(*FriendlyError); ok {
		f.formatFriendlyError(&result, friendlyErr)
	} else {
		f.formatGenericError(&result, err)
	}

	return result.String()
}

// formatFriendlyError はフレンドリーエラーをフォーマットする
func (f *ErrorFormatter) formatFriendlyError(result *strings.Builder, err *FriendlyError) {
	result.WriteString(f.colorRed(fmt.Sprintf("%s: %s", i18n.T("error"), err.GetMessage())))

	if f.showCause && err.Cause != nil {
		result.WriteString(fmt.Sprintf("\n  %s: %s", i18n.T("caused_by"), err.Cause.Error()))
	}

	if suggestions := err.GetSuggestions(); f.showSuggestions && len(suggestions) > 0 {
		result.WriteString(fmt.Sprintf("\n\n%s:", i18n.T("suggestions")))
		for _, suggestion := range suggestions {
			result.WriteString(fmt.Sprintf("\n  %s %s", f.colorYellow("•"), suggestion))
		}
	}
}

// formatGenericError は通常のエラーをフォーマットする
func (f *ErrorFormatter) formatGenericError(result *strings.Builder, err error) {
	result.WriteString(f.colorRed(fmt.Sprintf("%s: %s", i18n.T("error"), err.Error())))
}

// colorRed は文字列を赤色にする
func (f *ErrorFormatter) colorRed(text string) string {
	if !f.colorEnabled {
		return text
	}
	return fmt.Sprintf("\033[31m%s\033[0m", text)
}

// colorYellow は文字列を黄色にする
func (f *ErrorFormatter) colorYellow(text string) string {
	if !f.colorEnabled {
		return text
	}
	return fmt.Sprintf("\033[33m%s\033[0m", text)
}

// 比較用のセンチネル。errors.Is で使う
var (
	ErrDivisionByZero  = NewError(ErrorTypeMath, "division_by_zero")
	ErrInvalidOperator = NewError(ErrorTypeOperator, "invalid_operator")
	ErrHistoryEmpty    = NewError(ErrorTypeHistory, "history_empty")
	ErrUnknownCommand  = NewError(ErrorTypeCommand, "unknown_command")
)

// DivisionByZero はゼロ除算エラーを作成する
func DivisionByZero() *FriendlyError {
	return NewError(ErrorTypeMath, "division_by_zero").
		WithSuggestions(i18n.T("suggestion_nonzero"))
}

// InvalidOperator は未知の演算子エラーを作成する
func InvalidOperator(op string) *FriendlyError {
	return NewError(ErrorTypeOperator, "invalid_operator", op).
		WithSuggestions(i18n.T("suggestion_operators"))
}

// HistoryEmpty は空の履歴から取り出そうとしたときのエラーを作成する
func HistoryEmpty() *FriendlyError {
	return NewError(ErrorTypeHistory, "history_empty")
}

// UnknownCommand は不明なコマンドエラーを作成する
func UnknownCommand(command string) *FriendlyError {
	return NewError(ErrorTypeCommand, "unknown_command", command).
		WithSuggestions(
			i18n.T("suggestion_help"),
			i18n.T("suggestion_check_spelling"),
		)
}

// InvalidNumber は数値として解釈できない引数のエラーを作成する
func InvalidNumber(a, b string) *FriendlyError {
	return NewError(ErrorTypeParse, "invalid_number_input", a, b)
}

// UsageError は引数の数が合わないエラーを作成する
func UsageError(command string) *FriendlyError {
	return NewError(ErrorTypeUsage, "usage", command).WithCommand(command)
}

// ConfigLoadFailed は設定読み込み失敗エラーを作成する
func ConfigLoadFailed(cause error) *FriendlyError {
	return WrapError(cause, ErrorTypeConfig, "config_load_failed").
		WithSuggestions(i18n.T("suggestion_config_path"))
}

// ConfigInvalid は設定値が不正なときのエラーを作成する
func ConfigInvalid(field, value string) *FriendlyError {
	return NewError(ErrorTypeConfig, "config_invalid", field, value)
}

// BatchInputFailed はバッチ入力の読み込み失敗エラーを作成する
func BatchInputFailed(cause error) *FriendlyError {
	return WrapError(cause, ErrorTypeInput, "batch_input_failed").
		WithSuggestions(i18n.T("suggestion_batch_format"))
}

// BatchInvalidOperation はバッチ入力の要素が不正なときのエラーを作成する
func BatchInvalidOperation(index int, cause error) *FriendlyError {
	return WrapError(cause, ErrorTypeInput, "batch_invalid_op", index).
		WithSuggestions(i18n.T("suggestion_batch_format"))
}

// Global formatter instance
var globalFormatter *ErrorFormatter

// InitializeFormatter はグローバルなエラーフォーマッターを初期化する
func InitializeFormatter() {
	globalFormatter = NewErrorFormatter()
}

// SetColorEnabled はグローバルなフォーマッターのカラー表示を設定する
func SetColorEnabled(enabled bool) {
	if globalFormatter == nil {
		InitializeFormatter()
	}
	globalFormatter.SetColorEnabled(enabled)
}

// FormatError はグローバルなエラーフォーマット関数
func FormatError(err error) string {
	if globalFormatter == nil {
		InitializeFormatter()
	}
	return globalFormatter.Format(err)
}
