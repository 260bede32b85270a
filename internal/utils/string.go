package utils

import (
	"strings"
)

// PadString は文字列を指定幅に右パディングする
func PadString(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// IsEmptyOrWhitespace は文字列が空または空白のみかチェックする
func IsEmptyOrWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}
