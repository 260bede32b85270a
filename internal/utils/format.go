package utils

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber は数値を最短の自然な形式でフォーマットする (5, 3.5, -0.25)
func FormatNumber(v float64) string {
	if special, ok := formatSpecial(v); ok {
		return special
	}
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDecimal は浮動小数点数として数値をフォーマットする。
// 整数値でも小数部を残し (5.0)、極端な桁は指数表記にする (1e+16, 1e-05)
func FormatDecimal(v float64) string {
	if special, ok := formatSpecial(v); ok {
		return special
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// TruncateOperand は表示用に数値を0方向へ切り捨てた整数文字列を返す
func TruncateOperand(v float64) string {
	if special, ok := formatSpecial(v); ok {
		return special
	}
	i, _ := new(big.Float).SetFloat64(math.Trunc(v)).Int(nil)
	return i.String()
}

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}
