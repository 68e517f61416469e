package validator

import (
	"regexp"
	"strings"
)

// DefaultDecimals 是代币的默认精度 (10^18)
const DefaultDecimals = 18

var (
	integerPattern = regexp.MustCompile(`^[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^([0-9]+)(\.([0-9]*))?$|^\.([0-9]+)$`)
)

// IsValidAmount reports whether text is a non-negative base-10 number with at most
// DefaultDecimals fractional digits.
func IsValidAmount(text string) bool {
	return IsValidAmountWithDecimals(text, DefaultDecimals)
}

// IsValidAmountWithDecimals 同 IsValidAmount，小数位上限由 decimals 指定
func IsValidAmountWithDecimals(text string, decimals int) bool {
	if decimals < 0 {
		return false
	}
	text = strings.TrimSpace(text)
	m := decimalPattern.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	frac := m[3]
	if m[4] != "" {
		frac = m[4]
	}
	return len(frac) <= decimals
}

// IsDecimal 只校验格式 (非负十进制数)，小数位上限由调用方按代币精度检查
func IsDecimal(text string) bool {
	return decimalPattern.MatchString(strings.TrimSpace(text))
}

// IsValidInteger reports whether text is a non-negative base-10 integer.
func IsValidInteger(text string) bool {
	return integerPattern.MatchString(strings.TrimSpace(text))
}
