// Package units converts between operator-entered decimal token quantities and
// integer base units. All arithmetic is done on big.Int; float64 is never involved.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/validator"

	"github.com/shopspring/decimal"
)

// DefaultDecimals 以太坊系代币的标准精度
const DefaultDecimals = validator.DefaultDecimals

var ErrInvalidAmount = errno.InvalidAmount

var ten = big.NewInt(10)

// ToWei is ToBaseUnits with 18 decimals.
func ToWei(amount string) (*big.Int, error) {
	return ToBaseUnits(amount, DefaultDecimals)
}

// ToBaseUnits 将十进制字符串转换为最小单位整数
// 整数部分 * 10^decimals + 小数部分 * 10^(decimals-len(frac))
func ToBaseUnits(amount string, decimals int) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if !validator.IsValidAmountWithDecimals(amount, decimals) {
		return nil, fmt.Errorf("%q with %d decimals: %w", amount, decimals, ErrInvalidAmount)
	}

	intPart, fracPart, _ := strings.Cut(amount, ".")
	if intPart == "" {
		intPart = "0"
	}

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return nil, fmt.Errorf("%q: %w", amount, ErrInvalidAmount)
	}
	result := new(big.Int).Mul(whole, pow10(decimals))

	if fracPart != "" {
		frac, ok := new(big.Int).SetString(fracPart, 10)
		if !ok {
			return nil, fmt.Errorf("%q: %w", amount, ErrInvalidAmount)
		}
		frac.Mul(frac, pow10(decimals-len(fracPart)))
		result.Add(result, frac)
	}
	if result.BitLen() > 256 {
		return nil, fmt.Errorf("%q with %d decimals overflows uint256: %w", amount, decimals, ErrInvalidAmount)
	}
	return result, nil
}

// FromBaseUnits renders a base-unit integer as a decimal string, e.g. 1500000000000000000 -> "1.5".
func FromBaseUnits(v *big.Int, decimals int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, int32(-decimals)).String()
}

// ParseUint256 parses a base-10 non-negative integer that must fit in 256 bits.
func ParseUint256(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	if !validator.IsValidInteger(text) {
		return nil, fmt.Errorf("%q: %w", text, ErrInvalidAmount)
	}
	v, _ := new(big.Int).SetString(text, 10)
	if v.BitLen() > 256 {
		return nil, fmt.Errorf("%q overflows uint256: %w", text, ErrInvalidAmount)
	}
	return v, nil
}

// IsInvalidAmount reports whether err was produced by a failed amount conversion.
func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
