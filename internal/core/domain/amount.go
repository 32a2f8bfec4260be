package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Number of fractional digits carried by each unit. Amounts are always held
// as unsigned integers of the smallest denomination.
const (
	FiatDecimals     = 6
	StableDecimals   = 6
	VolatileDecimals = 18
)

var errMalformedAmount = errors.New("malformed amount")

// Pow10 returns 10^n as a uint256. n must not exceed 77.
func Pow10(n int) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
}

// ParseAmount parses a decimal string of base units, e.g. "10000000".
func ParseAmount(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", errMalformedAmount, s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %q", ErrArithmeticOverflow, s)
	}
	return v, nil
}

// ParseUnits converts a human readable decimal such as "0.01" into base units
// with the given number of fractional digits. More fractional digits than
// decimals is an error rather than a silent truncation.
func ParseUnits(s string, decimals int) (*uint256.Int, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(s), ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", errMalformedAmount, s)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", errMalformedAmount, s, decimals)
	}
	if whole == "" {
		whole = "0"
	}
	if strings.ContainsAny(whole+frac, "+-") {
		return nil, fmt.Errorf("%w: %q", errMalformedAmount, s)
	}
	return ParseAmount(whole + frac + strings.Repeat("0", decimals-len(frac)))
}

// FormatUnits renders base units as a decimal with exactly decimals
// fractional digits, e.g. FormatUnits(100000000, 6) == "100.000000".
func FormatUnits(v *uint256.Int, decimals int) string {
	s := v.ToBig().String()
	if decimals == 0 {
		return s
	}
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}
	return s[:len(s)-decimals] + "." + s[len(s)-decimals:]
}
