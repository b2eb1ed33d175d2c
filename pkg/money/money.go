package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user-entered price text into a decimal amount. A comma
// is treated as the decimal separator and converted before parsing. Empty or
// non-numeric input yields zero so that a half-edited field never breaks a
// live total computation.
func ParseAmount(raw string) decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero
	}
	d, err := Parse(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Parse is the strict variant of ParseAmount used at validation time. Unlike
// ParseAmount it reports unparseable input instead of defaulting to zero.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(s)
}

// LineTotal returns quantity x unit price at full precision. Rounding is left
// to display contexts so that accumulation never loses cents.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// RoundDisplay rounds an amount to 2 decimal places for presentation.
func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
