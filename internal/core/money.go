package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmount keeps amount*100 inside int64.
var maxAmount = decimal.New(math.MaxInt64/100, 0)

// ParseDecimalToCents converts a typed amount such as "12.34" or "12,34" to
// cents. A third decimal rounds half-up ("1.005" is 101). Signs, exponents,
// zero and values that overflow int64 cents are rejected with ErrInvalidAmount.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || strings.Count(s, ".") > 1 {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return 0, ErrInvalidAmount
		}
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")

	d, err := decimal.NewFromString(s)
	if err != nil || d.GreaterThanOrEqual(maxAmount) {
		return 0, ErrInvalidAmount
	}

	cents := d.Round(2).Shift(2).IntPart()
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// FormatCents renders cents with two decimals, e.g. 1234 -> "12.34".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func (m Money) String() string {
	return FormatCents(m.Cents)
}
