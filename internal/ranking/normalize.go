package ranking

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds of a PostgreSQL NUMERIC: digits before and after the decimal point.
const (
	maxIntegerDigits  = 131072
	maxFractionDigits = 16383
)

// ParseAmount converts a raw stored amount into a non-negative decimal.
// Absent, empty, non-numeric, non-finite and negative values all yield zero,
// as do values outside the NUMERIC range such as "1e300000000".
func ParseAmount(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || !inNumericRange(d) {
		return decimal.Zero
	}
	return d
}

func inNumericRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	return exp >= -maxFractionDigits && d.NumDigits()+exp <= maxIntegerDigits
}

// NormalizeDonorID trims the identifier and rewrites integer ids into their
// canonical base-10 form, so "042" and "42" group together.
func NormalizeDonorID(raw string) string {
	s := strings.TrimSpace(raw)
	if n, ok := parseInteger(s); ok {
		return n.String()
	}
	return s
}

// compareDonorIDs orders integer ids numerically ahead of every
// non-numeric id; non-numeric ids compare lexically.
func compareDonorIDs(a, b string) int {
	na, aok := parseInteger(a)
	nb, bok := parseInteger(b)
	switch {
	case aok && bok:
		if c := na.Cmp(nb); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

func parseInteger(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}
