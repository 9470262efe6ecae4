package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal amount from its string form. Empty and
// non-numeric input both resolve to ErrMissingAmount so callers can treat
// "absent" and "garbage" the same way.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrMissingAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMissingAmount, s)
	}

	return d, nil
}
