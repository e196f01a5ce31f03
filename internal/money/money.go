package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ToCents converts a user-entered decimal amount (like 12.34) to cents as
// int64 safely. Amounts must be strictly positive.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow: int64 max ~9e18 => amount max ~9e16
	if amount > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	cents := int64(math.Round(amount * 100.0))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

func ToFloat(cents int64) float64 {
	return float64(cents) / 100.0
}

// Format renders cents as a plain decimal string ("123.45") without going
// through float formatting.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
