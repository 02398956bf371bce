// Package money parses and compares the currency-formatted strings the demo
// shop displays. Amounts are compared with a small absolute tolerance to
// absorb display rounding.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the largest absolute difference at which two displayed
// amounts still count as equal.
const Tolerance = 0.01

// Parse converts a currency-formatted string such as "$29.99" into its
// numeric amount.
func Parse(s string) (float64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "$")
	if trimmed == "" {
		return 0, fmt.Errorf("empty price string %q", s)
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed price %q: %w", s, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}

	return amount, nil
}

// ParseLabeled extracts the amount from a labelled summary line such as
// "Item total: $55.97".
func ParseLabeled(s string) (float64, error) {
	idx := strings.Index(s, "$")
	if idx < 0 {
		return 0, fmt.Errorf("no amount found in %q", s)
	}
	return Parse(s[idx:])
}

// Sum adds up a list of amounts.
func Sum(amounts []float64) float64 {
	var total float64
	for _, a := range amounts {
		total += a
	}
	return total
}

// Within reports whether two amounts differ by no more than tolerance.
func Within(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
