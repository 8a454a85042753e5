package extractor

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

// Units maps a single-character unit suffix to its multiplier.
type Units map[string]int64

// DefaultUnits returns the built-in suffixes: w is ten thousand, k is one thousand.
func DefaultUnits() Units {
	return Units{
		"w": 10000,
		"k": 1000,
	}
}

// Validate checks that every key is exactly one character and every
// multiplier is positive.
func (u Units) Validate() error {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("unit %q must be a single character", k)
		}
		if u[k] <= 0 {
			return fmt.Errorf("unit %q: multiplier must be > 0, got %d", k, u[k])
		}
	}
	return nil
}

// Multiplier returns the multiplier for unit, or 1 when the unit is unknown or empty.
// Lookup is case-sensitive, so "W" is not "w".
func (u Units) Multiplier(unit string) int64 {
	if m, ok := u[unit]; ok {
		return m
	}
	return 1
}

// Apply parses digits as a base-10 amount and scales it by the unit multiplier.
func (u Units) Apply(digits, unit string) (int64, error) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrAmountOverflow, digits)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, digits)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s", ErrAmountOverflow, digits)
	}

	amount := int64(n)
	m := u.Multiplier(unit)
	if amount > math.MaxInt64/m {
		return 0, fmt.Errorf("%w: %s%s", ErrAmountOverflow, digits, unit)
	}
	return amount * m, nil
}
