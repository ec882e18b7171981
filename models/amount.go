package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in euro cents. Fines are stored and summed as
// integers so totals never drift the way binary floats do. On the wire the
// value is a plain JSON number with exactly two decimal places.
type Cents int64

// ParseAmount parses a decimal string like "12", "12.5" or "12.50" into
// cents. Negative amounts, more than two decimal places, and anything that
// is not a plain decimal number are rejected with ErrInvalidAmount.
func ParseAmount(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 || (frac != "" && !isDigits(frac)) {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	euros, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if euros > (1<<62)/100 {
		return 0, ErrInvalidAmount
	}
	return Cents(euros*100 + cents), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String formats the amount as a decimal with two places, e.g. "15.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a bare JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number (or a quoted decimal string) with at
// most two decimal places.
func (c *Cents) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	parsed, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
