package directory

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value expressed in cents. Keeping prices as fixed-point
// integers avoids float drift when subtotals are recomputed on every mutation.
type Amount int64

// ParseAmount parses a decimal string such as "1500", "1500.5" or "1500.00"
// into an Amount. At most two fractional digits are accepted.
func ParseAmount(s string) (Amount, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	neg := false
	if strings.HasPrefix(raw, "-") {
		neg = true
		raw = raw[1:]
	}

	whole := raw
	frac := ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		whole, frac = raw[:i], raw[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Amount(total), nil
}

// MulQty returns the amount multiplied by an integer quantity.
func (a Amount) MulQty(qty int) Amount {
	return a * Amount(qty)
}

// String renders the amount as a plain decimal with two fractional digits,
// e.g. "1500.00". Locale-aware currency formatting is left to the caller.
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// AmountPtr is a small helper for building optional prices in literals.
func AmountPtr(a Amount) *Amount {
	return &a
}
