package dce

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Units is a whole number of currency units.
type Units uint64

// U is a convenient factory for an optional amount.
func U(v uint64) *Units {
	u := Units(v)
	return &u
}

func (u Units) String() string { return strconv.FormatUint(uint64(u), 10) }

var maxUnits = new(big.Int).SetUint64(math.MaxUint64)

// maxDigits is the number of decimal digits of math.MaxUint64.
const maxDigits = 20

// ParseUnits parses a user provided amount.
//
// Only non-negative integers that fit in Units are accepted: "12", "0",
// "1e3" are valid, "1.5", "-3", "" or "abc" are not. The returned error
// wraps ErrInvalidAmount.
func ParseUnits(s string) (Units, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if d.IsZero() {
		return 0, nil
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	// the exponent is bounded before any big integer arithmetic.
	exp, digits := int64(d.Exponent()), int64(d.NumDigits())
	if exp > 0 && digits+exp > maxDigits {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	if exp < 0 && -exp > digits {
		return 0, fmt.Errorf("%w: %q is not a whole number of units", ErrInvalidAmount, s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not a whole number of units", ErrInvalidAmount, s)
	}
	i := d.BigInt()
	if i.Cmp(maxUnits) > 0 {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	return Units(i.Uint64()), nil
}

// Currency is one of the two currencies held by an account.
type Currency string

const (
	Orange Currency = "ORANGE"
	Green  Currency = "GREEN"
)

// graphemes used when displaying amounts.
var graphemes = map[Currency]string{
	Orange: "🟠",
	Green:  "🟢",
}

func init() {
	// register both currencies to get go-money formatters for them.
	for c, g := range graphemes {
		money.AddCurrency(string(c), g, "1 $", "", ",", 0)
	}
}

// Grapheme returns the symbol displayed next to amounts in this currency.
func (c Currency) Grapheme() string { return graphemes[c] }

// Format returns the display form of u units of this currency, like "1,250 🟠".
func (c Currency) Format(u Units) string {
	if u > math.MaxInt64 {
		// go-money works on int64, beyond that skip the thousand separator.
		return u.String() + " " + c.Grapheme()
	}
	return money.New(int64(u), string(c)).Display()
}
