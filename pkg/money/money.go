// Package money holds decimal helpers for the engine's monetary conventions.
// The engine base unit is millions; callers supplying coarse units (billions)
// convert here before anything reaches the calculation layer.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// FromBillions converts a coarse billions figure into the base unit.
func FromBillions(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Mul(thousand)
}

// FromMillions converts a base-unit figure supplied as a float.
func FromMillions(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// ToBillions converts a base-unit amount back to billions for display.
func ToBillions(d decimal.Decimal) decimal.Decimal {
	return d.Div(thousand)
}

// RoundUnit rounds to a whole base unit using half-away-from-zero rounding.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Format renders a base-unit amount with thousands separators and no decimal
// places, e.g. 6,655.
func Format(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
