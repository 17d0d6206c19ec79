// Package quantity provides unit-tagged scalar time quantities.
//
// It mirrors the narrow contract of the external qtty library the native
// time core shares unit identifiers with: a quantity is a float64 value
// paired with a unit tag, convertible between units through their
// second-based ratios. Nothing here knows about time scales; callers attach
// and convert units, the instant and period packages produce and consume
// them.
package quantity

import (
	"fmt"
	"math"
	"strconv"
)

// Unit identifies a physical time unit. The numeric values are part of the
// native call contract and must not be reordered.
type Unit uint8

// Supported time units.
const (
	Day Unit = iota
	Hour
	Minute
	Second
	JulianCentury
)

// secondsPer maps each unit to its length in SI seconds. A Julian century
// is exactly 36525 days.
var secondsPer = [...]float64{
	Day:           86400,
	Hour:          3600,
	Minute:        60,
	Second:        1,
	JulianCentury: 36525 * 86400,
}

// symbols contains the canonical rendering symbol for each unit.
var symbols = [...]string{
	Day:           "d",
	Hour:          "h",
	Minute:        "min",
	Second:        "s",
	JulianCentury: "jcy",
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return int(u) < len(secondsPer)
}

// Seconds returns the length of one u in SI seconds, or NaN for an
// unrecognized unit.
func (u Unit) Seconds() float64 {
	if !u.Valid() {
		return math.NaN()
	}
	return secondsPer[u]
}

// String returns the unit symbol, e.g. "d" for Day.
func (u Unit) String() string {
	if !u.Valid() {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return symbols[u]
}

// Quantity is an immutable scalar value tagged with a time unit.
type Quantity struct {
	value float64
	unit  Unit
}

// New returns a Quantity of value v in unit u.
func New(v float64, u Unit) Quantity {
	return Quantity{value: v, unit: u}
}

// Days returns a Day-unit quantity.
func Days(v float64) Quantity { return New(v, Day) }

// Hours returns an Hour-unit quantity.
func Hours(v float64) Quantity { return New(v, Hour) }

// Minutes returns a Minute-unit quantity.
func Minutes(v float64) Quantity { return New(v, Minute) }

// Seconds returns a Second-unit quantity.
func Seconds(v float64) Quantity { return New(v, Second) }

// JulianCenturies returns a JulianCentury-unit quantity.
func JulianCenturies(v float64) Quantity { return New(v, JulianCentury) }

// Value returns the scalar value in the quantity's own unit.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the quantity's unit tag.
func (q Quantity) Unit() Unit { return q.unit }

// To converts q to unit u, scaling the value by the units' second ratios.
func (q Quantity) To(u Unit) Quantity {
	if u == q.unit {
		return q
	}
	return Quantity{value: q.value * q.unit.Seconds() / u.Seconds(), unit: u}
}

// Neg returns q with its value negated.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, unit: q.unit}
}

// String returns the value followed by the unit symbol, e.g. "1.5 d".
func (q Quantity) String() string {
	return fmt.Sprintf("%s %s",
		strconv.FormatFloat(q.value, 'g', -1, 64), q.unit)
}
