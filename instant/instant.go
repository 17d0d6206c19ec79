// Package instant provides the generic time-point Time[S]: a single
// day-count value tagged at compile time with its scale.
//
// A Time[S] never contains per-scale branching; every operation dispatches
// through the scale package's trait functions, and cross-scale work goes
// through the conversion graph. Two points on different scales are
// different Go types, so comparing or differencing them without an
// explicit [Convert] does not compile.
package instant

import (
	"strconv"

	"github.com/tempoch/tempoch/civil"
	"github.com/tempoch/tempoch/quantity"
	"github.com/tempoch/tempoch/scale"
)

// Time is an immutable point in time on scale S, stored as a raw native
// count: days for the day-count scales, seconds for Unix time.
type Time[S scale.Scale] struct {
	value float64
}

// New returns a Time on scale S holding the raw native count v.
func New[S scale.Scale](v float64) Time[S] {
	return Time[S]{value: v}
}

// FromCivil converts a civil breakdown to a point on scale S. It fails
// when the native converter rejects the breakdown.
func FromCivil[S scale.Scale](ct civil.Time) (Time[S], error) {
	v, err := scale.FromCivil[S](ct)
	if err != nil {
		return Time[S]{}, err
	}
	return New[S](v), nil
}

// Convert returns t expressed on scale To. Pure arithmetic via the
// conversion graph; identity conversions return the value unchanged.
func Convert[To, From scale.Scale](t Time[From]) Time[To] {
	return New[To](scale.Convert[From, To](t.value))
}

// Value returns the raw native count on S.
func (t Time[S]) Value() float64 { return t.value }

// Label returns the scale's human-readable label.
func (t Time[S]) Label() string {
	var s S
	return s.Label()
}

// ToCivil converts t to a civil breakdown. It fails for day counts the
// native converter cannot represent.
func (t Time[S]) ToCivil() (civil.Time, error) {
	return scale.ToCivil[S](t.value)
}

// AddDays returns t advanced by a number of days.
func (t Time[S]) AddDays(days float64) Time[S] {
	return New[S](scale.AddDays[S](t.value, days))
}

// Add returns t advanced by a typed quantity. The quantity's declared unit
// is respected regardless of the scale's native granularity.
func (t Time[S]) Add(q quantity.Quantity) (Time[S], error) {
	v, err := scale.AddQuantity[S](t.value, q)
	if err != nil {
		return Time[S]{}, err
	}
	return New[S](v), nil
}

// Subtract returns t moved back by a typed quantity.
func (t Time[S]) Subtract(q quantity.Quantity) (Time[S], error) {
	return t.Add(q.Neg())
}

// Difference returns t minus other as a quantity in S's native unit.
func (t Time[S]) Difference(other Time[S]) quantity.Quantity {
	return scale.Difference[S](t.value, other.value)
}

// Compare returns -1 if t is before other, +1 if after, 0 if equal.
func (t Time[S]) Compare(other Time[S]) int {
	switch {
	case t.value < other.value:
		return -1
	case t.value > other.value:
		return 1
	default:
		return 0
	}
}

// Before reports whether t precedes other.
func (t Time[S]) Before(other Time[S]) bool { return t.value < other.value }

// After reports whether t follows other.
func (t Time[S]) After(other Time[S]) bool { return t.value > other.value }

// Equal reports whether t and other hold the same native count.
func (t Time[S]) Equal(other Time[S]) bool { return t.value == other.value }

// String returns "<label>:<value>", e.g. "JD:2451545". The value is
// rendered in fixed-point form with the fewest digits that round-trip.
func (t Time[S]) String() string {
	return t.Label() + ":" + strconv.FormatFloat(t.value, 'f', -1, 64)
}

// MJDValue returns t's canonical MJD day count. It adapts Time[S] to the
// period package's representation contract.
func (t Time[S]) MJDValue() float64 {
	return scale.Convert[S, scale.MJD](t.value)
}

// FromMJDValue reconstructs a point on S from a canonical MJD day count.
// The receiver only supplies the scale; its value is ignored.
func (t Time[S]) FromMJDValue(mjd float64) Time[S] {
	return New[S](scale.Convert[scale.MJD, S](mjd))
}
