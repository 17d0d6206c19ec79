// Package core implements the native time-core call contract.
//
// It is the component every other package routes real conversion arithmetic
// through, and it deliberately keeps the shape of the C interface it stands
// in for: every fallible call returns a Status code, results are written
// through out-pointers, and the civil breakdown is a fixed-layout struct.
// Callers are expected to translate Status codes with the root tempoch
// package rather than inspect them directly.
//
// Calendar arithmetic uses the Fliegel–Van Flandern algorithm on the
// proleptic Gregorian calendar with astronomical year numbering. Day counts
// are float64 days (Julian Date and derivatives) or seconds (Unix time).
package core

import (
	"math"

	"github.com/tempoch/tempoch/quantity"
)

// Status is the result code of a fallible native call.
type Status int32

// Status codes. The numeric values are part of the call contract; new codes
// may be appended but never reordered.
const (
	StatusOK Status = iota
	StatusNullPointer
	StatusUTCConversionFailed
	StatusInvalidPeriod
	StatusNoIntersection
	StatusInvalidQuantity
)

// Civil is the fixed-layout civil breakdown exchanged with the native
// calendar converter. Field ranges are documented, not enforced; validity
// is judged during conversion.
type Civil struct {
	Year       int32  // astronomical year numbering
	Month      uint8  // [1, 12]
	Day        uint8  // [1, 31]
	Hour       uint8  // [0, 23]
	Minute     uint8  // [0, 59]
	Second     uint8  // [0, 60], 60 permits a leap second
	Nanosecond uint32 // [0, 999999999]
}

const (
	// MJDOffset is the Julian Date of the Modified Julian Date epoch.
	MJDOffset = 2400000.5

	// UnixEpochJD is the Julian Date of 1970-01-01T00:00:00.
	UnixEpochJD = 2440587.5

	j2000JD        = 2451545.0
	daysPerCentury = 36525.0
	secondsPerDay  = 86400.0
	nanosPerDay    = secondsPerDay * 1e9
	nanosPerSecond = 1e9

	// maxJD bounds JDToCivil input so day numbers stay within int64 range.
	maxJD = 1e9

	// snapNanos absorbs float64 day-count granularity when recovering a
	// civil breakdown: fractions within half a millisecond of a whole
	// second collapse onto it.
	snapNanos = 500_000
)

// civilToDayNumber returns the Julian Day Number at noon of the given
// proleptic Gregorian date (Fliegel–Van Flandern).
func civilToDayNumber(year int64, month, day int64) int64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// dayNumberToCivil inverts civilToDayNumber (Richards' variant).
func dayNumberToCivil(jdn int64) (year, month, day int64) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// JDFromCivil converts a civil breakdown to a Julian Date. Returns
// StatusUTCConversionFailed when a field is out of range or the date does
// not exist in the calendar, StatusNullPointer when out is nil.
func JDFromCivil(c Civil, out *float64) Status {
	if out == nil {
		return StatusNullPointer
	}
	if c.Month < 1 || c.Month > 12 || c.Day < 1 || c.Day > 31 ||
		c.Hour > 23 || c.Minute > 59 || c.Second > 60 ||
		c.Nanosecond > 999_999_999 {
		return StatusUTCConversionFailed
	}

	jdn := civilToDayNumber(int64(c.Year), int64(c.Month), int64(c.Day))
	if jdn < 0 {
		return StatusUTCConversionFailed
	}
	// Reject dates the calendar normalized away, e.g. February 30.
	y, m, d := dayNumberToCivil(jdn)
	if y != int64(c.Year) || m != int64(c.Month) || d != int64(c.Day) {
		return StatusUTCConversionFailed
	}

	daySeconds := float64(c.Hour)*3600 + float64(c.Minute)*60 +
		float64(c.Second) + float64(c.Nanosecond)/nanosPerSecond
	// jdn is the day number at noon; civil midnight is half a day earlier.
	*out = float64(jdn) - 0.5 + daySeconds/secondsPerDay
	return StatusOK
}

// JDToCivil converts a Julian Date to a civil breakdown. Returns
// StatusUTCConversionFailed for non-finite or out-of-range day counts,
// StatusNullPointer when out is nil.
func JDToCivil(jd float64, out *Civil) Status {
	if out == nil {
		return StatusNullPointer
	}
	if math.IsNaN(jd) || math.IsInf(jd, 0) || jd < 0 || jd > maxJD {
		return StatusUTCConversionFailed
	}

	shifted := jd + 0.5
	dayNum := int64(math.Floor(shifted))
	frac := shifted - math.Floor(shifted)

	ns := int64(math.Round(frac * nanosPerDay))
	// Snap near-second fractions introduced by float64 day granularity.
	if r := ns % int64(nanosPerSecond); r < snapNanos {
		ns -= r
	} else if int64(nanosPerSecond)-r < snapNanos {
		ns += int64(nanosPerSecond) - r
	}
	if ns >= int64(nanosPerDay) {
		dayNum++
		ns = 0
	}

	year, month, day := dayNumberToCivil(dayNum)
	sec := ns / int64(nanosPerSecond)
	*out = Civil{
		Year:       int32(year),
		Month:      uint8(month),
		Day:        uint8(day),
		Hour:       uint8(sec / 3600),
		Minute:     uint8(sec / 60 % 60),
		Second:     uint8(sec % 60),
		Nanosecond: uint32(ns % int64(nanosPerSecond)),
	}
	return StatusOK
}

// MJDFromCivil converts a civil breakdown to a Modified Julian Date.
func MJDFromCivil(c Civil, out *float64) Status {
	st := JDFromCivil(c, out)
	if st == StatusOK {
		*out -= MJDOffset
	}
	return st
}

// MJDToCivil converts a Modified Julian Date to a civil breakdown.
func MJDToCivil(mjd float64, out *Civil) Status {
	return JDToCivil(mjd+MJDOffset, out)
}

// AddDays advances a day count by delta days on the same scale.
func AddDays(v, delta float64) float64 {
	return v + delta
}

// Difference returns a minus b in the scale's native count.
func Difference(a, b float64) float64 {
	return a - b
}

// AddQuantity advances a native-unit count v by the quantity q, converting
// q into the scale's native unit first. Returns StatusInvalidQuantity for
// an unrecognized unit, StatusNullPointer when out is nil.
func AddQuantity(v float64, q quantity.Quantity, native quantity.Unit, out *float64) Status {
	if out == nil {
		return StatusNullPointer
	}
	if !q.Unit().Valid() || !native.Valid() {
		return StatusInvalidQuantity
	}
	*out = v + q.To(native).Value()
	return StatusOK
}

// DifferenceQuantity returns a minus b tagged with the scale's native unit.
func DifferenceQuantity(a, b float64, native quantity.Unit) quantity.Quantity {
	return quantity.New(a-b, native)
}

// J2000 returns the Julian Date of the J2000.0 reference epoch.
func J2000() float64 {
	return j2000JD
}

// JulianCenturies returns the Julian centuries elapsed between jd and
// J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - j2000JD) / daysPerCentury
}

// JulianCenturiesQuantity is JulianCenturies tagged as a quantity.
func JulianCenturiesQuantity(jd float64) quantity.Quantity {
	return quantity.JulianCenturies(JulianCenturies(jd))
}
