// Package civil provides the calendar/clock breakdown used as the
// interchange format between day-count scales and human-readable time.
//
// A [Time] is pure data: field ranges are documented but not enforced
// here. Validity is adjudicated by the native converter when a breakdown
// is turned into a day count, so an impossible date like February 30
// only fails at that point.
package civil

import (
	"fmt"

	"github.com/tempoch/tempoch/core"
)

// Time is a civil date-time breakdown.
type Time struct {
	Year       int // astronomical year numbering
	Month      int // [1, 12]
	Day        int // [1, 31]
	Hour       int // [0, 23]
	Minute     int // [0, 59]
	Second     int // [0, 60], 60 permits a leap second
	Nanosecond int // [0, 999999999]
}

// J2000 returns the breakdown of the J2000.0 reference epoch,
// 2000-01-01 12:00:00.
func J2000() Time {
	return Time{Year: 2000, Month: 1, Day: 1, Hour: 12}
}

// ToCore converts t to the fixed native layout. Out-of-range fields are
// clamped into the layout's unsigned storage and left for the native
// converter to reject.
func (t Time) ToCore() core.Civil {
	return core.Civil{
		Year:       int32(t.Year),
		Month:      clampByte(t.Month),
		Day:        clampByte(t.Day),
		Hour:       clampByte(t.Hour),
		Minute:     clampByte(t.Minute),
		Second:     clampByte(t.Second),
		Nanosecond: clampNanos(t.Nanosecond),
	}
}

// FromCore converts the fixed native layout back to a Time.
func FromCore(c core.Civil) Time {
	return Time{
		Year:       int(c.Year),
		Month:      int(c.Month),
		Day:        int(c.Day),
		Hour:       int(c.Hour),
		Minute:     int(c.Minute),
		Second:     int(c.Second),
		Nanosecond: int(c.Nanosecond),
	}
}

// String returns the canonical rendering
// "YYYY-MM-DD HH:MM:SS[.nnnnnnnnn]", with the fractional part included
// only when the nanosecond field is non-zero. Astronomical years before
// year 0 render as a sign followed by the four-digit year, e.g. "-0044".
func (t Time) String() string {
	year := fmt.Sprintf("%04d", t.Year)
	if t.Year < 0 {
		year = fmt.Sprintf("-%04d", -t.Year)
	}
	s := fmt.Sprintf("%s-%02d-%02d %02d:%02d:%02d",
		year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

// clampByte squeezes v into the uint8 layout field; 255 is out of range
// for every civil component, so the native converter rejects it.
func clampByte(v int) uint8 {
	if v < 0 || v > 255 {
		return 255
	}
	return uint8(v)
}

// clampNanos squeezes v into the uint32 nanosecond field; values past
// 999999999 fail native validation.
func clampNanos(v int) uint32 {
	if v < 0 || v > 999_999_999 {
		return 1_000_000_000
	}
	return uint32(v)
}
