package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tempoch/tempoch/core"
)

func TestString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		ct   Time
		exp  string
	}{
		{
			name: "whole_second",
			ct:   Time{Year: 2026, Month: 7, Day: 15, Hour: 22},
			exp:  "2026-07-15 22:00:00",
		},
		{
			name: "with_nanoseconds",
			ct:   Time{Year: 2026, Month: 3, Day: 14, Hour: 9, Minute: 26, Second: 53, Nanosecond: 589},
			exp:  "2026-03-14 09:26:53.000000589",
		},
		{
			name: "j2000",
			ct:   J2000(),
			exp:  "2000-01-01 12:00:00",
		},
		{
			name: "small_year_padded",
			ct:   Time{Year: 476, Month: 9, Day: 4, Hour: 1, Minute: 2, Second: 3},
			exp:  "0476-09-04 01:02:03",
		},
		{
			name: "negative_year_keeps_padding",
			ct:   Time{Year: -44, Month: 3, Day: 15, Hour: 12},
			exp:  "-0044-03-15 12:00:00",
		},
		{
			name: "year_zero",
			ct:   Time{Year: 0, Month: 1, Day: 1},
			exp:  "0000-01-01 00:00:00",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.ct.String())
		})
	}
}

func TestCoreRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ct := Time{Year: 2026, Month: 3, Day: 14, Hour: 9, Minute: 26, Second: 53, Nanosecond: 589}
	c := ct.ToCore()
	a.Equal(core.Civil{
		Year: 2026, Month: 3, Day: 14,
		Hour: 9, Minute: 26, Second: 53, Nanosecond: 589,
	}, c)
	a.Equal(ct, FromCore(c))
}

func TestToCoreOutOfRange(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Fields that cannot fit the native layout are clamped onto values the
	// native converter rejects, never silently wrapped.
	c := Time{Year: 2026, Month: 700, Day: -3, Nanosecond: -1}.ToCore()
	a.Equal(uint8(255), c.Month)
	a.Equal(uint8(255), c.Day)
	a.Equal(uint32(1_000_000_000), c.Nanosecond)

	var jd float64
	a.Equal(core.StatusUTCConversionFailed, core.JDFromCivil(c, &jd))
}
