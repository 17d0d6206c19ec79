package instant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempoch/tempoch"
	"github.com/tempoch/tempoch/civil"
	"github.com/tempoch/tempoch/quantity"
	"github.com/tempoch/tempoch/scale"
)

func TestFromCivil(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	jd, err := FromCivil[scale.JD](civil.J2000())
	r.NoError(err)
	a.InDelta(2451545.0, jd.Value(), 1e-9)
	a.Equal("JD", jd.Label())

	mjd, err := FromCivil[scale.MJD](civil.Time{Year: 2026, Month: 7, Day: 15, Hour: 12})
	r.NoError(err)
	a.InDelta(61236.5, mjd.Value(), 1e-9)

	_, err = FromCivil[scale.JD](civil.Time{Year: 2026, Month: 2, Day: 30})
	a.ErrorIs(err, tempoch.ErrUTCConversion)
}

func TestToCivilRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	original := civil.Time{Year: 2026, Month: 7, Day: 15, Hour: 22}
	jd, err := FromCivil[scale.JD](original)
	r.NoError(err)
	back, err := jd.ToCivil()
	r.NoError(err)
	a.Equal(original, back)

	_, err = New[scale.JD](-5.0).ToCivil()
	a.ErrorIs(err, tempoch.ErrUTCConversion)
}

func TestConvert(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	jd := New[scale.JD](2451545.0)

	mjd := Convert[scale.MJD](jd)
	a.InDelta(51544.5, mjd.Value(), 1e-9)
	a.Equal("MJD", mjd.Label())

	// Round trip back to JD.
	a.InDelta(jd.Value(), Convert[scale.JD](mjd).Value(), 1e-9)

	// Identity conversion is a no-op.
	a.Equal(jd.Value(), Convert[scale.JD](jd).Value())

	// One ulp near JD magnitude is about 4e-5 s.
	tt := Convert[scale.TT](jd)
	a.InDelta(69.184, (tt.Value()-jd.Value())*86400, 5e-5)

	unix := Convert[scale.Unix](jd)
	a.InDelta(946728000.0, unix.Value(), 1e-3)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	t1 := New[scale.JD](2451545.0)
	t2 := t1.AddDays(365.25)
	a.InDelta(365.25, t2.Difference(t1).Value(), 1e-10)
	a.Equal(quantity.Day, t2.Difference(t1).Unit())

	// Typed quantities are respected regardless of day-count granularity.
	t3, err := t1.Add(quantity.Hours(12))
	r.NoError(err)
	a.InDelta(0.5, t3.Difference(t1).Value(), 1e-10)

	// Add then subtract the same quantity returns to the start.
	t4, err := t3.Subtract(quantity.Hours(12))
	r.NoError(err)
	a.InDelta(t1.Value(), t4.Value(), 1e-10)

	_, err = t1.Add(quantity.New(1, quantity.Unit(42)))
	a.ErrorIs(err, tempoch.ErrUnknownStatus)
}

func TestAddDifferenceInverse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		d    quantity.Quantity
	}{
		{"days", quantity.Days(1.25)},
		{"hours", quantity.Hours(-7)},
		{"minutes", quantity.Minutes(90)},
		{"seconds", quantity.Seconds(13.5)},
		{"centuries", quantity.JulianCenturies(0.01)},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			t1 := New[scale.MJD](60200.0)
			t2, err := t1.Add(tc.d)
			require.NoError(t, err)
			got := t2.Difference(t1).To(tc.d.Unit())
			a.InDelta(tc.d.Value(), got.Value(), 1e-6)
		})
	}
}

func TestUnixArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	t1 := New[scale.Unix](1_700_000_000)
	t2, err := t1.Add(quantity.Days(1))
	r.NoError(err)

	d := t2.Difference(t1)
	a.Equal(quantity.Second, d.Unit())
	a.InDelta(86400.0, d.Value(), 1e-6)
	a.InDelta(1.0, d.To(quantity.Day).Value(), 1e-9)
}

func TestComparisons(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	early := New[scale.JD](2451545.0)
	late := New[scale.JD](2451546.0)

	a.True(early.Before(late))
	a.True(late.After(early))
	a.False(early.After(late))
	a.True(early.Equal(New[scale.JD](2451545.0)))
	a.False(early.Equal(late))
	a.Equal(-1, early.Compare(late))
	a.Equal(1, late.Compare(early))
	a.Equal(0, early.Compare(early))
}

func TestString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("JD:2451545", New[scale.JD](2451545.0).String())
	a.Equal("MJD:60200.5", New[scale.MJD](60200.5).String())

	// Fixed-point form even at Unix-second magnitudes, never exponent
	// notation.
	a.Equal("UNIX:1700000000", New[scale.Unix](1.7e9).String())
	a.Equal("JD:2451545.25", New[scale.JD](2451545.25).String())
}

func TestJDExtras(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	j2000 := J2000()
	a.Equal(2451545.0, j2000.Value())
	a.InDelta(0.0, JulianCenturies(j2000), 0)

	later := j2000.AddDays(36525)
	a.InDelta(1.0, JulianCenturies(later), 1e-12)

	q := JulianCenturiesQuantity(later)
	a.Equal(quantity.JulianCentury, q.Unit())
	a.InDelta(1.0, q.Value(), 1e-12)
}

func TestDeltaT(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ut1 := Convert[scale.UT1](New[scale.JD](2460000.5))
	dt := DeltaT(ut1)
	a.Equal(quantity.Second, dt.Unit())
	// 2023 falls in the 2005–2050 polynomial's range.
	a.InDelta(73.0, dt.Value(), 2.0)
}

func TestMJDAdapter(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	jd := New[scale.JD](2460000.5)
	a.InDelta(60000.0, jd.MJDValue(), 1e-9)

	var zero Time[scale.JD]
	a.InDelta(jd.Value(), zero.FromMJDValue(60000.0).Value(), 1e-9)

	mjd := New[scale.MJD](60000.25)
	a.Equal(60000.25, mjd.MJDValue())
}
