package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitConversion(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		name string
		q    Quantity
		to   Unit
		exp  float64
	}{
		{"day_to_hours", Days(1), Hour, 24},
		{"day_to_minutes", Days(1), Minute, 1440},
		{"day_to_seconds", Days(1), Second, 86400},
		{"half_day_to_minutes", Days(0.5), Minute, 720},
		{"hours_to_days", Hours(36), Day, 1.5},
		{"minutes_to_seconds", Minutes(2), Second, 120},
		{"seconds_to_hours", Seconds(7200), Hour, 2},
		{"century_to_days", JulianCenturies(1), Day, 36525},
		{"days_to_centuries", Days(36525), JulianCentury, 1},
		{"same_unit", Hours(3), Hour, 3},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.q.To(tc.to)
			assert.Equal(t, tc.to, got.Unit())
			assert.InDelta(t, tc.exp, got.Value(), 1e-9)
		})
	}

	// Converting there and back preserves the value.
	q := Hours(7.25)
	a.InDelta(7.25, q.To(Second).To(Hour).Value(), 1e-12)
}

func TestQuantityNeg(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	q := Minutes(30).Neg()
	a.Equal(Minute, q.Unit())
	a.InDelta(-30.0, q.Value(), 0)
	a.InDelta(30.0, q.Neg().Value(), 0)
}

func TestQuantityString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	a.Equal("1.5 d", Days(1.5).String())
	a.Equal("24 h", Hours(24).String())
	a.Equal("-30 min", Minutes(-30).String())
	a.Equal("86400 s", Seconds(86400).String())
	a.Equal("0.5 jcy", JulianCenturies(0.5).String())
}

func TestUnitValidity(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	a.True(Day.Valid())
	a.True(JulianCentury.Valid())
	a.False(Unit(42).Valid())
	a.Equal("unit(42)", Unit(42).String())
}
