package scale

import (
	"github.com/tempoch/tempoch"
	"github.com/tempoch/tempoch/civil"
	"github.com/tempoch/tempoch/core"
	"github.com/tempoch/tempoch/quantity"
)

// FromCivil converts a civil breakdown to a native count on S. Scales with
// a direct native converter use it; every other scale converts to Julian
// Date and takes its FromJD half-path.
func FromCivil[S Scale](ct civil.Time) (float64, error) {
	var s S
	op := s.Label() + ": from civil"
	var v float64
	if cc, ok := any(s).(civilConverter); ok {
		if err := tempoch.StatusError(cc.fromCivil(ct.ToCore(), &v), op); err != nil {
			return 0, err
		}
		return v, nil
	}
	if err := tempoch.StatusError(core.JDFromCivil(ct.ToCore(), &v), op); err != nil {
		return 0, err
	}
	return s.FromJD(v), nil
}

// ToCivil converts a native count on S to a civil breakdown, routing
// through the Julian Date hub for scales without a direct converter.
func ToCivil[S Scale](v float64) (civil.Time, error) {
	var s S
	op := s.Label() + ": to civil"
	var out core.Civil
	if cc, ok := any(s).(civilConverter); ok {
		if err := tempoch.StatusError(cc.toCivil(v, &out), op); err != nil {
			return civil.Time{}, err
		}
		return civil.FromCore(out), nil
	}
	if err := tempoch.StatusError(core.JDToCivil(s.ToJD(v), &out), op); err != nil {
		return civil.Time{}, err
	}
	return civil.FromCore(out), nil
}

// AddDays advances a native count on S by a number of days, converting the
// delta into the scale's native unit first.
func AddDays[S Scale](v, days float64) float64 {
	var s S
	return core.AddDays(v, quantity.Days(days).To(s.Unit()).Value())
}

// Difference returns a minus b as a quantity in S's native unit.
func Difference[S Scale](a, b float64) quantity.Quantity {
	var s S
	return core.DifferenceQuantity(a, b, s.Unit())
}

// AddQuantity advances a native count on S by a typed quantity.
func AddQuantity[S Scale](v float64, q quantity.Quantity) (float64, error) {
	var s S
	var out float64
	st := core.AddQuantity(v, q, s.Unit(), &out)
	if err := tempoch.StatusError(st, s.Label()+": add quantity"); err != nil {
		return 0, err
	}
	return out, nil
}
