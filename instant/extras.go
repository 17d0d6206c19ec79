package instant

import (
	"github.com/tempoch/tempoch/core"
	"github.com/tempoch/tempoch/quantity"
	"github.com/tempoch/tempoch/scale"
)

// Scale-specific extras. Each function takes or returns one concrete
// instantiation of Time, so calling it with a point on any other scale is
// a compile-time error.

// J2000 returns the J2000.0 reference epoch, JD 2451545.0.
func J2000() Time[scale.JD] {
	return New[scale.JD](core.J2000())
}

// JulianCenturies returns the Julian centuries elapsed between J2000.0
// and t.
func JulianCenturies(t Time[scale.JD]) float64 {
	return core.JulianCenturies(t.Value())
}

// JulianCenturiesQuantity is JulianCenturies tagged as a quantity.
func JulianCenturiesQuantity(t Time[scale.JD]) quantity.Quantity {
	return core.JulianCenturiesQuantity(t.Value())
}

// DeltaT returns ΔT = TT − UT1 at t as a Second-unit quantity.
func DeltaT(t Time[scale.UT1]) quantity.Quantity {
	jd := scale.Convert[scale.UT1, scale.JD](t.Value())
	return quantity.Seconds(core.DeltaTSeconds(jd))
}
