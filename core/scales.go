package core

import "math"

// Fixed-era offsets and rate constants relating the physical scales to the
// Julian Date hub. Leap-second history and full ΔT series are out of scope;
// TAI−UTC is pinned to the current era and ΔT comes from the Espenak–Meeus
// polynomial expressions.
const (
	taiMinusUTCSeconds = 37.0
	ttMinusTAISeconds  = 32.184
	gpsMinusTAISeconds = -19.0

	// IAU-defined rates and the shared 1977-01-01 convergence epoch.
	lg        = 6.969290134e-10
	lb        = 1.550519768e-8
	tcEpochJD = 2443144.5003725
	tdb0Days  = -6.55e-5 / secondsPerDay

	ttMinusJDDays  = (taiMinusUTCSeconds + ttMinusTAISeconds) / secondsPerDay
	taiMinusJDDays = taiMinusUTCSeconds / secondsPerDay
	gpsMinusJDDays = (taiMinusUTCSeconds + gpsMinusTAISeconds) / secondsPerDay

	radPerDeg = math.Pi / 180
)

// JDToMJD converts a Julian Date to a Modified Julian Date.
func JDToMJD(jd float64) float64 { return jd - MJDOffset }

// MJDToJD converts a Modified Julian Date to a Julian Date.
func MJDToJD(mjd float64) float64 { return mjd + MJDOffset }

// JDToUnix converts a Julian Date to seconds since the Unix epoch.
func JDToUnix(jd float64) float64 { return (jd - UnixEpochJD) * secondsPerDay }

// UnixToJD converts seconds since the Unix epoch to a Julian Date.
func UnixToJD(sec float64) float64 { return UnixEpochJD + sec/secondsPerDay }

// JDToTT converts a Julian Date to a Terrestrial Time day count.
func JDToTT(jd float64) float64 { return jd + ttMinusJDDays }

// TTToJD converts a Terrestrial Time day count to a Julian Date.
func TTToJD(tt float64) float64 { return tt - ttMinusJDDays }

// JDToTAI converts a Julian Date to an International Atomic Time day count.
func JDToTAI(jd float64) float64 { return jd + taiMinusJDDays }

// TAIToJD converts an International Atomic Time day count to a Julian Date.
func TAIToJD(tai float64) float64 { return tai - taiMinusJDDays }

// JDToGPS converts a Julian Date to a GPS time day count.
func JDToGPS(jd float64) float64 { return jd + gpsMinusJDDays }

// GPSToJD converts a GPS time day count to a Julian Date.
func GPSToJD(gps float64) float64 { return gps - gpsMinusJDDays }

// JDToTCG converts a Julian Date to a Geocentric Coordinate Time day count.
// TCG runs ahead of TT at the rate Lg since the 1977 convergence epoch.
func JDToTCG(jd float64) float64 {
	tt := JDToTT(jd)
	return tt + lg*(tt-tcEpochJD)
}

// TCGToJD converts a Geocentric Coordinate Time day count to a Julian Date.
func TCGToJD(tcg float64) float64 {
	tt := (tcg + lg*tcEpochJD) / (1 + lg)
	return TTToJD(tt)
}

// tdbMinusTTSeconds is the dominant periodic term of TDB−TT, evaluated at
// a TT day count (Meeus, Astronomical Algorithms).
func tdbMinusTTSeconds(tt float64) float64 {
	g := (357.53 + 0.9856003*(tt-j2000JD)) * radPerDeg
	return 0.001657 * math.Sin(g+0.01671*math.Sin(g))
}

// JDToTDB converts a Julian Date to a Barycentric Dynamical Time day count.
func JDToTDB(jd float64) float64 {
	tt := JDToTT(jd)
	return tt + tdbMinusTTSeconds(tt)/secondsPerDay
}

// TDBToJD converts a Barycentric Dynamical Time day count to a Julian Date.
// The periodic term varies far too slowly for the 1.7 ms offset to matter,
// so it is evaluated at the TDB argument directly.
func TDBToJD(tdb float64) float64 {
	tt := tdb - tdbMinusTTSeconds(tdb)/secondsPerDay
	return TTToJD(tt)
}

// JDToTCB converts a Julian Date to a Barycentric Coordinate Time day
// count. TCB relates to TDB through the rate Lb and the TDB0 offset.
func JDToTCB(jd float64) float64 {
	tdb := JDToTDB(jd)
	return (tdb - tdb0Days - lb*tcEpochJD) / (1 - lb)
}

// TCBToJD converts a Barycentric Coordinate Time day count to a Julian
// Date.
func TCBToJD(tcb float64) float64 {
	tdb := tcb - lb*(tcb-tcEpochJD) + tdb0Days
	return TDBToJD(tdb)
}

// JDToUT1 converts a Julian Date to a UT1 day count using ΔT = TT − UT1.
func JDToUT1(jd float64) float64 {
	return JDToTT(jd) - DeltaTSeconds(jd)/secondsPerDay
}

// UT1ToJD converts a UT1 day count to a Julian Date. ΔT is evaluated at
// the UT1 argument; the resulting error is below the model's own accuracy.
func UT1ToJD(ut1 float64) float64 {
	return TTToJD(ut1 + DeltaTSeconds(ut1)/secondsPerDay)
}

// JDToJDE converts a Julian Date to a Julian Ephemeris Date.
func JDToJDE(jd float64) float64 {
	return jd + DeltaTSeconds(jd)/secondsPerDay
}

// JDEToJD converts a Julian Ephemeris Date to a Julian Date.
func JDEToJD(jde float64) float64 {
	return jde - DeltaTSeconds(jde)/secondsPerDay
}

// DeltaTSeconds returns ΔT = TT − UT1 in seconds at the given Julian Date,
// using the Espenak–Meeus polynomial expressions: dedicated fits for
// 1986–2005 and 2005–2050, the long-term parabola elsewhere.
func DeltaTSeconds(jd float64) float64 {
	y := 2000 + (jd-j2000JD)/365.2425
	switch {
	case y >= 2005 && y < 2050:
		t := y - 2000
		return 62.92 + 0.32217*t + 0.005589*t*t
	case y >= 1986 && y < 2005:
		t := y - 2000
		return 63.86 + 0.3345*t - 0.060374*t*t + 0.0017275*t*t*t +
			0.000651814*t*t*t*t + 0.00002373599*t*t*t*t*t
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}
