package scale

import "github.com/tempoch/tempoch/core"

// pairKey identifies one directed conversion pair by scale labels.
type pairKey struct {
	from, to string
}

// identity returns v unchanged; MJD and UTC share a representation.
func identity(v float64) float64 { return v }

// directPaths holds the direct conversion specializations: the JD↔MJD↔UTC
// triangle plus JD paired with every hub-backed scale. The map is built
// once and never mutated, so concurrent lookups need no coordination.
var directPaths = map[pairKey]func(float64) float64{
	{"JD", "MJD"}:  core.JDToMJD,
	{"MJD", "JD"}:  core.MJDToJD,
	{"JD", "UTC"}:  core.JDToMJD,
	{"UTC", "JD"}:  core.MJDToJD,
	{"MJD", "UTC"}: identity,
	{"UTC", "MJD"}: identity,
	{"JD", "TT"}:   core.JDToTT,
	{"TT", "JD"}:   core.TTToJD,
	{"JD", "TAI"}:  core.JDToTAI,
	{"TAI", "JD"}:  core.TAIToJD,
	{"JD", "TDB"}:  core.JDToTDB,
	{"TDB", "JD"}:  core.TDBToJD,
	{"JD", "TCG"}:  core.JDToTCG,
	{"TCG", "JD"}:  core.TCGToJD,
	{"JD", "TCB"}:  core.JDToTCB,
	{"TCB", "JD"}:  core.TCBToJD,
	{"JD", "GPS"}:  core.JDToGPS,
	{"GPS", "JD"}:  core.GPSToJD,
	{"JD", "UT1"}:  core.JDToUT1,
	{"UT1", "JD"}:  core.UT1ToJD,
	{"JD", "JDE"}:  core.JDToJDE,
	{"JDE", "JD"}:  core.JDEToJD,
	{"JD", "UNIX"}: core.JDToUnix,
	{"UNIX", "JD"}: core.UnixToJD,
}

// Convert maps a native count on From to the equivalent count on To.
// Identity conversions return the input unchanged, direct specializations
// are used when registered, and any remaining pair composes the two
// half-paths through the Julian Date hub. Pure arithmetic; it cannot fail
// for the defined scales.
func Convert[From, To Scale](v float64) float64 {
	var from From
	var to To
	f, t := from.Label(), to.Label()
	if f == t {
		return v
	}
	if direct, ok := directPaths[pairKey{from: f, to: t}]; ok {
		return direct(v)
	}
	return to.FromJD(from.ToJD(v))
}
