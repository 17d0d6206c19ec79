// Package scale defines the time-scale tags and the per-scale trait
// operations the generic time-point dispatches through.
//
// Every tag is a zero-size marker implementing [Scale]: a label, a native
// unit, and the two half-paths to and from the Julian Date hub. That pair
// of half-paths is all a new scale must supply — civil conversion,
// arithmetic, and every cross-scale pairing are inherited generically by
// routing through the hub (see [Convert]). The three day-count scales with
// native calendar converters (JD, MJD, UTC) additionally satisfy the
// direct civil-conversion contract and skip the hub for those operations.
package scale

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/tempoch/tempoch/core"
	"github.com/tempoch/tempoch/quantity"
)

// Scale is the trait contract every scale tag satisfies. Implementations
// are zero-size; all methods are pure and safe for concurrent use.
type Scale interface {
	// Label returns the human-readable scale label, e.g. "JD".
	Label() string

	// Unit returns the scale's native count unit: Day for the day-count
	// scales, Second for Unix time.
	Unit() quantity.Unit

	// ToJD converts a native count on this scale to a Julian Date.
	ToJD(v float64) float64

	// FromJD converts a Julian Date to a native count on this scale.
	FromJD(jd float64) float64
}

// civilConverter is satisfied by scales with a direct native civil
// converter; all other scales route civil conversion through the hub.
type civilConverter interface {
	fromCivil(c core.Civil, out *float64) core.Status
	toCivil(v float64, out *core.Civil) core.Status
}

// JD is Julian Date: days since -4712-01-01 12:00.
type JD struct{}

func (JD) Label() string { return "JD" }
func (JD) Unit() quantity.Unit { return quantity.Day }
func (JD) ToJD(v float64) float64 { return v }
func (JD) FromJD(jd float64) float64 { return jd }

func (JD) fromCivil(c core.Civil, out *float64) core.Status { return core.JDFromCivil(c, out) }
func (JD) toCivil(v float64, out *core.Civil) core.Status { return core.JDToCivil(v, out) }

// MJD is Modified Julian Date: JD − 2400000.5.
type MJD struct{}

func (MJD) Label() string { return "MJD" }
func (MJD) Unit() quantity.Unit { return quantity.Day }
func (MJD) ToJD(v float64) float64 { return core.MJDToJD(v) }
func (MJD) FromJD(jd float64) float64 { return core.JDToMJD(jd) }

func (MJD) fromCivil(c core.Civil, out *float64) core.Status { return core.MJDFromCivil(c, out) }
func (MJD) toCivil(v float64, out *core.Civil) core.Status { return core.MJDToCivil(v, out) }

// UTC is Coordinated Universal Time stored as MJD days; it shares the MJD
// representation and converters.
type UTC struct{}

func (UTC) Label() string { return "UTC" }
func (UTC) Unit() quantity.Unit { return quantity.Day }
func (UTC) ToJD(v float64) float64 { return core.MJDToJD(v) }
func (UTC) FromJD(jd float64) float64 { return core.JDToMJD(jd) }

func (UTC) fromCivil(c core.Civil, out *float64) core.Status { return core.MJDFromCivil(c, out) }
func (UTC) toCivil(v float64, out *core.Civil) core.Status { return core.MJDToCivil(v, out) }

// TT is Terrestrial Time.
type TT struct{}

func (TT) Label() string { return "TT" }
func (TT) Unit() quantity.Unit { return quantity.Day }
func (TT) ToJD(v float64) float64 { return core.TTToJD(v) }
func (TT) FromJD(jd float64) float64 { return core.JDToTT(jd) }

// TAI is International Atomic Time.
type TAI struct{}

func (TAI) Label() string { return "TAI" }
func (TAI) Unit() quantity.Unit { return quantity.Day }
func (TAI) ToJD(v float64) float64 { return core.TAIToJD(v) }
func (TAI) FromJD(jd float64) float64 { return core.JDToTAI(jd) }

// TDB is Barycentric Dynamical Time.
type TDB struct{}

func (TDB) Label() string { return "TDB" }
func (TDB) Unit() quantity.Unit { return quantity.Day }
func (TDB) ToJD(v float64) float64 { return core.TDBToJD(v) }
func (TDB) FromJD(jd float64) float64 { return core.JDToTDB(jd) }

// TCG is Geocentric Coordinate Time.
type TCG struct{}

func (TCG) Label() string { return "TCG" }
func (TCG) Unit() quantity.Unit { return quantity.Day }
func (TCG) ToJD(v float64) float64 { return core.TCGToJD(v) }
func (TCG) FromJD(jd float64) float64 { return core.JDToTCG(jd) }

// TCB is Barycentric Coordinate Time.
type TCB struct{}

func (TCB) Label() string { return "TCB" }
func (TCB) Unit() quantity.Unit { return quantity.Day }
func (TCB) ToJD(v float64) float64 { return core.TCBToJD(v) }
func (TCB) FromJD(jd float64) float64 { return core.JDToTCB(jd) }

// GPS is GPS time.
type GPS struct{}

func (GPS) Label() string { return "GPS" }
func (GPS) Unit() quantity.Unit { return quantity.Day }
func (GPS) ToJD(v float64) float64 { return core.GPSToJD(v) }
func (GPS) FromJD(jd float64) float64 { return core.JDToGPS(jd) }

// UT1 is Universal Time.
type UT1 struct{}

func (UT1) Label() string { return "UT1" }
func (UT1) Unit() quantity.Unit { return quantity.Day }
func (UT1) ToJD(v float64) float64 { return core.UT1ToJD(v) }
func (UT1) FromJD(jd float64) float64 { return core.JDToUT1(jd) }

// JDE is Julian Ephemeris Date: JD advanced by ΔT.
type JDE struct{}

func (JDE) Label() string { return "JDE" }
func (JDE) Unit() quantity.Unit { return quantity.Day }
func (JDE) ToJD(v float64) float64 { return core.JDEToJD(v) }
func (JDE) FromJD(jd float64) float64 { return core.JDToJDE(jd) }

// Unix is Unix time. Its native count is seconds since 1970-01-01, not
// days, so its unit is Second.
type Unix struct{}

func (Unix) Label() string { return "UNIX" }
func (Unix) Unit() quantity.Unit { return quantity.Second }
func (Unix) ToJD(v float64) float64 { return core.UnixToJD(v) }
func (Unix) FromJD(jd float64) float64 { return core.JDToUnix(jd) }

// registry maps each label to its tag. Built once, read-only thereafter.
var registry = map[string]Scale{
	"JD":   JD{},
	"MJD":  MJD{},
	"UTC":  UTC{},
	"TT":   TT{},
	"TAI":  TAI{},
	"TDB":  TDB{},
	"TCG":  TCG{},
	"TCB":  TCB{},
	"GPS":  GPS{},
	"UT1":  UT1{},
	"JDE":  JDE{},
	"UNIX": Unix{},
}

// Lookup returns the scale tag registered under label.
func Lookup(label string) (Scale, bool) {
	s, ok := registry[label]
	return s, ok
}

// Labels returns the labels of all supported scales in sorted order.
func Labels() []string {
	labels := maps.Keys(registry)
	slices.Sort(labels)
	return labels
}
