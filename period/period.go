// Package period provides a closed time interval generic over any time
// representation.
//
// Bounds are stored canonically as Modified Julian Date days regardless of
// the representation used at the API boundary; the representation is
// recovered lazily on read through the [Representation] adapter. The
// start ≤ end invariant is validated at construction and preserved by
// every derived operation, so a Period value in hand is always ordered.
package period

import (
	"fmt"

	"github.com/tempoch/tempoch"
	"github.com/tempoch/tempoch/core"
	"github.com/tempoch/tempoch/quantity"
)

// Representation adapts a time type to the canonical internal unit. It is
// a self-referential constraint: R reports its own MJD day count and
// rebuilds an R from one. The instant package's Time[S] satisfies it for
// every scale.
type Representation[R any] interface {
	// MJDValue returns the canonical MJD day count of the value.
	MJDValue() float64

	// FromMJDValue rebuilds a representation value from a canonical MJD
	// day count. Called on a zero value; the receiver's own value is
	// irrelevant.
	FromMJDValue(mjd float64) R
}

// Period is an immutable closed interval [start, end].
type Period[R Representation[R]] struct {
	inner core.Period
}

// New validates and constructs the period [start, end]. A zero-length
// period (start == end) is a valid single-instant interval; construction
// fails only when start is later than end.
func New[R Representation[R]](start, end R) (Period[R], error) {
	var inner core.Period
	st := core.PeriodNew(start.MJDValue(), end.MJDValue(), &inner)
	if err := tempoch.StatusError(st, "period: new"); err != nil {
		return Period[R]{}, err
	}
	return Period[R]{inner: inner}, nil
}

// fromCore wraps an already-validated native period without re-checking
// the ordering invariant. Internal use only, for values known ordered by
// construction, such as intersection output.
func fromCore[R Representation[R]](p core.Period) Period[R] {
	return Period[R]{inner: p}
}

// Start returns the inclusive start bound as an R.
func (p Period[R]) Start() R {
	var zero R
	return zero.FromMJDValue(p.inner.StartMJD)
}

// End returns the inclusive end bound as an R.
func (p Period[R]) End() R {
	var zero R
	return zero.FromMJDValue(p.inner.EndMJD)
}

// StartMJD returns the canonical start bound in MJD days.
func (p Period[R]) StartMJD() float64 { return p.inner.StartMJD }

// EndMJD returns the canonical end bound in MJD days.
func (p Period[R]) EndMJD() float64 { return p.inner.EndMJD }

// Duration returns the elapsed length of p as a Day-unit quantity.
func (p Period[R]) Duration() quantity.Quantity {
	return quantity.Days(core.PeriodDurationDays(p.inner))
}

// DurationIn returns the elapsed length of p in the requested unit.
func (p Period[R]) DurationIn(u quantity.Unit) quantity.Quantity {
	return p.Duration().To(u)
}

// Intersection returns the overlap of p and other. The operation is
// commutative; it fails when the two intervals share no instant. Touching
// intervals overlap in a single-instant period.
func (p Period[R]) Intersection(other Period[R]) (Period[R], error) {
	var out core.Period
	st := core.PeriodIntersection(p.inner, other.inner, &out)
	if err := tempoch.StatusError(st, "period: intersection"); err != nil {
		return Period[R]{}, err
	}
	return fromCore[R](out), nil
}

// String returns "[start, end]" using each bound's own rendering.
func (p Period[R]) String() string {
	return fmt.Sprintf("[%v, %v]", p.Start(), p.End())
}
