package core

// Period is the fixed-layout closed interval exchanged with the native
// period calls. Bounds are Modified Julian Date days; StartMJD <= EndMJD
// holds for every value produced by PeriodNew or PeriodIntersection.
type Period struct {
	StartMJD float64
	EndMJD   float64
}

// PeriodNew validates and constructs a period. A zero-length period
// (start == end) is a valid single-instant interval; only start > end is
// rejected with StatusInvalidPeriod. Returns StatusNullPointer when out is
// nil.
func PeriodNew(start, end float64, out *Period) Status {
	if out == nil {
		return StatusNullPointer
	}
	if start > end {
		return StatusInvalidPeriod
	}
	*out = Period{StartMJD: start, EndMJD: end}
	return StatusOK
}

// PeriodDurationDays returns the elapsed length of p in days.
func PeriodDurationDays(p Period) float64 {
	return p.EndMJD - p.StartMJD
}

// PeriodIntersection writes the overlap of a and b to out. Returns
// StatusNoIntersection when the intervals share no instant,
// StatusNullPointer when out is nil.
func PeriodIntersection(a, b Period, out *Period) Status {
	if out == nil {
		return StatusNullPointer
	}
	start := max(a.StartMJD, b.StartMJD)
	end := min(a.EndMJD, b.EndMJD)
	if start > end {
		return StatusNoIntersection
	}
	*out = Period{StartMJD: start, EndMJD: end}
	return StatusOK
}
