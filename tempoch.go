// Package tempoch provides the error taxonomy shared by the typed time
// packages and the translation from native time-core status codes.
//
// The library itself lives in the subpackages: civil breakdowns in
// [github.com/tempoch/tempoch/civil], unit-tagged quantities in
// [github.com/tempoch/tempoch/quantity], scale tags and the conversion
// graph in [github.com/tempoch/tempoch/scale], the generic time-point in
// [github.com/tempoch/tempoch/instant], and closed intervals in
// [github.com/tempoch/tempoch/period]. Every fallible operation in those
// packages returns an error wrapping exactly one of the sentinels below,
// prefixed with the failing operation, so callers match with [errors.Is].
package tempoch

import (
	"errors"
	"fmt"

	"github.com/tempoch/tempoch/core"
)

var (
	// ErrNullPointer reports that a required native output location was
	// unavailable.
	ErrNullPointer = errors.New("null pointer")

	// ErrUTCConversion reports a civil⇄day-count conversion rejected by
	// the native layer: an out-of-range or calendrically invalid input.
	ErrUTCConversion = errors.New("utc conversion failed")

	// ErrInvalidPeriod reports an attempted period construction with a
	// start later than its end.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrNoIntersection reports two periods sharing no overlapping
	// instant.
	ErrNoIntersection = errors.New("no intersection")

	// ErrUnknownStatus wraps status codes this version does not
	// recognize; the raw code is preserved in the message for
	// forward compatibility with native-side additions.
	ErrUnknownStatus = errors.New("unknown status")
)

// StatusError translates a native status code into the typed taxonomy.
// It returns nil for core.StatusOK and otherwise an error wrapping the
// matching sentinel, prefixed with the failing logical operation op.
func StatusError(st core.Status, op string) error {
	switch st {
	case core.StatusOK:
		return nil
	case core.StatusNullPointer:
		return fmt.Errorf("%s: %w: required output location was nil", op, ErrNullPointer)
	case core.StatusUTCConversionFailed:
		return fmt.Errorf("%s: %w: date out of range or calendrically invalid", op, ErrUTCConversion)
	case core.StatusInvalidPeriod:
		return fmt.Errorf("%s: %w: start is later than end", op, ErrInvalidPeriod)
	case core.StatusNoIntersection:
		return fmt.Errorf("%s: %w: periods share no instant", op, ErrNoIntersection)
	default:
		return fmt.Errorf("%s: %w: code %d", op, ErrUnknownStatus, int32(st))
	}
}
