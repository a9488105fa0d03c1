/*
Package fixpoint packs a timespan.Duration into a single signed 64-bit
fixed-point integer with 2^-30 second resolution: seconds in the upper
33 bits, the fractional second in the lower 30. The big advantage of
the format is that comparing spans and calculating differences is plain
integer comparison and subtraction.

The fractional resolution is close to, but coarser than, a nanosecond;
a round trip may be off by one nanosecond.
*/
package fixpoint // import "timespan.org/fixpoint"

import (
	"errors"

	"timespan.org"
)

const (
	fracBits = 30
	fracMask = 1<<fracBits - 1

	nanosPerSecond = 1_000_000_000

	// maxSeconds is the largest whole-second count the 33 integer bits
	// can hold.
	maxSeconds = 1<<33 - 1
)

// ErrOutOfRange is returned by From when the span's whole seconds do
// not fit the integer bits of the format.
var ErrOutOfRange = errors.New("fixpoint: Duration out of range")

// Value is a span of time in signed Q33.30 fixed point.
type Value int64

// From packs d into a Value. It fails if d's whole seconds exceed
// ±(2^33 - 1).
func From(d timespan.Duration) (Value, error) {
	s := d.WholeSeconds()
	if s > maxSeconds || s < -maxSeconds {
		return 0, ErrOutOfRange
	}
	frac := (int64(d.SubsecNanoseconds()) << fracBits) / nanosPerSecond
	return Value(s<<fracBits + frac), nil
}

// Duration unpacks v. The result is exact up to the format's 2^-30
// second resolution.
func (v Value) Duration() timespan.Duration {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	s := int64(u >> fracBits)
	ns := int32(((u & fracMask) * nanosPerSecond) >> fracBits)
	if neg {
		s, ns = -s, -ns
	}
	return timespan.New(s, ns)
}
