/*
Package unsigned implements the non-negative counterpart of a
timespan.Duration: an unsigned second count plus a subsecond nanosecond
count, with no sign field. Its wider second range makes it the natural
target for magnitudes, e.g. timespan.Duration.UnsignedAbs.
*/
package unsigned // import "timespan.org/unsigned"

import (
	"errors"
	"math"
	"time"
)

const nanosPerSecond = 1_000_000_000

// ErrOutOfRange is returned when a conversion source cannot be
// represented by the target type.
var ErrOutOfRange = errors.New("unsigned: value out of range")

// Duration is a non-negative span of time. The zero value is the zero
// span.
type Duration struct {
	secs uint64
	// nanos is always below 1e9.
	nanos uint32
}

// New returns the span of secs seconds plus nanos nanoseconds. Whole
// seconds carried by nanos are folded into the second count; New panics
// if that fold overflows.
func New(secs uint64, nanos uint32) Duration {
	if nanos >= nanosPerSecond {
		carried := secs + uint64(nanos/nanosPerSecond)
		if carried < secs {
			panic("unsigned: New overflows Duration")
		}
		secs = carried
		nanos %= nanosPerSecond
	}
	return Duration{secs: secs, nanos: nanos}
}

// Seconds returns the span of secs whole seconds.
func Seconds(secs uint64) Duration {
	return Duration{secs: secs}
}

// Nanoseconds returns the span of ns nanoseconds.
func Nanoseconds(ns uint64) Duration {
	return Duration{secs: ns / nanosPerSecond, nanos: uint32(ns % nanosPerSecond)}
}

// Seconds returns the whole seconds of d.
func (d Duration) Seconds() uint64 {
	return d.secs
}

// SubsecNanoseconds returns the nanosecond part of d, below 1e9.
func (d Duration) SubsecNanoseconds() uint32 {
	return d.nanos
}

// IsZero reports whether d is the zero span.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// Cmp returns -1, 0 or 1 depending on whether d is less than, equal to
// or greater than rhs.
func (d Duration) Cmp(rhs Duration) int {
	switch {
	case d.secs < rhs.secs:
		return -1
	case d.secs > rhs.secs:
		return 1
	case d.nanos < rhs.nanos:
		return -1
	case d.nanos > rhs.nanos:
		return 1
	default:
		return 0
	}
}

// FromStd converts a time.Duration into a Duration. It fails if d is
// negative.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, ErrOutOfRange
	}
	return Nanoseconds(uint64(d)), nil
}

// Std converts d into a time.Duration. It fails if d exceeds the range
// a time.Duration can hold.
func (d Duration) Std() (time.Duration, error) {
	const (
		maxSecs  = math.MaxInt64 / nanosPerSecond
		maxNanos = math.MaxInt64 % nanosPerSecond
	)
	if d.secs > maxSecs || (d.secs == maxSecs && d.nanos > maxNanos) {
		return 0, ErrOutOfRange
	}
	return time.Duration(d.secs*nanosPerSecond + uint64(d.nanos)), nil
}
