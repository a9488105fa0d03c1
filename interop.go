package timespan

import (
	"math"
	"time"

	"timespan.org/unsigned"
)

// A ConversionError reports a conversion whose source value cannot be
// represented by the target type, either because the sign is lost or
// because the magnitude does not fit.
type ConversionError struct {
	From, To string
}

func (e *ConversionError) Error() string {
	return "timespan: cannot convert " + e.From + " to " + e.To + ": value out of range"
}

// FromUnsigned converts an unsigned span into a Duration. It fails if
// the second count exceeds MaxInt64.
func FromUnsigned(u unsigned.Duration) (Duration, error) {
	if u.Seconds() > math.MaxInt64 {
		return Duration{}, &ConversionError{From: "unsigned.Duration", To: "timespan.Duration"}
	}
	return durationUnchecked(int64(u.Seconds()), int32(u.SubsecNanoseconds())), nil
}

// Unsigned converts d into an unsigned span. It fails if d is negative.
func (d Duration) Unsigned() (unsigned.Duration, error) {
	if d.IsNegative() {
		return unsigned.Duration{}, &ConversionError{From: "timespan.Duration", To: "unsigned.Duration"}
	}
	return unsigned.New(uint64(d.seconds), uint32(d.nanos)), nil
}

// UnsignedAbs returns the absolute value of d as an unsigned span. The
// unsigned type holds the magnitude of Min, so this never fails.
func (d Duration) UnsignedAbs() unsigned.Duration {
	sec := uint64(d.seconds)
	ns := d.nanos
	if d.IsNegative() {
		sec = -sec
		ns = -ns
	}
	return unsigned.New(sec, uint32(ns))
}

// EqualUnsigned reports whether d and rhs denote the same span. A
// negative d never equals an unsigned span.
func (d Duration) EqualUnsigned(rhs unsigned.Duration) bool {
	u, err := d.Unsigned()
	if err != nil {
		return false
	}
	return u == rhs
}

// CmpUnsigned returns -1, 0 or 1 depending on whether d is less than,
// equal to or greater than rhs. Unsigned spans whose seconds exceed
// MaxInt64 compare greater than every Duration.
func (d Duration) CmpUnsigned(rhs unsigned.Duration) int {
	if rhs.Seconds() > math.MaxInt64 {
		return -1
	}
	switch rhsSec := int64(rhs.Seconds()); {
	case d.seconds < rhsSec:
		return -1
	case d.seconds > rhsSec:
		return 1
	}
	switch rhsNanos := int32(rhs.SubsecNanoseconds()); {
	case d.nanos < rhsNanos:
		return -1
	case d.nanos > rhsNanos:
		return 1
	}
	return 0
}

// FromStd converts a time.Duration into a Duration. Every time.Duration
// is representable.
func FromStd(d time.Duration) Duration {
	return Nanoseconds(int64(d))
}

// Std converts d into a time.Duration. It fails if d exceeds the
// roughly ±292 year range a time.Duration can hold.
func (d Duration) Std() (time.Duration, error) {
	ns, ok := checkedMulInt64(d.seconds, nanosPerSecond)
	if ok {
		ns, ok = checkedAddInt64(ns, int64(d.nanos))
	}
	if !ok {
		return 0, &ConversionError{From: "timespan.Duration", To: "time.Duration"}
	}
	return time.Duration(ns), nil
}
