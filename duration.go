/*
Package timespan implements a signed span of time with nanosecond
resolution and a range of roughly ±292 billion years.

A Duration is stored as whole seconds plus a subsecond nanosecond count.
The two fields always agree in sign: a positive span never carries
negative nanoseconds and vice versa. Spans between -1s and 1s are
represented with zero seconds and a signed nanosecond field.

Arithmetic comes in three flavors. The plain methods (Add, Sub, Mul,
Div) panic on overflow, the Checked* methods report overflow with a
comma-ok result, and the Saturating* methods clamp to Min or Max.
*/
package timespan // import "timespan.org"

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

const (
	nanosPerSecond   = 1_000_000_000
	nanosPerMilli    = 1_000_000
	nanosPerMicro    = 1_000
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// Duration is a signed span of time. The zero value is the zero span.
// Durations are plain values: they are copied, compared with == and
// never mutated in place.
type Duration struct {
	seconds int64
	// nanos is always in (-1e9, 1e9) and agrees in sign with seconds.
	nanos int32
}

var (
	// Zero is the empty span.
	Zero = Duration{}

	// Min and Max are the most negative and most positive representable
	// spans.
	Min = Duration{seconds: math.MinInt64, nanos: -(nanosPerSecond - 1)}
	Max = Duration{seconds: math.MaxInt64, nanos: nanosPerSecond - 1}

	// One-unit spans for each supported granularity.
	Nanosecond  = Nanoseconds(1)
	Microsecond = Microseconds(1)
	Millisecond = Milliseconds(1)
	Second      = Seconds(1)
	Minute      = Minutes(1)
	Hour        = Hours(1)
	Day         = Days(1)
	Week        = Weeks(1)
)

// durationUnchecked builds a Duration from fields the caller has already
// normalized. Builds with the "timespandebug" tag re-validate the
// invariant and abort on violation.
func durationUnchecked(seconds int64, nanos int32) Duration {
	d := Duration{seconds: seconds, nanos: nanos}
	debugAssertNormalized(d)
	return d
}

// validate reports every way d violates the representation invariant,
// or nil if d is normalized.
func (d Duration) validate() error {
	var err error
	if d.nanos <= -nanosPerSecond || d.nanos >= nanosPerSecond {
		err = multierr.Append(err, fmt.Errorf("timespan: subsecond nanoseconds %d out of range", d.nanos))
	}
	if d.seconds > 0 && d.nanos < 0 {
		err = multierr.Append(err, fmt.Errorf("timespan: positive seconds %d with negative nanoseconds %d", d.seconds, d.nanos))
	}
	if d.seconds < 0 && d.nanos > 0 {
		err = multierr.Append(err, fmt.Errorf("timespan: negative seconds %d with positive nanoseconds %d", d.seconds, d.nanos))
	}
	return err
}

// New returns the span of seconds plus nanos. The nanosecond argument
// may hold one or more whole seconds and may disagree in sign with
// seconds; the result is normalized. New panics if the normalized
// second count overflows.
func New(seconds int64, nanos int32) Duration {
	d, ok := checkedNew(seconds, nanos)
	if !ok {
		panic("timespan: New overflows Duration")
	}
	return d
}

func checkedNew(seconds int64, nanos int32) (Duration, bool) {
	seconds, ok := checkedAddInt64(seconds, int64(nanos)/nanosPerSecond)
	if !ok {
		return Duration{}, false
	}
	nanos %= nanosPerSecond

	// The fold above truncates toward zero, so the remainder can still
	// disagree in sign with seconds. Move exactly one second across.
	if seconds > 0 && nanos < 0 {
		seconds--
		nanos += nanosPerSecond
	} else if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= nanosPerSecond
	}
	return durationUnchecked(seconds, nanos), true
}

// Weeks returns the span of weeks whole weeks. It panics if the value
// overflows.
func Weeks(weeks int64) Duration {
	s, ok := checkedMulInt64(weeks, secondsPerWeek)
	if !ok {
		panic("timespan: Weeks overflows Duration")
	}
	return Seconds(s)
}

// Days returns the span of days whole days. It panics if the value
// overflows.
func Days(days int64) Duration {
	s, ok := checkedMulInt64(days, secondsPerDay)
	if !ok {
		panic("timespan: Days overflows Duration")
	}
	return Seconds(s)
}

// Hours returns the span of hours whole hours. It panics if the value
// overflows.
func Hours(hours int64) Duration {
	s, ok := checkedMulInt64(hours, secondsPerHour)
	if !ok {
		panic("timespan: Hours overflows Duration")
	}
	return Seconds(s)
}

// Minutes returns the span of minutes whole minutes. It panics if the
// value overflows.
func Minutes(minutes int64) Duration {
	s, ok := checkedMulInt64(minutes, secondsPerMinute)
	if !ok {
		panic("timespan: Minutes overflows Duration")
	}
	return Seconds(s)
}

// Seconds returns the span of seconds whole seconds.
func Seconds(seconds int64) Duration {
	return durationUnchecked(seconds, 0)
}

// Milliseconds returns the span of ms milliseconds.
func Milliseconds(ms int64) Duration {
	return durationUnchecked(ms/1_000, int32(ms%1_000)*nanosPerMilli)
}

// Microseconds returns the span of us microseconds.
func Microseconds(us int64) Duration {
	return durationUnchecked(us/1_000_000, int32(us%1_000_000)*nanosPerMicro)
}

// Nanoseconds returns the span of ns nanoseconds.
func Nanoseconds(ns int64) Duration {
	return durationUnchecked(ns/nanosPerSecond, int32(ns%nanosPerSecond))
}

// IsZero reports whether d is the zero span.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanos == 0
}

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanos < 0
}

// IsPositive reports whether d is strictly positive.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanos > 0
}

// Abs returns the absolute value of d. Negating Min is not
// representable, so Abs saturates to Max in that case.
func (d Duration) Abs() Duration {
	if d.seconds == math.MinInt64 {
		return Max
	}
	if d.IsNegative() {
		return durationUnchecked(-d.seconds, -d.nanos)
	}
	return d
}

// Neg returns -d. It panics if d is Min.
func (d Duration) Neg() Duration {
	v, ok := d.CheckedNeg()
	if !ok {
		panic("timespan: negating Duration overflows")
	}
	return v
}

// CheckedNeg returns -d, or ok == false if d is Min.
func (d Duration) CheckedNeg() (Duration, bool) {
	if d.seconds == math.MinInt64 {
		return Duration{}, false
	}
	return durationUnchecked(-d.seconds, -d.nanos), true
}

// Cmp returns -1, 0 or 1 depending on whether d is less than, equal to
// or greater than rhs. Comparing the fields directly is sound because
// both values are normalized.
func (d Duration) Cmp(rhs Duration) int {
	switch {
	case d.seconds < rhs.seconds:
		return -1
	case d.seconds > rhs.seconds:
		return 1
	case d.nanos < rhs.nanos:
		return -1
	case d.nanos > rhs.nanos:
		return 1
	default:
		return 0
	}
}

// WholeWeeks returns the number of whole weeks in d, truncated toward
// zero.
func (d Duration) WholeWeeks() int64 {
	return d.seconds / secondsPerWeek
}

// WholeDays returns the number of whole days in d, truncated toward
// zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / secondsPerDay
}

// WholeHours returns the number of whole hours in d, truncated toward
// zero.
func (d Duration) WholeHours() int64 {
	return d.seconds / secondsPerHour
}

// WholeMinutes returns the number of whole minutes in d, truncated
// toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.seconds / secondsPerMinute
}

// WholeSeconds returns the number of whole seconds in d.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeMilliseconds returns the number of whole milliseconds in d.
// Values outside the int64 range clamp to MinInt64 or MaxInt64.
func (d Duration) WholeMilliseconds() int64 {
	return d.scaledTotal(1_000, nanosPerMilli)
}

// WholeMicroseconds returns the number of whole microseconds in d.
// Values outside the int64 range clamp to MinInt64 or MaxInt64.
func (d Duration) WholeMicroseconds() int64 {
	return d.scaledTotal(1_000_000, nanosPerMicro)
}

// WholeNanoseconds returns the number of nanoseconds in d. Values
// outside the int64 range clamp to MinInt64 or MaxInt64.
func (d Duration) WholeNanoseconds() int64 {
	return d.scaledTotal(nanosPerSecond, 1)
}

func (d Duration) scaledTotal(perSecond int64, nanosPerUnit int32) int64 {
	v, ok := checkedMulInt64(d.seconds, perSecond)
	if ok {
		v, ok = checkedAddInt64(v, int64(d.nanos/nanosPerUnit))
	}
	if !ok {
		if d.IsNegative() {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return v
}

// SubsecMilliseconds returns the millisecond part of d, in (-1000, 1000).
func (d Duration) SubsecMilliseconds() int32 {
	return d.nanos / nanosPerMilli
}

// SubsecMicroseconds returns the microsecond part of d, in (-1e6, 1e6).
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanos / nanosPerMicro
}

// SubsecNanoseconds returns the nanosecond part of d, in (-1e9, 1e9).
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanos
}

// AsSecondsFloat64 returns d as a floating-point number of seconds.
// Spans over 2^53 nanoseconds lose precision.
func (d Duration) AsSecondsFloat64() float64 {
	return float64(d.seconds) + float64(d.nanos)/nanosPerSecond
}

// AsSecondsFloat32 returns d as a floating-point number of seconds.
func (d Duration) AsSecondsFloat32() float32 {
	return float32(d.seconds) + float32(d.nanos)/nanosPerSecond
}
