/*
Package monotime reads the runtime's monotonic clock. An Instant is an
opaque reading of that clock; the only meaningful operations are taking
one and subtracting two of them.
*/
package monotime // import "timespan.org/monotime"

import (
	"time"
	_ "unsafe"
)

//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Instant is a monotonic clock reading in nanoseconds. It is unrelated
// to wall-clock time and survives wall-clock adjustments.
type Instant int64

// Now returns the current clock reading.
func Now() Instant {
	return Instant(nanotime())
}

// Since returns the time elapsed since t.
func Since(t Instant) time.Duration {
	return time.Duration(Now() - t)
}

// Sub returns the time elapsed from u to t.
func (t Instant) Sub(u Instant) time.Duration {
	return time.Duration(t - u)
}

// Before reports whether t precedes u.
func (t Instant) Before(u Instant) bool {
	return t < u
}

// After reports whether t follows u.
func (t Instant) After(u Instant) bool {
	return t > u
}
