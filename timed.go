package timespan

import "timespan.org/monotime"

// TimeFn runs fn to completion on the calling goroutine and returns how
// long it took together with fn's result.
func TimeFn[T any](fn func() T) (Duration, T) {
	start := monotime.Now()
	res := fn()
	return FromStd(monotime.Since(start)), res
}

// Timed runs fn to completion on the calling goroutine and returns how
// long it took.
func Timed(fn func()) Duration {
	start := monotime.Now()
	fn()
	return FromStd(monotime.Since(start))
}
