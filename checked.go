package timespan

import "math"

// Overflow-checked int64 helpers. The comparisons rely on two's
// complement wraparound of the unguarded operation.

func checkedAddInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func checkedSubInt64(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}
	return d, true
}

func checkedMulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// CheckedAdd returns d + rhs, or ok == false if the sum overflows.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := checkedAddInt64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	// Neither operand's nanosecond field reaches 1e9 in magnitude, so
	// the 32 bit sum cannot overflow.
	nanos := d.nanos + rhs.nanos

	if nanos >= nanosPerSecond || (seconds < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if seconds, ok = checkedAddInt64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanos <= -nanosPerSecond || (seconds > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if seconds, ok = checkedSubInt64(seconds, 1); !ok {
			return Duration{}, false
		}
	}
	return durationUnchecked(seconds, nanos), true
}

// CheckedSub returns d - rhs, or ok == false if the difference
// overflows.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := checkedSubInt64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanos := d.nanos - rhs.nanos

	if nanos >= nanosPerSecond || (seconds < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if seconds, ok = checkedAddInt64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanos <= -nanosPerSecond || (seconds > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if seconds, ok = checkedSubInt64(seconds, 1); !ok {
			return Duration{}, false
		}
	}
	return durationUnchecked(seconds, nanos), true
}

// CheckedMul returns d * rhs, or ok == false if the product overflows.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	// The nanosecond product is computed in 64 bits, where
	// |nanos| < 1e9 and |rhs| <= 2^31 cannot overflow.
	totalNanos := int64(d.nanos) * int64(rhs)
	extraSecs := totalNanos / nanosPerSecond
	nanos := int32(totalNanos % nanosPerSecond)

	seconds, ok := checkedMulInt64(d.seconds, int64(rhs))
	if !ok {
		return Duration{}, false
	}
	if seconds, ok = checkedAddInt64(seconds, extraSecs); !ok {
		return Duration{}, false
	}
	return durationUnchecked(seconds, nanos), true
}

// CheckedDiv returns d / rhs truncated toward zero, or ok == false if
// rhs is zero or the quotient overflows (Min divided by -1).
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 || (rhs == -1 && d.seconds == math.MinInt64) {
		return Duration{}, false
	}
	seconds := d.seconds / int64(rhs)
	extraSecs := d.seconds % int64(rhs)
	nanos := d.nanos / rhs
	extraNanos := d.nanos % rhs

	// The leftover seconds are rescaled to nanoseconds in 64 bits
	// before dividing, keeping the sub-nanosecond precision that a
	// 32 bit division of the remainder would throw away. The
	// intermediate is bounded by |rhs|*(1e9+1) < 2^62.
	nanos += int32((extraSecs*nanosPerSecond + int64(extraNanos)) / int64(rhs))
	return durationUnchecked(seconds, nanos), true
}
