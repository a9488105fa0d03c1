package timespan

// SaturatingAdd returns d + rhs, clamping to Min or Max instead of
// overflowing.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	seconds, ok := checkedAddInt64(d.seconds, rhs.seconds)
	if !ok {
		// Overflow requires both second fields to share a sign.
		if d.seconds > 0 {
			return Max
		}
		return Min
	}
	nanos := d.nanos + rhs.nanos

	if nanos >= nanosPerSecond || (seconds < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if seconds, ok = checkedAddInt64(seconds, 1); !ok {
			return Max
		}
	} else if nanos <= -nanosPerSecond || (seconds > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if seconds, ok = checkedSubInt64(seconds, 1); !ok {
			return Min
		}
	}
	return durationUnchecked(seconds, nanos)
}

// SaturatingSub returns d - rhs, clamping to Min or Max instead of
// overflowing.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	seconds, ok := checkedSubInt64(d.seconds, rhs.seconds)
	if !ok {
		// Subtracting a negative overflows upward, a positive downward.
		if rhs.seconds < 0 {
			return Max
		}
		return Min
	}
	nanos := d.nanos - rhs.nanos

	if nanos >= nanosPerSecond || (seconds < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		if seconds, ok = checkedAddInt64(seconds, 1); !ok {
			return Max
		}
	} else if nanos <= -nanosPerSecond || (seconds > 0 && nanos < 0) {
		nanos += nanosPerSecond
		if seconds, ok = checkedSubInt64(seconds, 1); !ok {
			return Min
		}
	}
	return durationUnchecked(seconds, nanos)
}

// SaturatingMul returns d * rhs, clamping to Min or Max instead of
// overflowing. The clamp direction follows the sign of the product.
func (d Duration) SaturatingMul(rhs int32) Duration {
	v, ok := d.CheckedMul(rhs)
	if ok {
		return v
	}
	// Overflow implies both factors are non-zero.
	if d.IsNegative() == (rhs < 0) {
		return Max
	}
	return Min
}

// SaturatingDiv returns d / rhs truncated toward zero, clamping the one
// overflowing case (Min divided by -1) to Max. It panics if rhs is
// zero.
func (d Duration) SaturatingDiv(rhs int32) Duration {
	if rhs == 0 {
		panic("timespan: Duration division by zero")
	}
	v, ok := d.CheckedDiv(rhs)
	if !ok {
		return Max
	}
	return v
}
