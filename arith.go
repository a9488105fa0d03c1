package timespan

// The methods in this file are the ergonomic operator family: they
// panic on overflow. Use the Checked* or Saturating* methods to pick a
// different overflow policy.

// Add returns d + rhs. It panics if the sum overflows.
func (d Duration) Add(rhs Duration) Duration {
	v, ok := d.CheckedAdd(rhs)
	if !ok {
		panic("timespan: Duration addition overflows")
	}
	return v
}

// Sub returns d - rhs. It panics if the difference overflows.
func (d Duration) Sub(rhs Duration) Duration {
	v, ok := d.CheckedSub(rhs)
	if !ok {
		panic("timespan: Duration subtraction overflows")
	}
	return v
}

// Mul returns d * rhs. It panics if the product overflows.
func (d Duration) Mul(rhs int32) Duration {
	v, ok := d.CheckedMul(rhs)
	if !ok {
		panic("timespan: Duration multiplication overflows")
	}
	return v
}

// Div returns d / rhs truncated toward zero. It panics if rhs is zero
// or the quotient overflows.
func (d Duration) Div(rhs int32) Duration {
	if rhs == 0 {
		panic("timespan: Duration division by zero")
	}
	v, ok := d.CheckedDiv(rhs)
	if !ok {
		panic("timespan: Duration division overflows")
	}
	return v
}

// MulFloat64 returns d scaled by rhs. It panics if the product is NaN
// or overflows.
func (d Duration) MulFloat64(rhs float64) Duration {
	return SecondsFloat64(d.AsSecondsFloat64() * rhs)
}

// MulFloat32 returns d scaled by rhs. It panics if the product is NaN
// or overflows.
func (d Duration) MulFloat32(rhs float32) Duration {
	return SecondsFloat32(d.AsSecondsFloat32() * rhs)
}

// DivFloat64 returns d divided by rhs. It panics if the quotient is NaN
// or overflows.
func (d Duration) DivFloat64(rhs float64) Duration {
	return SecondsFloat64(d.AsSecondsFloat64() / rhs)
}

// DivFloat32 returns d divided by rhs. It panics if the quotient is NaN
// or overflows.
func (d Duration) DivFloat32(rhs float32) Duration {
	return SecondsFloat32(d.AsSecondsFloat32() / rhs)
}

// DivDuration returns the ratio d / rhs as a floating-point number.
func (d Duration) DivDuration(rhs Duration) float64 {
	return d.AsSecondsFloat64() / rhs.AsSecondsFloat64()
}
