package timespan

import (
	"math"
	"math/bits"
)

// Conversion from floating-point seconds works on the IEEE-754 bit
// pattern directly. A plain float-to-int cast truncates, and
// multiplying by 1e9 first rounds twice; both lose the correct
// round-half-to-even result near tie points. Instead the mantissa is
// scaled to nanoseconds in a wide integer intermediate and the
// truncated remainder decides the rounding, with ties broken toward
// the even neighbor.
//
// The 64 and 32 bit bodies differ only in the bit-layout constants and
// in how many limbs the intermediates need, so both are written out.

type floatStatus int

const (
	floatOK floatStatus = iota
	floatIsNaN
	floatOverflows
)

// SecondsFloat64 returns the span that secs, a floating-point number of
// seconds, most precisely represents. It panics if secs is NaN or out
// of range.
func SecondsFloat64(secs float64) Duration {
	d, status := fromSecsFloat64(secs)
	switch status {
	case floatIsNaN:
		panic("timespan: NaN seconds")
	case floatOverflows:
		panic("timespan: seconds overflow Duration")
	}
	return d
}

// CheckedSecondsFloat64 is SecondsFloat64 with ok == false instead of a
// panic for NaN or out-of-range input.
func CheckedSecondsFloat64(secs float64) (Duration, bool) {
	d, status := fromSecsFloat64(secs)
	return d, status == floatOK
}

// SaturatingSecondsFloat64 is SecondsFloat64 returning Zero for NaN and
// Min or Max for out-of-range input, picked by the input's sign.
func SaturatingSecondsFloat64(secs float64) Duration {
	d, status := fromSecsFloat64(secs)
	switch status {
	case floatIsNaN:
		return Zero
	case floatOverflows:
		if math.Signbit(secs) {
			return Min
		}
		return Max
	}
	return d
}

// SecondsFloat32 returns the span that secs, a floating-point number of
// seconds, most precisely represents. It panics if secs is NaN or out
// of range.
func SecondsFloat32(secs float32) Duration {
	d, status := fromSecsFloat32(secs)
	switch status {
	case floatIsNaN:
		panic("timespan: NaN seconds")
	case floatOverflows:
		panic("timespan: seconds overflow Duration")
	}
	return d
}

// CheckedSecondsFloat32 is SecondsFloat32 with ok == false instead of a
// panic for NaN or out-of-range input.
func CheckedSecondsFloat32(secs float32) (Duration, bool) {
	d, status := fromSecsFloat32(secs)
	return d, status == floatOK
}

// SaturatingSecondsFloat32 is SecondsFloat32 returning Zero for NaN and
// Min or Max for out-of-range input, picked by the input's sign.
func SaturatingSecondsFloat32(secs float32) Duration {
	d, status := fromSecsFloat32(secs)
	switch status {
	case floatIsNaN:
		return Zero
	case floatOverflows:
		if math.Signbit(float64(secs)) {
			return Min
		}
		return Max
	}
	return d
}

func fromSecsFloat64(secs float64) (Duration, floatStatus) {
	const (
		mantBits = 52
		expBits  = 11
		minExp   = 1 - (1 << expBits / 2) // -1023
		mantMask = uint64(1)<<mantBits - 1
		expMask  = uint64(1)<<expBits - 1
	)
	b := math.Float64bits(secs)
	mant := (b & mantMask) | (mantMask + 1) // implicit leading one
	exp := int((b>>mantBits)&expMask) + minExp

	var (
		sec   uint64
		nanos uint32
	)
	switch {
	case exp < -31:
		// Under half a nanosecond; rounds to zero.
	case exp < 0:
		// Subsecond value. The scaled mantissa p = (mant*1e9) << k is a
		// two-limb intermediate with the nanosecond count in bits 96
		// and up and the truncated remainder below.
		k := uint(44 + exp) // 13 through 43
		hi, lo := bits.Mul64(mant, nanosPerSecond)
		hi = hi<<k | lo>>(64-k)
		lo <<= k
		nanos = uint32(hi >> 32)
		rem := hi & (1<<32 - 1)
		tie := rem == 1<<31 && lo == 0
		if rem&(1<<31) != 0 && !(tie && nanos&1 == 0) {
			nanos++
		}
		if nanos == nanosPerSecond {
			sec, nanos = 1, 0
		}
	case exp < mantBits:
		// Both an integer and a fractional part. The integer seconds
		// shift straight out of the mantissa; the remaining fraction is
		// scaled to nanoseconds below bit 52 of a two-limb product.
		sec = mant >> uint(mantBits-exp)
		hi, lo := bits.Mul64((mant<<uint(exp))&mantMask, nanosPerSecond)
		nanos = uint32(hi<<12 | lo>>mantBits)
		rem := lo & mantMask
		tie := rem == 1<<51
		if rem&(1<<51) != 0 && !(tie && nanos&1 == 0) {
			nanos++
		}
		if nanos == nanosPerSecond {
			sec++
			nanos = 0
		}
	case exp < 63:
		// No fractional part at this magnitude.
		sec = mant << uint(exp-mantBits)
	case b == math.Float64bits(float64(math.MinInt64)):
		// Exactly -2^63 seconds is representable, but sits past the
		// general path's exponent cutoff.
		sec = 1 << 63
	case secs != secs:
		return Duration{}, floatIsNaN
	default:
		return Duration{}, floatOverflows
	}

	// Fold the sign bit back into both fields.
	mask := int64(b) >> 63
	return durationUnchecked(
		(int64(sec)^mask)-mask,
		(int32(nanos)^int32(mask))-int32(mask),
	), floatOK
}

func fromSecsFloat32(secs float32) (Duration, floatStatus) {
	const (
		mantBits = 23
		expBits  = 8
		minExp   = 1 - (1 << expBits / 2) // -127
		mantMask = uint32(1)<<mantBits - 1
		expMask  = uint32(1)<<expBits - 1
	)
	b := math.Float32bits(secs)
	mant := uint64((b & mantMask) | (mantMask + 1))
	exp := int((b>>mantBits)&expMask) + minExp

	var (
		sec   uint64
		nanos uint32
	)
	switch {
	case exp < -31:
		// Under half a nanosecond; rounds to zero.
	case exp < 0:
		// The shifted mantissa fits one limb here; only the product
		// with 1e9 needs two, with the nanosecond count in the high
		// limb and the remainder in the low one.
		hi, lo := bits.Mul64(mant<<uint(41+exp), nanosPerSecond)
		nanos = uint32(hi)
		tie := lo == 1<<63
		if lo&(1<<63) != 0 && !(tie && nanos&1 == 0) {
			nanos++
		}
		// A float32 cannot land close enough below one second for the
		// rounded count to reach 1e9, so no carry is needed.
	case exp < mantBits:
		sec = mant >> uint(mantBits-exp)
		tmp := ((mant << uint(exp)) & uint64(mantMask)) * nanosPerSecond
		nanos = uint32(tmp >> mantBits)
		rem := tmp & uint64(mantMask)
		tie := rem == 1<<22
		if rem&(1<<22) != 0 && !(tie && nanos&1 == 0) {
			nanos++
		}
	case exp < 63:
		sec = mant << uint(exp-mantBits)
	case b == math.Float32bits(float32(math.MinInt64)):
		sec = 1 << 63
	case secs != secs:
		return Duration{}, floatIsNaN
	default:
		return Duration{}, floatOverflows
	}

	mask := int64(int32(b) >> 31)
	return durationUnchecked(
		(int64(sec)^mask)-mask,
		(int32(nanos)^int32(mask))-int32(mask),
	), floatOK
}
