package fvad

// spl.go holds the fixed-point primitives the rest of the package
// builds on: saturation, bit-normalization, integer division and a
// Q8 log2 approximation. None of it allocates and none of it panics
// on any int16/int32 input.

const (
	word16Max int16 = 32767
	word16Min int16 = -32768
)

// satW32ToW16 clamps a 32-bit value into the signed 16-bit range.
func satW32ToW16(v int32) int16 {
	if v > int32(word16Max) {
		return word16Max
	}
	if v < int32(word16Min) {
		return word16Min
	}
	return int16(v)
}

// normW32 returns the number of left shifts needed before bit 30 of v
// (or of ^v, for negative v) becomes set. Returns 31 for v == 0.
func normW32(v int32) int16 {
	if v == 0 {
		return 31
	}
	if v < 0 {
		v = ^v
	}
	if v == 0 {
		return 31
	}

	var shifts int16
	for (v & 0x40000000) == 0 {
		v <<= 1
		shifts++
	}
	return shifts
}

// normW16 is normW32's 16-bit analogue, returning 15 for v == 0.
func normW16(v int16) int16 {
	if v == 0 {
		return 15
	}
	if v < 0 {
		v = ^v
	}
	if v == 0 {
		return 15
	}

	var shifts int16
	for (v & 0x4000) == 0 {
		v <<= 1
		shifts++
	}
	return shifts
}

// divW32W16 returns num/den, or 0 when den == 0.
func divW32W16(num int32, den int16) int32 {
	if den == 0 {
		return 0
	}
	return num / int32(den)
}

// divW32W16ResW16 is divW32W16 with the result saturated to int16.
func divW32W16ResW16(num int32, den int16) int16 {
	return satW32ToW16(divW32W16(num, den))
}

// log2Q8 approximates log2(x) in Q8 (the returned integer equals the
// true value times 256). Only defined for x > 0; returns 0 otherwise.
//
// x is normalized into [16384, 32767] by shifting; 14 plus the net
// shift count becomes the integer part (in Q8, shift<<8). The
// fractional part f = (x-16384)/16384 is interpolated linearly with a
// quadratic correction, f + 0.347*f*(1-f), scaled by 256 and rounded,
// which keeps the result within 2 of round(256*log2(x)).
func log2Q8(x int32) int16 {
	if x <= 0 {
		return 0
	}

	shift := int16(14)
	for x > 32767 {
		x >>= 1
		shift++
	}
	for x < 16384 {
		x <<= 1
		shift--
	}

	frac := x - 16384
	corr := (frac * (16384 - frac)) >> 14
	return shift<<8 + int16((frac*256+corr*89+8192)>>14)
}
