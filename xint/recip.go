package xint

import "math"

// ApproxRecip32_1 approximates the reciprocal of a 32-bit fixed-point value
// a representing A = a / 2^31 in the half-open range [1,2) (bit 31 of a is
// set: 1 integer bit, 31 fraction bits). It returns r such that
// r <= 2^32/A, accurate to within 2.006 ulp, for seeding a division or
// square-root loop that refines it further.
//
// A hardcoded lookup table plus one Newton-Raphson correction step is the
// classic way to compute this seed on hardware with no 64-bit divider.
// This module targets hosts where Go's math/bits division primitives are
// always available, so the seed is computed directly as floor(2^63/a):
// exact integer division, strictly more accurate than the 2.006 ulp bound
// this function promises. No kernel in this module calls this function or
// ApproxRecipSqrt32_1 — see DESIGN.md.
func ApproxRecip32_1(a uint32) uint32 {
	if a == 0 {
		return 0xFFFFFFFF
	}

	q := (uint64(1) << 63) / uint64(a)
	if q > 0xFFFFFFFF {
		q = 0xFFFFFFFF
	}

	return uint32(q)
}

// ApproxRecipSqrt32_1 approximates 1/sqrt(A) where A's significand occupies
// the top 32 bits of a (Q1.31, top bit set) and is in [1,2) when oddExpA is
// false or [2,4) when oddExpA is true — the odd/even unbiased-exponent
// split needed so the result stays in a fixed range regardless of which
// half of the doubled exponent range the operand's exponent fell in. The
// result lies in [0.5,1) with the high bit guaranteed set.
func ApproxRecipSqrt32_1(oddExpA bool, a uint32) uint32 {
	const scale = float64(uint64(1) << 31)

	A := float64(a) / scale
	if oddExpA {
		A *= 2
	}

	r := 1 / math.Sqrt(A)
	scaled := r * scale * 2
	if scaled >= float64(uint64(1)<<32) {
		return 0xFFFFFFFF
	}

	out := uint32(scaled)
	out |= 0x80000000

	return out
}
