// Package fbits provides the bit-layout primitives for every supported
// IEEE 754 format: sign, biased-exponent, and significand
// extraction/packing plus classification predicates. It is purely
// functional — no rounding, no flags, just bit manipulation.
package fbits

// F16 is a binary16 bit pattern.
type F16 uint16

const (
	f16ExpBits  = 5
	f16SigBits  = 10
	f16ExpMax   = 1<<f16ExpBits - 1 // 31
	f16SignMask = F16(1) << 15
)

// SignF16 reports whether a's sign bit is set.
func SignF16(a F16) bool { return a&f16SignMask != 0 }

// ExpF16 returns a's 5-bit biased exponent.
func ExpF16(a F16) int32 { return int32(a>>f16SigBits) & f16ExpMax }

// FracF16 returns a's 10-bit trailing significand.
func FracF16(a F16) uint16 { return uint16(a) & (1<<f16SigBits - 1) }

// PackF16 assembles a bit pattern from its fields. exp is taken mod 2^5;
// sig's bits above the 10-bit fraction field are ignored. Subnormal
// patterns are formed by calling this with exp=0 and the significand
// unchanged (no implicit leading bit).
func PackF16(sign bool, exp int32, sig uint16) F16 {
	var s F16
	if sign {
		s = f16SignMask
	}
	return s | F16(uint16(exp)&f16ExpMax)<<f16SigBits | F16(sig&(1<<f16SigBits-1))
}

// SignedZeroF16 returns the signed zero of the given sign.
func SignedZeroF16(sign bool) F16 { return PackF16(sign, 0, 0) }

// SignedInfF16 returns the signed infinity of the given sign.
func SignedInfF16(sign bool) F16 { return PackF16(sign, f16ExpMax, 0) }

// IsZeroF16 reports whether a is +0 or -0.
func IsZeroF16(a F16) bool { return ExpF16(a) == 0 && FracF16(a) == 0 }

// IsSubnormalF16 reports whether a is a subnormal (denormal) value.
func IsSubnormalF16(a F16) bool { return ExpF16(a) == 0 && FracF16(a) != 0 }

// IsInfF16 reports whether a is +inf or -inf.
func IsInfF16(a F16) bool { return ExpF16(a) == f16ExpMax && FracF16(a) == 0 }

// IsNaNF16 reports whether a is any NaN, quiet or signaling.
func IsNaNF16(a F16) bool { return ExpF16(a) == f16ExpMax && FracF16(a) != 0 }

// IsSignalingNaNF16 reports whether a is a signaling NaN: a NaN whose
// leading significand bit is zero.
func IsSignalingNaNF16(a F16) bool {
	return ExpF16(a) == f16ExpMax && FracF16(a)&(1<<(f16SigBits-1)) == 0 && FracF16(a) != 0
}
