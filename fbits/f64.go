package fbits

// F64 is a binary64 bit pattern.
type F64 uint64

const (
	f64ExpBits  = 11
	f64SigBits  = 52
	f64ExpMax   = 1<<f64ExpBits - 1 // 2047
	f64SignMask = F64(1) << 63
)

// SignF64 reports whether a's sign bit is set.
func SignF64(a F64) bool { return a&f64SignMask != 0 }

// ExpF64 returns a's 11-bit biased exponent.
func ExpF64(a F64) int32 { return int32(a>>f64SigBits) & f64ExpMax }

// FracF64 returns a's 52-bit trailing significand.
func FracF64(a F64) uint64 { return uint64(a) & (1<<f64SigBits - 1) }

// PackF64 assembles a bit pattern from its fields.
func PackF64(sign bool, exp int32, sig uint64) F64 {
	var s F64
	if sign {
		s = f64SignMask
	}
	return s | F64(uint64(exp)&f64ExpMax)<<f64SigBits | F64(sig&(1<<f64SigBits-1))
}

// SignedZeroF64 returns the signed zero of the given sign.
func SignedZeroF64(sign bool) F64 { return PackF64(sign, 0, 0) }

// SignedInfF64 returns the signed infinity of the given sign.
func SignedInfF64(sign bool) F64 { return PackF64(sign, f64ExpMax, 0) }

// IsZeroF64 reports whether a is +0 or -0.
func IsZeroF64(a F64) bool { return ExpF64(a) == 0 && FracF64(a) == 0 }

// IsSubnormalF64 reports whether a is a subnormal value.
func IsSubnormalF64(a F64) bool { return ExpF64(a) == 0 && FracF64(a) != 0 }

// IsInfF64 reports whether a is +inf or -inf.
func IsInfF64(a F64) bool { return ExpF64(a) == f64ExpMax && FracF64(a) == 0 }

// IsNaNF64 reports whether a is any NaN, quiet or signaling.
func IsNaNF64(a F64) bool { return ExpF64(a) == f64ExpMax && FracF64(a) != 0 }

// IsSignalingNaNF64 reports whether a is a signaling NaN.
func IsSignalingNaNF64(a F64) bool {
	return ExpF64(a) == f64ExpMax && FracF64(a)&(1<<(f64SigBits-1)) == 0 && FracF64(a) != 0
}
