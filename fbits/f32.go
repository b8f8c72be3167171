package fbits

// F32 is a binary32 bit pattern.
type F32 uint32

const (
	f32ExpBits  = 8
	f32SigBits  = 23
	f32ExpMax   = 1<<f32ExpBits - 1 // 255
	f32SignMask = F32(1) << 31
)

// SignF32 reports whether a's sign bit is set.
func SignF32(a F32) bool { return a&f32SignMask != 0 }

// ExpF32 returns a's 8-bit biased exponent.
func ExpF32(a F32) int32 { return int32(a>>f32SigBits) & f32ExpMax }

// FracF32 returns a's 23-bit trailing significand.
func FracF32(a F32) uint32 { return uint32(a) & (1<<f32SigBits - 1) }

// PackF32 assembles a bit pattern from its fields.
func PackF32(sign bool, exp int32, sig uint32) F32 {
	var s F32
	if sign {
		s = f32SignMask
	}
	return s | F32(uint32(exp)&f32ExpMax)<<f32SigBits | F32(sig&(1<<f32SigBits-1))
}

// SignedZeroF32 returns the signed zero of the given sign.
func SignedZeroF32(sign bool) F32 { return PackF32(sign, 0, 0) }

// SignedInfF32 returns the signed infinity of the given sign.
func SignedInfF32(sign bool) F32 { return PackF32(sign, f32ExpMax, 0) }

// IsZeroF32 reports whether a is +0 or -0.
func IsZeroF32(a F32) bool { return ExpF32(a) == 0 && FracF32(a) == 0 }

// IsSubnormalF32 reports whether a is a subnormal value.
func IsSubnormalF32(a F32) bool { return ExpF32(a) == 0 && FracF32(a) != 0 }

// IsInfF32 reports whether a is +inf or -inf.
func IsInfF32(a F32) bool { return ExpF32(a) == f32ExpMax && FracF32(a) == 0 }

// IsNaNF32 reports whether a is any NaN, quiet or signaling.
func IsNaNF32(a F32) bool { return ExpF32(a) == f32ExpMax && FracF32(a) != 0 }

// IsSignalingNaNF32 reports whether a is a signaling NaN.
func IsSignalingNaNF32(a F32) bool {
	return ExpF32(a) == f32ExpMax && FracF32(a)&(1<<(f32SigBits-1)) == 0 && FracF32(a) != 0
}
