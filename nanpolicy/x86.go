package nanpolicy

import "github.com/sarchlab/softfloat/fbits"

// X86 implements the "x86/8086" NaN policy: a default NaN with sign 1,
// and propagation that quiets whichever NaN operand it is given rather
// than replacing it with the canonical default, preferring the operand
// of larger significand magnitude when both inputs are NaN.
//
// The sign-preserving, payload-propagating behavior here is not
// documented by IEEE 754 itself; this policy picks bit-exact
// compatibility with real x86 FPU NaN payloads over the alternative
// "always canonical" behavior. See DESIGN.md.
type X86 struct{}

// Name returns "x86".
func (X86) Name() string { return "x86" }

func (X86) DefaultNaN16() fbits.F16        { return fbits.PackF16(true, 31, 1<<9) }
func (X86) DefaultNaN32() fbits.F32        { return fbits.PackF32(true, 255, 1<<22) }
func (X86) DefaultNaN64() fbits.F64        { return fbits.PackF64(true, 2047, 1<<51) }
func (X86) DefaultExtF80() fbits.ExtF80    { return fbits.PackExtF80(true, 32767, 0xC000000000000000) }
func (X86) DefaultF128() fbits.F128        { return fbits.PackF128(true, 32767, 1<<47, 0) }

func (p X86) PropagateF16(aIsNaN bool, a fbits.F16, bIsNaN bool, b fbits.F16) fbits.F16 {
	if aIsNaN && bIsNaN {
		return quiet16(largerMag16(a, b))
	}
	if aIsNaN {
		return quiet16(a)
	}
	return quiet16(b)
}

func quiet16(a fbits.F16) fbits.F16 {
	return fbits.PackF16(fbits.SignF16(a), 31, fbits.FracF16(a)|1<<9)
}

func largerMag16(a, b fbits.F16) fbits.F16 {
	fa, fb := fbits.FracF16(a)|1<<9, fbits.FracF16(b)|1<<9
	switch {
	case fa > fb:
		return a
	case fb > fa:
		return b
	case fbits.SignF16(a) && !fbits.SignF16(b):
		return b
	default:
		return a
	}
}

func (p X86) PropagateF32(aIsNaN bool, a fbits.F32, bIsNaN bool, b fbits.F32) fbits.F32 {
	if aIsNaN && bIsNaN {
		return quiet32(largerMag32(a, b))
	}
	if aIsNaN {
		return quiet32(a)
	}
	return quiet32(b)
}

func quiet32(a fbits.F32) fbits.F32 {
	return fbits.PackF32(fbits.SignF32(a), 255, fbits.FracF32(a)|1<<22)
}

func largerMag32(a, b fbits.F32) fbits.F32 {
	fa, fb := fbits.FracF32(a)|1<<22, fbits.FracF32(b)|1<<22
	switch {
	case fa > fb:
		return a
	case fb > fa:
		return b
	case fbits.SignF32(a) && !fbits.SignF32(b):
		return b
	default:
		return a
	}
}

func (p X86) PropagateF64(aIsNaN bool, a fbits.F64, bIsNaN bool, b fbits.F64) fbits.F64 {
	if aIsNaN && bIsNaN {
		return quiet64(largerMag64(a, b))
	}
	if aIsNaN {
		return quiet64(a)
	}
	return quiet64(b)
}

func quiet64(a fbits.F64) fbits.F64 {
	return fbits.PackF64(fbits.SignF64(a), 2047, fbits.FracF64(a)|1<<51)
}

func largerMag64(a, b fbits.F64) fbits.F64 {
	fa, fb := fbits.FracF64(a)|1<<51, fbits.FracF64(b)|1<<51
	switch {
	case fa > fb:
		return a
	case fb > fa:
		return b
	case fbits.SignF64(a) && !fbits.SignF64(b):
		return b
	default:
		return a
	}
}

func (p X86) PropagateExtF80(aIsNaN bool, a fbits.ExtF80, bIsNaN bool, b fbits.ExtF80) fbits.ExtF80 {
	if aIsNaN && bIsNaN {
		return quietExtF80(largerMagExtF80(a, b))
	}
	if aIsNaN {
		return quietExtF80(a)
	}
	return quietExtF80(b)
}

func quietExtF80(a fbits.ExtF80) fbits.ExtF80 {
	return fbits.PackExtF80(fbits.SignExtF80(a), fbits.ExpExtF80(a), a.Sig|1<<62|1<<63)
}

func largerMagExtF80(a, b fbits.ExtF80) fbits.ExtF80 {
	fa := a.Sig&^(uint64(1)<<63) | 1<<62
	fb := b.Sig&^(uint64(1)<<63) | 1<<62
	switch {
	case fa > fb:
		return a
	case fb > fa:
		return b
	case fbits.SignExtF80(a) && !fbits.SignExtF80(b):
		return b
	default:
		return a
	}
}

func (p X86) PropagateF128(aIsNaN bool, a fbits.F128, bIsNaN bool, b fbits.F128) fbits.F128 {
	if aIsNaN && bIsNaN {
		return quietF128(largerMagF128(a, b))
	}
	if aIsNaN {
		return quietF128(a)
	}
	return quietF128(b)
}

func quietF128(a fbits.F128) fbits.F128 {
	return fbits.PackF128(fbits.SignF128(a), fbits.ExpF128(a), fbits.FracHiF128(a)|1<<47, a.Lo)
}

func largerMagF128(a, b fbits.F128) fbits.F128 {
	fah, fbh := fbits.FracHiF128(a)|1<<47, fbits.FracHiF128(b)|1<<47
	switch {
	case fah != fbh:
		if fah > fbh {
			return a
		}
		return b
	case a.Lo != b.Lo:
		if a.Lo > b.Lo {
			return a
		}
		return b
	case fbits.SignF128(a) && !fbits.SignF128(b):
		return b
	default:
		return a
	}
}

func (X86) NaNFromCommon16(c Common) fbits.F16 {
	return fbits.PackF16(c.Sign, 31, uint16(c.PayloadHi>>54)|1<<9)
}

func (X86) NaNFromCommon32(c Common) fbits.F32 {
	return fbits.PackF32(c.Sign, 255, uint32(c.PayloadHi>>41)|1<<22)
}

func (X86) NaNFromCommon64(c Common) fbits.F64 {
	return fbits.PackF64(c.Sign, 2047, c.PayloadHi>>12|1<<51)
}

func (X86) NaNFromCommonExtF80(c Common) fbits.ExtF80 {
	frac := c.PayloadHi >> 1
	return fbits.PackExtF80(c.Sign, 32767, frac|1<<63|1<<62)
}

func (X86) NaNFromCommonF128(c Common) fbits.F128 {
	fracHi := c.PayloadHi >> 16
	fracLo := c.PayloadLo>>16 | c.PayloadHi<<48
	return fbits.PackF128(c.Sign, 32767, fracHi|1<<47, fracLo)
}
