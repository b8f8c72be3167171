package kernel

import (
	"math"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

// splitInt64 separates a signed magnitude from v without the two's
// complement overflow -(math.MinInt64) would otherwise hit.
func splitInt64(v int64) (neg bool, mag uint64) {
	if v < 0 {
		return true, uint64(-(v + 1)) + 1
	}
	return false, uint64(v)
}

// intMagToFloatWide packs an integer magnitude into the with-tail form any
// of round.NormRoundPackWide's Params accept: an integer's own true
// exponent is always 0, so per the with-tail identity established for
// FMA's addend bridging, exp_input reduces to bias+SigBits-1 regardless
// of where mag's leading bit falls — NormRoundPackWide's own leading-zero
// scan does the rest. Widening through U128 (rather than a native uint64
// shift) is what keeps a full 64-bit magnitude's top bits from being
// lost by the tail's <<2.
func intMagToFloatWide(p round.Params, mag uint64) (exp int32, sig xint.U128) {
	if mag == 0 {
		return 0, xint.U128{}
	}
	bias := int32(p.ExpMax / 2)
	return bias + int32(p.SigBits) - 1, xint.U128From64(mag).Shl(2)
}

func i32ToFloatWide(p round.Params, v int32) (sign bool, exp int32, sig xint.U128) {
	neg, mag := splitInt64(int64(v))
	exp, sig = intMagToFloatWide(p, mag)
	return neg, exp, sig
}

func i64ToFloatWide(p round.Params, v int64) (sign bool, exp int32, sig xint.U128) {
	neg, mag := splitInt64(v)
	exp, sig = intMagToFloatWide(p, mag)
	return neg, exp, sig
}

func ui32ToFloatWide(p round.Params, v uint32) (exp int32, sig xint.U128) {
	return intMagToFloatWide(p, uint64(v))
}

func ui64ToFloatWide(p round.Params, v uint64) (exp int32, sig xint.U128) {
	return intMagToFloatWide(p, v)
}

// I32ToF16/F32/F64/ExtF80/F128 etc. convert a signed/unsigned 32/64-bit
// integer to each float format by normalizing its magnitude and
// round-packing.
func I32ToF16(st *fstate.State, v int32) fbits.F16 {
	sign, exp, sig := i32ToFloatWide(round.F16Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F16Params, sign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac.Lo))
}

func I32ToF32(st *fstate.State, v int32) fbits.F32 {
	sign, exp, sig := i32ToFloatWide(round.F32Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F32Params, sign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac.Lo))
}

func I32ToF64(st *fstate.State, v int32) fbits.F64 {
	sign, exp, sig := i32ToFloatWide(round.F64Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F64Params, sign, exp, sig)
	return fbits.PackF64(sign, rexp, frac.Lo)
}

func I32ToF128(st *fstate.State, v int32) fbits.F128 {
	sign, exp, sig := i32ToFloatWide(round.F128Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F128Params, sign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

func I32ToExtF80(st *fstate.State, v int32) fbits.ExtF80 {
	neg, mag := splitInt64(int64(v))
	sign, rexp, rsig := i64MagToExtF80(st, neg, mag)
	return fbits.PackExtF80(sign, rexp, rsig)
}

func I64ToF16(st *fstate.State, v int64) fbits.F16 {
	sign, exp, sig := i64ToFloatWide(round.F16Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F16Params, sign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac.Lo))
}

func I64ToF32(st *fstate.State, v int64) fbits.F32 {
	sign, exp, sig := i64ToFloatWide(round.F32Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F32Params, sign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac.Lo))
}

func I64ToF64(st *fstate.State, v int64) fbits.F64 {
	sign, exp, sig := i64ToFloatWide(round.F64Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F64Params, sign, exp, sig)
	return fbits.PackF64(sign, rexp, frac.Lo)
}

func I64ToF128(st *fstate.State, v int64) fbits.F128 {
	sign, exp, sig := i64ToFloatWide(round.F128Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F128Params, sign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

func I64ToExtF80(st *fstate.State, v int64) fbits.ExtF80 {
	neg, mag := splitInt64(v)
	sign, rexp, rsig := i64MagToExtF80(st, neg, mag)
	return fbits.PackExtF80(sign, rexp, rsig)
}

func UI32ToF16(st *fstate.State, v uint32) fbits.F16 {
	exp, sig := ui32ToFloatWide(round.F16Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F16Params, false, exp, sig)
	return fbits.PackF16(false, rexp, uint16(frac.Lo))
}

func UI32ToF32(st *fstate.State, v uint32) fbits.F32 {
	exp, sig := ui32ToFloatWide(round.F32Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F32Params, false, exp, sig)
	return fbits.PackF32(false, rexp, uint32(frac.Lo))
}

func UI32ToF64(st *fstate.State, v uint32) fbits.F64 {
	exp, sig := ui32ToFloatWide(round.F64Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F64Params, false, exp, sig)
	return fbits.PackF64(false, rexp, frac.Lo)
}

func UI32ToF128(st *fstate.State, v uint32) fbits.F128 {
	exp, sig := ui32ToFloatWide(round.F128Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F128Params, false, exp, sig)
	return fbits.PackF128(false, rexp, frac.Hi, frac.Lo)
}

func UI32ToExtF80(st *fstate.State, v uint32) fbits.ExtF80 {
	sign, rexp, rsig := i64MagToExtF80(st, false, uint64(v))
	return fbits.PackExtF80(sign, rexp, rsig)
}

func UI64ToF16(st *fstate.State, v uint64) fbits.F16 {
	exp, sig := ui64ToFloatWide(round.F16Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F16Params, false, exp, sig)
	return fbits.PackF16(false, rexp, uint16(frac.Lo))
}

func UI64ToF32(st *fstate.State, v uint64) fbits.F32 {
	exp, sig := ui64ToFloatWide(round.F32Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F32Params, false, exp, sig)
	return fbits.PackF32(false, rexp, uint32(frac.Lo))
}

func UI64ToF64(st *fstate.State, v uint64) fbits.F64 {
	exp, sig := ui64ToFloatWide(round.F64Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F64Params, false, exp, sig)
	return fbits.PackF64(false, rexp, frac.Lo)
}

func UI64ToF128(st *fstate.State, v uint64) fbits.F128 {
	exp, sig := ui64ToFloatWide(round.F128Params, v)
	_, rexp, frac := round.NormRoundPackWide(st, round.F128Params, false, exp, sig)
	return fbits.PackF128(false, rexp, frac.Hi, frac.Lo)
}

func UI64ToExtF80(st *fstate.State, v uint64) fbits.ExtF80 {
	sign, rexp, rsig := i64MagToExtF80(st, false, v)
	return fbits.PackExtF80(sign, rexp, rsig)
}

// i64MagToExtF80 packs a magnitude directly through the explicit-bit
// format's own RoundPackExtF80 path rather than NormRoundPackWide: a
// 64-bit magnitude is already at most as wide as extF80's significand, so
// it needs only the same bias+63 reduced-scale placement round-to-integral
// reconstruction uses, not a 128-bit intermediate.
func i64MagToExtF80(st *fstate.State, sign bool, mag uint64) (bool, int32, uint64) {
	if mag == 0 {
		return sign, 0, 0
	}
	bias := round.ExtF80ExpMax / 2
	return round.NormRoundPackExtF80(st, sign, bias+63, mag, 0)
}

// floatMagToInt64Small rounds a finite float to an integer via
// round.RoundToIntegralSmall, then unpacks the resulting exact integral
// value's significand into a 64-bit magnitude, reporting whether it
// overflows 64 bits.
func floatMagToInt64Small(st *fstate.State, p round.Params, sign bool, exp int32, frac uint64) (mag uint64, overflow bool) {
	_, rexp, rfrac := round.RoundToIntegralSmall(st, p, sign, exp, frac, true)
	if rexp == 0 {
		return 0, false
	}
	bias := int32(p.ExpMax / 2)
	unbiased := rexp - bias
	sigFull := rfrac | uint64(1)<<uint(p.SigBits-1)
	shift := unbiased - (int32(p.SigBits) - 1)
	if shift > 64-int32(p.SigBits) {
		return 0, true
	}
	if shift < 0 {
		return sigFull >> uint(-shift), false
	}
	return sigFull << uint(shift), false
}

func floatMagToInt64Wide(st *fstate.State, p round.Params, sign bool, exp int32, frac xint.U128) (mag uint64, overflow bool) {
	_, rexp, rfrac := round.RoundToIntegralWide(st, p, sign, exp, frac, true)
	if rexp == 0 {
		return 0, false
	}
	bias := int32(p.ExpMax / 2)
	unbiased := rexp - bias
	sigFull := rfrac.Or(xint.U128{Hi: uint64(1) << uint(p.SigBits-1-64)})
	shift := unbiased - (int32(p.SigBits) - 1)
	if shift > 63 {
		return 0, true
	}
	if shift >= 0 {
		shifted := sigFull.Shl(uint(shift))
		if shifted.Hi != 0 {
			return 0, true
		}
		return shifted.Lo, false
	}
	shifted := sigFull.Shr(uint(-shift))
	if shifted.Hi != 0 {
		return 0, true
	}
	return shifted.Lo, false
}

func floatMagToInt64ExtF80(st *fstate.State, sign bool, exp int32, sig uint64) (mag uint64, overflow bool) {
	_, rexp, rsig := round.RoundToIntegralExtF80(st, sign, exp, sig, true)
	if rexp == 0 {
		return 0, false
	}
	const sigBits = 64
	bias := round.ExtF80ExpMax / 2
	unbiased := rexp - bias
	shift := unbiased - (sigBits - 1)
	if shift > 0 {
		return 0, true
	}
	return rsig >> uint(-shift), false
}

// saturateI32/I64/UI32/UI64 apply the RISC-V fcvt convention whichever
// nanpolicy.Policy is configured: an out-of-range or NaN result raises
// invalid and saturates toward the maximum magnitude of the signed result
// (the maximum representable value unless the source was definitely
// negative, in which case the minimum).
func saturateI32(st *fstate.State, sign bool, mag uint64, overflow bool) int32 {
	if overflow || (sign && mag > 1<<31) || (!sign && mag > math.MaxInt32) {
		st.Raise(fstate.FlagInvalid)
		if sign {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	if sign {
		return -int32(mag)
	}
	return int32(mag)
}

func saturateI64(st *fstate.State, sign bool, mag uint64, overflow bool) int64 {
	if overflow || (sign && mag > 1<<63) || (!sign && mag > math.MaxInt64) {
		st.Raise(fstate.FlagInvalid)
		if sign {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if sign {
		return -int64(mag)
	}
	return int64(mag)
}

func saturateUI32(st *fstate.State, sign bool, mag uint64, overflow bool) uint32 {
	if overflow || (sign && mag != 0) || mag > math.MaxUint32 {
		st.Raise(fstate.FlagInvalid)
		if sign && mag != 0 {
			return 0
		}
		return math.MaxUint32
	}
	return uint32(mag)
}

func saturateUI64(st *fstate.State, sign bool, mag uint64, overflow bool) uint64 {
	if overflow || (sign && mag != 0) {
		st.Raise(fstate.FlagInvalid)
		if sign && mag != 0 {
			return 0
		}
		return math.MaxUint64
	}
	return mag
}

// nanOrInfMag reports the (sign, mag, overflow) triple to feed a
// saturate* helper when a is NaN or infinite, so every FxxToYxx function
// below shares one NaN/Inf path: NaN saturates as if positive and
// out-of-range, infinities saturate toward their own sign.
func nanOrInfMag(isNaN, sign bool) (bool, uint64, bool) {
	if isNaN {
		return false, 0, true
	}
	return sign, 0, true
}

func F16ToI32(st *fstate.State, a fbits.F16) int32 {
	if fbits.IsNaNF16(a) || fbits.IsInfF16(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF16(a), fbits.SignF16(a))
		return saturateI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F16Params, fbits.SignF16(a), fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	return saturateI32(st, fbits.SignF16(a), mag, overflow)
}

func F16ToI64(st *fstate.State, a fbits.F16) int64 {
	if fbits.IsNaNF16(a) || fbits.IsInfF16(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF16(a), fbits.SignF16(a))
		return saturateI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F16Params, fbits.SignF16(a), fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	return saturateI64(st, fbits.SignF16(a), mag, overflow)
}

func F16ToUI32(st *fstate.State, a fbits.F16) uint32 {
	if fbits.IsNaNF16(a) || fbits.IsInfF16(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF16(a), fbits.SignF16(a))
		return saturateUI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F16Params, fbits.SignF16(a), fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	return saturateUI32(st, fbits.SignF16(a), mag, overflow)
}

func F16ToUI64(st *fstate.State, a fbits.F16) uint64 {
	if fbits.IsNaNF16(a) || fbits.IsInfF16(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF16(a), fbits.SignF16(a))
		return saturateUI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F16Params, fbits.SignF16(a), fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	return saturateUI64(st, fbits.SignF16(a), mag, overflow)
}

func F32ToI32(st *fstate.State, a fbits.F32) int32 {
	if fbits.IsNaNF32(a) || fbits.IsInfF32(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF32(a), fbits.SignF32(a))
		return saturateI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F32Params, fbits.SignF32(a), fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	return saturateI32(st, fbits.SignF32(a), mag, overflow)
}

func F32ToI64(st *fstate.State, a fbits.F32) int64 {
	if fbits.IsNaNF32(a) || fbits.IsInfF32(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF32(a), fbits.SignF32(a))
		return saturateI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F32Params, fbits.SignF32(a), fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	return saturateI64(st, fbits.SignF32(a), mag, overflow)
}

func F32ToUI32(st *fstate.State, a fbits.F32) uint32 {
	if fbits.IsNaNF32(a) || fbits.IsInfF32(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF32(a), fbits.SignF32(a))
		return saturateUI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F32Params, fbits.SignF32(a), fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	return saturateUI32(st, fbits.SignF32(a), mag, overflow)
}

func F32ToUI64(st *fstate.State, a fbits.F32) uint64 {
	if fbits.IsNaNF32(a) || fbits.IsInfF32(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF32(a), fbits.SignF32(a))
		return saturateUI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F32Params, fbits.SignF32(a), fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	return saturateUI64(st, fbits.SignF32(a), mag, overflow)
}

func F64ToI32(st *fstate.State, a fbits.F64) int32 {
	if fbits.IsNaNF64(a) || fbits.IsInfF64(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF64(a), fbits.SignF64(a))
		return saturateI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F64Params, fbits.SignF64(a), fbits.ExpF64(a), fbits.FracF64(a))
	return saturateI32(st, fbits.SignF64(a), mag, overflow)
}

func F64ToI64(st *fstate.State, a fbits.F64) int64 {
	if fbits.IsNaNF64(a) || fbits.IsInfF64(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF64(a), fbits.SignF64(a))
		return saturateI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F64Params, fbits.SignF64(a), fbits.ExpF64(a), fbits.FracF64(a))
	return saturateI64(st, fbits.SignF64(a), mag, overflow)
}

func F64ToUI32(st *fstate.State, a fbits.F64) uint32 {
	if fbits.IsNaNF64(a) || fbits.IsInfF64(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF64(a), fbits.SignF64(a))
		return saturateUI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F64Params, fbits.SignF64(a), fbits.ExpF64(a), fbits.FracF64(a))
	return saturateUI32(st, fbits.SignF64(a), mag, overflow)
}

func F64ToUI64(st *fstate.State, a fbits.F64) uint64 {
	if fbits.IsNaNF64(a) || fbits.IsInfF64(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF64(a), fbits.SignF64(a))
		return saturateUI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64Small(st, round.F64Params, fbits.SignF64(a), fbits.ExpF64(a), fbits.FracF64(a))
	return saturateUI64(st, fbits.SignF64(a), mag, overflow)
}

func F128ToI32(st *fstate.State, a fbits.F128) int32 {
	if fbits.IsNaNF128(a) || fbits.IsInfF128(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF128(a), fbits.SignF128(a))
		return saturateI32(st, sign, mag, overflow)
	}
	frac := xint.U128{Hi: fbits.FracHiF128(a), Lo: a.Lo}
	mag, overflow := floatMagToInt64Wide(st, round.F128Params, fbits.SignF128(a), fbits.ExpF128(a), frac)
	return saturateI32(st, fbits.SignF128(a), mag, overflow)
}

func F128ToI64(st *fstate.State, a fbits.F128) int64 {
	if fbits.IsNaNF128(a) || fbits.IsInfF128(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF128(a), fbits.SignF128(a))
		return saturateI64(st, sign, mag, overflow)
	}
	frac := xint.U128{Hi: fbits.FracHiF128(a), Lo: a.Lo}
	mag, overflow := floatMagToInt64Wide(st, round.F128Params, fbits.SignF128(a), fbits.ExpF128(a), frac)
	return saturateI64(st, fbits.SignF128(a), mag, overflow)
}

func F128ToUI32(st *fstate.State, a fbits.F128) uint32 {
	if fbits.IsNaNF128(a) || fbits.IsInfF128(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF128(a), fbits.SignF128(a))
		return saturateUI32(st, sign, mag, overflow)
	}
	frac := xint.U128{Hi: fbits.FracHiF128(a), Lo: a.Lo}
	mag, overflow := floatMagToInt64Wide(st, round.F128Params, fbits.SignF128(a), fbits.ExpF128(a), frac)
	return saturateUI32(st, fbits.SignF128(a), mag, overflow)
}

func F128ToUI64(st *fstate.State, a fbits.F128) uint64 {
	if fbits.IsNaNF128(a) || fbits.IsInfF128(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNF128(a), fbits.SignF128(a))
		return saturateUI64(st, sign, mag, overflow)
	}
	frac := xint.U128{Hi: fbits.FracHiF128(a), Lo: a.Lo}
	mag, overflow := floatMagToInt64Wide(st, round.F128Params, fbits.SignF128(a), fbits.ExpF128(a), frac)
	return saturateUI64(st, fbits.SignF128(a), mag, overflow)
}

func ExtF80ToI32(st *fstate.State, a fbits.ExtF80) int32 {
	if fbits.IsNaNExtF80(a) || fbits.IsInfExtF80(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNExtF80(a), fbits.SignExtF80(a))
		return saturateI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64ExtF80(st, fbits.SignExtF80(a), fbits.ExpExtF80(a), a.Sig)
	return saturateI32(st, fbits.SignExtF80(a), mag, overflow)
}

func ExtF80ToI64(st *fstate.State, a fbits.ExtF80) int64 {
	if fbits.IsNaNExtF80(a) || fbits.IsInfExtF80(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNExtF80(a), fbits.SignExtF80(a))
		return saturateI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64ExtF80(st, fbits.SignExtF80(a), fbits.ExpExtF80(a), a.Sig)
	return saturateI64(st, fbits.SignExtF80(a), mag, overflow)
}

func ExtF80ToUI32(st *fstate.State, a fbits.ExtF80) uint32 {
	if fbits.IsNaNExtF80(a) || fbits.IsInfExtF80(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNExtF80(a), fbits.SignExtF80(a))
		return saturateUI32(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64ExtF80(st, fbits.SignExtF80(a), fbits.ExpExtF80(a), a.Sig)
	return saturateUI32(st, fbits.SignExtF80(a), mag, overflow)
}

func ExtF80ToUI64(st *fstate.State, a fbits.ExtF80) uint64 {
	if fbits.IsNaNExtF80(a) || fbits.IsInfExtF80(a) {
		sign, mag, overflow := nanOrInfMag(fbits.IsNaNExtF80(a), fbits.SignExtF80(a))
		return saturateUI64(st, sign, mag, overflow)
	}
	mag, overflow := floatMagToInt64ExtF80(st, fbits.SignExtF80(a), fbits.ExpExtF80(a), a.Sig)
	return saturateUI64(st, fbits.SignExtF80(a), mag, overflow)
}
