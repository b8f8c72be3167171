package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

// commonBit is the implicit-bit position of the common interchange
// significand every Convert* function bridges through: 113 bits wide
// (matching binary128, the pack's widest format), bit 112 holding the
// implicit leading one. Every format's significand is widened or
// narrowed to this shared layout before being re-rounded into the
// target format, so a single pair of decode/encode helpers per format
// covers all 20 cross-format conversion directions.
const commonBit = 112

// unpacked is the format-neutral value a Convert* function bridges
// through: a classified sign/exponent/significand triple, or a NaN
// carrier for the nan class.
type unpacked struct {
	sign      bool
	class     valueClass
	exp       int32 // true (unbiased) binary exponent of the leading bit
	sig       xint.U128
	signaling bool
	nan       nanpolicy.Common
}

type valueClass int

const (
	classZero valueClass = iota
	classFinite
	classInf
	classNaN
)

func decodeF16(a fbits.F16) unpacked {
	switch {
	case fbits.IsNaNF16(a):
		return unpacked{sign: fbits.SignF16(a), class: classNaN, signaling: fbits.IsSignalingNaNF16(a), nan: nanpolicy.CommonFromF16(a)}
	case fbits.IsInfF16(a):
		return unpacked{sign: fbits.SignF16(a), class: classInf}
	case fbits.IsZeroF16(a):
		return unpacked{sign: fbits.SignF16(a), class: classZero}
	}
	bias := int32(round.F16Params.ExpMax / 2)
	exp, sig := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	shift := uint(commonBit - (round.F16Params.SigBits - 1))
	return unpacked{sign: fbits.SignF16(a), class: classFinite, exp: exp - bias, sig: xint.U128From64(sig).Shl(shift)}
}

func decodeF32(a fbits.F32) unpacked {
	switch {
	case fbits.IsNaNF32(a):
		return unpacked{sign: fbits.SignF32(a), class: classNaN, signaling: fbits.IsSignalingNaNF32(a), nan: nanpolicy.CommonFromF32(a)}
	case fbits.IsInfF32(a):
		return unpacked{sign: fbits.SignF32(a), class: classInf}
	case fbits.IsZeroF32(a):
		return unpacked{sign: fbits.SignF32(a), class: classZero}
	}
	bias := int32(round.F32Params.ExpMax / 2)
	exp, sig := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	shift := uint(commonBit - (round.F32Params.SigBits - 1))
	return unpacked{sign: fbits.SignF32(a), class: classFinite, exp: exp - bias, sig: xint.U128From64(sig).Shl(shift)}
}

func decodeF64(a fbits.F64) unpacked {
	switch {
	case fbits.IsNaNF64(a):
		return unpacked{sign: fbits.SignF64(a), class: classNaN, signaling: fbits.IsSignalingNaNF64(a), nan: nanpolicy.CommonFromF64(a)}
	case fbits.IsInfF64(a):
		return unpacked{sign: fbits.SignF64(a), class: classInf}
	case fbits.IsZeroF64(a):
		return unpacked{sign: fbits.SignF64(a), class: classZero}
	}
	bias := int32(round.F64Params.ExpMax / 2)
	exp, sig := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	shift := uint(commonBit - (round.F64Params.SigBits - 1))
	return unpacked{sign: fbits.SignF64(a), class: classFinite, exp: exp - bias, sig: xint.U128From64(sig).Shl(shift)}
}

func decodeExtF80(a fbits.ExtF80) unpacked {
	switch {
	case fbits.IsNaNExtF80(a):
		return unpacked{sign: fbits.SignExtF80(a), class: classNaN, signaling: fbits.IsSignalingNaNExtF80(a), nan: nanpolicy.CommonFromExtF80(a)}
	case fbits.IsInfExtF80(a):
		return unpacked{sign: fbits.SignExtF80(a), class: classInf}
	case fbits.IsZeroExtF80(a):
		return unpacked{sign: fbits.SignExtF80(a), class: classZero}
	}
	bias := round.ExtF80ExpMax / 2
	exp, sig := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	const extF80SigBits = 64
	shift := uint(commonBit - (extF80SigBits - 1))
	return unpacked{sign: fbits.SignExtF80(a), class: classFinite, exp: exp - bias, sig: xint.U128From64(sig).Shl(shift)}
}

func decodeF128(a fbits.F128) unpacked {
	switch {
	case fbits.IsNaNF128(a):
		return unpacked{sign: fbits.SignF128(a), class: classNaN, signaling: fbits.IsSignalingNaNF128(a), nan: nanpolicy.CommonFromF128(a)}
	case fbits.IsInfF128(a):
		return unpacked{sign: fbits.SignF128(a), class: classInf}
	case fbits.IsZeroF128(a):
		return unpacked{sign: fbits.SignF128(a), class: classZero}
	}
	bias := int32(round.F128Params.ExpMax / 2)
	exp, sig := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	return unpacked{sign: fbits.SignF128(a), class: classFinite, exp: exp - bias, sig: sig}
}

// encodeSmall packs u into a SigBits<=53 format via NormRoundPack: the
// common 113-bit significand is reduced
// to a 64-bit word (shift by commonBit-63) before rounding.
func encodeSmall(st *fstate.State, p round.Params, u unpacked) (bool, int32, uint64) {
	sigOut := u.sig.ShrJam(commonBit - 63).Lo
	bias := int32(p.ExpMax / 2)
	expOut := bias + int32(p.SigBits) - 62 + u.exp
	return round.NormRoundPack(st, p, u.sign, expOut, sigOut)
}

func encodeWide(st *fstate.State, u unpacked) (bool, int32, xint.U128) {
	bias := int32(round.F128Params.ExpMax / 2)
	expOut := bias + 2 + u.exp
	return round.NormRoundPackWide(st, round.F128Params, u.sign, expOut, u.sig)
}

func encodeExtF80(st *fstate.State, u unpacked) (bool, int32, uint64) {
	bias := round.ExtF80ExpMax / 2
	expOut := bias + 15 + u.exp
	return round.NormRoundPackExtF80(st, u.sign, expOut, u.sig.Hi, u.sig.Lo)
}

func convertNaNOrSpecial(st *fstate.State, u unpacked) (done bool) {
	if u.class == classNaN && u.signaling {
		st.Raise(fstate.FlagInvalid)
	}
	return u.class == classNaN || u.class == classInf || u.class == classZero
}

// ConvertF16ToF32 widens a to binary32.
func ConvertF16ToF32(st *fstate.State, np nanpolicy.Policy, a fbits.F16) fbits.F32 {
	u := decodeF16(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon32(u.nan)
		case classInf:
			return fbits.SignedInfF32(u.sign)
		default:
			return fbits.SignedZeroF32(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F32Params, u)
	return fbits.PackF32(sign, exp, uint32(frac))
}

// ConvertF16ToF64 widens a to binary64.
func ConvertF16ToF64(st *fstate.State, np nanpolicy.Policy, a fbits.F16) fbits.F64 {
	u := decodeF16(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon64(u.nan)
		case classInf:
			return fbits.SignedInfF64(u.sign)
		default:
			return fbits.SignedZeroF64(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F64Params, u)
	return fbits.PackF64(sign, exp, frac)
}

// ConvertF16ToExtF80 widens a to the 80-bit extended format.
func ConvertF16ToExtF80(st *fstate.State, np nanpolicy.Policy, a fbits.F16) fbits.ExtF80 {
	u := decodeF16(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonExtF80(u.nan)
		case classInf:
			return fbits.SignedInfExtF80(u.sign)
		default:
			return fbits.SignedZeroExtF80(u.sign)
		}
	}
	sign, exp, sig := encodeExtF80(st, u)
	return fbits.PackExtF80(sign, exp, sig)
}

// ConvertF16ToF128 widens a to binary128.
func ConvertF16ToF128(st *fstate.State, np nanpolicy.Policy, a fbits.F16) fbits.F128 {
	u := decodeF16(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonF128(u.nan)
		case classInf:
			return fbits.SignedInfF128(u.sign)
		default:
			return fbits.SignedZeroF128(u.sign)
		}
	}
	sign, exp, sig := encodeWide(st, u)
	return fbits.PackF128(sign, exp, sig.Hi, sig.Lo)
}

// ConvertF32ToF16 narrows a to binary16, rounding per st's rounding mode.
func ConvertF32ToF16(st *fstate.State, np nanpolicy.Policy, a fbits.F32) fbits.F16 {
	u := decodeF32(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon16(u.nan)
		case classInf:
			return fbits.SignedInfF16(u.sign)
		default:
			return fbits.SignedZeroF16(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F16Params, u)
	return fbits.PackF16(sign, exp, uint16(frac))
}

// ConvertF32ToF64 widens a to binary64.
func ConvertF32ToF64(st *fstate.State, np nanpolicy.Policy, a fbits.F32) fbits.F64 {
	u := decodeF32(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon64(u.nan)
		case classInf:
			return fbits.SignedInfF64(u.sign)
		default:
			return fbits.SignedZeroF64(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F64Params, u)
	return fbits.PackF64(sign, exp, frac)
}

// ConvertF32ToExtF80 widens a to the 80-bit extended format.
func ConvertF32ToExtF80(st *fstate.State, np nanpolicy.Policy, a fbits.F32) fbits.ExtF80 {
	u := decodeF32(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonExtF80(u.nan)
		case classInf:
			return fbits.SignedInfExtF80(u.sign)
		default:
			return fbits.SignedZeroExtF80(u.sign)
		}
	}
	sign, exp, sig := encodeExtF80(st, u)
	return fbits.PackExtF80(sign, exp, sig)
}

// ConvertF32ToF128 widens a to binary128.
func ConvertF32ToF128(st *fstate.State, np nanpolicy.Policy, a fbits.F32) fbits.F128 {
	u := decodeF32(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonF128(u.nan)
		case classInf:
			return fbits.SignedInfF128(u.sign)
		default:
			return fbits.SignedZeroF128(u.sign)
		}
	}
	sign, exp, sig := encodeWide(st, u)
	return fbits.PackF128(sign, exp, sig.Hi, sig.Lo)
}

// ConvertF64ToF16 narrows a to binary16, rounding per st's rounding mode.
func ConvertF64ToF16(st *fstate.State, np nanpolicy.Policy, a fbits.F64) fbits.F16 {
	u := decodeF64(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon16(u.nan)
		case classInf:
			return fbits.SignedInfF16(u.sign)
		default:
			return fbits.SignedZeroF16(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F16Params, u)
	return fbits.PackF16(sign, exp, uint16(frac))
}

// ConvertF64ToF32 narrows a to binary32, rounding per st's rounding mode.
func ConvertF64ToF32(st *fstate.State, np nanpolicy.Policy, a fbits.F64) fbits.F32 {
	u := decodeF64(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon32(u.nan)
		case classInf:
			return fbits.SignedInfF32(u.sign)
		default:
			return fbits.SignedZeroF32(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F32Params, u)
	return fbits.PackF32(sign, exp, uint32(frac))
}

// ConvertF64ToExtF80 widens a to the 80-bit extended format.
func ConvertF64ToExtF80(st *fstate.State, np nanpolicy.Policy, a fbits.F64) fbits.ExtF80 {
	u := decodeF64(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonExtF80(u.nan)
		case classInf:
			return fbits.SignedInfExtF80(u.sign)
		default:
			return fbits.SignedZeroExtF80(u.sign)
		}
	}
	sign, exp, sig := encodeExtF80(st, u)
	return fbits.PackExtF80(sign, exp, sig)
}

// ConvertF64ToF128 widens a to binary128.
func ConvertF64ToF128(st *fstate.State, np nanpolicy.Policy, a fbits.F64) fbits.F128 {
	u := decodeF64(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonF128(u.nan)
		case classInf:
			return fbits.SignedInfF128(u.sign)
		default:
			return fbits.SignedZeroF128(u.sign)
		}
	}
	sign, exp, sig := encodeWide(st, u)
	return fbits.PackF128(sign, exp, sig.Hi, sig.Lo)
}

// ConvertExtF80ToF16 narrows a to binary16, rounding per st's rounding mode.
func ConvertExtF80ToF16(st *fstate.State, np nanpolicy.Policy, a fbits.ExtF80) fbits.F16 {
	u := decodeExtF80(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon16(u.nan)
		case classInf:
			return fbits.SignedInfF16(u.sign)
		default:
			return fbits.SignedZeroF16(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F16Params, u)
	return fbits.PackF16(sign, exp, uint16(frac))
}

// ConvertExtF80ToF32 narrows a to binary32, rounding per st's rounding mode.
func ConvertExtF80ToF32(st *fstate.State, np nanpolicy.Policy, a fbits.ExtF80) fbits.F32 {
	u := decodeExtF80(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon32(u.nan)
		case classInf:
			return fbits.SignedInfF32(u.sign)
		default:
			return fbits.SignedZeroF32(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F32Params, u)
	return fbits.PackF32(sign, exp, uint32(frac))
}

// ConvertExtF80ToF64 narrows a to binary64, rounding per st's rounding mode.
func ConvertExtF80ToF64(st *fstate.State, np nanpolicy.Policy, a fbits.ExtF80) fbits.F64 {
	u := decodeExtF80(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon64(u.nan)
		case classInf:
			return fbits.SignedInfF64(u.sign)
		default:
			return fbits.SignedZeroF64(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F64Params, u)
	return fbits.PackF64(sign, exp, frac)
}

// ConvertExtF80ToF128 widens a to binary128.
func ConvertExtF80ToF128(st *fstate.State, np nanpolicy.Policy, a fbits.ExtF80) fbits.F128 {
	u := decodeExtF80(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonF128(u.nan)
		case classInf:
			return fbits.SignedInfF128(u.sign)
		default:
			return fbits.SignedZeroF128(u.sign)
		}
	}
	sign, exp, sig := encodeWide(st, u)
	return fbits.PackF128(sign, exp, sig.Hi, sig.Lo)
}

// ConvertF128ToF16 narrows a to binary16, rounding per st's rounding mode.
func ConvertF128ToF16(st *fstate.State, np nanpolicy.Policy, a fbits.F128) fbits.F16 {
	u := decodeF128(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon16(u.nan)
		case classInf:
			return fbits.SignedInfF16(u.sign)
		default:
			return fbits.SignedZeroF16(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F16Params, u)
	return fbits.PackF16(sign, exp, uint16(frac))
}

// ConvertF128ToF32 narrows a to binary32, rounding per st's rounding mode.
func ConvertF128ToF32(st *fstate.State, np nanpolicy.Policy, a fbits.F128) fbits.F32 {
	u := decodeF128(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon32(u.nan)
		case classInf:
			return fbits.SignedInfF32(u.sign)
		default:
			return fbits.SignedZeroF32(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F32Params, u)
	return fbits.PackF32(sign, exp, uint32(frac))
}

// ConvertF128ToF64 narrows a to binary64, rounding per st's rounding mode.
func ConvertF128ToF64(st *fstate.State, np nanpolicy.Policy, a fbits.F128) fbits.F64 {
	u := decodeF128(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommon64(u.nan)
		case classInf:
			return fbits.SignedInfF64(u.sign)
		default:
			return fbits.SignedZeroF64(u.sign)
		}
	}
	sign, exp, frac := encodeSmall(st, round.F64Params, u)
	return fbits.PackF64(sign, exp, frac)
}

// ConvertF128ToExtF80 narrows a to the 80-bit extended format.
func ConvertF128ToExtF80(st *fstate.State, np nanpolicy.Policy, a fbits.F128) fbits.ExtF80 {
	u := decodeF128(a)
	if convertNaNOrSpecial(st, u) {
		switch u.class {
		case classNaN:
			return np.NaNFromCommonExtF80(u.nan)
		case classInf:
			return fbits.SignedInfExtF80(u.sign)
		default:
			return fbits.SignedZeroExtF80(u.sign)
		}
	}
	sign, exp, sig := encodeExtF80(st, u)
	return fbits.PackExtF80(sign, exp, sig)
}
