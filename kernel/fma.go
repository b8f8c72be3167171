package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

// combineU128 aligns two magnitudes already expressed in the same
// value = sig * 2^exp scale and adds or subtracts them, swapping
// operands as needed so the larger-exponent (or, on a tie, larger)
// magnitude leads. Used by the FMA kernels to merge a product against
// the addend c without re-deriving addMags/subMags' tail-bit handling.
func combineU128(expA int32, sigA xint.U128, expB int32, sigB xint.U128, subtract bool) (exp int32, sig xint.U128, swapped bool) {
	if subtract {
		if expA < expB || (expA == expB && sigA.Cmp(sigB) < 0) {
			expA, expB, sigA, sigB = expB, expA, sigB, sigA
			swapped = true
		}
		diff := uint(expA - expB)
		return expA, sigA.Sub(sigB.ShrJam(diff)), swapped
	}
	if expA < expB {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
	}
	diff := uint(expA - expB)
	sum := sigA.Add(sigB.ShrJam(diff))
	if sum.Cmp(sigA) < 0 {
		sum = sum.ShrJam(1).Or(xint.U128{Hi: 1 << 63})
		expA++
	}
	return expA, sum, false
}

// fmaMagSmall merges the exact 128-bit product a·b against c, widened
// from unpackFinite's no-tail scale by SigBits bits. Both operands have
// their leading bit at 2*SigBits-1 and no lost bits before combineU128's
// one alignment jam.
func fmaMagSmall(p round.Params, expA int32, sigA uint64, expB int32, sigB uint64, expC int32, sigC uint64, subtract bool) (int32, xint.U128, bool) {
	bias := int32(p.ExpMax / 2)
	prodExp := expA + expB - bias - int32(p.SigBits) + 3
	prodSig := xint.Mul64x64To128(sigA, sigB)
	if prodSig.Shr(uint(2*p.SigBits - 1)).IsZero() {
		prodSig = prodSig.Shl(1)
		prodExp--
	}
	if sigC == 0 {
		return prodExp, prodSig, false
	}
	cSig := xint.U128From64(sigC).Shl(uint(p.SigBits))
	if prodSig.IsZero() {
		return expC + 2 - int32(p.SigBits), cSig, true
	}
	return combineU128(prodExp, prodSig, expC+2-int32(p.SigBits), cSig, subtract)
}

func fmaMagWide(p round.Params, expA int32, sigA xint.U128, expB int32, sigB xint.U128, expC int32, sigC xint.U128, subtract bool) (int32, xint.U128, bool) {
	prodExp, prodSig := mulMagsWide(p, expA, sigA, expB, sigB)
	cSig := sigC.Shl(2)
	return combineU128(prodExp, prodSig, expC, cSig, subtract)
}

func fmaMagExtF80(expA int32, sigA uint64, expB int32, sigB uint64, expC int32, sigC uint64, subtract bool) (int32, xint.U128, bool) {
	prodExp, prodHi, prodLo := mulMagsExtF80(expA, sigA, expB, sigB)
	prodSig := xint.U128{Hi: prodHi, Lo: prodLo}
	cSig := xint.U128{Hi: sigC, Lo: 0}
	return combineU128(prodExp, prodSig, expC, cSig, subtract)
}

// FmaF16 computes a·b+c with a single rounding.
func FmaF16(st *fstate.State, np nanpolicy.Policy, a, b, c fbits.F16) fbits.F16 {
	if (fbits.IsZeroF16(a) && fbits.IsInfF16(b)) || (fbits.IsInfF16(a) && fbits.IsZeroF16(b)) {
		st.Raise(fstate.FlagInvalid)
		cIsNaN := fbits.IsNaNF16(c)
		return np.PropagateF16(true, np.DefaultNaN16(), cIsNaN, c)
	}

	aIsNaN, bIsNaN, cIsNaN := fbits.IsNaNF16(a), fbits.IsNaNF16(b), fbits.IsNaNF16(c)
	if aIsNaN || bIsNaN || cIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF16(a)) || (bIsNaN && fbits.IsSignalingNaNF16(b)) || (cIsNaN && fbits.IsSignalingNaNF16(c)) {
			st.Raise(fstate.FlagInvalid)
		}
		if aIsNaN || bIsNaN {
			abNaN := np.PropagateF16(aIsNaN, a, bIsNaN, b)
			if cIsNaN {
				return np.PropagateF16(true, abNaN, true, c)
			}
			return abNaN
		}
		return np.PropagateF16(false, a, true, c)
	}

	signA, signB, signC := fbits.SignF16(a), fbits.SignF16(b), fbits.SignF16(c)
	productSign := signA != signB

	if fbits.IsInfF16(a) || fbits.IsInfF16(b) {
		if fbits.IsInfF16(c) && signC != productSign {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultNaN16()
		}
		return fbits.SignedInfF16(productSign)
	}
	if fbits.IsInfF16(c) {
		return fbits.SignedInfF16(signC)
	}

	expA, sigA := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	expB, sigB := unpackFinite(round.F16Params, fbits.ExpF16(b), uint64(fbits.FracF16(b)))
	expC, sigC := unpackFinite(round.F16Params, fbits.ExpF16(c), uint64(fbits.FracF16(c)))

	subtract := productSign != signC
	exp, sig, swapped := fmaMagSmall(round.F16Params, expA, sigA, expB, sigB, expC, sigC, subtract)

	resultSign := productSign
	if swapped {
		resultSign = signC
	}
	if subtract && sig.IsZero() {
		resultSign = st.RoundingMode() == fstate.RoundToNegInf
	}

	sign, rexp, frac := round.NormRoundPackWide(st, round.F16Params, resultSign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac.Lo))
}

// FmaF32 computes a·b+c with a single rounding.
func FmaF32(st *fstate.State, np nanpolicy.Policy, a, b, c fbits.F32) fbits.F32 {
	if (fbits.IsZeroF32(a) && fbits.IsInfF32(b)) || (fbits.IsInfF32(a) && fbits.IsZeroF32(b)) {
		st.Raise(fstate.FlagInvalid)
		cIsNaN := fbits.IsNaNF32(c)
		return np.PropagateF32(true, np.DefaultNaN32(), cIsNaN, c)
	}

	aIsNaN, bIsNaN, cIsNaN := fbits.IsNaNF32(a), fbits.IsNaNF32(b), fbits.IsNaNF32(c)
	if aIsNaN || bIsNaN || cIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF32(a)) || (bIsNaN && fbits.IsSignalingNaNF32(b)) || (cIsNaN && fbits.IsSignalingNaNF32(c)) {
			st.Raise(fstate.FlagInvalid)
		}
		if aIsNaN || bIsNaN {
			abNaN := np.PropagateF32(aIsNaN, a, bIsNaN, b)
			if cIsNaN {
				return np.PropagateF32(true, abNaN, true, c)
			}
			return abNaN
		}
		return np.PropagateF32(false, a, true, c)
	}

	signA, signB, signC := fbits.SignF32(a), fbits.SignF32(b), fbits.SignF32(c)
	productSign := signA != signB

	if fbits.IsInfF32(a) || fbits.IsInfF32(b) {
		if fbits.IsInfF32(c) && signC != productSign {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultNaN32()
		}
		return fbits.SignedInfF32(productSign)
	}
	if fbits.IsInfF32(c) {
		return fbits.SignedInfF32(signC)
	}

	expA, sigA := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	expB, sigB := unpackFinite(round.F32Params, fbits.ExpF32(b), uint64(fbits.FracF32(b)))
	expC, sigC := unpackFinite(round.F32Params, fbits.ExpF32(c), uint64(fbits.FracF32(c)))

	subtract := productSign != signC
	exp, sig, swapped := fmaMagSmall(round.F32Params, expA, sigA, expB, sigB, expC, sigC, subtract)

	resultSign := productSign
	if swapped {
		resultSign = signC
	}
	if subtract && sig.IsZero() {
		resultSign = st.RoundingMode() == fstate.RoundToNegInf
	}

	sign, rexp, frac := round.NormRoundPackWide(st, round.F32Params, resultSign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac.Lo))
}

// FmaF64 computes a·b+c with a single rounding.
func FmaF64(st *fstate.State, np nanpolicy.Policy, a, b, c fbits.F64) fbits.F64 {
	if (fbits.IsZeroF64(a) && fbits.IsInfF64(b)) || (fbits.IsInfF64(a) && fbits.IsZeroF64(b)) {
		st.Raise(fstate.FlagInvalid)
		cIsNaN := fbits.IsNaNF64(c)
		return np.PropagateF64(true, np.DefaultNaN64(), cIsNaN, c)
	}

	aIsNaN, bIsNaN, cIsNaN := fbits.IsNaNF64(a), fbits.IsNaNF64(b), fbits.IsNaNF64(c)
	if aIsNaN || bIsNaN || cIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF64(a)) || (bIsNaN && fbits.IsSignalingNaNF64(b)) || (cIsNaN && fbits.IsSignalingNaNF64(c)) {
			st.Raise(fstate.FlagInvalid)
		}
		if aIsNaN || bIsNaN {
			abNaN := np.PropagateF64(aIsNaN, a, bIsNaN, b)
			if cIsNaN {
				return np.PropagateF64(true, abNaN, true, c)
			}
			return abNaN
		}
		return np.PropagateF64(false, a, true, c)
	}

	signA, signB, signC := fbits.SignF64(a), fbits.SignF64(b), fbits.SignF64(c)
	productSign := signA != signB

	if fbits.IsInfF64(a) || fbits.IsInfF64(b) {
		if fbits.IsInfF64(c) && signC != productSign {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultNaN64()
		}
		return fbits.SignedInfF64(productSign)
	}
	if fbits.IsInfF64(c) {
		return fbits.SignedInfF64(signC)
	}

	expA, sigA := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	expB, sigB := unpackFinite(round.F64Params, fbits.ExpF64(b), fbits.FracF64(b))
	expC, sigC := unpackFinite(round.F64Params, fbits.ExpF64(c), fbits.FracF64(c))

	subtract := productSign != signC
	exp, sig, swapped := fmaMagSmall(round.F64Params, expA, sigA, expB, sigB, expC, sigC, subtract)

	resultSign := productSign
	if swapped {
		resultSign = signC
	}
	if subtract && sig.IsZero() {
		resultSign = st.RoundingMode() == fstate.RoundToNegInf
	}

	sign, rexp, frac := round.NormRoundPackWide(st, round.F64Params, resultSign, exp, sig)
	return fbits.PackF64(sign, rexp, frac.Lo)
}

// FmaF128 computes a·b+c with a single rounding.
func FmaF128(st *fstate.State, np nanpolicy.Policy, a, b, c fbits.F128) fbits.F128 {
	if (fbits.IsZeroF128(a) && fbits.IsInfF128(b)) || (fbits.IsInfF128(a) && fbits.IsZeroF128(b)) {
		st.Raise(fstate.FlagInvalid)
		cIsNaN := fbits.IsNaNF128(c)
		return np.PropagateF128(true, np.DefaultF128(), cIsNaN, c)
	}

	aIsNaN, bIsNaN, cIsNaN := fbits.IsNaNF128(a), fbits.IsNaNF128(b), fbits.IsNaNF128(c)
	if aIsNaN || bIsNaN || cIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF128(a)) || (bIsNaN && fbits.IsSignalingNaNF128(b)) || (cIsNaN && fbits.IsSignalingNaNF128(c)) {
			st.Raise(fstate.FlagInvalid)
		}
		if aIsNaN || bIsNaN {
			abNaN := np.PropagateF128(aIsNaN, a, bIsNaN, b)
			if cIsNaN {
				return np.PropagateF128(true, abNaN, true, c)
			}
			return abNaN
		}
		return np.PropagateF128(false, a, true, c)
	}

	signA, signB, signC := fbits.SignF128(a), fbits.SignF128(b), fbits.SignF128(c)
	productSign := signA != signB

	if fbits.IsInfF128(a) || fbits.IsInfF128(b) {
		if fbits.IsInfF128(c) && signC != productSign {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultF128()
		}
		return fbits.SignedInfF128(productSign)
	}
	if fbits.IsInfF128(c) {
		return fbits.SignedInfF128(signC)
	}

	expA, sigA := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	expB, sigB := unpackFiniteWide(round.F128Params, fbits.ExpF128(b), fbits.FracHiF128(b), b.Lo)
	expC, sigC := unpackFiniteWide(round.F128Params, fbits.ExpF128(c), fbits.FracHiF128(c), c.Lo)

	subtract := productSign != signC
	exp, sig, swapped := fmaMagWide(round.F128Params, expA, sigA, expB, sigB, expC, sigC, subtract)

	resultSign := productSign
	if swapped {
		resultSign = signC
	}
	if subtract && sig.IsZero() {
		resultSign = st.RoundingMode() == fstate.RoundToNegInf
	}

	sign, rexp, frac := round.NormRoundPackWide(st, round.F128Params, resultSign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

// FmaExtF80 computes a·b+c with a single rounding.
func FmaExtF80(st *fstate.State, np nanpolicy.Policy, a, b, c fbits.ExtF80) fbits.ExtF80 {
	if (fbits.IsZeroExtF80(a) && fbits.IsInfExtF80(b)) || (fbits.IsInfExtF80(a) && fbits.IsZeroExtF80(b)) {
		st.Raise(fstate.FlagInvalid)
		cIsNaN := fbits.IsNaNExtF80(c)
		return np.PropagateExtF80(true, np.DefaultExtF80(), cIsNaN, c)
	}

	aIsNaN, bIsNaN, cIsNaN := fbits.IsNaNExtF80(a), fbits.IsNaNExtF80(b), fbits.IsNaNExtF80(c)
	if aIsNaN || bIsNaN || cIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNExtF80(a)) || (bIsNaN && fbits.IsSignalingNaNExtF80(b)) || (cIsNaN && fbits.IsSignalingNaNExtF80(c)) {
			st.Raise(fstate.FlagInvalid)
		}
		if aIsNaN || bIsNaN {
			abNaN := np.PropagateExtF80(aIsNaN, a, bIsNaN, b)
			if cIsNaN {
				return np.PropagateExtF80(true, abNaN, true, c)
			}
			return abNaN
		}
		return np.PropagateExtF80(false, a, true, c)
	}

	signA, signB, signC := fbits.SignExtF80(a), fbits.SignExtF80(b), fbits.SignExtF80(c)
	productSign := signA != signB

	if fbits.IsInfExtF80(a) || fbits.IsInfExtF80(b) {
		if fbits.IsInfExtF80(c) && signC != productSign {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultExtF80()
		}
		return fbits.SignedInfExtF80(productSign)
	}
	if fbits.IsInfExtF80(c) {
		return fbits.SignedInfExtF80(signC)
	}

	expA, sigA := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	expB, sigB := unpackFiniteExtF80(fbits.ExpExtF80(b), b.Sig)
	expC, sigC := unpackFiniteExtF80(fbits.ExpExtF80(c), c.Sig)

	subtract := productSign != signC
	exp, sig, swapped := fmaMagExtF80(expA, sigA, expB, sigB, expC, sigC, subtract)

	resultSign := productSign
	if swapped {
		resultSign = signC
	}
	if subtract && sig.IsZero() {
		resultSign = st.RoundingMode() == fstate.RoundToNegInf
	}

	sign, rexp, rsig0 := round.NormRoundPackExtF80(st, resultSign, exp, sig.Hi, sig.Lo)
	return fbits.PackExtF80(sign, rexp, rsig0)
}
