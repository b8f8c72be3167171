package round

import (
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/xint"
)

// F128Params describes binary128: 112 trailing + 1 explicit leading bit,
// held in a xint.U128.
var F128Params = Params{SigBits: 113, ExpMax: 32767}

// RoundPackWide is RoundPack's U128-significand counterpart, used for
// binary128. sig follows the same 2-tail-bit convention as RoundPack:
// round bit at bit 1, sticky bit at bit 0, leading explicit bit at bit
// p.SigBits+1.
func RoundPackWide(st *fstate.State, p Params, sign bool, exp int32, sig xint.U128) (rsign bool, rexp int32, rfrac xint.U128) {
	if exp >= p.ExpMax {
		return packOverflowWide(st, p, sign)
	}
	if exp <= 0 {
		return packSubnormalWide(st, p, sign, exp, sig)
	}
	return packNormalWide(st, p, sign, exp, sig)
}

// NormRoundPackWide shifts a non-normalized wide significand into place
// before calling RoundPackWide, mirroring NormRoundPack.
func NormRoundPackWide(st *fstate.State, p Params, sign bool, exp int32, sig xint.U128) (rsign bool, rexp int32, rfrac xint.U128) {
	if sig.IsZero() {
		return sign, 0, xint.U128{}
	}

	const wordBits = 128
	targetLeadingBit := uint(p.SigBits + 1)

	leading := wordBits - 1 - leadingZeros128(sig)
	shift := int(targetLeadingBit) - leading

	switch {
	case shift > 0:
		sig = sig.Shl(uint(shift))
		exp -= int32(shift)
	case shift < 0:
		sig = sig.ShrJam(uint(-shift))
		exp += int32(-shift)
	}

	return RoundPackWide(st, p, sign, exp, sig)
}

func leadingZeros128(a xint.U128) int {
	if a.Hi != 0 {
		return xint.CountLeadingZeros64(a.Hi)
	}
	return 64 + xint.CountLeadingZeros64(a.Lo)
}

func packNormalWide(st *fstate.State, p Params, sign bool, exp int32, sig xint.U128) (bool, int32, xint.U128) {
	roundBit := sig.Bit(1)
	stickyBit := sig.Bit(0)
	if roundBit || stickyBit {
		st.Raise(fstate.FlagInexact)
	}

	kept := sig.Shr(2)
	inc := roundIncrement(st.RoundingMode(), sign, kept.Bit(0), roundBit, stickyBit)
	finalSig := kept.Add(xint.U128From64(inc))

	if !finalSig.Shr(uint(p.SigBits)).IsZero() {
		exp++
		finalSig = finalSig.Shr(1)
		if exp >= p.ExpMax {
			return packOverflowWide(st, p, sign)
		}
	}

	return sign, exp, finalSig.And(xint.MaskLow128(uint(p.SigBits - 1)))
}

func packSubnormalWide(st *fstate.State, p Params, sign bool, exp int32, sig xint.U128) (bool, int32, xint.U128) {
	deficit := uint(1 - exp)
	sig = sig.ShrJam(deficit)

	roundBit := sig.Bit(1)
	stickyBit := sig.Bit(0)
	lost := roundBit || stickyBit

	kept := sig.Shr(2)
	inc := roundIncrement(st.RoundingMode(), sign, kept.Bit(0), roundBit, stickyBit)
	finalSig := kept.Add(xint.U128From64(inc))

	if lost && isTinyWide(st, p, finalSig) {
		st.Raise(fstate.FlagUnderflow)
	}
	if lost {
		st.Raise(fstate.FlagInexact)
	}

	newExp := int32(0)
	if finalSig.Bit(uint(p.SigBits - 1)) {
		newExp = 1
	}

	return sign, newExp, finalSig.And(xint.MaskLow128(uint(p.SigBits - 1)))
}

func packOverflowWide(st *fstate.State, p Params, sign bool) (bool, int32, xint.U128) {
	st.Raise(fstate.FlagOverflow | fstate.FlagInexact)
	if roundsToInfinity(st.RoundingMode(), sign) {
		return sign, p.ExpMax, xint.U128{}
	}
	return sign, p.ExpMax - 1, xint.MaskLow128(uint(p.SigBits - 1))
}

func isTinyWide(st *fstate.State, p Params, finalSig xint.U128) bool {
	if st.TininessMode() == fstate.TininessBeforeRounding {
		return true
	}
	return !finalSig.Bit(uint(p.SigBits - 1))
}
