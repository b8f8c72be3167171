package round

import (
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/xint"
)

// ExtF80ExpMax is the maximum biased exponent of the 80-bit extended format.
const ExtF80ExpMax int32 = 32767

// RoundPackExtF80 implements round_pack for the 80-bit extended format,
// whose 64-bit explicit significand is rounded separately from any extra
// bits pushed below it. sig0 is the candidate 64-bit significand (bit 63
// is the explicit integer bit); sig1 carries everything below it, with its
// own MSB serving as the round bit and every lower bit folded into sticky
// (the layout ShortShiftRightJamWithExtra produces). The rounding
// precision honored is st.ExtF80RoundingPrecision(), letting x87 callers
// round to 32- or 64-bit precision while keeping the 80-bit exponent range.
func RoundPackExtF80(st *fstate.State, sign bool, exp int32, sig0, sig1 uint64) (rsign bool, rexp int32, rsig0 uint64) {
	sigBits := extF80SigBits(st)

	if exp >= ExtF80ExpMax {
		return packOverflowExtF80(st, sign)
	}
	if exp <= 0 {
		return packSubnormalExtF80(st, sign, exp, sig0, sig1, sigBits)
	}
	return packNormalExtF80(st, sign, exp, sig0, sig1, sigBits)
}

// NormRoundPackExtF80 renormalizes (sig0, sig1) — sig0's leading bit need
// not yet sit at bit 63 — before calling RoundPackExtF80.
func NormRoundPackExtF80(st *fstate.State, sign bool, exp int32, sig0, sig1 uint64) (rsign bool, rexp int32, rsig0 uint64) {
	if sig0 == 0 {
		if sig1 == 0 {
			return sign, 0, 0
		}
		sig0, sig1 = sig1, 0
		exp -= 64
	}

	shift := xint.CountLeadingZeros64(sig0)
	if shift > 0 {
		sig0 = sig0<<uint(shift) | sig1>>uint(64-shift)
		sig1 <<= uint(shift)
		exp -= int32(shift)
	}

	return RoundPackExtF80(st, sign, exp, sig0, sig1)
}

func extF80SigBits(st *fstate.State) int {
	switch st.ExtF80RoundingPrecision() {
	case fstate.ExtF80Precision32:
		return 24
	case fstate.ExtF80Precision64:
		return 53
	default:
		return 64
	}
}

func packNormalExtF80(st *fstate.State, sign bool, exp int32, sig0, sig1 uint64, sigBits int) (bool, int32, uint64) {
	if sigBits == 64 {
		roundBit := sig1>>63 != 0
		stickyBit := sig1<<1 != 0
		if roundBit || stickyBit {
			st.Raise(fstate.FlagInexact)
		}

		inc := uint64(0)
		if roundIncrement(st.RoundingMode(), sign, sig0&1 != 0, roundBit, stickyBit) == 1 {
			inc = 1
		}

		finalSig := sig0 + inc
		if finalSig < sig0 { // carry out of bit 63
			exp++
			finalSig = finalSig>>1 | (uint64(1) << 63)
			if exp >= ExtF80ExpMax {
				return packOverflowExtF80(st, sign)
			}
		}
		return sign, exp, finalSig
	}

	shift := uint(64 - sigBits)
	roundBit := sig0>>(shift-1)&1 != 0
	stickyBit := sig0&((uint64(1)<<(shift-1))-1) != 0 || sig1 != 0

	if roundBit || stickyBit {
		st.Raise(fstate.FlagInexact)
	}

	kept := sig0 >> shift
	inc := roundIncrement(st.RoundingMode(), sign, kept&1 != 0, roundBit, stickyBit)
	finalKept := kept + inc

	if finalKept>>uint(sigBits) != 0 {
		exp++
		finalKept >>= 1
		if exp >= ExtF80ExpMax {
			return packOverflowExtF80(st, sign)
		}
	}

	return sign, exp, finalKept << shift
}

func packSubnormalExtF80(st *fstate.State, sign bool, exp int32, sig0, sig1 uint64, sigBits int) (bool, int32, uint64) {
	deficit := uint(1 - exp)

	if deficit >= 64 {
		sticky := uint64(0)
		if sig0 != 0 || sig1 != 0 {
			sticky = 1
		}
		sig0, sig1 = 0, sticky
	} else {
		sig0, sig1 = xint.ShortShiftRightJamWithExtra(sig0, sig1, deficit)
	}

	roundBit := sig1>>63 != 0
	stickyBit := sig1<<1 != 0
	lost := roundBit || stickyBit

	inc := roundIncrement(st.RoundingMode(), sign, sig0&1 != 0, roundBit, stickyBit)
	finalSig := sig0 + inc

	if lost && isTinyExtF80(st, finalSig) {
		st.Raise(fstate.FlagUnderflow)
	}
	if lost {
		st.Raise(fstate.FlagInexact)
	}

	newExp := int32(0)
	if finalSig>>63 != 0 {
		newExp = 1
	}

	return sign, newExp, finalSig
}

func packOverflowExtF80(st *fstate.State, sign bool) (bool, int32, uint64) {
	st.Raise(fstate.FlagOverflow | fstate.FlagInexact)
	if roundsToInfinity(st.RoundingMode(), sign) {
		return sign, ExtF80ExpMax, 1 << 63
	}
	return sign, ExtF80ExpMax - 1, ^uint64(0)
}

func isTinyExtF80(st *fstate.State, finalSig uint64) bool {
	if st.TininessMode() == fstate.TininessBeforeRounding {
		return true
	}
	return finalSig>>63 == 0
}
