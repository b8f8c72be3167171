package round

import (
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/xint"
)

// RoundPack implements round_pack for any format whose significand fits a
// uint64 (F16/F32/F64). sig carries the working
// significand with the round bit at bit 1 and the (already jammed) sticky
// bit at bit 0; its leading explicit bit sits at bit p.SigBits+1. exp is
// the prospective biased exponent: exp<=0 means the true value falls
// below the smallest normal (subnormal path), exp>=p.ExpMax means it
// exceeds the largest finite value (overflow path), otherwise it is
// packed directly as a normal number.
func RoundPack(st *fstate.State, p Params, sign bool, exp int32, sig uint64) (rsign bool, rexp int32, rfrac uint64) {
	if exp >= p.ExpMax {
		return packOverflow(st, p, sign)
	}
	if exp <= 0 {
		return packSubnormal(st, p, sign, exp, sig)
	}
	return packNormal(st, p, sign, exp, sig)
}

// NormRoundPack is the variant that accepts a non-normalized significand
// (leading bit not necessarily at the canonical position p.SigBits+1) and
// first shifts it into place, adjusting exp to compensate, before calling
// RoundPack. sig must still carry its round/sticky tail in its low 2 bits;
// shifting right uses shift-with-jam so the sticky tail stays correct.
func NormRoundPack(st *fstate.State, p Params, sign bool, exp int32, sig uint64) (rsign bool, rexp int32, rfrac uint64) {
	if sig == 0 {
		return sign, 0, 0
	}

	const wordBits = 64
	targetLeadingBit := p.SigBits + 1 // position the leading 1 must occupy

	leading := wordBits - 1 - xint.CountLeadingZeros64(sig)
	shift := targetLeadingBit - leading

	switch {
	case shift > 0:
		sig <<= uint(shift)
		exp -= int32(shift)
	case shift < 0:
		sig = xint.ShiftRightJam64(sig, uint(-shift))
		exp += int32(-shift)
	}

	return RoundPack(st, p, sign, exp, sig)
}

func packNormal(st *fstate.State, p Params, sign bool, exp int32, sig uint64) (bool, int32, uint64) {
	roundBit := sig&2 != 0
	stickyBit := sig&1 != 0
	if roundBit || stickyBit {
		st.Raise(fstate.FlagInexact)
	}

	kept := sig >> 2
	inc := roundIncrement(st.RoundingMode(), sign, kept&1 != 0, roundBit, stickyBit)
	finalSig := kept + inc

	if finalSig>>uint(p.SigBits) != 0 {
		exp++
		finalSig >>= 1
		if exp >= p.ExpMax {
			return packOverflow(st, p, sign)
		}
	}

	return sign, exp, finalSig & fracMask(p)
}

func packSubnormal(st *fstate.State, p Params, sign bool, exp int32, sig uint64) (bool, int32, uint64) {
	deficit := uint(1 - exp)
	sig = xint.ShiftRightJam64(sig, deficit)

	roundBit := sig&2 != 0
	stickyBit := sig&1 != 0
	lost := roundBit || stickyBit

	kept := sig >> 2
	inc := roundIncrement(st.RoundingMode(), sign, kept&1 != 0, roundBit, stickyBit)
	finalSig := kept + inc

	if lost && isTiny(st, p, finalSig) {
		st.Raise(fstate.FlagUnderflow)
	}
	if lost {
		st.Raise(fstate.FlagInexact)
	}

	newExp := int32(0)
	if finalSig&(uint64(1)<<uint(p.SigBits-1)) != 0 {
		newExp = 1
	}

	return sign, newExp, finalSig & fracMask(p)
}

func packOverflow(st *fstate.State, p Params, sign bool) (bool, int32, uint64) {
	st.Raise(fstate.FlagOverflow | fstate.FlagInexact)
	if roundsToInfinity(st.RoundingMode(), sign) {
		return sign, p.ExpMax, 0
	}
	return sign, p.ExpMax - 1, fracMask(p)
}

func fracMask(p Params) uint64 {
	return uint64(1)<<uint(p.SigBits-1) - 1
}

func isTiny(st *fstate.State, p Params, finalSig uint64) bool {
	if st.TininessMode() == fstate.TininessBeforeRounding {
		return true
	}
	return finalSig&(uint64(1)<<uint(p.SigBits-1)) == 0
}

// roundIncrement decides whether the kept significand should be
// incremented by 1 ulp, per rounding mode, including nearest-even's
// round-to-even tie break.
func roundIncrement(mode fstate.RoundingMode, sign, keptLSBSet, roundBit, stickyBit bool) uint64 {
	switch mode {
	case fstate.RoundNearestEven:
		if !roundBit {
			return 0
		}
		if stickyBit || keptLSBSet {
			return 1
		}
		return 0
	case fstate.RoundToZero:
		return 0
	case fstate.RoundToNegInf:
		if sign && (roundBit || stickyBit) {
			return 1
		}
		return 0
	case fstate.RoundToPosInf:
		if !sign && (roundBit || stickyBit) {
			return 1
		}
		return 0
	case fstate.RoundNearestMaxMag:
		if roundBit {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func roundsToInfinity(mode fstate.RoundingMode, sign bool) bool {
	switch mode {
	case fstate.RoundToZero:
		return false
	case fstate.RoundToNegInf:
		return sign
	case fstate.RoundToPosInf:
		return !sign
	default:
		return true
	}
}
