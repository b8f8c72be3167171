package round

import (
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/xint"
)

// RoundToIntegralSmall rounds a finite value to the nearest integral
// value, for the formats whose significand fits a uint64: drop every bit
// below the integer boundary,
// rounding per st's mode, then re-pack through NormRoundPack so overflow
// (e.g. rounding the largest finite value up) is handled the same way
// ordinary arithmetic handles it. exp/frac are the raw packed fields (no
// implicit bit); exp==p.ExpMax passes NaN/Inf through unchanged.
func RoundToIntegralSmall(st *fstate.State, p Params, sign bool, exp int32, frac uint64, exact bool) (rsign bool, rexp int32, rfrac uint64) {
	bias := p.ExpMax / 2
	if exp == p.ExpMax {
		return sign, exp, frac
	}
	if exp == 0 {
		if frac != 0 {
			if exact {
				st.Raise(fstate.FlagInexact)
			}
			if roundsAwayFromZeroSubnormal(st, sign) {
				return NormRoundPack(st, p, sign, bias+int32(p.SigBits)-1, 4)
			}
		}
		return sign, 0, 0
	}

	unbiased := exp - bias
	if unbiased >= int32(p.SigBits)-1 {
		return sign, exp, frac
	}

	sig := frac | uint64(1)<<uint(p.SigBits-1)
	dropBits := uint(int32(p.SigBits) - 1 - unbiased)

	var kept uint64
	var roundBit, stickyBit bool
	if dropBits > 64 {
		stickyBit = sig != 0
	} else {
		roundBit = sig&(uint64(1)<<(dropBits-1)) != 0
		if dropBits >= 2 {
			stickyBit = sig&(uint64(1)<<(dropBits-1)-1) != 0
		}
		if dropBits < 64 {
			kept = sig >> dropBits
		}
	}

	if exact && (roundBit || stickyBit) {
		st.Raise(fstate.FlagInexact)
	}

	inc := roundIncrement(st.RoundingMode(), sign, kept&1 != 0, roundBit, stickyBit)
	finalSig := kept + inc
	if finalSig == 0 {
		return sign, 0, 0
	}
	return NormRoundPack(st, p, sign, bias+int32(p.SigBits)-1, finalSig<<2)
}

// RoundToIntegralWide is RoundToIntegralSmall's U128-significand
// counterpart, used for binary128.
func RoundToIntegralWide(st *fstate.State, p Params, sign bool, exp int32, frac xint.U128, exact bool) (rsign bool, rexp int32, rfrac xint.U128) {
	bias := p.ExpMax / 2
	if exp == p.ExpMax {
		return sign, exp, frac
	}
	if exp == 0 {
		if !frac.IsZero() {
			if exact {
				st.Raise(fstate.FlagInexact)
			}
			if roundsAwayFromZeroSubnormal(st, sign) {
				return NormRoundPackWide(st, p, sign, bias+int32(p.SigBits)-1, xint.U128From64(4))
			}
		}
		return sign, 0, xint.U128{}
	}

	unbiased := exp - bias
	if unbiased >= int32(p.SigBits)-1 {
		return sign, exp, frac
	}

	sig := frac.Or(xint.U128{Hi: uint64(1) << uint(p.SigBits-1-64)})
	dropBits := uint(int32(p.SigBits) - 1 - unbiased)

	var kept xint.U128
	var roundBit, stickyBit bool
	if dropBits > 128 {
		stickyBit = !sig.IsZero()
	} else {
		roundBit = sig.Bit(dropBits - 1)
		if dropBits >= 2 {
			stickyBit = !sig.And(xint.MaskLow128(dropBits - 1)).IsZero()
		}
		if dropBits < 128 {
			kept = sig.Shr(dropBits)
		}
	}

	if exact && (roundBit || stickyBit) {
		st.Raise(fstate.FlagInexact)
	}

	inc := uint64(0)
	if roundIncrement(st.RoundingMode(), sign, kept.Bit(0), roundBit, stickyBit) == 1 {
		inc = 1
	}
	finalSig := kept.Add(xint.U128From64(inc))
	if finalSig.IsZero() {
		return sign, 0, xint.U128{}
	}
	return NormRoundPackWide(st, p, sign, bias+int32(p.SigBits)-1, finalSig.Shl(2))
}

// RoundToIntegralExtF80 is RoundToIntegralSmall's counterpart for the
// 80-bit extended format, whose 64-bit significand already carries its
// integer bit explicitly (no implicit-bit OR needed).
func RoundToIntegralExtF80(st *fstate.State, sign bool, exp int32, sig uint64, exact bool) (rsign bool, rexp int32, rsig uint64) {
	const sigBits = 64
	bias := ExtF80ExpMax / 2

	if exp == ExtF80ExpMax {
		return sign, exp, sig
	}
	if exp == 0 {
		if sig != 0 {
			if exact {
				st.Raise(fstate.FlagInexact)
			}
			if roundsAwayFromZeroSubnormal(st, sign) {
				return NormRoundPackExtF80(st, sign, bias+sigBits-1, 1, 0)
			}
		}
		return sign, 0, 0
	}

	unbiased := exp - bias
	if unbiased >= sigBits-1 {
		return sign, exp, sig
	}

	dropBits := uint(int32(sigBits) - 1 - unbiased)

	var kept uint64
	var roundBit, stickyBit bool
	if dropBits > 64 {
		stickyBit = sig != 0
	} else {
		roundBit = sig&(uint64(1)<<(dropBits-1)) != 0
		if dropBits >= 2 {
			stickyBit = sig&(uint64(1)<<(dropBits-1)-1) != 0
		}
		if dropBits < 64 {
			kept = sig >> dropBits
		}
	}

	if exact && (roundBit || stickyBit) {
		st.Raise(fstate.FlagInexact)
	}

	inc := roundIncrement(st.RoundingMode(), sign, kept&1 != 0, roundBit, stickyBit)
	finalSig := kept + inc
	if finalSig == 0 {
		return sign, 0, 0
	}
	return NormRoundPackExtF80(st, sign, bias+sigBits-1, finalSig, 0)
}

// roundsAwayFromZeroSubnormal reports whether a nonzero subnormal input —
// always of magnitude far below 0.5 — should round to ±1 rather than ±0:
// true only for the two rounding modes that round strictly away from zero
// in the operand's own direction.
func roundsAwayFromZeroSubnormal(st *fstate.State, sign bool) bool {
	switch st.RoundingMode() {
	case fstate.RoundToPosInf:
		return !sign
	case fstate.RoundToNegInf:
		return sign
	default:
		return false
	}
}
