package kernel

import (
	"math/big"
	"math/bits"

	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

// unpackFiniteExtF80 normalizes a's (exp, sig) pair so sig's leading bit
// sits at bit 63 (extF80's explicit integer bit), adjusting subnormal
// exponents accordingly. Zero maps to (0, 0).
func unpackFiniteExtF80(exp int32, sig uint64) (int32, uint64) {
	if exp != 0 {
		return exp, sig
	}
	if sig == 0 {
		return 0, 0
	}

	shift := xint.CountLeadingZeros64(sig)
	return 1 - int32(shift), sig << uint(shift)
}

// alignExtF80 right-shifts sig by diff bits, splitting the result into a
// 64-bit head and a 64-bit tail that holds the shifted-out bits (its MSB
// is the round bit), with any bits below the tail jammed into its LSB,
// for diff of any magnitude.
func alignExtF80(sig uint64, diff uint) (uint64, uint64) {
	switch {
	case diff == 0:
		return sig, 0
	case diff < 64:
		return xint.ShortShiftRightJamWithExtra(sig, 0, diff)
	default:
		return 0, xint.ShiftRightJam64(sig, diff-64)
	}
}

func addMagsExtF80(expA int32, sigA uint64, expB int32, sigB uint64) (int32, uint64, uint64) {
	if expA < expB {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
	}
	diff := uint(expA - expB)

	sig0B, sig1B := alignExtF80(sigB, diff)

	hi, carry := bits.Add64(sigA, sig0B, 0)
	lo := sig1B
	if carry != 0 {
		lost := lo & 1
		lo = lo>>1 | (hi&1)<<63
		hi = hi>>1 | (1 << 63)
		lo |= lost
		expA++
	}

	return expA, hi, lo
}

func subMagsExtF80(expA int32, sigA uint64, expB int32, sigB uint64) (exp int32, hi, lo uint64, swapped bool) {
	if expA < expB || (expA == expB && sigA < sigB) {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
		swapped = true
	}
	diff := uint(expA - expB)

	sig0B, sig1B := alignExtF80(sigB, diff)

	lo, borrow := bits.Sub64(0, sig1B, 0)
	hi, _ = bits.Sub64(sigA, sig0B, borrow)

	return expA, hi, lo, swapped
}

func mulMagsExtF80(expA int32, sigA uint64, expB int32, sigB uint64) (int32, uint64, uint64) {
	bias := round.ExtF80ExpMax / 2
	prod := xint.Mul64x64To128(sigA, sigB)
	exp := expA + expB - bias + 1
	return exp, prod.Hi, prod.Lo
}

func divMagsExtF80(expA int32, sigA uint64, expB int32, sigB uint64) (int32, uint64, uint64) {
	bias := round.ExtF80ExpMax / 2
	quo, rem := bits.Div64(sigA>>1, sigA<<63, sigB)
	tail, rem2 := bits.Div64(rem, 0, sigB)
	if rem2 != 0 {
		tail |= 1
	}
	exp := expA - expB + bias
	return exp, quo, tail
}

// sqrtMagExtF80 computes the square root of a normalized (exp, sig) magnitude
// using an exact big.Int integer square root, mirroring sqrtMag/sqrtMagWide's
// derivation but against extF80's 64-bit explicit significand.
func sqrtMagExtF80(exp int32, sig uint64) (int32, uint64, uint64) {
	const sigBits = 64
	bias := round.ExtF80ExpMax / 2

	unbiased := exp - bias
	sigWide := new(big.Int).SetUint64(sig)
	if (unbiased-sigBits+1)&1 != 0 {
		sigWide.Lsh(sigWide, 1)
		unbiased--
	}

	const extra = sigBits/2 + 3
	radicand := new(big.Int).Lsh(sigWide, uint(2*extra))
	root := new(big.Int).Sqrt(radicand)
	remainder := new(big.Int).Sub(radicand, new(big.Int).Mul(root, root))
	sticky := remainder.Sign() != 0

	var sig1 uint64
	shift := root.BitLen() - 64
	if shift > 0 {
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(shift)), big.NewInt(1))
		sig1 = new(big.Int).And(root, mask).Uint64() << uint(64-shift)
		root.Rsh(root, uint(shift))
	}

	sig0 := root.Uint64()
	if sticky {
		sig1 |= 1
	}

	halfExp := (unbiased - sigBits + 1) / 2
	expResult := bias + (sigBits - 1) + halfExp - extra + int32(shift)
	return expResult, sig0, sig1
}

// remMagExtF80 is remMag's extF80 counterpart. Unlike the tail-bit
// formats, a remainder feeds NormRoundPackExtF80 with no tail shift: its
// pair convention already reduces to value=sig0*2^(exp-bias-63) when
// sig1 is zero, the same reduced scale unpackFiniteExtF80 itself uses.
func remMagExtF80(expA int32, sigA uint64, expB int32, sigB uint64, signA bool) (sign bool, exp int32, sig0, sig1 uint64) {
	const sigBits = 64
	bias := round.ExtF80ExpMax / 2

	trueExpA := expA - bias - sigBits + 1
	trueExpB := expB - bias - sigBits + 1

	a := new(big.Int).SetUint64(sigA)
	b := new(big.Int).SetUint64(sigB)

	var scaleExp int32
	if trueExpA >= trueExpB {
		a.Lsh(a, uint(trueExpA-trueExpB))
		scaleExp = trueExpB
	} else {
		b.Lsh(b, uint(trueExpB-trueExpA))
		scaleExp = trueExpA
	}

	n, r := new(big.Int), new(big.Int)
	n.QuoRem(a, b, r)

	twiceR := new(big.Int).Lsh(r, 1)
	if c := twiceR.Cmp(b); c > 0 || (c == 0 && n.Bit(0) == 1) {
		r.Sub(r, b)
	}

	resultSign := signA
	if r.Sign() < 0 {
		r.Neg(r)
		resultSign = !signA
	}
	if r.Sign() == 0 {
		return signA, 0, 0, 0
	}

	return resultSign, bias + sigBits - 1 + scaleExp, r.Uint64(), 0
}
