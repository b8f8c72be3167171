// Package kernel implements the arithmetic kernels: the bit-level
// add/subtract/multiply/divide/square-root/compare/convert/FMA routines
// that operate beneath the public softfloat.Context API. Rather than
// five hand-duplicated per-format implementations, F16/F32/F64 share one
// generic core (core.go) driven by round.Params; extF80 and F128 get
// dedicated implementations since their significands don't fit a uint64.
package kernel

import (
	"math/big"
	"math/bits"

	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

// unpackFinite turns a format's (biased exponent, trailing fraction) into
// the internal (exp, sig) pair every generic core routine works with: sig
// always carries an explicit leading bit at position p.SigBits-1,
// renormalizing subnormals (exp==0) so the rest of the core never has to
// special-case them.
func unpackFinite(p round.Params, exp int32, frac uint64) (int32, uint64) {
	if exp != 0 {
		return exp, frac | uint64(1)<<uint(p.SigBits-1)
	}
	if frac == 0 {
		return 0, 0
	}

	leadingBitPos := 63 - xint.CountLeadingZeros64(frac)
	shift := (p.SigBits - 1) - leadingBitPos
	return 1 - int32(shift), frac << uint(shift)
}

// addMags aligns two same-effective-sign magnitudes and adds them,
// returning an exponent/significand pair (with the round.RoundPack 2-bit
// tail already appended) ready for round.NormRoundPack.
func addMags(expA int32, sigA uint64, expB int32, sigB uint64) (int32, uint64) {
	if expA < expB {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
	}
	diff := uint(expA - expB)

	aTail := sigA << 2
	bTail := xint.ShiftRightJam64(sigB<<2, diff)

	return expA, aTail + bTail
}

// subMags aligns two opposite-effective-sign magnitudes and subtracts the
// smaller from the larger, returning the magnitude's exponent/significand
// pair plus whether the operands needed to be swapped (the caller uses
// that to work out the result's sign).
func subMags(expA int32, sigA uint64, expB int32, sigB uint64) (exp int32, sig uint64, swapped bool) {
	if expA < expB || (expA == expB && sigA < sigB) {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
		swapped = true
	}
	diff := uint(expA - expB)

	aTail := sigA << 2
	bTail := xint.ShiftRightJam64(sigB<<2, diff)

	return expA, aTail - bTail, swapped
}

// mulMags multiplies two normalized magnitudes, returning an
// exponent/significand pair (with tail bits) ready for round.NormRoundPack.
func mulMags(p round.Params, expA int32, sigA uint64, expB int32, sigB uint64) (int32, uint64) {
	prod := xint.Mul64x64To128(sigA, sigB)

	shift := 0
	if 2*p.SigBits > 64 {
		shift = 2*p.SigBits - 64
	}

	sig := prod.Lo
	if shift > 0 {
		sig = prod.ShrJam(uint(shift)).Lo
	}

	bias := int32(p.ExpMax / 2)
	exp := expA + expB - bias - int32(p.SigBits) + 3 + int32(shift)

	return exp, sig
}

// divMags divides two normalized magnitudes, returning an
// exponent/significand pair (with tail bits) ready for round.NormRoundPack.
func divMags(p round.Params, expA int32, sigA uint64, expB int32, sigB uint64) (int32, uint64) {
	bias := int32(p.ExpMax / 2)

	num := xint.U128From64(sigA).Shl(uint(p.SigBits + 2))
	quo, rem := bits.Div64(num.Hi, num.Lo, sigB)
	if rem != 0 {
		quo |= 1
	}

	exp := expA - expB + bias - 1
	return exp, quo
}

// sqrtMag computes the square root of a normalized magnitude, returning an
// exponent/significand pair (with tail bits) ready for round.NormRoundPack.
// It computes an exact integer square root via math/big, scaled to give
// SigBits+2 bits of result precision with the remainder folded into the
// returned sticky bit, rather than the original's reciprocal-square-root
// Newton iteration — Go's standard library already provides the exact
// primitive that approximation only existed to emulate; see DESIGN.md.
func sqrtMag(p round.Params, exp int32, sig uint64) (int32, uint64) {
	bias := int32(p.ExpMax / 2)
	unbiased := exp - bias

	// Ensure (unbiased - SigBits + 1) is even so halving it is exact; which
	// parity needs correcting depends on SigBits' own parity (only F32 has
	// an even SigBits among the formats sharing this core).
	if (unbiased-int32(p.SigBits)+1)&1 != 0 {
		sig <<= 1
		unbiased--
	}

	extra := p.SigBits/2 + 3
	radicand := new(big.Int).Lsh(big.NewInt(int64(sig)), uint(2*extra))
	root := new(big.Int).Sqrt(radicand)
	remainder := new(big.Int).Sub(radicand, new(big.Int).Mul(root, root))

	sigResult := root.Uint64()
	if remainder.Sign() != 0 {
		sigResult |= 1
	}

	expResult := bias + int32(p.SigBits) + 1 - int32(extra) + (unbiased-int32(p.SigBits)+1)/2
	return expResult, sigResult
}

// remMag implements the IEEE remainder: a-n*b for n the integer nearest
// a/b (ties to even), computed exactly via math/big rather than a
// shift-and-subtract loop (see DESIGN.md). signA is a's
// sign; the candidate-vs-alternate selection and its tie break fall out
// of one big.Int QuoRem plus a single correction step, since the
// magnitude of any exact remainder is always bounded by the divisor
// regardless of how far apart the operands' exponents are.
func remMag(p round.Params, expA int32, sigA uint64, expB int32, sigB uint64, signA bool) (sign bool, exp int32, sig uint64) {
	bias := int32(p.ExpMax / 2)
	trueExpA := expA - bias - int32(p.SigBits) + 1
	trueExpB := expB - bias - int32(p.SigBits) + 1

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
		return signA, 0, 0
	}

	return resultSign, bias + int32(p.SigBits) - 1 + scaleExp, r.Uint64() << 2
}
