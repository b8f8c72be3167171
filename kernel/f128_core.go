package kernel

import (
	"math/big"

	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

func leadingZeros128(a xint.U128) int {
	if a.Hi != 0 {
		return xint.CountLeadingZeros64(a.Hi)
	}
	return 64 + xint.CountLeadingZeros64(a.Lo)
}

// unpackFiniteWide is unpackFinite's U128-significand counterpart, used
// for binary128.
func unpackFiniteWide(p round.Params, exp int32, fracHi, fracLo uint64) (int32, xint.U128) {
	frac := xint.U128{Hi: fracHi, Lo: fracLo}
	if exp != 0 {
		return exp, frac.Or(xint.U128{Hi: uint64(1) << uint(p.SigBits-1-64)})
	}
	if frac.IsZero() {
		return 0, xint.U128{}
	}

	leadingBitPos := 127 - leadingZeros128(frac)
	shift := (p.SigBits - 1) - leadingBitPos
	return 1 - int32(shift), frac.Shl(uint(shift))
}

func addMagsWide(expA int32, sigA xint.U128, expB int32, sigB xint.U128) (int32, xint.U128) {
	if expA < expB {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
	}
	diff := uint(expA - expB)

	aTail := sigA.Shl(2)
	bTail := sigB.Shl(2).ShrJam(diff)

	return expA, aTail.Add(bTail)
}

func subMagsWide(expA int32, sigA xint.U128, expB int32, sigB xint.U128) (exp int32, sig xint.U128, swapped bool) {
	if expA < expB || (expA == expB && sigA.Cmp(sigB) < 0) {
		expA, expB, sigA, sigB = expB, expA, sigB, sigA
		swapped = true
	}
	diff := uint(expA - expB)

	aTail := sigA.Shl(2)
	bTail := sigB.Shl(2).ShrJam(diff)

	return expA, aTail.Sub(bTail), swapped
}

func mulMagsWide(p round.Params, expA int32, sigA xint.U128, expB int32, sigB xint.U128) (int32, xint.U128) {
	prod := xint.Mul128x128(sigA, sigB) // U256, up to 2*SigBits bits

	shift := 0
	if 2*p.SigBits > 128 {
		shift = 2*p.SigBits - 128
	}

	sig := prod.Lo128()
	if shift > 0 {
		sig = prod.ShrJam(uint(shift)).Lo128()
	}

	bias := int32(p.ExpMax / 2)
	exp := expA + expB - bias - int32(p.SigBits) + 3 + int32(shift)

	return exp, sig
}

func divMagsWide(p round.Params, expA int32, sigA xint.U128, expB int32, sigB xint.U128) (int32, xint.U128) {
	bias := int32(p.ExpMax / 2)

	num := u128ToBig(sigA)
	num.Lsh(num, uint(p.SigBits+2))
	den := u128ToBig(sigB)

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	sig := bigToU128(quo)
	if rem.Sign() != 0 {
		sig = sig.Or(xint.U128From64(1))
	}

	exp := expA - expB + bias - 1
	return exp, sig
}

func sqrtMagWide(p round.Params, exp int32, sig xint.U128) (int32, xint.U128) {
	bias := int32(p.ExpMax / 2)
	unbiased := exp - bias

	if (unbiased-int32(p.SigBits)+1)&1 != 0 {
		sig = sig.Shl(1)
		unbiased--
	}

	extra := p.SigBits/2 + 3
	radicand := u128ToBig(sig)
	radicand.Lsh(radicand, uint(2*extra))

	root := new(big.Int).Sqrt(radicand)
	remainder := new(big.Int).Sub(radicand, new(big.Int).Mul(root, root))

	sigResult := bigToU128(root)
	if remainder.Sign() != 0 {
		sigResult = sigResult.Or(xint.U128From64(1))
	}

	expResult := bias + int32(p.SigBits) + 1 - int32(extra) + (unbiased-int32(p.SigBits)+1)/2
	return expResult, sigResult
}

// remMagWide is remMag's U128-significand counterpart, used for binary128.
func remMagWide(p round.Params, expA int32, sigA xint.U128, expB int32, sigB xint.U128, signA bool) (sign bool, exp int32, sig xint.U128) {
	bias := int32(p.ExpMax / 2)
	trueExpA := expA - bias - int32(p.SigBits) + 1
	trueExpB := expB - bias - int32(p.SigBits) + 1

	a := u128ToBig(sigA)
	b := u128ToBig(sigB)

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
		return signA, 0, xint.U128{}
	}

	return resultSign, bias + int32(p.SigBits) - 1 + scaleExp, bigToU128(r).Shl(2)
}

func u128ToBig(a xint.U128) *big.Int {
	hi := new(big.Int).SetUint64(a.Hi)
	hi.Lsh(hi, 64)
	return hi.Or(hi, new(big.Int).SetUint64(a.Lo))
}

func bigToU128(x *big.Int) xint.U128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(x, mask).Uint64()
	hi := new(big.Int).Rsh(x, 64)
	return xint.U128{Hi: hi.Uint64(), Lo: lo}
}
