package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

// AddF128 computes a+b.
func AddF128(st *fstate.State, np nanpolicy.Policy, a, b fbits.F128) fbits.F128 {
	return addOrSubF128(st, np, a, b, false)
}

// SubF128 computes a-b.
func SubF128(st *fstate.State, np nanpolicy.Policy, a, b fbits.F128) fbits.F128 {
	return addOrSubF128(st, np, a, b, true)
}

func addOrSubF128(st *fstate.State, np nanpolicy.Policy, a, b fbits.F128, isSub bool) fbits.F128 {
	aIsNaN, bIsNaN := fbits.IsNaNF128(a), fbits.IsNaNF128(b)
	if aIsNaN || bIsNaN {
		return nanResultF128(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF128(a)
	signB := fbits.SignF128(b) != isSub

	if fbits.IsInfF128(a) || fbits.IsInfF128(b) {
		if fbits.IsInfF128(a) && fbits.IsInfF128(b) && signA != signB {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultF128()
		}
		if fbits.IsInfF128(a) {
			return fbits.SignedInfF128(signA)
		}
		return fbits.SignedInfF128(signB)
	}

	if fbits.IsZeroF128(a) && fbits.IsZeroF128(b) {
		if signA == signB {
			return fbits.SignedZeroF128(signA)
		}
		return fbits.SignedZeroF128(st.RoundingMode() == fstate.RoundToNegInf)
	}
	if fbits.IsZeroF128(a) {
		return fbits.PackF128(signB, fbits.ExpF128(b), fbits.FracHiF128(b), b.Lo)
	}
	if fbits.IsZeroF128(b) {
		return fbits.PackF128(signA, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	}

	expA, sigA := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	expB, sigB := unpackFiniteWide(round.F128Params, fbits.ExpF128(b), fbits.FracHiF128(b), b.Lo)

	if signA == signB {
		exp, sig := addMagsWide(expA, sigA, expB, sigB)
		sign, rexp, frac := round.NormRoundPackWide(st, round.F128Params, signA, exp, sig)
		return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
	}

	exp, sig, swapped := subMagsWide(expA, sigA, expB, sigB)
	if sig.IsZero() {
		return fbits.SignedZeroF128(st.RoundingMode() == fstate.RoundToNegInf)
	}
	resultSign := signA
	if swapped {
		resultSign = signB
	}
	sign, rexp, frac := round.NormRoundPackWide(st, round.F128Params, resultSign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

// MulF128 computes a*b.
func MulF128(st *fstate.State, np nanpolicy.Policy, a, b fbits.F128) fbits.F128 {
	aIsNaN, bIsNaN := fbits.IsNaNF128(a), fbits.IsNaNF128(b)
	if aIsNaN || bIsNaN {
		return nanResultF128(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF128(a), fbits.SignF128(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF128(a), fbits.IsInfF128(b)
	aZero, bZero := fbits.IsZeroF128(a), fbits.IsZeroF128(b)

	if (aInf && bZero) || (aZero && bInf) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultF128()
	}
	if aInf || bInf {
		return fbits.SignedInfF128(resultSign)
	}
	if aZero || bZero {
		return fbits.SignedZeroF128(resultSign)
	}

	expA, sigA := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	expB, sigB := unpackFiniteWide(round.F128Params, fbits.ExpF128(b), fbits.FracHiF128(b), b.Lo)

	exp, sig := mulMagsWide(round.F128Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPackWide(st, round.F128Params, resultSign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

// DivF128 computes a/b.
func DivF128(st *fstate.State, np nanpolicy.Policy, a, b fbits.F128) fbits.F128 {
	aIsNaN, bIsNaN := fbits.IsNaNF128(a), fbits.IsNaNF128(b)
	if aIsNaN || bIsNaN {
		return nanResultF128(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF128(a), fbits.SignF128(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF128(a), fbits.IsInfF128(b)
	aZero, bZero := fbits.IsZeroF128(a), fbits.IsZeroF128(b)

	if (aInf && bInf) || (aZero && bZero) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultF128()
	}
	if aInf || bZero {
		if bZero && !aInf {
			st.Raise(fstate.FlagDivByZero)
		}
		return fbits.SignedInfF128(resultSign)
	}
	if aZero || bInf {
		return fbits.SignedZeroF128(resultSign)
	}

	expA, sigA := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	expB, sigB := unpackFiniteWide(round.F128Params, fbits.ExpF128(b), fbits.FracHiF128(b), b.Lo)

	exp, sig := divMagsWide(round.F128Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPackWide(st, round.F128Params, resultSign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

// SqrtF128 computes the square root of a.
func SqrtF128(st *fstate.State, np nanpolicy.Policy, a fbits.F128) fbits.F128 {
	if fbits.IsNaNF128(a) {
		return nanResultF128(st, np, true, a, false, fbits.F128{})
	}

	sign := fbits.SignF128(a)
	if fbits.IsZeroF128(a) {
		return fbits.SignedZeroF128(sign)
	}
	if sign {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultF128()
	}
	if fbits.IsInfF128(a) {
		return fbits.SignedInfF128(false)
	}

	exp, sig := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	rexp, rsig := sqrtMagWide(round.F128Params, exp, sig)
	_, outExp, frac := round.NormRoundPackWide(st, round.F128Params, false, rexp, rsig)
	return fbits.PackF128(false, outExp, frac.Hi, frac.Lo)
}

// RemF128 computes the IEEE remainder of a/b: a-n*b for n the integer
// nearest a/b, ties to even.
func RemF128(st *fstate.State, np nanpolicy.Policy, a, b fbits.F128) fbits.F128 {
	aIsNaN, bIsNaN := fbits.IsNaNF128(a), fbits.IsNaNF128(b)
	if aIsNaN || bIsNaN {
		return nanResultF128(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF128(a)
	if fbits.IsInfF128(a) || fbits.IsZeroF128(b) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultF128()
	}
	if fbits.IsZeroF128(a) {
		return fbits.SignedZeroF128(signA)
	}
	if fbits.IsInfF128(b) {
		return a
	}

	expA, sigA := unpackFiniteWide(round.F128Params, fbits.ExpF128(a), fbits.FracHiF128(a), a.Lo)
	expB, sigB := unpackFiniteWide(round.F128Params, fbits.ExpF128(b), fbits.FracHiF128(b), b.Lo)

	resultSign, exp, sig := remMagWide(round.F128Params, expA, sigA, expB, sigB, signA)
	if sig.IsZero() {
		return fbits.SignedZeroF128(resultSign)
	}
	sign, rexp, frac := round.NormRoundPackWide(st, round.F128Params, resultSign, exp, sig)
	return fbits.PackF128(sign, rexp, frac.Hi, frac.Lo)
}

// RoundToIntegralF128 rounds a to the nearest integral value per st's
// rounding mode, raising inexact when exact is set and bits were dropped.
func RoundToIntegralF128(st *fstate.State, np nanpolicy.Policy, a fbits.F128, exact bool) fbits.F128 {
	if fbits.IsNaNF128(a) {
		return nanResultF128(st, np, true, a, false, fbits.F128{})
	}
	frac := xint.U128{Hi: fbits.FracHiF128(a), Lo: a.Lo}
	sign, exp, rfrac := round.RoundToIntegralWide(st, round.F128Params, fbits.SignF128(a), fbits.ExpF128(a), frac, exact)
	return fbits.PackF128(sign, exp, rfrac.Hi, rfrac.Lo)
}

func nanResultF128(st *fstate.State, np nanpolicy.Policy, aIsNaN bool, a fbits.F128, bIsNaN bool, b fbits.F128) fbits.F128 {
	if nanpolicy.AnyIsSignalingF128(aIsNaN, a, bIsNaN, b) {
		st.Raise(fstate.FlagInvalid)
	}
	return np.PropagateF128(aIsNaN, a, bIsNaN, b)
}

// EqF128 reports whether a==b.
func EqF128(st *fstate.State, a, b fbits.F128) bool {
	aIsNaN, bIsNaN := fbits.IsNaNF128(a), fbits.IsNaNF128(b)
	if aIsNaN || bIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF128(a)) || (bIsNaN && fbits.IsSignalingNaNF128(b)) {
			st.Raise(fstate.FlagInvalid)
		}
		return false
	}
	if fbits.IsZeroF128(a) && fbits.IsZeroF128(b) {
		return true
	}
	return a == b
}

// LtF128 reports whether a<b.
func LtF128(st *fstate.State, a, b fbits.F128) bool {
	less, _, ok := compareF128(st, a, b)
	return ok && less
}

// LeF128 reports whether a<=b.
func LeF128(st *fstate.State, a, b fbits.F128) bool {
	less, equal, ok := compareF128(st, a, b)
	return ok && (less || equal)
}

func compareF128(st *fstate.State, a, b fbits.F128) (less, equal, ok bool) {
	if fbits.IsNaNF128(a) || fbits.IsNaNF128(b) {
		st.Raise(fstate.FlagInvalid)
		return false, false, false
	}
	if fbits.IsZeroF128(a) && fbits.IsZeroF128(b) {
		return false, true, true
	}

	signA, signB := fbits.SignF128(a), fbits.SignF128(b)
	if signA != signB {
		return signA, false, true
	}

	magA := xint.U128{Hi: uint64(fbits.ExpF128(a))<<48 | fbits.FracHiF128(a), Lo: a.Lo}
	magB := xint.U128{Hi: uint64(fbits.ExpF128(b))<<48 | fbits.FracHiF128(b), Lo: b.Lo}
	cmp := magA.Cmp(magB)

	if signA {
		return cmp > 0, cmp == 0, true
	}
	return cmp < 0, cmp == 0, true
}
