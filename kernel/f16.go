package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
)

// AddF16 computes a+b.
func AddF16(st *fstate.State, np nanpolicy.Policy, a, b fbits.F16) fbits.F16 {
	return addOrSubF16(st, np, a, b, false)
}

// SubF16 computes a-b.
func SubF16(st *fstate.State, np nanpolicy.Policy, a, b fbits.F16) fbits.F16 {
	return addOrSubF16(st, np, a, b, true)
}

func addOrSubF16(st *fstate.State, np nanpolicy.Policy, a, b fbits.F16, isSub bool) fbits.F16 {
	aIsNaN, bIsNaN := fbits.IsNaNF16(a), fbits.IsNaNF16(b)
	if aIsNaN || bIsNaN {
		return nanResultF16(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF16(a)
	signB := fbits.SignF16(b) != isSub

	if fbits.IsInfF16(a) || fbits.IsInfF16(b) {
		if fbits.IsInfF16(a) && fbits.IsInfF16(b) && signA != signB {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultNaN16()
		}
		if fbits.IsInfF16(a) {
			return fbits.SignedInfF16(signA)
		}
		return fbits.SignedInfF16(signB)
	}

	if fbits.IsZeroF16(a) && fbits.IsZeroF16(b) {
		if signA == signB {
			return fbits.SignedZeroF16(signA)
		}
		return fbits.SignedZeroF16(st.RoundingMode() == fstate.RoundToNegInf)
	}
	if fbits.IsZeroF16(a) {
		return fbits.PackF16(signB, fbits.ExpF16(b), fbits.FracF16(b))
	}
	if fbits.IsZeroF16(b) {
		return fbits.PackF16(signA, fbits.ExpF16(a), fbits.FracF16(a))
	}

	expA, sigA := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	expB, sigB := unpackFinite(round.F16Params, fbits.ExpF16(b), uint64(fbits.FracF16(b)))

	if signA == signB {
		exp, sig := addMags(expA, sigA, expB, sigB)
		sign, rexp, frac := round.NormRoundPack(st, round.F16Params, signA, exp, sig)
		return fbits.PackF16(sign, rexp, uint16(frac))
	}

	exp, sig, swapped := subMags(expA, sigA, expB, sigB)
	if sig == 0 {
		return fbits.SignedZeroF16(st.RoundingMode() == fstate.RoundToNegInf)
	}
	resultSign := signA
	if swapped {
		resultSign = signB
	}
	sign, rexp, frac := round.NormRoundPack(st, round.F16Params, resultSign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac))
}

// MulF16 computes a*b.
func MulF16(st *fstate.State, np nanpolicy.Policy, a, b fbits.F16) fbits.F16 {
	aIsNaN, bIsNaN := fbits.IsNaNF16(a), fbits.IsNaNF16(b)
	if aIsNaN || bIsNaN {
		return nanResultF16(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF16(a), fbits.SignF16(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF16(a), fbits.IsInfF16(b)
	aZero, bZero := fbits.IsZeroF16(a), fbits.IsZeroF16(b)

	if (aInf && bZero) || (aZero && bInf) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN16()
	}
	if aInf || bInf {
		return fbits.SignedInfF16(resultSign)
	}
	if aZero || bZero {
		return fbits.SignedZeroF16(resultSign)
	}

	expA, sigA := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	expB, sigB := unpackFinite(round.F16Params, fbits.ExpF16(b), uint64(fbits.FracF16(b)))

	exp, sig := mulMags(round.F16Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPack(st, round.F16Params, resultSign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac))
}

// DivF16 computes a/b.
func DivF16(st *fstate.State, np nanpolicy.Policy, a, b fbits.F16) fbits.F16 {
	aIsNaN, bIsNaN := fbits.IsNaNF16(a), fbits.IsNaNF16(b)
	if aIsNaN || bIsNaN {
		return nanResultF16(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF16(a), fbits.SignF16(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF16(a), fbits.IsInfF16(b)
	aZero, bZero := fbits.IsZeroF16(a), fbits.IsZeroF16(b)

	if (aInf && bInf) || (aZero && bZero) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN16()
	}
	if aInf || bZero {
		if bZero && !aInf {
			st.Raise(fstate.FlagDivByZero)
		}
		return fbits.SignedInfF16(resultSign)
	}
	if aZero || bInf {
		return fbits.SignedZeroF16(resultSign)
	}

	expA, sigA := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	expB, sigB := unpackFinite(round.F16Params, fbits.ExpF16(b), uint64(fbits.FracF16(b)))

	exp, sig := divMags(round.F16Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPack(st, round.F16Params, resultSign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac))
}

// SqrtF16 computes the square root of a.
func SqrtF16(st *fstate.State, np nanpolicy.Policy, a fbits.F16) fbits.F16 {
	if fbits.IsNaNF16(a) {
		return nanResultF16(st, np, true, a, false, fbits.F16(0))
	}

	sign := fbits.SignF16(a)
	if fbits.IsZeroF16(a) {
		return fbits.SignedZeroF16(sign)
	}
	if sign {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN16()
	}
	if fbits.IsInfF16(a) {
		return fbits.SignedInfF16(false)
	}

	exp, sig := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	rexp, rsig := sqrtMag(round.F16Params, exp, sig)
	_, outExp, frac := round.NormRoundPack(st, round.F16Params, false, rexp, rsig)
	return fbits.PackF16(false, outExp, uint16(frac))
}

// RemF16 computes the IEEE remainder of a/b: a-n*b for n the integer
// nearest a/b, ties to even.
func RemF16(st *fstate.State, np nanpolicy.Policy, a, b fbits.F16) fbits.F16 {
	aIsNaN, bIsNaN := fbits.IsNaNF16(a), fbits.IsNaNF16(b)
	if aIsNaN || bIsNaN {
		return nanResultF16(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF16(a)
	if fbits.IsInfF16(a) || fbits.IsZeroF16(b) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN16()
	}
	if fbits.IsZeroF16(a) {
		return fbits.SignedZeroF16(signA)
	}
	if fbits.IsInfF16(b) {
		return a
	}

	expA, sigA := unpackFinite(round.F16Params, fbits.ExpF16(a), uint64(fbits.FracF16(a)))
	expB, sigB := unpackFinite(round.F16Params, fbits.ExpF16(b), uint64(fbits.FracF16(b)))

	resultSign, exp, sig := remMag(round.F16Params, expA, sigA, expB, sigB, signA)
	if sig == 0 {
		return fbits.SignedZeroF16(resultSign)
	}
	sign, rexp, frac := round.NormRoundPack(st, round.F16Params, resultSign, exp, sig)
	return fbits.PackF16(sign, rexp, uint16(frac))
}

// RoundToIntegralF16 rounds a to the nearest integral value per st's
// rounding mode, raising inexact when exact is set and bits were dropped.
func RoundToIntegralF16(st *fstate.State, np nanpolicy.Policy, a fbits.F16, exact bool) fbits.F16 {
	if fbits.IsNaNF16(a) {
		return nanResultF16(st, np, true, a, false, fbits.F16(0))
	}
	sign, exp, frac := round.RoundToIntegralSmall(st, round.F16Params, fbits.SignF16(a), fbits.ExpF16(a), uint64(fbits.FracF16(a)), exact)
	return fbits.PackF16(sign, exp, uint16(frac))
}

func nanResultF16(st *fstate.State, np nanpolicy.Policy, aIsNaN bool, a fbits.F16, bIsNaN bool, b fbits.F16) fbits.F16 {
	if nanpolicy.AnyIsSignaling16(aIsNaN, a, bIsNaN, b) {
		st.Raise(fstate.FlagInvalid)
	}
	return np.PropagateF16(aIsNaN, a, bIsNaN, b)
}

// EqF16 reports whether a==b.
func EqF16(st *fstate.State, a, b fbits.F16) bool {
	aIsNaN, bIsNaN := fbits.IsNaNF16(a), fbits.IsNaNF16(b)
	if aIsNaN || bIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF16(a)) || (bIsNaN && fbits.IsSignalingNaNF16(b)) {
			st.Raise(fstate.FlagInvalid)
		}
		return false
	}
	if fbits.IsZeroF16(a) && fbits.IsZeroF16(b) {
		return true
	}
	return a == b
}

// LtF16 reports whether a<b.
func LtF16(st *fstate.State, a, b fbits.F16) bool {
	less, _, ok := compareF16(st, a, b)
	return ok && less
}

// LeF16 reports whether a<=b.
func LeF16(st *fstate.State, a, b fbits.F16) bool {
	less, equal, ok := compareF16(st, a, b)
	return ok && (less || equal)
}

func compareF16(st *fstate.State, a, b fbits.F16) (less, equal, ok bool) {
	if fbits.IsNaNF16(a) || fbits.IsNaNF16(b) {
		st.Raise(fstate.FlagInvalid)
		return false, false, false
	}
	if fbits.IsZeroF16(a) && fbits.IsZeroF16(b) {
		return false, true, true
	}

	signA, signB := fbits.SignF16(a), fbits.SignF16(b)
	if signA != signB {
		return signA, false, true
	}

	if signA {
		return a > b, a == b, true
	}
	return a < b, a == b, true
}
