package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
)

// AddF32 computes a+b.
func AddF32(st *fstate.State, np nanpolicy.Policy, a, b fbits.F32) fbits.F32 {
	return addOrSubF32(st, np, a, b, false)
}

// SubF32 computes a-b.
func SubF32(st *fstate.State, np nanpolicy.Policy, a, b fbits.F32) fbits.F32 {
	return addOrSubF32(st, np, a, b, true)
}

func addOrSubF32(st *fstate.State, np nanpolicy.Policy, a, b fbits.F32, isSub bool) fbits.F32 {
	aIsNaN, bIsNaN := fbits.IsNaNF32(a), fbits.IsNaNF32(b)
	if aIsNaN || bIsNaN {
		return nanResultF32(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF32(a)
	signB := fbits.SignF32(b) != isSub

	if fbits.IsInfF32(a) || fbits.IsInfF32(b) {
		if fbits.IsInfF32(a) && fbits.IsInfF32(b) && signA != signB {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultNaN32()
		}
		if fbits.IsInfF32(a) {
			return fbits.SignedInfF32(signA)
		}
		return fbits.SignedInfF32(signB)
	}

	if fbits.IsZeroF32(a) && fbits.IsZeroF32(b) {
		if signA == signB {
			return fbits.SignedZeroF32(signA)
		}
		return fbits.SignedZeroF32(st.RoundingMode() == fstate.RoundToNegInf)
	}
	if fbits.IsZeroF32(a) {
		return fbits.PackF32(signB, fbits.ExpF32(b), fbits.FracF32(b))
	}
	if fbits.IsZeroF32(b) {
		return fbits.PackF32(signA, fbits.ExpF32(a), fbits.FracF32(a))
	}

	expA, sigA := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	expB, sigB := unpackFinite(round.F32Params, fbits.ExpF32(b), uint64(fbits.FracF32(b)))

	if signA == signB {
		exp, sig := addMags(expA, sigA, expB, sigB)
		sign, rexp, frac := round.NormRoundPack(st, round.F32Params, signA, exp, sig)
		return fbits.PackF32(sign, rexp, uint32(frac))
	}

	exp, sig, swapped := subMags(expA, sigA, expB, sigB)
	if sig == 0 {
		return fbits.SignedZeroF32(st.RoundingMode() == fstate.RoundToNegInf)
	}
	resultSign := signA
	if swapped {
		resultSign = signB
	}
	sign, rexp, frac := round.NormRoundPack(st, round.F32Params, resultSign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac))
}

// MulF32 computes a*b.
func MulF32(st *fstate.State, np nanpolicy.Policy, a, b fbits.F32) fbits.F32 {
	aIsNaN, bIsNaN := fbits.IsNaNF32(a), fbits.IsNaNF32(b)
	if aIsNaN || bIsNaN {
		return nanResultF32(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF32(a), fbits.SignF32(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF32(a), fbits.IsInfF32(b)
	aZero, bZero := fbits.IsZeroF32(a), fbits.IsZeroF32(b)

	if (aInf && bZero) || (aZero && bInf) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN32()
	}
	if aInf || bInf {
		return fbits.SignedInfF32(resultSign)
	}
	if aZero || bZero {
		return fbits.SignedZeroF32(resultSign)
	}

	expA, sigA := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	expB, sigB := unpackFinite(round.F32Params, fbits.ExpF32(b), uint64(fbits.FracF32(b)))

	exp, sig := mulMags(round.F32Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPack(st, round.F32Params, resultSign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac))
}

// DivF32 computes a/b.
func DivF32(st *fstate.State, np nanpolicy.Policy, a, b fbits.F32) fbits.F32 {
	aIsNaN, bIsNaN := fbits.IsNaNF32(a), fbits.IsNaNF32(b)
	if aIsNaN || bIsNaN {
		return nanResultF32(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF32(a), fbits.SignF32(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF32(a), fbits.IsInfF32(b)
	aZero, bZero := fbits.IsZeroF32(a), fbits.IsZeroF32(b)

	if (aInf && bInf) || (aZero && bZero) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN32()
	}
	if aInf || bZero {
		if bZero && !aInf {
			st.Raise(fstate.FlagDivByZero)
		}
		return fbits.SignedInfF32(resultSign)
	}
	if aZero || bInf {
		return fbits.SignedZeroF32(resultSign)
	}

	expA, sigA := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	expB, sigB := unpackFinite(round.F32Params, fbits.ExpF32(b), uint64(fbits.FracF32(b)))

	exp, sig := divMags(round.F32Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPack(st, round.F32Params, resultSign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac))
}

// SqrtF32 computes the square root of a.
func SqrtF32(st *fstate.State, np nanpolicy.Policy, a fbits.F32) fbits.F32 {
	if fbits.IsNaNF32(a) {
		return nanResultF32(st, np, true, a, false, fbits.F32(0))
	}

	sign := fbits.SignF32(a)
	if fbits.IsZeroF32(a) {
		return fbits.SignedZeroF32(sign)
	}
	if sign {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN32()
	}
	if fbits.IsInfF32(a) {
		return fbits.SignedInfF32(false)
	}

	exp, sig := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	rexp, rsig := sqrtMag(round.F32Params, exp, sig)
	_, outExp, frac := round.NormRoundPack(st, round.F32Params, false, rexp, rsig)
	return fbits.PackF32(false, outExp, uint32(frac))
}

// RemF32 computes the IEEE remainder of a/b: a-n*b for n the integer
// nearest a/b, ties to even.
func RemF32(st *fstate.State, np nanpolicy.Policy, a, b fbits.F32) fbits.F32 {
	aIsNaN, bIsNaN := fbits.IsNaNF32(a), fbits.IsNaNF32(b)
	if aIsNaN || bIsNaN {
		return nanResultF32(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF32(a)
	if fbits.IsInfF32(a) || fbits.IsZeroF32(b) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN32()
	}
	if fbits.IsZeroF32(a) {
		return fbits.SignedZeroF32(signA)
	}
	if fbits.IsInfF32(b) {
		return a
	}

	expA, sigA := unpackFinite(round.F32Params, fbits.ExpF32(a), uint64(fbits.FracF32(a)))
	expB, sigB := unpackFinite(round.F32Params, fbits.ExpF32(b), uint64(fbits.FracF32(b)))

	resultSign, exp, sig := remMag(round.F32Params, expA, sigA, expB, sigB, signA)
	if sig == 0 {
		return fbits.SignedZeroF32(resultSign)
	}
	sign, rexp, frac := round.NormRoundPack(st, round.F32Params, resultSign, exp, sig)
	return fbits.PackF32(sign, rexp, uint32(frac))
}

// RoundToIntegralF32 rounds a to the nearest integral value per st's
// rounding mode, raising inexact when exact is set and bits were dropped.
func RoundToIntegralF32(st *fstate.State, np nanpolicy.Policy, a fbits.F32, exact bool) fbits.F32 {
	if fbits.IsNaNF32(a) {
		return nanResultF32(st, np, true, a, false, fbits.F32(0))
	}
	sign, exp, frac := round.RoundToIntegralSmall(st, round.F32Params, fbits.SignF32(a), fbits.ExpF32(a), uint64(fbits.FracF32(a)), exact)
	return fbits.PackF32(sign, exp, uint32(frac))
}

func nanResultF32(st *fstate.State, np nanpolicy.Policy, aIsNaN bool, a fbits.F32, bIsNaN bool, b fbits.F32) fbits.F32 {
	if nanpolicy.AnyIsSignaling32(aIsNaN, a, bIsNaN, b) {
		st.Raise(fstate.FlagInvalid)
	}
	return np.PropagateF32(aIsNaN, a, bIsNaN, b)
}

// EqF32 reports whether a==b.
func EqF32(st *fstate.State, a, b fbits.F32) bool {
	aIsNaN, bIsNaN := fbits.IsNaNF32(a), fbits.IsNaNF32(b)
	if aIsNaN || bIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF32(a)) || (bIsNaN && fbits.IsSignalingNaNF32(b)) {
			st.Raise(fstate.FlagInvalid)
		}
		return false
	}
	if fbits.IsZeroF32(a) && fbits.IsZeroF32(b) {
		return true
	}
	return a == b
}

// LtF32 reports whether a<b.
func LtF32(st *fstate.State, a, b fbits.F32) bool {
	less, _, ok := compareF32(st, a, b)
	return ok && less
}

// LeF32 reports whether a<=b.
func LeF32(st *fstate.State, a, b fbits.F32) bool {
	less, equal, ok := compareF32(st, a, b)
	return ok && (less || equal)
}

func compareF32(st *fstate.State, a, b fbits.F32) (less, equal, ok bool) {
	if fbits.IsNaNF32(a) || fbits.IsNaNF32(b) {
		st.Raise(fstate.FlagInvalid)
		return false, false, false
	}
	if fbits.IsZeroF32(a) && fbits.IsZeroF32(b) {
		return false, true, true
	}

	signA, signB := fbits.SignF32(a), fbits.SignF32(b)
	if signA != signB {
		return signA, false, true
	}

	if signA {
		return a > b, a == b, true
	}
	return a < b, a == b, true
}
