package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
)

// AddF64 computes a+b: same-sign operands (after accounting for b's own
// sign) add magnitudes, opposite signs subtract them.
func AddF64(st *fstate.State, np nanpolicy.Policy, a, b fbits.F64) fbits.F64 {
	return addOrSubF64(st, np, a, b, false)
}

// SubF64 computes a-b by flipping b's sign and routing through the same
// addMags/subMags split as AddF64.
func SubF64(st *fstate.State, np nanpolicy.Policy, a, b fbits.F64) fbits.F64 {
	return addOrSubF64(st, np, a, b, true)
}

func addOrSubF64(st *fstate.State, np nanpolicy.Policy, a, b fbits.F64, isSub bool) fbits.F64 {
	aIsNaN, bIsNaN := fbits.IsNaNF64(a), fbits.IsNaNF64(b)
	if aIsNaN || bIsNaN {
		return nanResultF64(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF64(a)
	signB := fbits.SignF64(b) != isSub

	if fbits.IsInfF64(a) || fbits.IsInfF64(b) {
		if fbits.IsInfF64(a) && fbits.IsInfF64(b) && signA != signB {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultNaN64()
		}
		if fbits.IsInfF64(a) {
			return fbits.SignedInfF64(signA)
		}
		return fbits.SignedInfF64(signB)
	}

	if fbits.IsZeroF64(a) && fbits.IsZeroF64(b) {
		if signA == signB {
			return fbits.SignedZeroF64(signA)
		}
		return fbits.SignedZeroF64(st.RoundingMode() == fstate.RoundToNegInf)
	}
	if fbits.IsZeroF64(a) {
		return fbits.PackF64(signB, fbits.ExpF64(b), fbits.FracF64(b))
	}
	if fbits.IsZeroF64(b) {
		return fbits.PackF64(signA, fbits.ExpF64(a), fbits.FracF64(a))
	}

	expA, sigA := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	expB, sigB := unpackFinite(round.F64Params, fbits.ExpF64(b), fbits.FracF64(b))

	if signA == signB {
		exp, sig := addMags(expA, sigA, expB, sigB)
		sign, rexp, frac := round.NormRoundPack(st, round.F64Params, signA, exp, sig)
		return fbits.PackF64(sign, rexp, frac)
	}

	exp, sig, swapped := subMags(expA, sigA, expB, sigB)
	if sig == 0 {
		return fbits.SignedZeroF64(st.RoundingMode() == fstate.RoundToNegInf)
	}
	resultSign := signA
	if swapped {
		resultSign = signB
	}
	sign, rexp, frac := round.NormRoundPack(st, round.F64Params, resultSign, exp, sig)
	return fbits.PackF64(sign, rexp, frac)
}

// MulF64 computes a*b.
func MulF64(st *fstate.State, np nanpolicy.Policy, a, b fbits.F64) fbits.F64 {
	aIsNaN, bIsNaN := fbits.IsNaNF64(a), fbits.IsNaNF64(b)
	if aIsNaN || bIsNaN {
		return nanResultF64(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF64(a), fbits.SignF64(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF64(a), fbits.IsInfF64(b)
	aZero, bZero := fbits.IsZeroF64(a), fbits.IsZeroF64(b)

	if (aInf && bZero) || (aZero && bInf) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN64()
	}
	if aInf || bInf {
		return fbits.SignedInfF64(resultSign)
	}
	if aZero || bZero {
		return fbits.SignedZeroF64(resultSign)
	}

	expA, sigA := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	expB, sigB := unpackFinite(round.F64Params, fbits.ExpF64(b), fbits.FracF64(b))

	exp, sig := mulMags(round.F64Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPack(st, round.F64Params, resultSign, exp, sig)
	return fbits.PackF64(sign, rexp, frac)
}

// DivF64 computes a/b.
func DivF64(st *fstate.State, np nanpolicy.Policy, a, b fbits.F64) fbits.F64 {
	aIsNaN, bIsNaN := fbits.IsNaNF64(a), fbits.IsNaNF64(b)
	if aIsNaN || bIsNaN {
		return nanResultF64(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignF64(a), fbits.SignF64(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfF64(a), fbits.IsInfF64(b)
	aZero, bZero := fbits.IsZeroF64(a), fbits.IsZeroF64(b)

	if aInf && bInf || (aZero && bZero) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN64()
	}
	if aInf || bZero {
		if bZero && !aInf {
			st.Raise(fstate.FlagDivByZero)
		}
		return fbits.SignedInfF64(resultSign)
	}
	if aZero || bInf {
		return fbits.SignedZeroF64(resultSign)
	}

	expA, sigA := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	expB, sigB := unpackFinite(round.F64Params, fbits.ExpF64(b), fbits.FracF64(b))

	exp, sig := divMags(round.F64Params, expA, sigA, expB, sigB)
	sign, rexp, frac := round.NormRoundPack(st, round.F64Params, resultSign, exp, sig)
	return fbits.PackF64(sign, rexp, frac)
}

// SqrtF64 computes the square root of a.
func SqrtF64(st *fstate.State, np nanpolicy.Policy, a fbits.F64) fbits.F64 {
	if fbits.IsNaNF64(a) {
		return nanResultF64(st, np, true, a, false, fbits.F64(0))
	}

	sign := fbits.SignF64(a)
	if fbits.IsZeroF64(a) {
		return fbits.SignedZeroF64(sign)
	}
	if sign {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN64()
	}
	if fbits.IsInfF64(a) {
		return fbits.SignedInfF64(false)
	}

	exp, sig := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	rexp, rsig := sqrtMag(round.F64Params, exp, sig)
	_, outExp, frac := round.NormRoundPack(st, round.F64Params, false, rexp, rsig)
	return fbits.PackF64(false, outExp, frac)
}

// RemF64 computes the IEEE remainder of a/b: a-n*b for n the integer
// nearest a/b, ties to even.
func RemF64(st *fstate.State, np nanpolicy.Policy, a, b fbits.F64) fbits.F64 {
	aIsNaN, bIsNaN := fbits.IsNaNF64(a), fbits.IsNaNF64(b)
	if aIsNaN || bIsNaN {
		return nanResultF64(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignF64(a)
	if fbits.IsInfF64(a) || fbits.IsZeroF64(b) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultNaN64()
	}
	if fbits.IsZeroF64(a) {
		return fbits.SignedZeroF64(signA)
	}
	if fbits.IsInfF64(b) {
		return a
	}

	expA, sigA := unpackFinite(round.F64Params, fbits.ExpF64(a), fbits.FracF64(a))
	expB, sigB := unpackFinite(round.F64Params, fbits.ExpF64(b), fbits.FracF64(b))

	resultSign, exp, sig := remMag(round.F64Params, expA, sigA, expB, sigB, signA)
	if sig == 0 {
		return fbits.SignedZeroF64(resultSign)
	}
	sign, rexp, frac := round.NormRoundPack(st, round.F64Params, resultSign, exp, sig)
	return fbits.PackF64(sign, rexp, frac)
}

// RoundToIntegralF64 rounds a to the nearest integral value per st's
// rounding mode, raising inexact when exact is set and bits were dropped.
func RoundToIntegralF64(st *fstate.State, np nanpolicy.Policy, a fbits.F64, exact bool) fbits.F64 {
	if fbits.IsNaNF64(a) {
		return nanResultF64(st, np, true, a, false, fbits.F64(0))
	}
	sign, exp, frac := round.RoundToIntegralSmall(st, round.F64Params, fbits.SignF64(a), fbits.ExpF64(a), fbits.FracF64(a), exact)
	return fbits.PackF64(sign, exp, frac)
}

func nanResultF64(st *fstate.State, np nanpolicy.Policy, aIsNaN bool, a fbits.F64, bIsNaN bool, b fbits.F64) fbits.F64 {
	if nanpolicy.AnyIsSignaling64(aIsNaN, a, bIsNaN, b) {
		st.Raise(fstate.FlagInvalid)
	}
	return np.PropagateF64(aIsNaN, a, bIsNaN, b)
}

// EqF64 reports whether a==b, using the quiet-compare predicate: a
// signaling NaN operand raises invalid, a quiet NaN operand does not, and
// either makes the comparison false.
func EqF64(st *fstate.State, a, b fbits.F64) bool {
	aIsNaN, bIsNaN := fbits.IsNaNF64(a), fbits.IsNaNF64(b)
	if aIsNaN || bIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNF64(a)) || (bIsNaN && fbits.IsSignalingNaNF64(b)) {
			st.Raise(fstate.FlagInvalid)
		}
		return false
	}
	if fbits.IsZeroF64(a) && fbits.IsZeroF64(b) {
		return true
	}
	return a == b
}

// LtF64 reports whether a<b, raising invalid for any NaN operand
// (signaling or quiet), using the signaling-compare predicate.
func LtF64(st *fstate.State, a, b fbits.F64) bool {
	less, _, ok := compareF64(st, a, b)
	return ok && less
}

// LeF64 reports whether a<=b, raising invalid for any NaN operand.
func LeF64(st *fstate.State, a, b fbits.F64) bool {
	less, equal, ok := compareF64(st, a, b)
	return ok && (less || equal)
}

func compareF64(st *fstate.State, a, b fbits.F64) (less, equal, ok bool) {
	if fbits.IsNaNF64(a) || fbits.IsNaNF64(b) {
		st.Raise(fstate.FlagInvalid)
		return false, false, false
	}
	if fbits.IsZeroF64(a) && fbits.IsZeroF64(b) {
		return false, true, true
	}

	signA, signB := fbits.SignF64(a), fbits.SignF64(b)
	if signA != signB {
		return signA, false, true
	}

	if signA {
		return a > b, a == b, true
	}
	return a < b, a == b, true
}
