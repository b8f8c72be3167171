package kernel

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/round"
)

// AddExtF80 computes a+b.
func AddExtF80(st *fstate.State, np nanpolicy.Policy, a, b fbits.ExtF80) fbits.ExtF80 {
	return addOrSubExtF80(st, np, a, b, false)
}

// SubExtF80 computes a-b.
func SubExtF80(st *fstate.State, np nanpolicy.Policy, a, b fbits.ExtF80) fbits.ExtF80 {
	return addOrSubExtF80(st, np, a, b, true)
}

func addOrSubExtF80(st *fstate.State, np nanpolicy.Policy, a, b fbits.ExtF80, isSub bool) fbits.ExtF80 {
	aIsNaN, bIsNaN := fbits.IsNaNExtF80(a), fbits.IsNaNExtF80(b)
	if aIsNaN || bIsNaN {
		return nanResultExtF80(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignExtF80(a)
	signB := fbits.SignExtF80(b) != isSub

	if fbits.IsInfExtF80(a) || fbits.IsInfExtF80(b) {
		if fbits.IsInfExtF80(a) && fbits.IsInfExtF80(b) && signA != signB {
			st.Raise(fstate.FlagInvalid)
			return np.DefaultExtF80()
		}
		if fbits.IsInfExtF80(a) {
			return fbits.SignedInfExtF80(signA)
		}
		return fbits.SignedInfExtF80(signB)
	}

	if fbits.IsZeroExtF80(a) && fbits.IsZeroExtF80(b) {
		if signA == signB {
			return fbits.SignedZeroExtF80(signA)
		}
		return fbits.SignedZeroExtF80(st.RoundingMode() == fstate.RoundToNegInf)
	}
	if fbits.IsZeroExtF80(a) {
		return fbits.PackExtF80(signB, fbits.ExpExtF80(b), b.Sig)
	}
	if fbits.IsZeroExtF80(b) {
		return fbits.PackExtF80(signA, fbits.ExpExtF80(a), a.Sig)
	}

	expA, sigA := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	expB, sigB := unpackFiniteExtF80(fbits.ExpExtF80(b), b.Sig)

	if signA == signB {
		exp, hi, lo := addMagsExtF80(expA, sigA, expB, sigB)
		sign, rexp, rsig := round.NormRoundPackExtF80(st, signA, exp, hi, lo)
		return fbits.PackExtF80(sign, rexp, rsig)
	}

	exp, hi, lo, swapped := subMagsExtF80(expA, sigA, expB, sigB)
	if hi == 0 && lo == 0 {
		return fbits.SignedZeroExtF80(st.RoundingMode() == fstate.RoundToNegInf)
	}
	resultSign := signA
	if swapped {
		resultSign = signB
	}
	sign, rexp, rsig := round.NormRoundPackExtF80(st, resultSign, exp, hi, lo)
	return fbits.PackExtF80(sign, rexp, rsig)
}

// MulExtF80 computes a*b.
func MulExtF80(st *fstate.State, np nanpolicy.Policy, a, b fbits.ExtF80) fbits.ExtF80 {
	aIsNaN, bIsNaN := fbits.IsNaNExtF80(a), fbits.IsNaNExtF80(b)
	if aIsNaN || bIsNaN {
		return nanResultExtF80(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignExtF80(a), fbits.SignExtF80(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfExtF80(a), fbits.IsInfExtF80(b)
	aZero, bZero := fbits.IsZeroExtF80(a), fbits.IsZeroExtF80(b)

	if (aInf && bZero) || (aZero && bInf) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultExtF80()
	}
	if aInf || bInf {
		return fbits.SignedInfExtF80(resultSign)
	}
	if aZero || bZero {
		return fbits.SignedZeroExtF80(resultSign)
	}

	expA, sigA := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	expB, sigB := unpackFiniteExtF80(fbits.ExpExtF80(b), b.Sig)

	exp, hi, lo := mulMagsExtF80(expA, sigA, expB, sigB)
	sign, rexp, rsig := round.NormRoundPackExtF80(st, resultSign, exp, hi, lo)
	return fbits.PackExtF80(sign, rexp, rsig)
}

// DivExtF80 computes a/b.
func DivExtF80(st *fstate.State, np nanpolicy.Policy, a, b fbits.ExtF80) fbits.ExtF80 {
	aIsNaN, bIsNaN := fbits.IsNaNExtF80(a), fbits.IsNaNExtF80(b)
	if aIsNaN || bIsNaN {
		return nanResultExtF80(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA, signB := fbits.SignExtF80(a), fbits.SignExtF80(b)
	resultSign := signA != signB

	aInf, bInf := fbits.IsInfExtF80(a), fbits.IsInfExtF80(b)
	aZero, bZero := fbits.IsZeroExtF80(a), fbits.IsZeroExtF80(b)

	if (aInf && bInf) || (aZero && bZero) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultExtF80()
	}
	if aInf || bZero {
		if bZero && !aInf {
			st.Raise(fstate.FlagDivByZero)
		}
		return fbits.SignedInfExtF80(resultSign)
	}
	if aZero || bInf {
		return fbits.SignedZeroExtF80(resultSign)
	}

	expA, sigA := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	expB, sigB := unpackFiniteExtF80(fbits.ExpExtF80(b), b.Sig)

	exp, hi, lo := divMagsExtF80(expA, sigA, expB, sigB)
	sign, rexp, rsig := round.NormRoundPackExtF80(st, resultSign, exp, hi, lo)
	return fbits.PackExtF80(sign, rexp, rsig)
}

// SqrtExtF80 computes the square root of a.
func SqrtExtF80(st *fstate.State, np nanpolicy.Policy, a fbits.ExtF80) fbits.ExtF80 {
	if fbits.IsNaNExtF80(a) {
		return nanResultExtF80(st, np, true, a, false, fbits.ExtF80{})
	}

	sign := fbits.SignExtF80(a)
	if fbits.IsZeroExtF80(a) {
		return fbits.SignedZeroExtF80(sign)
	}
	if sign {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultExtF80()
	}
	if fbits.IsInfExtF80(a) {
		return fbits.SignedInfExtF80(false)
	}

	exp, sig := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	rexp, hi, lo := sqrtMagExtF80(exp, sig)
	_, outExp, rsig := round.NormRoundPackExtF80(st, false, rexp, hi, lo)
	return fbits.PackExtF80(false, outExp, rsig)
}

// RemExtF80 computes the IEEE remainder of a/b: a-n*b for n the integer
// nearest a/b, ties to even.
func RemExtF80(st *fstate.State, np nanpolicy.Policy, a, b fbits.ExtF80) fbits.ExtF80 {
	aIsNaN, bIsNaN := fbits.IsNaNExtF80(a), fbits.IsNaNExtF80(b)
	if aIsNaN || bIsNaN {
		return nanResultExtF80(st, np, aIsNaN, a, bIsNaN, b)
	}

	signA := fbits.SignExtF80(a)
	if fbits.IsInfExtF80(a) || fbits.IsZeroExtF80(b) {
		st.Raise(fstate.FlagInvalid)
		return np.DefaultExtF80()
	}
	if fbits.IsZeroExtF80(a) {
		return fbits.SignedZeroExtF80(signA)
	}
	if fbits.IsInfExtF80(b) {
		return a
	}

	expA, sigA := unpackFiniteExtF80(fbits.ExpExtF80(a), a.Sig)
	expB, sigB := unpackFiniteExtF80(fbits.ExpExtF80(b), b.Sig)

	resultSign, exp, sig0, sig1 := remMagExtF80(expA, sigA, expB, sigB, signA)
	if sig0 == 0 && sig1 == 0 {
		return fbits.SignedZeroExtF80(resultSign)
	}
	sign, rexp, rsig := round.NormRoundPackExtF80(st, resultSign, exp, sig0, sig1)
	return fbits.PackExtF80(sign, rexp, rsig)
}

// RoundToIntegralExtF80 rounds a to the nearest integral value per st's
// rounding mode, raising inexact when exact is set and bits were dropped.
func RoundToIntegralExtF80(st *fstate.State, np nanpolicy.Policy, a fbits.ExtF80, exact bool) fbits.ExtF80 {
	if fbits.IsNaNExtF80(a) {
		return nanResultExtF80(st, np, true, a, false, fbits.ExtF80{})
	}
	sign, exp, sig := round.RoundToIntegralExtF80(st, fbits.SignExtF80(a), fbits.ExpExtF80(a), a.Sig, exact)
	return fbits.PackExtF80(sign, exp, sig)
}

func nanResultExtF80(st *fstate.State, np nanpolicy.Policy, aIsNaN bool, a fbits.ExtF80, bIsNaN bool, b fbits.ExtF80) fbits.ExtF80 {
	if nanpolicy.AnyIsSignalingExtF80(aIsNaN, a, bIsNaN, b) {
		st.Raise(fstate.FlagInvalid)
	}
	return np.PropagateExtF80(aIsNaN, a, bIsNaN, b)
}

// EqExtF80 reports whether a==b.
func EqExtF80(st *fstate.State, a, b fbits.ExtF80) bool {
	aIsNaN, bIsNaN := fbits.IsNaNExtF80(a), fbits.IsNaNExtF80(b)
	if aIsNaN || bIsNaN {
		if (aIsNaN && fbits.IsSignalingNaNExtF80(a)) || (bIsNaN && fbits.IsSignalingNaNExtF80(b)) {
			st.Raise(fstate.FlagInvalid)
		}
		return false
	}
	if fbits.IsZeroExtF80(a) && fbits.IsZeroExtF80(b) {
		return true
	}
	return a == b
}

// LtExtF80 reports whether a<b.
func LtExtF80(st *fstate.State, a, b fbits.ExtF80) bool {
	less, _, ok := compareExtF80(st, a, b)
	return ok && less
}

// LeExtF80 reports whether a<=b.
func LeExtF80(st *fstate.State, a, b fbits.ExtF80) bool {
	less, equal, ok := compareExtF80(st, a, b)
	return ok && (less || equal)
}

func compareExtF80(st *fstate.State, a, b fbits.ExtF80) (less, equal, ok bool) {
	if fbits.IsNaNExtF80(a) || fbits.IsNaNExtF80(b) {
		st.Raise(fstate.FlagInvalid)
		return false, false, false
	}
	if fbits.IsZeroExtF80(a) && fbits.IsZeroExtF80(b) {
		return false, true, true
	}

	signA, signB := fbits.SignExtF80(a), fbits.SignExtF80(b)
	if signA != signB {
		return signA, false, true
	}

	magLess := fbits.ExpExtF80(a) < fbits.ExpExtF80(b) ||
		(fbits.ExpExtF80(a) == fbits.ExpExtF80(b) && a.Sig < b.Sig)
	magEqual := fbits.ExpExtF80(a) == fbits.ExpExtF80(b) && a.Sig == b.Sig

	if signA {
		return !magLess && !magEqual, magEqual, true
	}
	return magLess, magEqual, true
}
