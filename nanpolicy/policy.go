// Package nanpolicy implements pluggable NaN-propagation machinery:
// default-NaN bit patterns, the rule for propagating a NaN operand (or
// choosing between two) into a result, and sNaN-to-qNaN quieting — one
// implementation per target architecture, chosen once at construction and
// threaded through every kernel call via the Policy interface, so the
// choice of architecture convention never leaks into kernel code.
package nanpolicy

import "github.com/sarchlab/softfloat/fbits"

// Common is the policy-neutral NaN carrier: a sign plus 128 bits of
// payload, used only to transfer a NaN between formats. Building
// one from a format's bit pattern is a pure layout operation (the
// CommonFromXxx functions below); only turning one back into a concrete
// format's NaN is policy-dependent, since a policy may discard the payload
// in favor of its own canonical default.
type Common struct {
	Sign       bool
	PayloadHi  uint64
	PayloadLo  uint64
}

// CommonFromF16 left-justifies a's 10-bit fraction into the 128-bit carrier.
func CommonFromF16(a fbits.F16) Common {
	return Common{Sign: fbits.SignF16(a), PayloadHi: uint64(fbits.FracF16(a)) << 54}
}

// CommonFromF32 left-justifies a's 23-bit fraction into the 128-bit carrier.
func CommonFromF32(a fbits.F32) Common {
	return Common{Sign: fbits.SignF32(a), PayloadHi: uint64(fbits.FracF32(a)) << 41}
}

// CommonFromF64 left-justifies a's 52-bit fraction into the 128-bit carrier.
func CommonFromF64(a fbits.F64) Common {
	return Common{Sign: fbits.SignF64(a), PayloadHi: fbits.FracF64(a) << 12}
}

// CommonFromExtF80 left-justifies a's 63-bit trailing fraction (the 64-bit
// significand minus its explicit integer bit) into the 128-bit carrier.
func CommonFromExtF80(a fbits.ExtF80) Common {
	frac := a.Sig &^ (uint64(1) << 63)
	return Common{Sign: fbits.SignExtF80(a), PayloadHi: frac << 1}
}

// CommonFromF128 left-justifies a's full 112-bit fraction (48 bits held in
// Hi, 64 in Lo) into the 128-bit carrier by shifting the combined value
// left by 16 bits, the same left-justification convention the narrower
// formats use above.
func CommonFromF128(a fbits.F128) Common {
	fracHi := fbits.FracHiF128(a)
	return Common{
		Sign:      fbits.SignF128(a),
		PayloadHi: fracHi<<16 | a.Lo>>48,
		PayloadLo: a.Lo << 16,
	}
}

// Policy is the interface every NaN-propagation policy implements. Each
// Propagate method operates on a format's raw bit pattern; aIsNaN/bIsNaN
// communicate the caller's already-computed classification so a policy
// never has to reclassify.
type Policy interface {
	// Name identifies the policy for diagnostics and tests.
	Name() string

	DefaultNaN16() fbits.F16
	DefaultNaN32() fbits.F32
	DefaultNaN64() fbits.F64
	DefaultExtF80() fbits.ExtF80
	DefaultF128() fbits.F128

	// PropagateF16/32/64/ExtF80/F128 computes the NaN result of an
	// operation where at least one of a, b is NaN. The
	// caller is responsible for raising invalid beforehand when
	// AnyIsSignaling* reports true; Propagate itself never raises flags.
	PropagateF16(aIsNaN bool, a fbits.F16, bIsNaN bool, b fbits.F16) fbits.F16
	PropagateF32(aIsNaN bool, a fbits.F32, bIsNaN bool, b fbits.F32) fbits.F32
	PropagateF64(aIsNaN bool, a fbits.F64, bIsNaN bool, b fbits.F64) fbits.F64
	PropagateExtF80(aIsNaN bool, a fbits.ExtF80, bIsNaN bool, b fbits.ExtF80) fbits.ExtF80
	PropagateF128(aIsNaN bool, a fbits.F128, bIsNaN bool, b fbits.F128) fbits.F128

	// NaNFromCommonXxx converts the policy-neutral carrier into this
	// policy's representation of a NaN in the target format. x86
	// preserves payload bits (shifted to fit); RISC-V always returns the
	// canonical default, discarding the carrier entirely.
	NaNFromCommon16(c Common) fbits.F16
	NaNFromCommon32(c Common) fbits.F32
	NaNFromCommon64(c Common) fbits.F64
	NaNFromCommonExtF80(c Common) fbits.ExtF80
	NaNFromCommonF128(c Common) fbits.F128
}

// AnyIsSignaling16 reports whether the invalid exception is due because
// one of two known-NaN operands is a signaling NaN.
func AnyIsSignaling16(aIsNaN bool, a fbits.F16, bIsNaN bool, b fbits.F16) bool {
	return (aIsNaN && fbits.IsSignalingNaNF16(a)) || (bIsNaN && fbits.IsSignalingNaNF16(b))
}

// AnyIsSignaling32 is the F32 form of AnyIsSignaling16.
func AnyIsSignaling32(aIsNaN bool, a fbits.F32, bIsNaN bool, b fbits.F32) bool {
	return (aIsNaN && fbits.IsSignalingNaNF32(a)) || (bIsNaN && fbits.IsSignalingNaNF32(b))
}

// AnyIsSignaling64 is the F64 form of AnyIsSignaling16.
func AnyIsSignaling64(aIsNaN bool, a fbits.F64, bIsNaN bool, b fbits.F64) bool {
	return (aIsNaN && fbits.IsSignalingNaNF64(a)) || (bIsNaN && fbits.IsSignalingNaNF64(b))
}

// AnyIsSignalingExtF80 is the extF80 form of AnyIsSignaling16.
func AnyIsSignalingExtF80(aIsNaN bool, a fbits.ExtF80, bIsNaN bool, b fbits.ExtF80) bool {
	return (aIsNaN && fbits.IsSignalingNaNExtF80(a)) || (bIsNaN && fbits.IsSignalingNaNExtF80(b))
}

// AnyIsSignalingF128 is the F128 form of AnyIsSignaling16.
func AnyIsSignalingF128(aIsNaN bool, a fbits.F128, bIsNaN bool, b fbits.F128) bool {
	return (aIsNaN && fbits.IsSignalingNaNF128(a)) || (bIsNaN && fbits.IsSignalingNaNF128(b))
}
