package fbits_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
)

var _ = Describe("F16", func() {
	It("round-trips pack/unpack", func() {
		a := fbits.PackF16(true, 17, 0x123)
		Expect(fbits.SignF16(a)).To(BeTrue())
		Expect(fbits.ExpF16(a)).To(Equal(int32(17)))
		Expect(fbits.FracF16(a)).To(Equal(uint16(0x123)))
	})

	It("distinguishes quiet from signaling NaN", func() {
		qnan := fbits.PackF16(false, 31, 1<<9)
		snan := fbits.PackF16(false, 31, 1)

		Expect(fbits.IsNaNF16(qnan)).To(BeTrue())
		Expect(fbits.IsSignalingNaNF16(qnan)).To(BeFalse())
		Expect(fbits.IsSignalingNaNF16(snan)).To(BeTrue())
	})
})

var _ = Describe("F32", func() {
	It("round-trips pack/unpack", func() {
		a := fbits.PackF32(false, 200, 0x654321)
		Expect(fbits.ExpF32(a)).To(Equal(int32(200)))
		Expect(fbits.FracF32(a)).To(Equal(uint32(0x654321)))
	})

	It("classifies the largest finite F32 as neither infinite nor NaN", func() {
		a := fbits.F32(0x7F7FFFFF) // largest finite F32
		Expect(fbits.IsInfF32(a)).To(BeFalse())
		Expect(fbits.IsNaNF32(a)).To(BeFalse())
	})
})

var _ = Describe("ExtF80", func() {
	It("round-trips pack/unpack including the explicit integer bit", func() {
		a := fbits.PackExtF80(true, 16383, 0x8000000000000000)
		Expect(fbits.SignExtF80(a)).To(BeTrue())
		Expect(fbits.ExpExtF80(a)).To(Equal(int32(16383)))
		Expect(a.Sig).To(Equal(uint64(0x8000000000000000)))
	})

	It("classifies infinity as explicit-bit-set, zero-fraction", func() {
		inf := fbits.SignedInfExtF80(false)
		Expect(fbits.IsInfExtF80(inf)).To(BeTrue())
		Expect(fbits.IsNaNExtF80(inf)).To(BeFalse())
	})

	It("ignores the explicit integer bit when testing for NaN", func() {
		// Per source isNaNExtF80UI: only the low 63 fraction bits matter.
		unnormalNaN := fbits.PackExtF80(false, 32767, 0x0000000000000001)
		Expect(fbits.IsNaNExtF80(unnormalNaN)).To(BeTrue())
	})
})

var _ = Describe("F128", func() {
	It("round-trips pack/unpack", func() {
		a := fbits.PackF128(true, 12345, 0xABCD, 0xEF0123456789ABCD)
		Expect(fbits.SignF128(a)).To(BeTrue())
		Expect(fbits.ExpF128(a)).To(Equal(int32(12345)))
		Expect(fbits.FracHiF128(a)).To(Equal(uint64(0xABCD)))
		Expect(a.Lo).To(Equal(uint64(0xEF0123456789ABCD)))
	})

	It("classifies zero, infinity, and NaN", func() {
		Expect(fbits.IsZeroF128(fbits.SignedZeroF128(false))).To(BeTrue())
		Expect(fbits.IsInfF128(fbits.SignedInfF128(true))).To(BeTrue())

		nan := fbits.PackF128(false, 32767, 1<<47, 0)
		Expect(fbits.IsNaNF128(nan)).To(BeTrue())
		Expect(fbits.IsSignalingNaNF128(nan)).To(BeFalse())
	})
})
