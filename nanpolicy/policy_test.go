package nanpolicy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/nanpolicy"
)

var _ = DescribeTable("each policy's default NaN carries the right sign and is quiet",
	func(policy nanpolicy.Policy, wantSign bool) {
		Expect(fbits.SignF64(policy.DefaultNaN64())).To(Equal(wantSign))
		Expect(fbits.IsNaNF64(policy.DefaultNaN64())).To(BeTrue())
		Expect(fbits.IsSignalingNaNF64(policy.DefaultNaN64())).To(BeFalse())
	},
	Entry("x86 default NaN has sign 1", nanpolicy.X86{}, true),
	Entry("RISC-V default NaN has sign 0", nanpolicy.RISCV{}, false),
)

var _ = Describe("X86", func() {
	p := nanpolicy.X86{}

	It("quiets a lone signaling NaN rather than replacing it", func() {
		sNaN := fbits.PackF64(false, 2047, 1)
		got := p.PropagateF64(true, sNaN, false, fbits.F64(0))

		Expect(fbits.IsSignalingNaNF64(got)).To(BeFalse())
		Expect(fbits.FracF64(got) & (1 << 51)).NotTo(Equal(uint64(0)))
		Expect(fbits.FracF64(got) & 1).To(Equal(uint64(1))) // original payload bit kept
	})

	It("prefers the NaN of larger significand magnitude when both are NaN", func() {
		small := fbits.PackF64(false, 2047, 1<<51|1)
		large := fbits.PackF64(false, 2047, 1<<51|2)

		got := p.PropagateF64(true, small, true, large)
		Expect(fbits.FracF64(got) & 2).To(Equal(uint64(2)))
	})

	It("round-trips a payload through the common carrier", func() {
		a := fbits.PackF32(true, 255, 1<<22|0x42)
		common := nanpolicy.CommonFromF32(a)
		got := p.NaNFromCommon32(common)

		Expect(fbits.SignF32(got)).To(BeTrue())
		Expect(fbits.IsNaNF32(got)).To(BeTrue())
	})
})

var _ = Describe("RISCV", func() {
	p := nanpolicy.RISCV{}

	It("always yields the canonical default regardless of operand payloads", func() {
		a := fbits.PackF64(false, 2047, 0xDEAD)
		b := fbits.PackF64(true, 2047, 0xBEEF)

		Expect(p.PropagateF64(true, a, true, b)).To(Equal(p.DefaultNaN64()))
		Expect(p.PropagateF64(true, a, false, fbits.F64(0))).To(Equal(p.DefaultNaN64()))
	})

	It("discards the common carrier's payload entirely", func() {
		common := nanpolicy.CommonFromF64(fbits.PackF64(true, 2047, 0xABCD))
		Expect(p.NaNFromCommon64(common)).To(Equal(p.DefaultNaN64()))
	})
})

var _ = Describe("AnyIsSignaling", func() {
	It("is true when exactly one of two NaN operands is signaling", func() {
		qnan := fbits.PackF32(false, 255, 1<<22)
		snan := fbits.PackF32(false, 255, 1)

		Expect(nanpolicy.AnyIsSignaling32(true, snan, true, qnan)).To(BeTrue())
		Expect(nanpolicy.AnyIsSignaling32(true, qnan, true, qnan)).To(BeFalse())
	})
})
