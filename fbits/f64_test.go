package fbits_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
)

var _ = Describe("F64", func() {
	DescribeTable("sign/exponent/fraction extraction for representative bit patterns",
		func(bits uint64, wantSign bool, wantExp int32, wantFrac uint64) {
			a := fbits.F64(bits)

			Expect(fbits.SignF64(a)).To(Equal(wantSign))
			Expect(fbits.ExpF64(a)).To(Equal(wantExp))
			Expect(fbits.FracF64(a)).To(Equal(wantFrac))
		},
		Entry("1.0", uint64(0x3FF0000000000000), false, int32(1023), uint64(0)),
		Entry("2.0", uint64(0x4000000000000000), false, int32(1024), uint64(0)),
		Entry("+inf", uint64(0x7FF0000000000000), false, int32(2047), uint64(0)),
		Entry("default qNaN (x86)", uint64(0xFFF8000000000000), true, int32(2047), uint64(1)<<51),
	)

	It("packs and unpacks losslessly for every classified case", func() {
		for _, bits := range []uint64{
			0x0000000000000000, // +0
			0x8000000000000000, // -0
			0x0000000000000001, // smallest subnormal
			0x3FF0000000000000, // 1.0
			0x7FF0000000000000, // +inf
			0xFFF0000000000000, // -inf
			0x7FF8000000000000, // qNaN
			0x7FF0000000000001, // sNaN
		} {
			a := fbits.F64(bits)
			got := fbits.PackF64(fbits.SignF64(a), fbits.ExpF64(a), fbits.FracF64(a))
			Expect(got).To(Equal(a))
		}
	})

	It("classifies zero, subnormal, normal, infinity, and NaN disjointly", func() {
		zero := fbits.SignedZeroF64(false)
		subnormal := fbits.PackF64(false, 0, 1)
		normal := fbits.PackF64(false, 1, 0)
		inf := fbits.SignedInfF64(false)
		qnan := fbits.PackF64(false, 2047, 1<<51)
		snan := fbits.PackF64(false, 2047, 1)

		Expect(fbits.IsZeroF64(zero)).To(BeTrue())
		Expect(fbits.IsSubnormalF64(subnormal)).To(BeTrue())
		Expect(fbits.IsZeroF64(normal) || fbits.IsSubnormalF64(normal) ||
			fbits.IsInfF64(normal) || fbits.IsNaNF64(normal)).To(BeFalse())
		Expect(fbits.IsInfF64(inf)).To(BeTrue())
		Expect(fbits.IsNaNF64(qnan)).To(BeTrue())
		Expect(fbits.IsSignalingNaNF64(qnan)).To(BeFalse())
		Expect(fbits.IsNaNF64(snan)).To(BeTrue())
		Expect(fbits.IsSignalingNaNF64(snan)).To(BeTrue())
	})
})
