package kernel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/kernel"
	"github.com/sarchlab/softfloat/nanpolicy"
)

var _ = Describe("round to integral", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	BeforeEach(func() {
		st.ClearFlags(^fstate.ExceptionFlag(0))
		st.SetRoundingMode(fstate.RoundNearestEven)
	})

	It("rounds 1.5 to 2.0, ties to even", func() {
		got := kernel.RoundToIntegralF64(st, np, f64(1.5), true)
		Expect(toFloat64(got)).To(Equal(2.0))
	})

	It("rounds 2.5 to 2.0, ties to even", func() {
		got := kernel.RoundToIntegralF64(st, np, f64(2.5), true)
		Expect(toFloat64(got)).To(Equal(2.0))
	})

	It("rounds -1.5 to -2.0, ties to even", func() {
		got := kernel.RoundToIntegralF64(st, np, f64(-1.5), true)
		Expect(toFloat64(got)).To(Equal(-2.0))
	})

	It("leaves an already-integral value unchanged", func() {
		got := kernel.RoundToIntegralF64(st, np, f64(4.0), true)
		Expect(toFloat64(got)).To(Equal(4.0))
	})

	It("raises inexact only when exact is requested and bits were dropped", func() {
		kernel.RoundToIntegralF64(st, np, f64(1.5), true)
		Expect(st.Flags() & fstate.FlagInexact).NotTo(Equal(fstate.ExceptionFlag(0)))

		st.ClearFlags(^fstate.ExceptionFlag(0))
		kernel.RoundToIntegralF64(st, np, f64(1.5), false)
		Expect(st.Flags() & fstate.FlagInexact).To(Equal(fstate.ExceptionFlag(0)))
	})

	It("rounds a tiny positive subnormal to +0 under round-to-nearest", func() {
		tiny := fbits.PackF64(false, 0, 1)
		got := kernel.RoundToIntegralF64(st, np, tiny, true)
		Expect(got).To(Equal(fbits.SignedZeroF64(false)))
	})

	It("rounds a tiny positive subnormal up to 1 under round-toward-positive-infinity", func() {
		st.SetRoundingMode(fstate.RoundToPosInf)
		tiny := fbits.PackF64(false, 0, 1)
		got := kernel.RoundToIntegralF64(st, np, tiny, true)
		Expect(toFloat64(got)).To(Equal(1.0))
	})

	It("rounds a tiny negative subnormal toward -0 under round-toward-positive-infinity", func() {
		st.SetRoundingMode(fstate.RoundToPosInf)
		tiny := fbits.PackF64(true, 0, 1)
		got := kernel.RoundToIntegralF64(st, np, tiny, true)
		Expect(got).To(Equal(fbits.SignedZeroF64(true)))
	})

	It("passes infinities through unchanged", func() {
		inf := fbits.SignedInfF64(false)
		got := kernel.RoundToIntegralF64(st, np, inf, true)
		Expect(got).To(Equal(inf))
	})

	It("propagates a canonical NaN under the RISC-V policy", func() {
		snan := fbits.F64(0x7FF0000000000001)
		got := kernel.RoundToIntegralF64(st, np, snan, true)
		Expect(got).To(Equal(np.DefaultNaN64()))
	})

	It("rounds 1.5 to 2.0 in F32", func() {
		got := kernel.RoundToIntegralF32(st, np, f32(1.5), true)
		Expect(toFloat32(got)).To(Equal(float32(2.0)))
	})
})
