package kernel_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/kernel"
	"github.com/sarchlab/softfloat/nanpolicy"
)

var _ = Describe("IEEE remainder", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	It("computes rem(5, 3) = -1 in F64", func() {
		got := kernel.RemF64(st, np, f64(5.0), f64(3.0))
		Expect(toFloat64(got)).To(Equal(-1.0))
	})

	It("computes rem(5, 2) = 1 in F64, ties to even favoring the quotient's parity", func() {
		// 5/2 = 2.5, exactly between 2 and 3; 2 is even so n=2, rem=5-4=1.
		got := kernel.RemF64(st, np, f64(5.0), f64(2.0))
		Expect(toFloat64(got)).To(Equal(1.0))
	})

	It("computes rem(7, 2) = -1 in F64, ties to even favoring the other quotient", func() {
		// 7/2 = 3.5, between 3 and 4; 4 is even so n=4, rem=7-8=-1.
		got := kernel.RemF64(st, np, f64(7.0), f64(2.0))
		Expect(toFloat64(got)).To(Equal(-1.0))
	})

	It("returns a unchanged in magnitude when |a| < |b|/2", func() {
		got := kernel.RemF64(st, np, f64(0.2), f64(1.0))
		Expect(toFloat64(got)).To(Equal(0.2))
	})

	It("returns a positive remainder for a negative dividend when a-n*b is positive", func() {
		got := kernel.RemF64(st, np, f64(-5.0), f64(3.0))
		Expect(toFloat64(got)).To(Equal(1.0))
	})

	It("returns a's sign for a signed zero result", func() {
		got := kernel.RemF64(st, np, f64(4.0), f64(2.0))
		Expect(got).To(Equal(fbits.SignedZeroF64(false)))
	})

	It("raises invalid for inf rem b", func() {
		kernel.RemF64(st, np, f64(math.Inf(1)), f64(3.0))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("raises invalid for a rem 0", func() {
		kernel.RemF64(st, np, f64(5.0), f64(0.0))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("returns a unchanged when b is infinite", func() {
		got := kernel.RemF64(st, np, f64(5.0), f64(math.Inf(1)))
		Expect(toFloat64(got)).To(Equal(5.0))
	})

	It("computes an exact remainder in F32", func() {
		got := kernel.RemF32(st, np, f32(5.0), f32(3.0))
		Expect(toFloat32(got)).To(Equal(float32(-1.0)))
	})

	It("propagates a canonical NaN under the RISC-V policy", func() {
		snan := fbits.F64(0x7FF0000000000001)
		got := kernel.RemF64(st, np, snan, f64(3.0))
		Expect(got).To(Equal(np.DefaultNaN64()))
	})
})
