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

func f64(v float64) fbits.F64 { return fbits.F64(math.Float64bits(v)) }
func toFloat64(a fbits.F64) float64 { return math.Float64frombits(uint64(a)) }

var _ = Describe("binary64 arithmetic kernels", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	It("computes 1.0 + 1.0 = 2.0 exactly", func() {
		got := kernel.AddF64(st, np, f64(1.0), f64(1.0))
		Expect(toFloat64(got)).To(Equal(2.0))
		Expect(st.Flags()).To(Equal(fstate.ExceptionFlag(0)))
	})

	It("computes 2.0 - 1.0 = 1.0 exactly", func() {
		got := kernel.SubF64(st, np, f64(2.0), f64(1.0))
		Expect(toFloat64(got)).To(Equal(1.0))
	})

	It("computes 3.0 * 2.0 = 6.0 exactly", func() {
		got := kernel.MulF64(st, np, f64(3.0), f64(2.0))
		Expect(toFloat64(got)).To(Equal(6.0))
	})

	It("computes 1.0 / 4.0 = 0.25 exactly", func() {
		got := kernel.DivF64(st, np, f64(1.0), f64(4.0))
		Expect(toFloat64(got)).To(Equal(0.25))
	})

	It("computes sqrt(4.0) = 2.0 exactly", func() {
		got := kernel.SqrtF64(st, np, f64(4.0))
		Expect(toFloat64(got)).To(Equal(2.0))
	})

	It("computes sqrt(2.0) within one ULP of math.Sqrt2", func() {
		got := kernel.SqrtF64(st, np, f64(2.0))
		Expect(math.Abs(toFloat64(got)-math.Sqrt2)).To(BeNumerically("<", math.Pow(2, -52)))
	})

	It("raises invalid on 0 * Inf", func() {
		kernel.MulF64(st, np, f64(0.0), f64(math.Inf(1)))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("raises divide-by-zero on finite/0", func() {
		kernel.DivF64(st, np, f64(1.0), f64(0.0))
		Expect(st.Flags() & fstate.FlagDivByZero).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("propagates a canonical NaN under the RISC-V policy regardless of payload", func() {
		snan := fbits.F64(0x7FF0000000000001)
		got := kernel.AddF64(st, np, snan, f64(1.0))
		Expect(got).To(Equal(np.DefaultNaN64()))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("is commutative for addition and multiplication", func() {
		a, b := f64(1.5), f64(-2.25)
		Expect(kernel.AddF64(st, np, a, b)).To(Equal(kernel.AddF64(st, np, b, a)))
		Expect(kernel.MulF64(st, np, a, b)).To(Equal(kernel.MulF64(st, np, b, a)))
	})

	It("orders finite values consistently with EqF64/LtF64/LeF64", func() {
		a, b := f64(1.0), f64(2.0)
		Expect(kernel.LtF64(st, a, b)).To(BeTrue())
		Expect(kernel.LeF64(st, a, b)).To(BeTrue())
		Expect(kernel.EqF64(st, a, a)).To(BeTrue())
		Expect(kernel.LtF64(st, b, a)).To(BeFalse())
	})

	It("treats +0 and -0 as equal", func() {
		Expect(kernel.EqF64(st, f64(0.0), f64(math.Copysign(0, -1)))).To(BeTrue())
	})
})
