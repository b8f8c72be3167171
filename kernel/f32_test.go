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

func f32(v float32) fbits.F32   { return fbits.F32(math.Float32bits(v)) }
func toFloat32(a fbits.F32) float32 { return math.Float32frombits(uint32(a)) }

var _ = Describe("binary32 arithmetic kernels", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	It("computes 1.0 + 1.0 = 2.0 exactly", func() {
		got := kernel.AddF32(st, np, f32(1.0), f32(1.0))
		Expect(toFloat32(got)).To(Equal(float32(2.0)))
	})

	It("computes 3.0 * 2.0 = 6.0 exactly", func() {
		got := kernel.MulF32(st, np, f32(3.0), f32(2.0))
		Expect(toFloat32(got)).To(Equal(float32(6.0)))
	})

	It("computes 1.0 / 4.0 = 0.25 exactly", func() {
		got := kernel.DivF32(st, np, f32(1.0), f32(4.0))
		Expect(toFloat32(got)).To(Equal(float32(0.25)))
	})

	It("computes sqrt(4.0) = 2.0 exactly", func() {
		got := kernel.SqrtF32(st, np, f32(4.0))
		Expect(toFloat32(got)).To(Equal(float32(2.0)))
	})

	It("computes sqrt(2.0) within one ULP", func() {
		got := kernel.SqrtF32(st, np, f32(2.0))
		Expect(math.Abs(float64(toFloat32(got))-math.Sqrt2)).To(BeNumerically("<", math.Pow(2, -23)))
	})

	It("raises invalid on 0 * Inf", func() {
		kernel.MulF32(st, np, f32(0.0), f32(float32(math.Inf(1))))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("orders finite values consistently with EqF32/LtF32/LeF32", func() {
		a, b := f32(1.0), f32(2.0)
		Expect(kernel.LtF32(st, a, b)).To(BeTrue())
		Expect(kernel.LeF32(st, a, b)).To(BeTrue())
		Expect(kernel.EqF32(st, a, a)).To(BeTrue())
	})

	It("treats +0 and -0 as equal", func() {
		Expect(kernel.EqF32(st, f32(0.0), f32(float32(math.Copysign(0, -1))))).To(BeTrue())
	})
})
