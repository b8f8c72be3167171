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

var _ = Describe("fused multiply-add", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	It("computes 2*3+4 = 10 exactly in F64", func() {
		got := kernel.FmaF64(st, np, f64(2.0), f64(3.0), f64(4.0))
		Expect(toFloat64(got)).To(Equal(10.0))
	})

	It("computes 2*3+4 = 10 exactly in F32", func() {
		got := kernel.FmaF32(st, np, f32(2.0), f32(3.0), f32(4.0))
		Expect(toFloat32(got)).To(Equal(float32(10.0)))
	})

	It("rounds only once, unlike a separate multiply then add", func() {
		// A value whose exact product plus c needs the full double-wide
		// intermediate precision to round correctly.
		a := f64(1 + 1e-8)
		b := f64(1 - 1e-8)
		c := f64(-1.0)
		got := kernel.FmaF64(st, np, a, b, c)
		want := math.FMA(1+1e-8, 1-1e-8, -1.0)
		Expect(math.Abs(toFloat64(got) - want)).To(BeNumerically("<", 1e-17))
	})

	It("raises invalid on 0*inf+c", func() {
		kernel.FmaF64(st, np, f64(0.0), f64(math.Inf(1)), f64(1.0))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("raises invalid when the product and c are opposite-signed infinities", func() {
		kernel.FmaF64(st, np, f64(math.Inf(1)), f64(1.0), f64(math.Inf(-1)))
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("propagates a canonical NaN under the RISC-V policy", func() {
		snan := fbits.F64(0x7FF0000000000001)
		got := kernel.FmaF64(st, np, snan, f64(1.0), f64(1.0))
		Expect(got).To(Equal(np.DefaultNaN64()))
	})

	It("computes an exact FMA in F128", func() {
		one := fbits.PackF128(false, 16383, 0, 0)
		two := fbits.PackF128(false, 16384, 0, 0)
		got := kernel.FmaF128(st, np, two, two, one)
		Expect(got).To(Equal(fbits.PackF128(false, 16385, 1<<46, 0))) // 2*2+1 = 5
	})

	It("computes an exact FMA in extF80", func() {
		const intBit = uint64(1) << 63
		one := fbits.PackExtF80(false, 16383, intBit)
		two := fbits.PackExtF80(false, 16384, intBit)
		five := fbits.PackExtF80(false, 16385, intBit|intBit>>2)
		got := kernel.FmaExtF80(st, np, two, two, one)
		Expect(got).To(Equal(five))
	})
})
