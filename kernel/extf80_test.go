package kernel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/kernel"
	"github.com/sarchlab/softfloat/nanpolicy"
)

var _ = Describe("extF80 arithmetic kernels", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	const intBit = uint64(1) << 63

	one := fbits.PackExtF80(false, 16383, intBit)
	two := fbits.PackExtF80(false, 16384, intBit)
	three := fbits.PackExtF80(false, 16384, intBit|intBit>>1)
	four := fbits.PackExtF80(false, 16385, intBit)
	six := fbits.PackExtF80(false, 16385, intBit|intBit>>1)
	quarter := fbits.PackExtF80(false, 16381, intBit)

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	It("computes 1.0 + 1.0 = 2.0 exactly", func() {
		Expect(kernel.AddExtF80(st, np, one, one)).To(Equal(two))
	})

	It("computes 2.0 - 1.0 = 1.0 exactly", func() {
		Expect(kernel.SubExtF80(st, np, two, one)).To(Equal(one))
	})

	It("computes 3.0 * 2.0 = 6.0 exactly", func() {
		Expect(kernel.MulExtF80(st, np, three, two)).To(Equal(six))
	})

	It("computes 1.0 / 4.0 = 0.25 exactly", func() {
		Expect(kernel.DivExtF80(st, np, one, four)).To(Equal(quarter))
	})

	It("computes sqrt(4.0) = 2.0 exactly", func() {
		Expect(kernel.SqrtExtF80(st, np, four)).To(Equal(two))
	})

	It("raises invalid on 0 * Inf", func() {
		inf := fbits.SignedInfExtF80(false)
		zero := fbits.SignedZeroExtF80(false)
		kernel.MulExtF80(st, np, zero, inf)
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("raises divide-by-zero on finite/0", func() {
		kernel.DivExtF80(st, np, one, fbits.SignedZeroExtF80(false))
		Expect(st.Flags() & fstate.FlagDivByZero).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("orders finite values consistently with EqExtF80/LtExtF80/LeExtF80", func() {
		Expect(kernel.LtExtF80(st, one, two)).To(BeTrue())
		Expect(kernel.LeExtF80(st, one, two)).To(BeTrue())
		Expect(kernel.EqExtF80(st, one, one)).To(BeTrue())
	})

	It("treats +0 and -0 as equal", func() {
		Expect(kernel.EqExtF80(st, fbits.SignedZeroExtF80(false), fbits.SignedZeroExtF80(true))).To(BeTrue())
	})
})
