package kernel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/kernel"
	"github.com/sarchlab/softfloat/nanpolicy"
)

var _ = Describe("binary16 arithmetic kernels", func() {
	st := fstate.New()
	np := nanpolicy.RISCV{}

	one := fbits.PackF16(false, 15, 0)
	two := fbits.PackF16(false, 16, 0)
	three := fbits.PackF16(false, 16, 1<<9)
	four := fbits.PackF16(false, 17, 0)
	six := fbits.PackF16(false, 17, 1<<9)
	quarter := fbits.PackF16(false, 13, 0)

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	It("computes 1.0 + 1.0 = 2.0 exactly", func() {
		Expect(kernel.AddF16(st, np, one, one)).To(Equal(two))
	})

	It("computes 3.0 * 2.0 = 6.0 exactly", func() {
		Expect(kernel.MulF16(st, np, three, two)).To(Equal(six))
	})

	It("computes 1.0 / 4.0 = 0.25 exactly", func() {
		Expect(kernel.DivF16(st, np, one, four)).To(Equal(quarter))
	})

	It("computes sqrt(4.0) = 2.0 exactly", func() {
		Expect(kernel.SqrtF16(st, np, four)).To(Equal(two))
	})

	It("raises invalid on 0 * Inf", func() {
		inf := fbits.SignedInfF16(false)
		zero := fbits.SignedZeroF16(false)
		kernel.MulF16(st, np, zero, inf)
		Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("orders finite values consistently with EqF16/LtF16/LeF16", func() {
		Expect(kernel.LtF16(st, one, two)).To(BeTrue())
		Expect(kernel.LeF16(st, one, two)).To(BeTrue())
		Expect(kernel.EqF16(st, one, one)).To(BeTrue())
	})

	It("treats +0 and -0 as equal", func() {
		Expect(kernel.EqF16(st, fbits.SignedZeroF16(false), fbits.SignedZeroF16(true))).To(BeTrue())
	})
})
