package round_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/round"
	"github.com/sarchlab/softfloat/xint"
)

var _ = Describe("RoundPackWide (binary128 params)", func() {
	p := round.F128Params

	It("passes an already-exact significand through unchanged", func() {
		st := fstate.New()
		kept := xint.U128{Hi: 1 << 48, Lo: 0} // leading bit at position 112
		sig := kept.Shl(2)

		sign, exp, frac := round.RoundPackWide(st, p, false, 1, sig)

		Expect(sign).To(BeFalse())
		Expect(exp).To(Equal(int32(1)))
		Expect(frac.IsZero()).To(BeTrue())
		Expect(st.Flags()).To(Equal(fstate.ExceptionFlag(0)))
	})

	It("raises overflow and rounds to infinity at the top of range", func() {
		st := fstate.New()
		kept := xint.U128{Hi: 1 << 48}
		_, exp, frac := round.RoundPackWide(st, p, false, p.ExpMax, kept.Shl(2))

		Expect(exp).To(Equal(p.ExpMax))
		Expect(frac.IsZero()).To(BeTrue())
		Expect(st.Flags() & fstate.FlagOverflow).NotTo(Equal(fstate.ExceptionFlag(0)))
	})
})

var _ = Describe("NormRoundPackWide", func() {
	p := round.F128Params

	It("returns a true zero for a zero significand", func() {
		st := fstate.New()
		sign, exp, frac := round.NormRoundPackWide(st, p, true, 7, xint.U128{})

		Expect(sign).To(BeTrue())
		Expect(exp).To(Equal(int32(0)))
		Expect(frac.IsZero()).To(BeTrue())
	})
})
