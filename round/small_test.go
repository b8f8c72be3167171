package round_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/round"
)

var _ = Describe("RoundPack (binary64 params)", func() {
	p := round.F64Params

	It("passes an already-exact significand through unchanged", func() {
		st := fstate.New()
		kept := uint64(1) << 52 // 1.0's significand
		sign, exp, frac := round.RoundPack(st, p, false, 1, kept<<2)

		Expect(sign).To(BeFalse())
		Expect(exp).To(Equal(int32(1)))
		Expect(frac).To(Equal(uint64(0)))
		Expect(st.Flags()).To(Equal(fstate.ExceptionFlag(0)))
	})

	It("breaks a nearest-even tie toward the even kept LSB (no increment)", func() {
		st := fstate.New()
		kept := uint64(1) << 52 // LSB 0 (even)
		sig := kept<<2 | 2      // round bit set, sticky clear: exact tie
		_, _, frac := round.RoundPack(st, p, false, 1, sig)

		Expect(frac).To(Equal(uint64(0)))
		Expect(st.Flags() & fstate.FlagInexact).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("breaks a nearest-even tie up when the kept LSB is odd", func() {
		st := fstate.New()
		kept := uint64(1)<<52 | 1 // LSB 1 (odd)
		sig := kept<<2 | 2        // round bit set, sticky clear: exact tie
		_, _, frac := round.RoundPack(st, p, false, 1, sig)

		Expect(frac).To(Equal(uint64(1) << 1))
	})

	It("raises overflow and rounds to infinity at the top of range under nearest-even", func() {
		st := fstate.New()
		sign, exp, frac := round.RoundPack(st, p, false, p.ExpMax, uint64(1)<<52<<2)

		Expect(exp).To(Equal(p.ExpMax))
		Expect(frac).To(Equal(uint64(0)))
		Expect(sign).To(BeFalse())
		Expect(st.Flags() & fstate.FlagOverflow).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("rounds overflow to the largest finite value under round-toward-zero", func() {
		st := fstate.New()
		st.SetRoundingMode(fstate.RoundToZero)
		_, exp, frac := round.RoundPack(st, p, false, p.ExpMax, uint64(1)<<52<<2)

		Expect(exp).To(Equal(p.ExpMax - 1))
		Expect(frac).To(Equal(uint64(1)<<52 - 1))
	})

	It("produces a subnormal result and raises underflow when bits are lost", func() {
		st := fstate.New()
		kept := uint64(1) << 52
		// exp=0 forces a 1-bit extra shift (deficit=1), discarding the low bit.
		_, exp, _ := round.RoundPack(st, p, false, 0, kept<<2|1)

		Expect(exp).To(Equal(int32(0)))
		Expect(st.Flags() & fstate.FlagUnderflow).NotTo(Equal(fstate.ExceptionFlag(0)))
	})

	It("carries a maximal subnormal rounding up into the smallest normal", func() {
		st := fstate.New()
		// exp=0 always applies a 1-bit deficit shift first, so the raw
		// significand is crafted so that, post-shift, kept is the maximal
		// subnormal (2^52-1, LSB odd) with an exact nearest-even tie —
		// which rounds up into exactly the smallest normal value.
		maxSubnormalKept := uint64(1)<<52 - 1
		sig := maxSubnormalKept<<3 | 1<<2
		sign, exp, frac := round.RoundPack(st, p, false, 0, sig)

		Expect(sign).To(BeFalse())
		Expect(exp).To(Equal(int32(1)))
		Expect(frac).To(Equal(uint64(0)))
	})
})

var _ = Describe("NormRoundPack (binary64 params)", func() {
	p := round.F64Params

	It("left-shifts an unnormalized significand and compensates the exponent", func() {
		st := fstate.New()
		// Leading bit four positions below canonical: needs a left shift of 4.
		kept := uint64(1) << 48
		sig := kept << 2

		_, exp, frac := round.NormRoundPack(st, p, false, 10, sig)

		Expect(exp).To(Equal(int32(6)))
		Expect(frac).To(Equal(uint64(0)))
	})

	It("returns a true zero when given a zero significand", func() {
		st := fstate.New()
		sign, exp, frac := round.NormRoundPack(st, p, true, 5, 0)

		Expect(sign).To(BeTrue())
		Expect(exp).To(Equal(int32(0)))
		Expect(frac).To(Equal(uint64(0)))
	})
})
