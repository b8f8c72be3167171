package xint_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/xint"
)

var _ = Describe("U256", func() {
	It("round-trips through addition then subtraction", func() {
		a := xint.U256FromU128(xint.U128{Hi: 1, Lo: 2})
		b := xint.U256FromU128(xint.U128{Hi: 0, Lo: 99})

		Expect(a.Add(b).Sub(b)).To(Equal(a))
	})

	It("shifts a set bit across all four words", func() {
		a := xint.U256{W: [4]uint64{1, 0, 0, 0}}

		Expect(a.Shl(192)).To(Equal(xint.U256{W: [4]uint64{0, 0, 0, 1}}))
		Expect(a.Shl(192).Shr(192)).To(Equal(a))
	})

	It("computes the exact 256-bit product of two 128-bit values", func() {
		max128 := xint.U128{Hi: math.MaxUint64, Lo: math.MaxUint64}

		got := xint.Mul128x128(max128, xint.U128From64(1))
		Expect(got.Lo128()).To(Equal(max128))
		Expect(got.Hi128()).To(Equal(xint.U128{}))
	})

	Describe("ShrJam", func() {
		It("preserves the inexact invariant across word boundaries", func() {
			exact := xint.U256{W: [4]uint64{0, 1, 0, 0}} // bit 64 set
			inexact := xint.U256{W: [4]uint64{1, 1, 0, 0}}

			Expect(exact.ShrJam(64).IsZero()).To(BeFalse()) // shifts bit64 down to bit0
			Expect(exact.Shr(65).IsZero()).To(BeTrue())
			Expect(inexact.ShrJam(65).IsZero()).To(BeFalse())
		})
	})
})
