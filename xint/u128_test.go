package xint_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/xint"
)

var _ = Describe("U128", func() {
	Describe("Add and Sub", func() {
		It("round-trips through addition then subtraction", func() {
			a := xint.U128{Hi: 1, Lo: math.MaxUint64}
			b := xint.U128From64(42)

			sum := a.Add(b)
			Expect(sum.Sub(b)).To(Equal(a))
		})

		It("carries from Lo into Hi", func() {
			a := xint.U128From64(math.MaxUint64)
			b := xint.U128From64(1)

			Expect(a.Add(b)).To(Equal(xint.U128{Hi: 1, Lo: 0}))
		})
	})

	Describe("Cmp", func() {
		It("orders by Hi first, then Lo", func() {
			small := xint.U128{Hi: 0, Lo: math.MaxUint64}
			big := xint.U128{Hi: 1, Lo: 0}

			Expect(small.Cmp(big)).To(Equal(-1))
			Expect(big.Cmp(small)).To(Equal(1))
			Expect(small.Cmp(small)).To(Equal(0))
		})
	})

	Describe("Shl and Shr", func() {
		It("shifts across the word boundary", func() {
			a := xint.U128From64(1)

			Expect(a.Shl(64)).To(Equal(xint.U128{Hi: 1, Lo: 0}))
			Expect(a.Shl(65)).To(Equal(xint.U128{Hi: 2, Lo: 0}))
		})

		It("is the inverse of Shl for values that fit", func() {
			a := xint.U128{Hi: 0, Lo: 0xABCD}

			Expect(a.Shl(70).Shr(70)).To(Equal(a))
		})

		It("returns zero for shifts at or beyond the width", func() {
			a := xint.U128{Hi: 1, Lo: 1}

			Expect(a.Shl(128)).To(Equal(xint.U128{}))
			Expect(a.Shr(128)).To(Equal(xint.U128{}))
		})
	})

	Describe("ShrJam", func() {
		It("behaves like Shr when no bits are lost", func() {
			a := xint.U128{Hi: 0, Lo: 0xF0}

			Expect(a.ShrJam(4)).To(Equal(a.Shr(4)))
		})

		It("sets the LSB when a lost bit was nonzero", func() {
			a := xint.U128{Hi: 0, Lo: 0b1011}

			got := a.ShrJam(2)
			Expect(got.Lo & 1).To(Equal(uint64(1)))
		})

		It("compares equal to zero iff the input was zero when every set bit is shifted out (the inexact invariant)", func() {
			exact := xint.U128{Hi: 0, Lo: 0}
			inexact := xint.U128{Hi: 0, Lo: 0b101}

			Expect(exact.ShrJam(3).IsZero()).To(BeTrue())
			Expect(inexact.ShrJam(3).IsZero()).To(BeFalse())
		})

		It("still jams when the shift distance exceeds the width", func() {
			a := xint.U128{Hi: 0, Lo: 1}

			Expect(a.ShrJam(500)).To(Equal(xint.U128From64(1)))
			Expect(xint.U128{}.ShrJam(500)).To(Equal(xint.U128{}))
		})
	})

	Describe("Mul64x64To128", func() {
		It("computes the exact product of two max uint64 values", func() {
			got := xint.Mul64x64To128(math.MaxUint64, math.MaxUint64)

			// (2^64-1)^2 = 2^128 - 2^65 + 1
			Expect(got.Hi).To(Equal(uint64(math.MaxUint64 - 1)))
			Expect(got.Lo).To(Equal(uint64(1)))
		})
	})

	Describe("CountLeadingZeros", func() {
		It("treats zero as fully leading-zero", func() {
			Expect(xint.CountLeadingZeros64(0)).To(Equal(64))
			Expect(xint.CountLeadingZeros32(0)).To(Equal(32))
			Expect(xint.CountLeadingZeros16(0)).To(Equal(16))
		})

		It("counts from the top bit", func() {
			Expect(xint.CountLeadingZeros64(1)).To(Equal(63))
			Expect(xint.CountLeadingZeros32(0x80000000)).To(Equal(0))
		})
	})
})

var _ = Describe("ShiftRightJam64/32", func() {
	It("matches a plain shift when nothing is lost", func() {
		Expect(xint.ShiftRightJam64(0xF0, 4)).To(Equal(uint64(0xF)))
		Expect(xint.ShiftRightJam32(0xF0, 4)).To(Equal(uint32(0xF)))
	})

	It("jams the LSB when bits are lost", func() {
		Expect(xint.ShiftRightJam64(0b1011, 2) & 1).To(Equal(uint64(1)))
		Expect(xint.ShiftRightJam32(0b1011, 2) & 1).To(Equal(uint32(1)))
	})

	It("saturates to 0 or 1 for distances at or beyond the width", func() {
		Expect(xint.ShiftRightJam64(0, 1000)).To(Equal(uint64(0)))
		Expect(xint.ShiftRightJam64(5, 1000)).To(Equal(uint64(1)))
	})
})

var _ = Describe("ApproxRecip32_1", func() {
	It("never overestimates the true reciprocal", func() {
		for _, a := range []uint32{0x80000000, 0x80000001, 0xC0000000, 0xFFFFFFFF} {
			r := xint.ApproxRecip32_1(a)
			exact := (uint64(1) << 63) / uint64(a)
			Expect(uint64(r)).To(BeNumerically("<=", exact))
		}
	})
})

var _ = Describe("ApproxRecipSqrt32_1", func() {
	It("returns a value with the high bit set", func() {
		r := xint.ApproxRecipSqrt32_1(false, 0x80000000)
		Expect(r & 0x80000000).To(Equal(uint32(0x80000000)))
	})

	It("approximates 1/sqrt(1)=1 near the top of the output range for A=1", func() {
		r := xint.ApproxRecipSqrt32_1(false, 0x80000000)
		Expect(r).To(BeNumerically("~", uint32(0xFFFFFFFF), 1<<16))
	})
})
