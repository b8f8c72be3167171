package kernel_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/kernel"
)

var _ = Describe("integer/float conversions", func() {
	st := fstate.New()

	BeforeEach(func() { st.ClearFlags(^fstate.ExceptionFlag(0)) })

	Describe("integer to float", func() {
		It("converts int32 42 to F64 exactly", func() {
			got := kernel.I32ToF64(st, 42)
			Expect(toFloat64(got)).To(Equal(42.0))
		})

		It("converts int32 -42 to F32 exactly", func() {
			got := kernel.I32ToF32(st, -42)
			Expect(toFloat32(got)).To(Equal(float32(-42.0)))
		})

		It("converts int64 MinInt64 to F64, rounding to the nearest representable value", func() {
			got := kernel.I64ToF64(st, math.MinInt64)
			Expect(toFloat64(got)).To(Equal(float64(math.MinInt64)))
		})

		It("converts uint64 MaxUint64 to F64, rounding to the nearest representable value", func() {
			got := kernel.UI64ToF64(st, math.MaxUint64)
			Expect(toFloat64(got)).To(BeNumerically("~", float64(uint64(math.MaxUint64)), 1<<11))
		})

		It("converts int32 0 to F16 as +0", func() {
			got := kernel.I32ToF16(st, 0)
			Expect(got).To(Equal(fbits.SignedZeroF16(false)))
		})

		It("converts uint32 1 to F128 exactly", func() {
			got := kernel.UI32ToF128(st, 1)
			Expect(got).To(Equal(fbits.PackF128(false, 16383, 0, 0)))
		})

		It("converts int64 1 to extF80 exactly", func() {
			got := kernel.I64ToExtF80(st, 1)
			Expect(got).To(Equal(fbits.PackExtF80(false, 16383, uint64(1)<<63)))
		})

		It("raises inexact converting a magnitude too wide for F16 to round exactly", func() {
			kernel.I32ToF16(st, 123456)
			Expect(st.Flags() & fstate.FlagInexact).NotTo(Equal(fstate.ExceptionFlag(0)))
		})
	})

	Describe("float to integer", func() {
		It("truncates-to-nearest 4.0 to int32 4", func() {
			Expect(kernel.F64ToI32(st, f64(4.0))).To(Equal(int32(4)))
		})

		It("rounds 4.5 to int32 4, ties to even, under the default rounding mode", func() {
			st.SetRoundingMode(fstate.RoundNearestEven)
			Expect(kernel.F64ToI32(st, f64(4.5))).To(Equal(int32(4)))
		})

		It("rounds -4.5 to int32 -4, ties to even", func() {
			st.SetRoundingMode(fstate.RoundNearestEven)
			Expect(kernel.F64ToI32(st, f64(-4.5))).To(Equal(int32(-4)))
		})

		It("saturates a too-large F64 to math.MaxInt32 and raises invalid", func() {
			got := kernel.F64ToI32(st, f64(1e30))
			Expect(got).To(Equal(int32(math.MaxInt32)))
			Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
		})

		It("saturates a large negative F64 to math.MinInt32", func() {
			got := kernel.F64ToI32(st, f64(-1e30))
			Expect(got).To(Equal(int32(math.MinInt32)))
		})

		It("saturates -Inf to math.MinInt64", func() {
			got := kernel.F64ToI64(st, f64(math.Inf(-1)))
			Expect(got).To(Equal(int64(math.MinInt64)))
		})

		It("saturates a NaN to the maximum value and raises invalid", func() {
			snan := fbits.F64(0x7FF0000000000001)
			got := kernel.F64ToI32(st, snan)
			Expect(got).To(Equal(int32(math.MaxInt32)))
			Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
		})

		It("saturates a negative float to 0 for an unsigned destination", func() {
			got := kernel.F64ToUI32(st, f64(-1.0))
			Expect(got).To(Equal(uint32(0)))
			Expect(st.Flags() & fstate.FlagInvalid).NotTo(Equal(fstate.ExceptionFlag(0)))
		})

		It("converts 4.0 in F32 to int64 4", func() {
			Expect(kernel.F32ToI64(st, f32(4.0))).To(Equal(int64(4)))
		})

		It("converts 4.0 in F128 to int32 4", func() {
			four := fbits.PackF128(false, 16385, 0, 0)
			Expect(kernel.F128ToI32(st, four)).To(Equal(int32(4)))
		})

		It("converts 4.0 in extF80 to uint64 4", func() {
			four := fbits.PackExtF80(false, 16385, uint64(1)<<63)
			Expect(kernel.ExtF80ToUI64(st, four)).To(Equal(uint64(4)))
		})
	})

	Describe("round trips", func() {
		It("round-trips a representative set of integers through F64", func() {
			for _, v := range []int32{0, 1, -1, 1000, -1000, math.MaxInt32, math.MinInt32} {
				f := kernel.I32ToF64(st, v)
				Expect(kernel.F64ToI32(st, f)).To(Equal(v))
			}
		})
	})
})
