package softfloat_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/softfloat"
)

func f64(v float64) fbits.F64 { return fbits.F64(math.Float64bits(v)) }

var _ = Describe("Context", func() {
	It("defaults to RISC-V NaN policy and round-nearest-even", func() {
		ctx := softfloat.NewContext()
		Expect(ctx.NaNPolicy().Name()).To(Equal("riscv"))
		Expect(ctx.RoundingMode()).To(Equal(fstate.RoundNearestEven))
	})

	It("honors WithNaNPolicy and WithRoundingMode", func() {
		ctx := softfloat.NewContext(
			softfloat.WithNaNPolicy(nanpolicy.X86{}),
			softfloat.WithRoundingMode(fstate.RoundToZero),
		)
		Expect(ctx.NaNPolicy().Name()).To(Equal("x86"))
		Expect(ctx.RoundingMode()).To(Equal(fstate.RoundToZero))
	})

	It("performs arithmetic and accumulates flags independently per context", func() {
		a := softfloat.NewContext()
		b := softfloat.NewContext()

		a.DivF64(f64(1.0), f64(0.0))
		Expect(a.Flags() & fstate.FlagDivByZero).NotTo(Equal(fstate.ExceptionFlag(0)))
		Expect(b.Flags() & fstate.FlagDivByZero).To(Equal(fstate.ExceptionFlag(0)))
	})

	It("round-trips a value through AddF64 and ClearFlags", func() {
		ctx := softfloat.NewContext()
		got := ctx.AddF64(f64(1.0), f64(2.0))
		Expect(got).To(Equal(f64(3.0)))

		ctx.ClearFlags(^fstate.ExceptionFlag(0))
		Expect(ctx.Flags()).To(Equal(fstate.ExceptionFlag(0)))
	})

	It("converts across formats through the context", func() {
		ctx := softfloat.NewContext()
		narrow := ctx.F64ToF32(f64(1.5))
		back := ctx.F32ToF64(narrow)
		Expect(back).To(Equal(f64(1.5)))
	})

	It("converts integers through the context", func() {
		ctx := softfloat.NewContext()
		Expect(ctx.I32ToF64(7)).To(Equal(f64(7.0)))
		Expect(ctx.F64ToI32(f64(7.0))).To(Equal(int32(7)))
	})
})
