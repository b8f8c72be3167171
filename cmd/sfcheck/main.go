// Package main provides a CLI tool to check the library's worked
// scenarios against a running build, the way cmd/spec-check validates
// benchmark availability.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
	"github.com/sarchlab/softfloat/softfloat"
)

var verbose = flag.Bool("v", false, "print every scenario, not just failures")

// scenario is one named check plus the function that runs it and reports
// pass/fail.
type scenario struct {
	name string
	run  func() (ok bool, detail string)
}

func main() {
	flag.Parse()

	scenarios := []scenario{
		{"1.0 + 1.0 = 2.0, no flags", checkOnePlusOne},
		{"inf * 0 raises invalid (RISC-V default NaN)", checkInfTimesZeroRISCV},
		{"inf * 0 raises invalid (x86 default NaN)", checkInfTimesZeroX86},
		{"sqrt(2.0) rounds to nearest, inexact", checkSqrtTwo},
		{"fma(1+2^-51*... ) avoids double rounding", checkFmaExactness},
		{"F32 1+eps / 1 = 1+eps, inexact", checkF32DivEps},
		{"F32 overflow raises overflow+inexact", checkF32Overflow},
	}

	failures := 0
	for _, s := range scenarios {
		ok, detail := s.run()
		if !ok {
			failures++
		}
		if !ok || *verbose {
			status := "PASS"
			if !ok {
				status = "FAIL"
			}
			fmt.Printf("[%s] %s: %s\n", status, s.name, detail)
		}
	}

	fmt.Printf("%d/%d scenarios passed\n", len(scenarios)-failures, len(scenarios))
	if failures > 0 {
		os.Exit(1)
	}
}

func checkOnePlusOne() (bool, string) {
	ctx := softfloat.NewContext()
	a := fbits.F64(0x3FF0000000000000)
	b := fbits.F64(0x3FF0000000000000)
	want := fbits.F64(0x4000000000000000)

	got := ctx.AddF64(a, b)
	if got != want {
		return false, fmt.Sprintf("got 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
	if ctx.Flags() != 0 {
		return false, fmt.Sprintf("unexpected flags 0x%X", ctx.Flags())
	}
	return true, "ok"
}

func checkInfTimesZeroRISCV() (bool, string) {
	ctx := softfloat.NewContext(softfloat.WithNaNPolicy(nanpolicy.RISCV{}))
	got := ctx.MulF64(fbits.F64(0x7FF0000000000000), fbits.F64(0))
	want := fbits.F64(0x7FF8000000000000)
	if got != want {
		return false, fmt.Sprintf("got 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
	if ctx.Flags()&fstate.FlagInvalid == 0 {
		return false, "invalid flag not raised"
	}
	return true, "ok"
}

func checkInfTimesZeroX86() (bool, string) {
	ctx := softfloat.NewContext(softfloat.WithNaNPolicy(nanpolicy.X86{}))
	got := ctx.MulF64(fbits.F64(0x7FF0000000000000), fbits.F64(0))
	want := fbits.F64(0xFFF8000000000000)
	if got != want {
		return false, fmt.Sprintf("got 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
	if ctx.Flags()&fstate.FlagInvalid == 0 {
		return false, "invalid flag not raised"
	}
	return true, "ok"
}

func checkSqrtTwo() (bool, string) {
	ctx := softfloat.NewContext()
	got := ctx.SqrtF64(fbits.F64(0x4000000000000000))
	want := fbits.F64(0x3FF6A09E667F3BCD)
	if got != want {
		return false, fmt.Sprintf("got 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
	if ctx.Flags()&fstate.FlagInexact == 0 {
		return false, "inexact flag not raised"
	}
	return true, "ok"
}

func checkFmaExactness() (bool, string) {
	ctx := softfloat.NewContext()
	a := fbits.F64(0x3FF0000000000003)
	b := fbits.F64(0x3FF0000000000003)
	c := fbits.F64(0xBFF0000000000006)
	got := ctx.FmaF64(a, b, c)
	want := fbits.F64(0x39A2000000000000) // exactly 9*2^-104
	if got != want {
		return false, fmt.Sprintf("got 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
	return true, "ok"
}

func checkF32DivEps() (bool, string) {
	ctx := softfloat.NewContext()
	got := ctx.DivF32(fbits.F32(0x3F800001), fbits.F32(0x3F800000))
	want := fbits.F32(0x3F800001)
	if got != want {
		return false, fmt.Sprintf("got 0x%08X, want 0x%08X", uint32(got), uint32(want))
	}
	if ctx.Flags()&fstate.FlagInexact == 0 {
		return false, "inexact flag not raised"
	}
	return true, "ok"
}

func checkF32Overflow() (bool, string) {
	ctx := softfloat.NewContext()
	got := ctx.AddF32(fbits.F32(0x7F7FFFFF), fbits.F32(0x73800000))
	want := fbits.F32(0x7F800000)
	if got != want {
		return false, fmt.Sprintf("got 0x%08X, want 0x%08X", uint32(got), uint32(want))
	}
	if ctx.Flags()&(fstate.FlagOverflow|fstate.FlagInexact) != fstate.FlagOverflow|fstate.FlagInexact {
		return false, fmt.Sprintf("expected overflow+inexact, got 0x%X", ctx.Flags())
	}
	return true, "ok"
}
