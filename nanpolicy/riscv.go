package nanpolicy

import "github.com/sarchlab/softfloat/fbits"

// RISCV implements the RISC-V NaN policy: a default NaN with sign 0, and
// propagation that always yields that canonical default regardless of
// which operand(s) were NaN or what payload they carried.
type RISCV struct{}

// Name returns "riscv".
func (RISCV) Name() string { return "riscv" }

func (RISCV) DefaultNaN16() fbits.F16     { return fbits.PackF16(false, 31, 1<<9) }
func (RISCV) DefaultNaN32() fbits.F32     { return fbits.PackF32(false, 255, 1<<22) }
func (RISCV) DefaultNaN64() fbits.F64     { return fbits.PackF64(false, 2047, 1<<51) }
func (RISCV) DefaultExtF80() fbits.ExtF80 { return fbits.PackExtF80(false, 32767, 0xC000000000000000) }
func (RISCV) DefaultF128() fbits.F128     { return fbits.PackF128(false, 32767, 1<<47, 0) }

func (p RISCV) PropagateF16(bool, fbits.F16, bool, fbits.F16) fbits.F16 { return p.DefaultNaN16() }
func (p RISCV) PropagateF32(bool, fbits.F32, bool, fbits.F32) fbits.F32 { return p.DefaultNaN32() }
func (p RISCV) PropagateF64(bool, fbits.F64, bool, fbits.F64) fbits.F64 { return p.DefaultNaN64() }

func (p RISCV) PropagateExtF80(bool, fbits.ExtF80, bool, fbits.ExtF80) fbits.ExtF80 {
	return p.DefaultExtF80()
}

func (p RISCV) PropagateF128(bool, fbits.F128, bool, fbits.F128) fbits.F128 {
	return p.DefaultF128()
}

func (p RISCV) NaNFromCommon16(Common) fbits.F16         { return p.DefaultNaN16() }
func (p RISCV) NaNFromCommon32(Common) fbits.F32         { return p.DefaultNaN32() }
func (p RISCV) NaNFromCommon64(Common) fbits.F64         { return p.DefaultNaN64() }
func (p RISCV) NaNFromCommonExtF80(Common) fbits.ExtF80  { return p.DefaultExtF80() }
func (p RISCV) NaNFromCommonF128(Common) fbits.F128      { return p.DefaultF128() }
