package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

// I32ToF16 converts v to binary16, rounding per the context's mode.
func (c *Context) I32ToF16(v int32) fbits.F16 { return kernel.I32ToF16(c.state, v) }

// I32ToF32 converts v to binary32, rounding per the context's mode.
func (c *Context) I32ToF32(v int32) fbits.F32 { return kernel.I32ToF32(c.state, v) }

// I32ToF64 converts v to binary64 exactly.
func (c *Context) I32ToF64(v int32) fbits.F64 { return kernel.I32ToF64(c.state, v) }

// I32ToExtF80 converts v to the 80-bit extended format exactly.
func (c *Context) I32ToExtF80(v int32) fbits.ExtF80 { return kernel.I32ToExtF80(c.state, v) }

// I32ToF128 converts v to binary128 exactly.
func (c *Context) I32ToF128(v int32) fbits.F128 { return kernel.I32ToF128(c.state, v) }

// I64ToF16 converts v to binary16, rounding per the context's mode.
func (c *Context) I64ToF16(v int64) fbits.F16 { return kernel.I64ToF16(c.state, v) }

// I64ToF32 converts v to binary32, rounding per the context's mode.
func (c *Context) I64ToF32(v int64) fbits.F32 { return kernel.I64ToF32(c.state, v) }

// I64ToF64 converts v to binary64, rounding per the context's mode.
func (c *Context) I64ToF64(v int64) fbits.F64 { return kernel.I64ToF64(c.state, v) }

// I64ToExtF80 converts v to the 80-bit extended format exactly.
func (c *Context) I64ToExtF80(v int64) fbits.ExtF80 { return kernel.I64ToExtF80(c.state, v) }

// I64ToF128 converts v to binary128 exactly.
func (c *Context) I64ToF128(v int64) fbits.F128 { return kernel.I64ToF128(c.state, v) }

// UI32ToF16 converts v to binary16, rounding per the context's mode.
func (c *Context) UI32ToF16(v uint32) fbits.F16 { return kernel.UI32ToF16(c.state, v) }

// UI32ToF32 converts v to binary32, rounding per the context's mode.
func (c *Context) UI32ToF32(v uint32) fbits.F32 { return kernel.UI32ToF32(c.state, v) }

// UI32ToF64 converts v to binary64 exactly.
func (c *Context) UI32ToF64(v uint32) fbits.F64 { return kernel.UI32ToF64(c.state, v) }

// UI32ToExtF80 converts v to the 80-bit extended format exactly.
func (c *Context) UI32ToExtF80(v uint32) fbits.ExtF80 { return kernel.UI32ToExtF80(c.state, v) }

// UI32ToF128 converts v to binary128 exactly.
func (c *Context) UI32ToF128(v uint32) fbits.F128 { return kernel.UI32ToF128(c.state, v) }

// UI64ToF16 converts v to binary16, rounding per the context's mode.
func (c *Context) UI64ToF16(v uint64) fbits.F16 { return kernel.UI64ToF16(c.state, v) }

// UI64ToF32 converts v to binary32, rounding per the context's mode.
func (c *Context) UI64ToF32(v uint64) fbits.F32 { return kernel.UI64ToF32(c.state, v) }

// UI64ToF64 converts v to binary64, rounding per the context's mode.
func (c *Context) UI64ToF64(v uint64) fbits.F64 { return kernel.UI64ToF64(c.state, v) }

// UI64ToExtF80 converts v to the 80-bit extended format exactly.
func (c *Context) UI64ToExtF80(v uint64) fbits.ExtF80 { return kernel.UI64ToExtF80(c.state, v) }

// UI64ToF128 converts v to binary128 exactly.
func (c *Context) UI64ToF128(v uint64) fbits.F128 { return kernel.UI64ToF128(c.state, v) }

// F16ToI32 rounds a to the nearest integer per the context's mode and
// converts it to int32, saturating (and raising invalid) on overflow or
// NaN per the RISC-V fcvt convention.
func (c *Context) F16ToI32(a fbits.F16) int32 { return kernel.F16ToI32(c.state, a) }

func (c *Context) F16ToI64(a fbits.F16) int64   { return kernel.F16ToI64(c.state, a) }
func (c *Context) F16ToUI32(a fbits.F16) uint32 { return kernel.F16ToUI32(c.state, a) }
func (c *Context) F16ToUI64(a fbits.F16) uint64 { return kernel.F16ToUI64(c.state, a) }

func (c *Context) F32ToI32(a fbits.F32) int32   { return kernel.F32ToI32(c.state, a) }
func (c *Context) F32ToI64(a fbits.F32) int64   { return kernel.F32ToI64(c.state, a) }
func (c *Context) F32ToUI32(a fbits.F32) uint32 { return kernel.F32ToUI32(c.state, a) }
func (c *Context) F32ToUI64(a fbits.F32) uint64 { return kernel.F32ToUI64(c.state, a) }

func (c *Context) F64ToI32(a fbits.F64) int32   { return kernel.F64ToI32(c.state, a) }
func (c *Context) F64ToI64(a fbits.F64) int64   { return kernel.F64ToI64(c.state, a) }
func (c *Context) F64ToUI32(a fbits.F64) uint32 { return kernel.F64ToUI32(c.state, a) }
func (c *Context) F64ToUI64(a fbits.F64) uint64 { return kernel.F64ToUI64(c.state, a) }

func (c *Context) F128ToI32(a fbits.F128) int32   { return kernel.F128ToI32(c.state, a) }
func (c *Context) F128ToI64(a fbits.F128) int64   { return kernel.F128ToI64(c.state, a) }
func (c *Context) F128ToUI32(a fbits.F128) uint32 { return kernel.F128ToUI32(c.state, a) }
func (c *Context) F128ToUI64(a fbits.F128) uint64 { return kernel.F128ToUI64(c.state, a) }

func (c *Context) ExtF80ToI32(a fbits.ExtF80) int32   { return kernel.ExtF80ToI32(c.state, a) }
func (c *Context) ExtF80ToI64(a fbits.ExtF80) int64   { return kernel.ExtF80ToI64(c.state, a) }
func (c *Context) ExtF80ToUI32(a fbits.ExtF80) uint32 { return kernel.ExtF80ToUI32(c.state, a) }
func (c *Context) ExtF80ToUI64(a fbits.ExtF80) uint64 { return kernel.ExtF80ToUI64(c.state, a) }
