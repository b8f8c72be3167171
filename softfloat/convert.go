package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

// F16ToF32 widens a to binary32.
func (c *Context) F16ToF32(a fbits.F16) fbits.F32 { return kernel.ConvertF16ToF32(c.state, c.policy, a) }

// F16ToF64 widens a to binary64.
func (c *Context) F16ToF64(a fbits.F16) fbits.F64 { return kernel.ConvertF16ToF64(c.state, c.policy, a) }

// F16ToExtF80 widens a to the 80-bit extended format.
func (c *Context) F16ToExtF80(a fbits.F16) fbits.ExtF80 {
	return kernel.ConvertF16ToExtF80(c.state, c.policy, a)
}

// F16ToF128 widens a to binary128.
func (c *Context) F16ToF128(a fbits.F16) fbits.F128 {
	return kernel.ConvertF16ToF128(c.state, c.policy, a)
}

// F32ToF16 narrows a to binary16, rounding per the context's mode.
func (c *Context) F32ToF16(a fbits.F32) fbits.F16 { return kernel.ConvertF32ToF16(c.state, c.policy, a) }

// F32ToF64 widens a to binary64.
func (c *Context) F32ToF64(a fbits.F32) fbits.F64 { return kernel.ConvertF32ToF64(c.state, c.policy, a) }

// F32ToExtF80 widens a to the 80-bit extended format.
func (c *Context) F32ToExtF80(a fbits.F32) fbits.ExtF80 {
	return kernel.ConvertF32ToExtF80(c.state, c.policy, a)
}

// F32ToF128 widens a to binary128.
func (c *Context) F32ToF128(a fbits.F32) fbits.F128 {
	return kernel.ConvertF32ToF128(c.state, c.policy, a)
}

// F64ToF16 narrows a to binary16, rounding per the context's mode.
func (c *Context) F64ToF16(a fbits.F64) fbits.F16 { return kernel.ConvertF64ToF16(c.state, c.policy, a) }

// F64ToF32 narrows a to binary32, rounding per the context's mode.
func (c *Context) F64ToF32(a fbits.F64) fbits.F32 { return kernel.ConvertF64ToF32(c.state, c.policy, a) }

// F64ToExtF80 widens a to the 80-bit extended format.
func (c *Context) F64ToExtF80(a fbits.F64) fbits.ExtF80 {
	return kernel.ConvertF64ToExtF80(c.state, c.policy, a)
}

// F64ToF128 widens a to binary128.
func (c *Context) F64ToF128(a fbits.F64) fbits.F128 {
	return kernel.ConvertF64ToF128(c.state, c.policy, a)
}

// ExtF80ToF16 narrows a to binary16, rounding per the context's mode.
func (c *Context) ExtF80ToF16(a fbits.ExtF80) fbits.F16 {
	return kernel.ConvertExtF80ToF16(c.state, c.policy, a)
}

// ExtF80ToF32 narrows a to binary32, rounding per the context's mode.
func (c *Context) ExtF80ToF32(a fbits.ExtF80) fbits.F32 {
	return kernel.ConvertExtF80ToF32(c.state, c.policy, a)
}

// ExtF80ToF64 narrows a to binary64, rounding per the context's mode.
func (c *Context) ExtF80ToF64(a fbits.ExtF80) fbits.F64 {
	return kernel.ConvertExtF80ToF64(c.state, c.policy, a)
}

// ExtF80ToF128 widens a to binary128.
func (c *Context) ExtF80ToF128(a fbits.ExtF80) fbits.F128 {
	return kernel.ConvertExtF80ToF128(c.state, c.policy, a)
}

// F128ToF16 narrows a to binary16, rounding per the context's mode.
func (c *Context) F128ToF16(a fbits.F128) fbits.F16 {
	return kernel.ConvertF128ToF16(c.state, c.policy, a)
}

// F128ToF32 narrows a to binary32, rounding per the context's mode.
func (c *Context) F128ToF32(a fbits.F128) fbits.F32 {
	return kernel.ConvertF128ToF32(c.state, c.policy, a)
}

// F128ToF64 narrows a to binary64, rounding per the context's mode.
func (c *Context) F128ToF64(a fbits.F128) fbits.F64 {
	return kernel.ConvertF128ToF64(c.state, c.policy, a)
}

// F128ToExtF80 narrows a to the 80-bit extended format, rounding per the
// context's mode.
func (c *Context) F128ToExtF80(a fbits.F128) fbits.ExtF80 {
	return kernel.ConvertF128ToExtF80(c.state, c.policy, a)
}
