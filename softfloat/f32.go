package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

func (c *Context) AddF32(a, b fbits.F32) fbits.F32 { return kernel.AddF32(c.state, c.policy, a, b) }
func (c *Context) SubF32(a, b fbits.F32) fbits.F32 { return kernel.SubF32(c.state, c.policy, a, b) }
func (c *Context) MulF32(a, b fbits.F32) fbits.F32 { return kernel.MulF32(c.state, c.policy, a, b) }
func (c *Context) DivF32(a, b fbits.F32) fbits.F32 { return kernel.DivF32(c.state, c.policy, a, b) }
func (c *Context) SqrtF32(a fbits.F32) fbits.F32    { return kernel.SqrtF32(c.state, c.policy, a) }
func (c *Context) RemF32(a, b fbits.F32) fbits.F32 { return kernel.RemF32(c.state, c.policy, a, b) }

func (c *Context) RoundToIntegralF32(a fbits.F32, exact bool) fbits.F32 {
	return kernel.RoundToIntegralF32(c.state, c.policy, a, exact)
}

func (c *Context) FmaF32(a, b, d fbits.F32) fbits.F32 {
	return kernel.FmaF32(c.state, c.policy, a, b, d)
}

func (c *Context) EqF32(a, b fbits.F32) bool { return kernel.EqF32(c.state, a, b) }
func (c *Context) LtF32(a, b fbits.F32) bool { return kernel.LtF32(c.state, a, b) }
func (c *Context) LeF32(a, b fbits.F32) bool { return kernel.LeF32(c.state, a, b) }
