package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

func (c *Context) AddF64(a, b fbits.F64) fbits.F64 { return kernel.AddF64(c.state, c.policy, a, b) }
func (c *Context) SubF64(a, b fbits.F64) fbits.F64 { return kernel.SubF64(c.state, c.policy, a, b) }
func (c *Context) MulF64(a, b fbits.F64) fbits.F64 { return kernel.MulF64(c.state, c.policy, a, b) }
func (c *Context) DivF64(a, b fbits.F64) fbits.F64 { return kernel.DivF64(c.state, c.policy, a, b) }
func (c *Context) SqrtF64(a fbits.F64) fbits.F64    { return kernel.SqrtF64(c.state, c.policy, a) }
func (c *Context) RemF64(a, b fbits.F64) fbits.F64 { return kernel.RemF64(c.state, c.policy, a, b) }

func (c *Context) RoundToIntegralF64(a fbits.F64, exact bool) fbits.F64 {
	return kernel.RoundToIntegralF64(c.state, c.policy, a, exact)
}

func (c *Context) FmaF64(a, b, d fbits.F64) fbits.F64 {
	return kernel.FmaF64(c.state, c.policy, a, b, d)
}

func (c *Context) EqF64(a, b fbits.F64) bool { return kernel.EqF64(c.state, a, b) }
func (c *Context) LtF64(a, b fbits.F64) bool { return kernel.LtF64(c.state, a, b) }
func (c *Context) LeF64(a, b fbits.F64) bool { return kernel.LeF64(c.state, a, b) }
