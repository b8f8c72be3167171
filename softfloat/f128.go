package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

func (c *Context) AddF128(a, b fbits.F128) fbits.F128 { return kernel.AddF128(c.state, c.policy, a, b) }
func (c *Context) SubF128(a, b fbits.F128) fbits.F128 { return kernel.SubF128(c.state, c.policy, a, b) }
func (c *Context) MulF128(a, b fbits.F128) fbits.F128 { return kernel.MulF128(c.state, c.policy, a, b) }
func (c *Context) DivF128(a, b fbits.F128) fbits.F128 { return kernel.DivF128(c.state, c.policy, a, b) }
func (c *Context) SqrtF128(a fbits.F128) fbits.F128    { return kernel.SqrtF128(c.state, c.policy, a) }
func (c *Context) RemF128(a, b fbits.F128) fbits.F128 { return kernel.RemF128(c.state, c.policy, a, b) }

func (c *Context) RoundToIntegralF128(a fbits.F128, exact bool) fbits.F128 {
	return kernel.RoundToIntegralF128(c.state, c.policy, a, exact)
}

func (c *Context) FmaF128(a, b, d fbits.F128) fbits.F128 {
	return kernel.FmaF128(c.state, c.policy, a, b, d)
}

func (c *Context) EqF128(a, b fbits.F128) bool { return kernel.EqF128(c.state, a, b) }
func (c *Context) LtF128(a, b fbits.F128) bool { return kernel.LtF128(c.state, a, b) }
func (c *Context) LeF128(a, b fbits.F128) bool { return kernel.LeF128(c.state, a, b) }
