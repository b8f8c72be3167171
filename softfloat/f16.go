package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

func (c *Context) AddF16(a, b fbits.F16) fbits.F16 { return kernel.AddF16(c.state, c.policy, a, b) }
func (c *Context) SubF16(a, b fbits.F16) fbits.F16 { return kernel.SubF16(c.state, c.policy, a, b) }
func (c *Context) MulF16(a, b fbits.F16) fbits.F16 { return kernel.MulF16(c.state, c.policy, a, b) }
func (c *Context) DivF16(a, b fbits.F16) fbits.F16 { return kernel.DivF16(c.state, c.policy, a, b) }
func (c *Context) SqrtF16(a fbits.F16) fbits.F16    { return kernel.SqrtF16(c.state, c.policy, a) }
func (c *Context) RemF16(a, b fbits.F16) fbits.F16 { return kernel.RemF16(c.state, c.policy, a, b) }

// RoundToIntegralF16 rounds a to the nearest integral value per the
// context's rounding mode; exact requests the inexact flag when bits are
// dropped (the rint vs. nearbyint distinction).
func (c *Context) RoundToIntegralF16(a fbits.F16, exact bool) fbits.F16 {
	return kernel.RoundToIntegralF16(c.state, c.policy, a, exact)
}

func (c *Context) FmaF16(a, b, d fbits.F16) fbits.F16 {
	return kernel.FmaF16(c.state, c.policy, a, b, d)
}

func (c *Context) EqF16(a, b fbits.F16) bool { return kernel.EqF16(c.state, a, b) }
func (c *Context) LtF16(a, b fbits.F16) bool { return kernel.LtF16(c.state, a, b) }
func (c *Context) LeF16(a, b fbits.F16) bool { return kernel.LeF16(c.state, a, b) }
