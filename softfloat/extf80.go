package softfloat

import (
	"github.com/sarchlab/softfloat/fbits"
	"github.com/sarchlab/softfloat/kernel"
)

func (c *Context) AddExtF80(a, b fbits.ExtF80) fbits.ExtF80 {
	return kernel.AddExtF80(c.state, c.policy, a, b)
}

func (c *Context) SubExtF80(a, b fbits.ExtF80) fbits.ExtF80 {
	return kernel.SubExtF80(c.state, c.policy, a, b)
}

func (c *Context) MulExtF80(a, b fbits.ExtF80) fbits.ExtF80 {
	return kernel.MulExtF80(c.state, c.policy, a, b)
}

func (c *Context) DivExtF80(a, b fbits.ExtF80) fbits.ExtF80 {
	return kernel.DivExtF80(c.state, c.policy, a, b)
}

func (c *Context) SqrtExtF80(a fbits.ExtF80) fbits.ExtF80 {
	return kernel.SqrtExtF80(c.state, c.policy, a)
}

func (c *Context) RemExtF80(a, b fbits.ExtF80) fbits.ExtF80 {
	return kernel.RemExtF80(c.state, c.policy, a, b)
}

func (c *Context) RoundToIntegralExtF80(a fbits.ExtF80, exact bool) fbits.ExtF80 {
	return kernel.RoundToIntegralExtF80(c.state, c.policy, a, exact)
}

func (c *Context) FmaExtF80(a, b, d fbits.ExtF80) fbits.ExtF80 {
	return kernel.FmaExtF80(c.state, c.policy, a, b, d)
}

func (c *Context) EqExtF80(a, b fbits.ExtF80) bool { return kernel.EqExtF80(c.state, a, b) }
func (c *Context) LtExtF80(a, b fbits.ExtF80) bool { return kernel.LtExtF80(c.state, a, b) }
func (c *Context) LeExtF80(a, b fbits.ExtF80) bool { return kernel.LeExtF80(c.state, a, b) }
