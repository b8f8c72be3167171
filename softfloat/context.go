// Package softfloat is the public surface of the module: it wraps
// per-thread rounding/exception state and a NaN-propagation policy behind
// a Context value, and exposes one method per IEEE 754-2008 operation per
// format. Every method only unpacks bits, classifies, and calls into
// kernel — results are always total, with no error return; callers
// consult Context.Flags afterward, the same contract cmd/sfcheck relies
// on to drive its scenario checks.
package softfloat

import (
	"github.com/sarchlab/softfloat/fstate"
	"github.com/sarchlab/softfloat/nanpolicy"
)

// Context owns one goroutine's worth of IEEE 754 rounding and exception
// state: own the mutable state in a struct, configure it once at
// construction, then call totaling methods on it instead of threading
// loose parameters through every call site.
type Context struct {
	state  *fstate.State
	policy nanpolicy.Policy
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithNaNPolicy selects the NaN-propagation policy (default nanpolicy.RISCV{}).
func WithNaNPolicy(p nanpolicy.Policy) Option {
	return func(c *Context) {
		c.policy = p
	}
}

// WithRoundingMode sets the initial rounding mode (default RoundNearestEven).
func WithRoundingMode(m fstate.RoundingMode) Option {
	return func(c *Context) {
		c.state.SetRoundingMode(m)
	}
}

// WithTininessMode sets the initial tininess-detection mode (default
// TininessBeforeRounding, per DESIGN.md's Open Question resolution).
func WithTininessMode(m fstate.TininessMode) Option {
	return func(c *Context) {
		c.state.SetTininessMode(m)
	}
}

// WithExtF80RoundingPrecision sets the initial extF80 rounding precision
// (default ExtF80Precision80, i.e. full 64-bit significand rounding).
func WithExtF80RoundingPrecision(p fstate.ExtF80RoundingPrecision) Option {
	return func(c *Context) {
		c.state.SetExtF80RoundingPrecision(p)
	}
}

// NewContext creates a Context with nanpolicy.RISCV{} and
// RoundNearestEven as defaults, both overridable through opts.
func NewContext(opts ...Option) *Context {
	c := &Context{
		state:  fstate.New(),
		policy: nanpolicy.RISCV{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Flags returns the sticky exception flags accumulated since the last
// ClearFlags call.
func (c *Context) Flags() fstate.ExceptionFlag { return c.state.Flags() }

// ClearFlags clears the bits set in mask from the sticky exception flags.
func (c *Context) ClearFlags(mask fstate.ExceptionFlag) { c.state.ClearFlags(mask) }

// RoundingMode returns the context's current rounding mode.
func (c *Context) RoundingMode() fstate.RoundingMode { return c.state.RoundingMode() }

// SetRoundingMode changes the context's rounding mode.
func (c *Context) SetRoundingMode(m fstate.RoundingMode) { c.state.SetRoundingMode(m) }

// SetTininessMode changes the context's tininess-detection mode.
func (c *Context) SetTininessMode(m fstate.TininessMode) { c.state.SetTininessMode(m) }

// NaNPolicy returns the context's configured NaN-propagation policy.
func (c *Context) NaNPolicy() nanpolicy.Policy { return c.policy }
