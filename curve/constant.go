package curve

import "math"

// Constant is the trivial curve: one flat forward rate everywhere, for
// negative times included. For this variant the forward value and the
// extrapolation value are the same scalar.
type Constant struct {
	f float64
}

// NewConstant returns a flat curve at rate f.
func NewConstant(f float64) *Constant {
	return &Constant{f: f}
}

// Value returns the flat rate regardless of u.
func (c *Constant) Value(_ float64) float64 {
	return c.f
}

// Integral returns f*(u-t).
func (c *Constant) Integral(u, t float64) float64 {
	return c.f * (u - t)
}

// Extrapolate replaces the flat rate.
func (c *Constant) Extrapolate(f float64) Curve {
	c.f = f
	return c
}

// Extrapolation returns the flat rate.
func (c *Constant) Extrapolation() float64 {
	return c.f
}

// Back reports a pillar at +Inf: a constant curve never runs out.
func (c *Constant) Back() (Point, error) {
	return Point{Time: math.Inf(1), Rate: c.f}, nil
}
