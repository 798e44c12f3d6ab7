package curve

import (
	"fmt"
	"math"

	"github.com/meenmo/fwdcurve/pwflat"
)

// PiecewiseFlat is a piecewise-constant forward curve over owned pillar
// arrays. Pillars are immutable after construction; only the extrapolation
// scalar can be replaced, via Extrapolate.
type PiecewiseFlat struct {
	t, f []float64
	ext  float64
}

// NewPiecewiseFlat builds a curve from (time, rate) pillars with no
// extrapolation: queries past the last pillar return NaN until Extrapolate
// is called. The input slices are copied.
//
// Times must be strictly increasing and match rates in length; violations
// are rejected with ErrInvalidPillars.
func NewPiecewiseFlat(times, rates []float64) (*PiecewiseFlat, error) {
	if len(times) != len(rates) {
		return nil, fmt.Errorf("%w: %d times vs %d rates", ErrInvalidPillars, len(times), len(rates))
	}
	if !pwflat.Monotonic(times) {
		return nil, fmt.Errorf("%w: times must be strictly increasing", ErrInvalidPillars)
	}

	return &PiecewiseFlat{
		t:   append([]float64(nil), times...),
		f:   append([]float64(nil), rates...),
		ext: math.NaN(),
	}, nil
}

// Value returns the kernel forward rate at u.
func (c *PiecewiseFlat) Value(u float64) float64 {
	return pwflat.Value(u, c.t, c.f, c.ext)
}

// Integral returns the integral of the forward rate from t to u, computed
// as the difference of the global antiderivative at the two bounds. The
// antiderivative is exact over the full pillar array, so no per-interval
// accumulation between t and u is needed.
func (c *PiecewiseFlat) Integral(u, t float64) float64 {
	return pwflat.Integral(u, c.t, c.f, c.ext) - pwflat.Integral(t, c.t, c.f, c.ext)
}

// Extrapolate replaces the tail rate; pillars are untouched.
func (c *PiecewiseFlat) Extrapolate(f float64) Curve {
	c.ext = f
	return c
}

// Extrapolation returns the tail rate, NaN if unset.
func (c *PiecewiseFlat) Extrapolation() float64 {
	return c.ext
}

// Back returns the last pillar, or ErrEmptyCurve when there are none.
func (c *PiecewiseFlat) Back() (Point, error) {
	if len(c.t) == 0 {
		return Point{}, ErrEmptyCurve
	}
	n := len(c.t) - 1
	return Point{Time: c.t[n], Rate: c.f[n]}, nil
}

// Pillars returns copies of the curve's pillar arrays, for diagnostics.
func (c *PiecewiseFlat) Pillars() (times, rates []float64) {
	return append([]float64(nil), c.t...), append([]float64(nil), c.f...)
}
