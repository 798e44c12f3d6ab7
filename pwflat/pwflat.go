// Package pwflat implements the piecewise-flat forward curve kernel.
//
// A curve is described by strictly increasing pillar times t[0..n-1], a
// forward rate f[i] for each interval (t[i-1], t[i]], and an extrapolation
// rate ext applied beyond the last pillar:
//
//	       { f[i] if t[i-1] < u <= t[i]
//	f(u) = { ext  if u > t[n-1]
//	       { NaN  if u < 0
//
// All functions operate on raw slices and are consumed by the curve package.
// They never validate their inputs: callers are responsible for checking
// Monotonic and equal slice lengths before evaluation.
package pwflat

import (
	"math"
	"sort"
)

// Monotonic reports whether t is strictly increasing.
// Empty and single-element slices are monotonic.
func Monotonic(t []float64) bool {
	for i := 1; i < len(t); i++ {
		if t[i-1] >= t[i] {
			return false
		}
	}
	return true
}

// Value returns the instantaneous forward rate f(u).
//
// Returns NaN for u < 0, ext when there are no pillars, and ext when u is
// past the last pillar. On-pillar queries (u == t[i]) return f[i].
func Value(u float64, t, f []float64, ext float64) float64 {
	if u < 0 {
		return math.NaN()
	}
	if len(t) == 0 {
		return ext
	}

	// First pillar with t[i] >= u.
	i := sort.SearchFloat64s(t, u)
	if i == len(t) {
		return ext
	}
	return f[i]
}

// Integral returns the exact definite integral of the forward rate from 0
// to u. The antiderivative of a piecewise-constant function is closed form:
// full intervals below u contribute f[i]*(t[i]-t[i-1]) and the partial final
// interval contributes its rate times the remaining time. No quadrature.
//
// Returns NaN for u < 0 and u*ext when there are no pillars. If u lands past
// the last pillar the tail accrues at ext, so an undefined extrapolation
// (NaN) propagates to the result.
func Integral(u float64, t, f []float64, ext float64) float64 {
	if u < 0 {
		return math.NaN()
	}
	if u == 0 {
		return 0
	}
	if len(t) == 0 {
		return u * ext
	}

	var sum, prev float64
	var i int
	for i = 0; i < len(t) && t[i] <= u; i++ {
		sum += f[i] * (t[i] - prev)
		prev = t[i]
	}
	if u > prev {
		rate := ext
		if i < len(t) {
			rate = f[i]
		}
		sum += rate * (u - prev)
	}
	return sum
}

// Discount returns exp(-Integral(u, ...)), the price of one unit paid at u.
func Discount(u float64, t, f []float64, ext float64) float64 {
	return math.Exp(-Integral(u, t, f, ext))
}

// Spot returns the average continuously-compounded rate over [0, u].
//
// For u <= t[0] the curve is flat so the spot rate equals the instantaneous
// rate; beyond that it is Integral(u)/u.
func Spot(u float64, t, f []float64, ext float64) float64 {
	if len(t) == 0 {
		return ext
	}
	if u <= t[0] {
		return Value(u, t, f, ext)
	}
	return Integral(u, t, f, ext) / u
}
