// Package curve provides the interest-rate forward-curve abstraction used by
// every downstream pricer for discounting and forward-rate queries.
//
// A Curve answers instantaneous forward rates and closed-form integrals of
// those rates; discount factors, spot rates and forward offsets derive from
// the two. Three variants implement the contract: Constant (one flat rate),
// PiecewiseFlat (ordered pillars over the pwflat kernel) and Sum (the lazy
// algebraic sum of two curves).
//
// Domain errors are silent by policy: querying before time zero, or past the
// last pillar of a curve with no extrapolation value, yields NaN rather than
// an error. Hot-path evaluation never panics; callers that care must check
// math.IsNaN on the result.
package curve

import (
	"errors"
	"math"
)

var (
	// ErrEmptyCurve is returned by Back on a piecewise-flat curve with no
	// pillars.
	ErrEmptyCurve = errors.New("curve: empty curve")

	// ErrInvalidPillars is returned when pillar times are not strictly
	// increasing or the time and rate slices differ in length.
	ErrInvalidPillars = errors.New("curve: invalid pillar sequence")
)

// Point is a (time, forward rate) pillar.
type Point struct {
	Time float64
	Rate float64
}

// Curve is the forward-curve contract shared by all variants.
//
// Curves are not safe for concurrent use: Extrapolate mutates state without
// synchronization, so concurrent readers need external locking.
type Curve interface {
	// Value returns the instantaneous forward rate at time u.
	// Piecewise-flat curves return NaN for u < 0.
	Value(u float64) float64

	// Integral returns the definite integral of the forward rate from t
	// to u, in closed form.
	Integral(u, t float64) float64

	// Extrapolate sets the forward rate assumed beyond the last pillar
	// and returns the receiver for chaining.
	Extrapolate(f float64) Curve

	// Extrapolation returns the current extrapolation rate; NaN means the
	// curve is undefined beyond its last pillar.
	Extrapolation() float64

	// Back returns the curve's last defined pillar. A Constant reports
	// time +Inf; an empty piecewise-flat curve reports ErrEmptyCurve.
	Back() (Point, error)
}

// Discount returns exp(-Integral(u, t)), the value at t of one unit paid
// at u. Always non-negative, and exactly 1 when u == t.
func Discount(c Curve, u, t float64) float64 {
	return math.Exp(-c.Integral(u, t))
}

// Spot returns the average continuously-compounded rate over [t, u],
// -log(Discount(u, t))/(u - t). Singular as u approaches t: the caller is
// expected to avoid u == t, which yields NaN or Inf, not an error.
func Spot(c Curve, u, t float64) float64 {
	return -math.Log(Discount(c, u, t)) / (u - t)
}

// Forward returns c.Value(u + t): t is an offset added to the query time,
// not a valuation date.
func Forward(c Curve, u, t float64) float64 {
	return c.Value(u + t)
}
