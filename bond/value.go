package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/instrument"
)

// PresentValue discounts every cash flow on the curve and sums:
// sum of c_i * exp(-integral of the forward rate to u_i).
//
// Queries past the curve's last pillar follow the curve's extrapolation
// policy, so an undefined tail yields NaN.
func PresentValue(v instrument.View, c curve.Curve) float64 {
	pv := 0.0
	for i, u := range v.Time() {
		pv += v.Cash()[i] * curve.Discount(c, u, 0)
	}
	return pv
}

// Duration returns the discounted time-weighted sum of cash flows divided
// by present value (Macaulay duration under continuous compounding).
func Duration(v instrument.View, c curve.Curve) float64 {
	var pv, weighted float64
	for i, u := range v.Time() {
		d := v.Cash()[i] * curve.Discount(c, u, 0)
		pv += d
		weighted += u * d
	}
	return weighted / pv
}

const (
	yieldTolerance = 1e-12
	yieldMaxIter   = 100
	yieldFloor     = -0.05
	yieldCeiling   = 0.50
)

// Yield solves for the flat continuously-compounded rate y such that
// discounting every cash flow at exp(-y*u) reproduces price.
//
// The solver is Newton-Raphson with analytic first derivative and clamped
// steps; it returns an explicit error on non-convergence.
func Yield(v instrument.View, price float64) (float64, error) {
	if v.Len() == 0 {
		return 0, fmt.Errorf("Yield: %w", instrument.ErrEmptyInstrument)
	}

	y := clamp(0.025, yieldFloor, yieldCeiling)

	for iter := 0; iter < yieldMaxIter; iter++ {
		pv, dPdy := priceAndDeriv(y, v)
		f := pv - price

		if math.Abs(f) < yieldTolerance {
			return y, nil
		}
		if math.Abs(dPdy) < 1e-15 {
			return y, fmt.Errorf("Yield: derivative too small at iter %d", iter)
		}

		y = clamp(y-f/dPdy, yieldFloor, yieldCeiling)
	}

	return y, fmt.Errorf("Yield: did not converge after %d iterations", yieldMaxIter)
}

// priceAndDeriv returns (price, dPrice/dy) at flat continuous yield y:
//
//	price = sum c_i * exp(-y*u_i)
//	dP/dy = sum -u_i * c_i * exp(-y*u_i)
func priceAndDeriv(y float64, v instrument.View) (float64, float64) {
	var price, deriv float64
	for i, u := range v.Time() {
		d := v.Cash()[i] * math.Exp(-y*u)
		price += d
		deriv += -u * d
	}
	return price, deriv
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
