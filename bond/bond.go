// Package bond prices simple fixed-coupon bonds off a forward curve.
//
// Schedules are expressed directly in year-fraction time, matching the curve
// boundary: date and day-count arithmetic happens upstream.
package bond

import (
	"fmt"

	"github.com/meenmo/fwdcurve/instrument"
)

// Simple describes a plain fixed-coupon bullet bond with unit notional.
type Simple struct {
	// Maturity is the time to maturity in years.
	Maturity float64
	// Coupon is the annual coupon rate as a decimal (e.g. 0.05 for 5%).
	Coupon float64
	// Frequency is the number of coupon payments per year (1 = annual,
	// 2 = semi-annual).
	Frequency int
}

// Instrument expands the bond into its cash-flow sequence: Coupon/Frequency
// at each coupon time i/Frequency up to maturity, with the unit redemption
// added to the final coupon.
func Instrument(b Simple) (instrument.View, error) {
	if b.Maturity <= 0 {
		return instrument.View{}, fmt.Errorf("Instrument: maturity must be positive, got %v", b.Maturity)
	}
	if b.Frequency <= 0 {
		return instrument.View{}, fmt.Errorf("Instrument: frequency must be positive, got %d", b.Frequency)
	}

	period := 1.0 / float64(b.Frequency)
	coupon := b.Coupon * period

	var iv instrument.Value
	// Index-scaled times avoid drift from repeated addition.
	for i := 1; float64(i)*period <= b.Maturity; i++ {
		iv.Push(float64(i)*period, coupon)
	}
	if iv.Len() == 0 {
		return instrument.View{}, fmt.Errorf("Instrument: no coupon fits maturity %v at frequency %d", b.Maturity, b.Frequency)
	}

	// Redemption rides on the last coupon.
	v := iv.View()
	v.Cash()[v.Len()-1] += 1
	return v, nil
}
