package bond_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/fwdcurve/bond"
	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/instrument"
)

func TestInstrument(t *testing.T) {
	t.Parallel()

	t.Run("semi-annual ten year", func(t *testing.T) {
		t.Parallel()

		v, err := bond.Instrument(bond.Simple{Maturity: 10, Coupon: 0.05, Frequency: 2})
		require.NoError(t, err)
		require.Equal(t, 20, v.Len())

		assert.Equal(t, 0.5, v.Time()[0])
		assert.Equal(t, 0.025, v.Cash()[0])

		u, c, err := v.Back()
		require.NoError(t, err)
		assert.InDelta(t, 10, u, 1e-12)
		assert.InDelta(t, 1.025, c, 1e-15)
	})

	t.Run("annual coupons", func(t *testing.T) {
		t.Parallel()

		v, err := bond.Instrument(bond.Simple{Maturity: 3, Coupon: 0.04, Frequency: 1})
		require.NoError(t, err)
		require.Equal(t, 3, v.Len())
		assert.Equal(t, []float64{1, 2, 3}, v.Time())
		assert.Equal(t, []float64{0.04, 0.04, 1.04}, v.Cash())
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		t.Parallel()

		_, err := bond.Instrument(bond.Simple{Maturity: 0, Coupon: 0.05, Frequency: 2})
		assert.Error(t, err)
		_, err = bond.Instrument(bond.Simple{Maturity: 10, Coupon: 0.05, Frequency: 0})
		assert.Error(t, err)
		_, err = bond.Instrument(bond.Simple{Maturity: 0.25, Coupon: 0.05, Frequency: 1})
		assert.Error(t, err)
	})
}

func TestPresentValue(t *testing.T) {
	t.Parallel()

	t.Run("zero curve prices at par plus coupons", func(t *testing.T) {
		t.Parallel()

		v, err := bond.Instrument(bond.Simple{Maturity: 2, Coupon: 0.05, Frequency: 1})
		require.NoError(t, err)

		// At a zero rate every flow is undiscounted.
		pv := bond.PresentValue(v, curve.NewConstant(0))
		assert.InDelta(t, 1.10, pv, 1e-15)
	})

	t.Run("flat curve matches closed form", func(t *testing.T) {
		t.Parallel()

		v, err := bond.Instrument(bond.Simple{Maturity: 3, Coupon: 0.04, Frequency: 1})
		require.NoError(t, err)

		r := 0.03
		want := 0.0
		for i, u := range v.Time() {
			want += v.Cash()[i] * math.Exp(-r*u)
		}
		assert.InDelta(t, want, bond.PresentValue(v, curve.NewConstant(r)), 1e-15)
	})

	t.Run("undefined extrapolation poisons long flows", func(t *testing.T) {
		t.Parallel()

		c, err := curve.NewPiecewiseFlat([]float64{1}, []float64{0.03})
		require.NoError(t, err)

		v, err := bond.Instrument(bond.Simple{Maturity: 2, Coupon: 0.05, Frequency: 1})
		require.NoError(t, err)

		assert.True(t, math.IsNaN(bond.PresentValue(v, c)))
		c.Extrapolate(0.03)
		assert.False(t, math.IsNaN(bond.PresentValue(v, c)))
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	t.Run("zero coupon equals maturity", func(t *testing.T) {
		t.Parallel()

		v, err := instrument.NewView([]float64{5}, []float64{1})
		require.NoError(t, err)
		assert.InDelta(t, 5, bond.Duration(v, curve.NewConstant(0.03)), 1e-12)
	})

	t.Run("coupons pull duration below maturity", func(t *testing.T) {
		t.Parallel()

		v, err := bond.Instrument(bond.Simple{Maturity: 10, Coupon: 0.05, Frequency: 2})
		require.NoError(t, err)

		d := bond.Duration(v, curve.NewConstant(0.03))
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, 10.0)
	})
}

func TestYield(t *testing.T) {
	t.Parallel()

	t.Run("round trips a flat curve price", func(t *testing.T) {
		t.Parallel()

		v, err := bond.Instrument(bond.Simple{Maturity: 10, Coupon: 0.05, Frequency: 2})
		require.NoError(t, err)

		r := 0.04
		price := bond.PresentValue(v, curve.NewConstant(r))
		y, err := bond.Yield(v, price)
		require.NoError(t, err)
		assert.InDelta(t, r, y, 1e-10)
	})

	t.Run("empty instrument errors", func(t *testing.T) {
		t.Parallel()

		empty, err := instrument.NewView(nil, nil)
		require.NoError(t, err)
		_, err = bond.Yield(empty, 1.0)
		assert.ErrorIs(t, err, instrument.ErrEmptyInstrument)
	})
}
