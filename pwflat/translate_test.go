package pwflat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/fwdcurve/pwflat"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("zero shift keeps everything", func(t *testing.T) {
		t.Parallel()

		times := []float64{1, 2, 4}
		view := pwflat.Translate(0, times)
		assert.Equal(t, []float64{1, 2, 4}, view)
	})

	t.Run("drops expired pillars", func(t *testing.T) {
		t.Parallel()

		times := []float64{1, 2, 4}
		view := pwflat.Translate(1, times)
		assert.Equal(t, []float64{1, 3}, view)

		// A pillar landing exactly on zero counts as expired.
		times = []float64{1, 2, 4}
		view = pwflat.Translate(2, times)
		assert.Equal(t, []float64{2}, view)
	})

	t.Run("negative shift rolls backward", func(t *testing.T) {
		t.Parallel()

		times := []float64{1, 2, 4}
		view := pwflat.Translate(-3, times)
		assert.Equal(t, []float64{4, 5, 7}, view)
	})

	t.Run("round trip restores bit for bit", func(t *testing.T) {
		t.Parallel()

		times := []float64{0.25, 1, 2.5, 4, 10}
		orig := append([]float64(nil), times...)

		pwflat.Translate(1.5, times)
		pwflat.Translate(-1.5, times)
		assert.Equal(t, orig, times)
	})
}

func TestTranslation(t *testing.T) {
	t.Parallel()

	t.Run("scoped view and restore", func(t *testing.T) {
		t.Parallel()

		times := []float64{1, 2, 4}
		orig := append([]float64(nil), times...)

		tr := pwflat.NewTranslation(1, times)
		require.Equal(t, 2, tr.Len())
		assert.Equal(t, []float64{1, 3}, tr.Times())

		tr.Restore()
		assert.Equal(t, orig, times)
	})

	t.Run("restore is idempotent", func(t *testing.T) {
		t.Parallel()

		times := []float64{1, 2, 4}
		orig := append([]float64(nil), times...)

		tr := pwflat.NewTranslation(2, times)
		defer tr.Restore()

		require.Equal(t, 1, tr.Len())
		tr.Restore()
		tr.Restore()
		assert.Equal(t, orig, times)
	})

	t.Run("all pillars expired", func(t *testing.T) {
		t.Parallel()

		times := []float64{1, 2, 4}
		orig := append([]float64(nil), times...)

		tr := pwflat.NewTranslation(5, times)
		assert.Equal(t, 0, tr.Len())
		assert.Empty(t, tr.Times())

		tr.Restore()
		assert.Equal(t, orig, times)
	})
}
