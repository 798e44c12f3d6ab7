package pwflat

import "sort"

// Translate shifts every pillar time in t by -dt in place and returns the
// sub-slice of times still strictly positive: the curve rolled forward by dt
// with expired pillars discarded. The returned slice aliases t; no copy is
// made. Shifting by -dt afterwards restores the original values exactly for
// ordinary inputs.
func Translate(dt float64, t []float64) []float64 {
	for i := range t {
		t[i] -= dt
	}
	m := sort.Search(len(t), func(i int) bool { return t[i] > 0 })
	return t[m:]
}

// Translation is the scoped form of Translate. It shifts the times on
// acquisition and shifts them back on Restore, so the caller's array is
// intact on every exit path:
//
//	tr := pwflat.NewTranslation(dt, times)
//	defer tr.Restore()
//	use(tr.Times())
//
// The translation borrows t; the caller must not mutate it before Restore.
type Translation struct {
	dt   float64
	t    []float64
	view []float64
}

// NewTranslation applies Translate(dt, t) and records what is needed to
// undo it.
func NewTranslation(dt float64, t []float64) *Translation {
	return &Translation{dt: dt, t: t, view: Translate(dt, t)}
}

// Times returns the borrowed sub-slice of still-positive pillar times.
// Invalid after Restore.
func (tr *Translation) Times() []float64 {
	return tr.view
}

// Len returns the number of surviving pillar times.
func (tr *Translation) Len() int {
	return len(tr.view)
}

// Restore shifts the underlying times back by +dt. Idempotent: the second
// and later calls are no-ops, so it is safe both deferred and called early.
func (tr *Translation) Restore() {
	if tr.t == nil {
		return
	}
	Translate(-tr.dt, tr.t)
	tr.t = nil
	tr.view = nil
}
