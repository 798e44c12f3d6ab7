// Package instrument models a fixed-income instrument as parallel
// (time, cash) sequences in year-fraction time, the form every curve-based
// valuation consumes.
package instrument

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInstrument is returned by Back on an instrument with no
	// cash flows.
	ErrEmptyInstrument = errors.New("instrument: no cash flows")

	// ErrLengthMismatch is returned when time and cash slices differ in
	// length.
	ErrLengthMismatch = errors.New("instrument: time and cash length mismatch")
)

// View is a non-owning window over an instrument's cash-flow arrays. It
// borrows the caller's slices; the caller must keep them alive and unchanged
// while the view is in use.
type View struct {
	u []float64 // times
	c []float64 // cash amounts
}

// NewView wraps the given time and cash slices without copying.
func NewView(times, cash []float64) (View, error) {
	if len(times) != len(cash) {
		return View{}, fmt.Errorf("%w: %d times vs %d cash", ErrLengthMismatch, len(times), len(cash))
	}
	return View{u: times, c: cash}, nil
}

// Len returns the number of cash flows.
func (v View) Len() int {
	return len(v.u)
}

// Time returns the borrowed time slice.
func (v View) Time() []float64 {
	return v.u
}

// Cash returns the borrowed cash slice.
func (v View) Cash() []float64 {
	return v.c
}

// Back returns the final (time, cash) pair.
func (v View) Back() (u, c float64, err error) {
	if len(v.u) == 0 {
		return 0, 0, ErrEmptyInstrument
	}
	n := len(v.u) - 1
	return v.u[n], v.c[n], nil
}

// Value is an owning cash-flow sequence built incrementally, e.g. by a bond
// schedule generator. Its View method exposes it for valuation.
type Value struct {
	u []float64
	c []float64
}

// Push appends a cash flow. Times are expected in increasing order; Push
// does not enforce this.
func (iv *Value) Push(u, c float64) {
	iv.u = append(iv.u, u)
	iv.c = append(iv.c, c)
}

// Len returns the number of cash flows.
func (iv *Value) Len() int {
	return len(iv.u)
}

// View returns a non-owning view of the accumulated cash flows.
func (iv *Value) View() View {
	return View{u: iv.u, c: iv.c}
}

// Back returns the final (time, cash) pair.
func (iv *Value) Back() (u, c float64, err error) {
	return iv.View().Back()
}
