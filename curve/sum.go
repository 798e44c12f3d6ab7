package curve

// Sum is the lazy algebraic sum of two curves. It borrows its operands:
// they are never copied, must outlive the Sum, and mutations to either are
// visible through it. Sums are meant to be transient, built for an
// expression and consumed immediately.
type Sum struct {
	f, g Curve
}

// NewSum returns the curve f + g.
func NewSum(f, g Curve) *Sum {
	return &Sum{f: f, g: g}
}

// NewSpread returns the curve f shifted by a constant spread s, with the
// scalar wrapped in a transient Constant operand.
func NewSpread(f Curve, s float64) *Sum {
	return &Sum{f: f, g: NewConstant(s)}
}

// Value returns f.Value(u) + g.Value(u).
func (s *Sum) Value(u float64) float64 {
	return s.f.Value(u) + s.g.Value(u)
}

// Integral returns f.Integral(u, 0) + g.Integral(u, 0).
//
// The lower bound t is ignored: both operands are always integrated from
// zero. This diverges from the Curve contract but is long-standing observed
// behavior that downstream callers may rely on, so it is kept as is.
func (s *Sum) Integral(u, _ float64) float64 {
	return s.f.Integral(u, 0) + s.g.Integral(u, 0)
}

// Extrapolate is an inert no-op on a Sum: it does not propagate to either
// operand. Set extrapolation on the operands directly before composing.
func (s *Sum) Extrapolate(_ float64) Curve {
	return s
}

// Extrapolation returns the sum of the operands' extrapolation rates.
func (s *Sum) Extrapolation() float64 {
	return s.f.Extrapolation() + s.g.Extrapolation()
}

// Back returns the summed rate at whichever operand terminates first: the
// composed curve is only valid out to the shorter horizon, even though the
// summed value past it may still be computable.
func (s *Sum) Back() (Point, error) {
	fb, err := s.f.Back()
	if err != nil {
		return Point{}, err
	}
	gb, err := s.g.Back()
	if err != nil {
		return Point{}, err
	}

	p := Point{Time: fb.Time, Rate: fb.Rate + gb.Rate}
	if gb.Time < fb.Time {
		p.Time = gb.Time
	}
	return p, nil
}
