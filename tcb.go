package spline

import "github.com/tphakala/go-spline/internal/mathutil"

// tcbSpline is the Kochanek-Bartels spline. Every control point carries two
// independent tension/continuity/bias triples, one for the tangent entering
// the point and one for the tangent leaving it, which permits asymmetric
// corners. The derived tangents are cached per direction; all of them depend
// on neighbor values, so any insertion invalidates both sets.
type tcbSpline struct {
	store

	in  []TangentShape
	out []TangentShape

	// Cached tangents as value deltas, one per entry and component.
	incoming [][MaxTerms]float64
	outgoing [][MaxTerms]float64
}

func (s *tcbSpline) Extension() ExtensionKind { return ExtensionTangentShape }

func (s *tcbSpline) Clone() Spline {
	out := &tcbSpline{
		in:  append([]TangentShape(nil), s.in...),
		out: append([]TangentShape(nil), s.out...),
	}
	s.cloneInto(&out.store)
	return out
}

func (s *tcbSpline) insertTangent(par float64, val []float64, in, out TangentShape) error {
	if err := s.insert(par, val); err != nil {
		return err
	}
	s.in = append(s.in, in)
	s.out = append(s.out, out)
	return nil
}

func (s *tcbSpline) Evaluate(p float64) (Vector, int, error) {
	if err := s.evalCheck(minEntriesLocal); err != nil {
		return Vector{}, 0, err
	}
	e := s.entries
	n := len(e)
	if n == 1 {
		return e[0].Vec, s.terms, nil
	}
	s.ensure(s.precompute)

	i := s.findSegment(p)
	h := e[i+1].Par - e[i].Par
	if h == 0 {
		return e[i+1].Vec, s.terms, nil
	}
	t := (p - e[i].Par) / h
	h00, h10, h01, h11 := mathutil.HermiteBasis(t)

	// Standard non-uniform adjustment: scale each tangent by the ratio of
	// this segment's width to the average width at its point.
	adjOut := 1.0
	if i > 0 {
		if sum := (e[i].Par - e[i-1].Par) + h; sum != 0 {
			adjOut = 2 * h / sum
		}
	}
	adjIn := 1.0
	if i+2 < n {
		if sum := h + (e[i+2].Par - e[i+1].Par); sum != 0 {
			adjIn = 2 * h / sum
		}
	}

	var v Vector
	for k := 0; k < s.terms; k++ {
		v[k] = h00*e[i].Vec[k] + h10*adjOut*s.outgoing[i][k] +
			h01*e[i+1].Vec[k] + h11*adjIn*s.incoming[i+1][k]
	}
	return v, s.terms, nil
}

// precompute derives the incoming and outgoing tangent of every entry from
// its neighbor deltas and shape triples. End points use their single
// one-sided delta for both neighbor terms.
func (s *tcbSpline) precompute() {
	e := s.entries
	n := len(e)
	s.incoming = make([][MaxTerms]float64, n)
	s.outgoing = make([][MaxTerms]float64, n)

	for i := 0; i < n; i++ {
		for k := 0; k < s.terms; k++ {
			var prev, next float64
			switch {
			case i == 0:
				next = e[i+1].Vec[k] - e[i].Vec[k]
				prev = next
			case i == n-1:
				prev = e[i].Vec[k] - e[i-1].Vec[k]
				next = prev
			default:
				prev = e[i].Vec[k] - e[i-1].Vec[k]
				next = e[i+1].Vec[k] - e[i].Vec[k]
			}

			o := s.out[i]
			s.outgoing[i][k] = (1-o.Tension)*(1+o.Continuity)*(1+o.Bias)*0.5*prev +
				(1-o.Tension)*(1-o.Continuity)*(1-o.Bias)*0.5*next

			in := s.in[i]
			s.incoming[i][k] = (1-in.Tension)*(1-in.Continuity)*(1+in.Bias)*0.5*prev +
				(1-in.Tension)*(1+in.Continuity)*(1-in.Bias)*0.5*next
		}
	}
}
