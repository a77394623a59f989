package spline

// linearSpline interpolates in a straight line between the bracketing
// entries. Purely local: no cache, exact at control points.
type linearSpline struct {
	store
}

func (s *linearSpline) Extension() ExtensionKind { return ExtensionNone }

func (s *linearSpline) Clone() Spline {
	out := &linearSpline{}
	s.cloneInto(&out.store)
	return out
}

func (s *linearSpline) Evaluate(p float64) (Vector, int, error) {
	if err := s.evalCheck(minEntriesLocal); err != nil {
		return Vector{}, 0, err
	}
	if len(s.entries) == 1 {
		return s.entries[0].Vec, s.terms, nil
	}
	i := s.findSegment(p)
	return s.segment(i, p), s.terms, nil
}

// segment evaluates the straight line through entries i and i+1 at p,
// extrapolating freely outside the segment.
func (s *linearSpline) segment(i int, p float64) Vector {
	e := s.entries
	w := e[i+1].Par - e[i].Par
	if w == 0 {
		return e[i+1].Vec
	}
	t := (p - e[i].Par) / w
	var v Vector
	for k := 0; k < s.terms; k++ {
		v[k] = e[i].Vec[k] + t*(e[i+1].Vec[k]-e[i].Vec[k])
	}
	return v
}
