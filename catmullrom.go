package spline

// catmullRomSpline is local cubic Hermite interpolation whose tangent at
// each point comes from its two neighbors. Purely local: the four nearest
// points are reread on every call, so no cache is kept. Needs at least four
// entries; the window is clamped near the ends, which degrades the boundary
// segments toward the neighboring interior model.
type catmullRomSpline struct {
	store
}

func (s *catmullRomSpline) Extension() ExtensionKind { return ExtensionNone }

func (s *catmullRomSpline) Clone() Spline {
	out := &catmullRomSpline{}
	s.cloneInto(&out.store)
	return out
}

func (s *catmullRomSpline) Evaluate(p float64) (Vector, int, error) {
	if err := s.evalCheck(minEntriesWindow); err != nil {
		return Vector{}, 0, err
	}
	e := s.entries
	n := len(e)
	if n == 1 {
		return e[0].Vec, s.terms, nil
	}

	// Clamp the segment so that both outer neighbors exist; boundary
	// parameters extrapolate through the nearest full window.
	i := s.findSegment(p)
	if i < 1 {
		i = 1
	}
	if i > n-3 {
		i = n - 3
	}
	w := e[i+1].Par - e[i].Par
	if w == 0 {
		return e[i+1].Vec, s.terms, nil
	}
	t := (p - e[i].Par) / w
	t2 := t * t
	t3 := t2 * t

	// Uniform Catmull-Rom basis over the normalized segment.
	b0 := 0.5 * (-t3 + 2*t2 - t)
	b1 := 0.5 * (3*t3 - 5*t2 + 2)
	b2 := 0.5 * (-3*t3 + 4*t2 + t)
	b3 := 0.5 * (t3 - t2)

	var v Vector
	for k := 0; k < s.terms; k++ {
		v[k] = b0*e[i-1].Vec[k] + b1*e[i].Vec[k] + b2*e[i+1].Vec[k] + b3*e[i+2].Vec[k]
	}
	return v, s.terms, nil
}
