package spline

// quadraticSpline fits a degree-2 polynomial through the bracketing pair and
// one adjacent point, chosen on the side that keeps the three-point window
// inside the data range. Purely local: no cache.
type quadraticSpline struct {
	store
}

func (s *quadraticSpline) Extension() ExtensionKind { return ExtensionNone }

func (s *quadraticSpline) Clone() Spline {
	out := &quadraticSpline{}
	s.cloneInto(&out.store)
	return out
}

func (s *quadraticSpline) Evaluate(p float64) (Vector, int, error) {
	if err := s.evalCheck(minEntriesLocal); err != nil {
		return Vector{}, 0, err
	}
	e := s.entries
	n := len(e)
	if n == 1 {
		return e[0].Vec, s.terms, nil
	}
	i := s.findSegment(p)
	if n == 2 {
		return s.linearSegment(i, p), s.terms, nil
	}

	// Three-point window: prefer the left neighbor, fall back to the right
	// one on the first segment.
	j := i - 1
	if j < 0 {
		j = 0
	}
	if j > n-3 {
		j = n - 3
	}
	x0, x1, x2 := e[j].Par, e[j+1].Par, e[j+2].Par
	if x1 == x0 || x2 == x1 || x2 == x0 {
		// Duplicate parameters make the quadratic degenerate; use the
		// bracketing segment's linear model instead.
		return s.linearSegment(i, p), s.terms, nil
	}

	var v Vector
	for k := 0; k < s.terms; k++ {
		y0, y1, y2 := e[j].Vec[k], e[j+1].Vec[k], e[j+2].Vec[k]
		// Newton divided differences through the window.
		d01 := (y1 - y0) / (x1 - x0)
		d12 := (y2 - y1) / (x2 - x1)
		d012 := (d12 - d01) / (x2 - x0)
		v[k] = y0 + (p-x0)*(d01+(p-x1)*d012)
	}
	return v, s.terms, nil
}

func (s *quadraticSpline) linearSegment(i int, p float64) Vector {
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
