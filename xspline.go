package spline

// The X-spline family of Blanc and Schlick (1995). A shape value steers each
// control point continuously between interpolating (sharp) and approximating
// (smooth) behavior: positive shapes stretch the support of the neighboring
// points across the node, negative shapes (extended/general variants only)
// sharpen it with dedicated blend kernels. Contributions of the four nearby
// nodes are blended and normalized by the weight sum; no coefficients are
// cached because every weight depends only on the local window.

// fBlend is the quintic blending kernel over an extended support; den is the
// signed support width and sets the polynomial's shape via p = 2*den².
func fBlend(num, den float64) float64 {
	p := 2 * den * den
	u := num / den
	u2 := u * u
	return u * u2 * (10 - p + (2*p-15)*u + (6-p)*u2)
}

// gBlend is the near-side kernel for negative shape values; q = 0 reduces it
// to the p = 2 quintic.
func gBlend(u, q float64) float64 {
	return u * (q + u*(2*q+u*(8-12*q+u*(14*q-11+u*(4-5*q)))))
}

// hBlend is the far-side kernel for negative shape values.
func hBlend(u, q float64) float64 {
	u2 := u * u
	return u * (q + u*(2*q+u2*(-2*q-u*q)))
}

// xKernel computes the four window weights for local parameter t in [0, 1],
// where s1 and s2 are the shape values at the segment's start and end nodes.
type xKernel func(t, s1, s2 float64) [windowPoints]float64

// extendedKernel implements the full extended scheme: variable-power f
// blends over stretched supports for non-negative shapes, asymmetric g/h
// blends with q = -s/2 for negative ones.
func extendedKernel(t, s1, s2 float64) (a [windowPoints]float64) {
	if s1 >= 0 {
		if t < s1 {
			a[0] = fBlend(t-s1, -1-s1)
		}
		a[2] = fBlend(t+s1, 1+s1)
	} else {
		q := -s1 / 2
		a[0] = hBlend(-t, q)
		a[2] = gBlend(t, q)
	}
	if s2 >= 0 {
		a[1] = fBlend(t-1-s2, -1-s2)
		if t > 1-s2 {
			a[3] = fBlend(t-1+s2, 1+s2)
		}
	} else {
		q := -s2 / 2
		a[1] = gBlend(1-t, q)
		a[3] = hBlend(t-1, q)
	}
	return a
}

// generalKernel shares the extended support rule but blends with a single
// fixed-power quintic for non-negative shapes and q = -s for negative ones.
func generalKernel(t, s1, s2 float64) (a [windowPoints]float64) {
	if s1 >= 0 {
		if t < s1 {
			a[0] = gBlend((s1-t)/(1+s1), 0)
		}
		a[2] = gBlend((t+s1)/(1+s1), 0)
	} else {
		a[0] = hBlend(-t, -s1)
		a[2] = gBlend(t, -s1)
	}
	if s2 >= 0 {
		a[1] = gBlend((1+s2-t)/(1+s2), 0)
		if t > 1-s2 {
			a[3] = gBlend((t-1+s2)/(1+s2), 0)
		}
	} else {
		a[1] = gBlend(1-t, -s2)
		a[3] = hBlend(t-1, -s2)
	}
	return a
}

// evalXSpline blends the segment's four-node window with the given kernel.
func evalXSpline(c *store, kernel xKernel, shapeAt func(int) float64, p float64) (Vector, int, error) {
	if err := c.evalCheck(minEntriesLocal); err != nil {
		return Vector{}, 0, err
	}
	e := c.entries
	n := len(e)
	if n == 1 {
		return e[0].Vec, c.terms, nil
	}
	i := c.findSegment(p)
	w := e[i+1].Par - e[i].Par
	if w == 0 {
		return e[i+1].Vec, c.terms, nil
	}
	t := (p - e[i].Par) / w

	a := kernel(t, shapeAt(i), shapeAt(i+1))
	sum := a[0] + a[1] + a[2] + a[3]
	if sum == 0 {
		// Far extrapolation can defeat every kernel; pin to the nearer
		// segment endpoint.
		if t < 0.5 {
			return e[i].Vec, c.terms, nil
		}
		return e[i+1].Vec, c.terms, nil
	}

	j0, j3 := i-1, i+2
	if j0 < 0 {
		j0 = 0
	}
	if j3 > n-1 {
		j3 = n - 1
	}
	var v Vector
	for k := 0; k < c.terms; k++ {
		v[k] = (a[0]*e[j0].Vec[k] + a[1]*e[i].Vec[k] +
			a[2]*e[i+1].Vec[k] + a[3]*e[j3].Vec[k]) / sum
	}
	return v, c.terms, nil
}

// localShaped is the shared store of the per-node shape variants.
type localShaped struct {
	store
	shapes []float64
}

func (s *localShaped) insertShaped(par float64, val []float64, shape float64) error {
	if err := s.insert(par, val); err != nil {
		return err
	}
	s.shapes = append(s.shapes, clampShape(shape, extendedShapeMin, extendedShapeMax))
	return nil
}

func (s *localShaped) shapeAt(i int) float64 { return s.shapes[i] }

func clampShape(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// extendedXSpline: per-node shape, extended kernel.
type extendedXSpline struct {
	localShaped
}

func (s *extendedXSpline) Extension() ExtensionKind { return ExtensionLocalShape }

func (s *extendedXSpline) Clone() Spline {
	out := &extendedXSpline{}
	s.cloneInto(&out.store)
	out.shapes = append([]float64(nil), s.shapes...)
	return out
}

func (s *extendedXSpline) Evaluate(p float64) (Vector, int, error) {
	return evalXSpline(&s.store, extendedKernel, s.shapeAt, p)
}

// generalXSpline: per-node shape, general kernel.
type generalXSpline struct {
	localShaped
}

func (s *generalXSpline) Extension() ExtensionKind { return ExtensionLocalShape }

func (s *generalXSpline) Clone() Spline {
	out := &generalXSpline{}
	s.cloneInto(&out.store)
	out.shapes = append([]float64(nil), s.shapes...)
	return out
}

func (s *generalXSpline) Evaluate(p float64) (Vector, int, error) {
	return evalXSpline(&s.store, generalKernel, s.shapeAt, p)
}

// basicXSpline: one non-negative shape shared by the whole curve; the last
// inserted value wins.
type basicXSpline struct {
	store
	shape float64
}

func (s *basicXSpline) Extension() ExtensionKind { return ExtensionGlobalShape }

func (s *basicXSpline) Clone() Spline {
	out := &basicXSpline{shape: s.shape}
	s.cloneInto(&out.store)
	return out
}

func (s *basicXSpline) insertShaped(par float64, val []float64, shape float64) error {
	if err := s.insert(par, val); err != nil {
		return err
	}
	s.shape = clampShape(shape, basicShapeMin, basicShapeMax)
	return nil
}

func (s *basicXSpline) Evaluate(p float64) (Vector, int, error) {
	return evalXSpline(&s.store, extendedKernel, func(int) float64 { return s.shape }, p)
}
