package spline

import "fmt"

// The free-function surface mirrors how a host interpreter drives the
// engine: insert control points in source order, evaluate during scene
// evaluation, and manage sharing across named identifiers with explicit
// references.

// tangentInserter is implemented by variants collecting TangentShape pairs.
type tangentInserter interface {
	insertTangent(par float64, val []float64, in, out TangentShape) error
}

// shapeInserter is implemented by variants collecting shape scalars.
type shapeInserter interface {
	insertShaped(par float64, val []float64, shape float64) error
}

// Insert appends a plain control point. It fails with ErrExtensionMismatch
// when the variant declares an extension kind and therefore needs
// InsertTangent or InsertShaped instead.
func Insert(s Spline, par float64, val []float64) error {
	if ext := s.Extension(); ext != ExtensionNone {
		return fmt.Errorf("%w: %s spline requires extension data",
			ErrExtensionMismatch, s.base().kind)
	}
	return s.base().insert(par, val)
}

// InsertTangent appends a control point with incoming and outgoing tangent
// shapes. Only variants declaring ExtensionTangentShape accept it.
func InsertTangent(s Spline, par float64, val []float64, in, out TangentShape) error {
	t, ok := s.(tangentInserter)
	if !ok {
		return fmt.Errorf("%w: %s spline does not take tangent shapes",
			ErrExtensionMismatch, s.base().kind)
	}
	return t.insertTangent(par, val, in, out)
}

// InsertShaped appends a control point with a shape scalar. For
// ExtensionLocalShape variants the value applies to this point; for
// ExtensionGlobalShape variants the last inserted value applies to the whole
// curve.
func InsertShaped(s Spline, par float64, val []float64, shape float64) error {
	t, ok := s.(shapeInserter)
	if !ok {
		return fmt.Errorf("%w: %s spline does not take shape values",
			ErrExtensionMismatch, s.base().kind)
	}
	return t.insertShaped(par, val, shape)
}

// Evaluate returns the interpolated vector at parameter p and the number of
// active components, building the coefficient cache first if needed.
func Evaluate(s Spline, p float64) (Vector, int, error) {
	return s.Evaluate(p)
}

// Copy returns a deep copy with an independent store, no cache and a
// reference count of one.
func Copy(s Spline) Spline {
	s.base().mustAlive()
	return s.Clone()
}

// Acquire adds a shared-ownership reference.
func Acquire(s Spline) {
	c := s.base()
	c.mustAlive()
	c.refs.Add(1)
}

// Release drops a reference and tears the spline down when the count reaches
// zero. Releasing more times than acquired panics.
func Release(s Spline) {
	c := s.base()
	c.mustAlive()
	switch n := c.refs.Add(-1); {
	case n == 0:
		c.teardown()
	case n < 0:
		panic("spline: release without matching acquire")
	}
}

// Destroy tears the spline down unconditionally. It is meant for a sole
// owner that never handed out references.
func Destroy(s Spline) {
	s.base().teardown()
}
