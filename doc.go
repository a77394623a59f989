// Package spline provides polymorphic parametric curve interpolation in pure Go.
//
// A spline maps a scalar parameter to a small fixed-dimension vector (2 to 5
// components, the "terms" of the curve). Control points are supplied one at a
// time in source order and the curve is then evaluated at arbitrary
// parameters, inside or outside the covered range, using one of several
// interchangeable interpolation algorithms.
//
// # Variants
//
//   - [Linear]: straight-line interpolation between bracketing points.
//   - [Quadratic]: degree-2 fit through a three-point window.
//   - [Natural]: global natural cubic spline (zero second derivative at the
//     ends), solved per component with a tridiagonal system.
//   - [CatmullRom]: local cubic Hermite with neighbor-derived tangents.
//   - [SOR]: per-segment power-basis cubic through each four-point window,
//     the interpolation used by surface-of-revolution profiles.
//   - [Akima]: Akima's 1970 overshoot-resistant slope selection.
//   - [TCB]: Kochanek-Bartels tension/continuity/bias curves with separate
//     incoming and outgoing tangent shapes per point.
//   - [BasicX], [ExtendedX], [GeneralX]: the X-spline family of Blanc and
//     Schlick, where a shape parameter tunes each point continuously between
//     sharp interpolation and smooth approximation.
//
// # Quick Start
//
//	s, err := spline.New(spline.Natural)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	spline.Insert(s, 0.0, []float64{0, 0})
//	spline.Insert(s, 1.0, []float64{1, 2})
//	spline.Insert(s, 2.0, []float64{4, 0})
//
//	v, terms, err := spline.Evaluate(s, 1.5)
//
// Variants declaring an extension kind collect extra per-point data:
// [InsertTangent] for [TCB] curves and [InsertShaped] for the X-spline
// family. Inserting with the wrong extension kind fails immediately with
// [ErrExtensionMismatch].
//
// # Caching
//
// Globally-dependent variants (Natural, SOR, Akima, TCB) precompute segment
// coefficients lazily on the first evaluation after the point set changed.
// Purely local variants recompute from their small neighbor window on every
// call and carry no cache.
//
// # Sharing and Lifetime
//
// Splines carry an explicit reference count for shared ownership across
// multiple holders: [Acquire] adds a reference, [Release] drops one and tears
// the spline down when the count reaches zero, [Copy] produces a deep,
// independently-owned clone. [Destroy] is the unconditional teardown for a
// sole owner. Releasing more than acquired or touching a destroyed spline is
// a programming error and panics.
//
// # Thread Safety
//
// Construction and insertion are single-threaded operations. Evaluation of
// one shared instance from multiple goroutines is safe: the lazy coefficient
// build is published atomically, so concurrent readers either perform the
// build once under a lock or observe a fully-built cache, never a torn one.
package spline
