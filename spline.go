package spline

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Vector is a fixed-capacity control-point value. Only the first "terms"
// components of a spline's vectors are active; the rest stay zero.
type Vector [MaxTerms]float64

// Entry is one control point: a parameter paired with a vector value.
// Entries are kept in insertion order, which also defines segment adjacency;
// they are not required to be sorted by parameter.
type Entry struct {
	Par float64
	Vec Vector
}

// TangentShape holds the Kochanek-Bartels shape scalars attached to one side
// of a TCB control point. Zero values reproduce a plain Catmull-Rom tangent.
type TangentShape struct {
	Tension    float64
	Continuity float64
	Bias       float64
}

// Kind selects the interpolation algorithm of a spline.
type Kind int

const (
	// Linear interpolates in a straight line between bracketing points.
	Linear Kind = iota

	// Quadratic fits a degree-2 polynomial through a three-point window.
	Quadratic

	// Natural is the global natural cubic spline.
	Natural

	// CatmullRom is local cubic Hermite interpolation with tangents derived
	// from the two neighbors of each point.
	CatmullRom

	// SOR interpolates with per-segment power-basis cubics fitted exactly
	// through each four-point window.
	SOR

	// Akima uses Akima's weighted slope selection to resist overshoot.
	Akima

	// TCB is the Kochanek-Bartels tension/continuity/bias spline with
	// separate incoming and outgoing tangent shapes per point.
	TCB

	// BasicX is an X-spline with one shape value shared by the whole curve.
	BasicX

	// ExtendedX is an X-spline with a per-point shape value in [-1, 1].
	ExtendedX

	// GeneralX is the X-spline sibling of ExtendedX with a different
	// blending kernel.
	GeneralX
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Natural:
		return "natural"
	case CatmullRom:
		return "catmull-rom"
	case SOR:
		return "sor"
	case Akima:
		return "akima"
	case TCB:
		return "tcb"
	case BasicX:
		return "basic-x"
	case ExtendedX:
		return "extended-x"
	case GeneralX:
		return "general-x"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ExtensionKind declares which per-point extension data a variant collects
// alongside each control point.
type ExtensionKind int

const (
	// ExtensionNone: plain (parameter, vector) entries.
	ExtensionNone ExtensionKind = iota

	// ExtensionTangentShape: an incoming and an outgoing TangentShape per entry.
	ExtensionTangentShape

	// ExtensionGlobalShape: one shape scalar shared by the whole curve.
	ExtensionGlobalShape

	// ExtensionLocalShape: one shape scalar per entry.
	ExtensionLocalShape
)

// Spline is the shared contract of all variants.
//
// Evaluate returns the interpolated vector at parameter p together with the
// number of active components. It fails only for malformed stores (no
// entries, or fewer than the variant's window requires); boundary
// extrapolation and degenerate segments are resolved by policy, never
// surfaced as errors. Clone returns a deep copy with an independent store and
// a reference count of one.
type Spline interface {
	Evaluate(p float64) (Vector, int, error)
	Clone() Spline
	Extension() ExtensionKind

	// base exposes the shared store; it also seals the interface to this
	// package.
	base() *store
}

// store is the shared control-point store plus lifecycle state embedded by
// every variant.
type store struct {
	kind    Kind
	entries []Entry
	terms   int

	refs atomic.Int32
	dead atomic.Bool

	// Lazy coefficient cache discipline: insertions clear ready, the first
	// evaluation rebuilds under mu and publishes by setting ready. Variants
	// without caches simply never consult it.
	mu    sync.Mutex
	ready atomic.Bool
}

func (c *store) base() *store { return c }

// New creates an empty spline of the given kind with a reference count of one.
func New(kind Kind) (Spline, error) {
	var s Spline
	switch kind {
	case Linear:
		s = &linearSpline{}
	case Quadratic:
		s = &quadraticSpline{}
	case Natural:
		s = &naturalSpline{}
	case CatmullRom:
		s = &catmullRomSpline{}
	case SOR:
		s = &sorSpline{}
	case Akima:
		s = &akimaSpline{}
	case TCB:
		s = &tcbSpline{}
	case BasicX:
		s = &basicXSpline{}
	case ExtendedX:
		s = &extendedXSpline{}
	case GeneralX:
		s = &generalXSpline{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	c := s.base()
	c.kind = kind
	c.refs.Store(1)
	return s, nil
}

// mustAlive panics when the spline has already been torn down.
func (c *store) mustAlive() {
	if c.dead.Load() {
		panic("spline: use after destroy")
	}
}

// insert validates the vector dimension, fixes terms on the first entry and
// appends. The coefficient cache is invalidated.
func (c *store) insert(par float64, val []float64) error {
	c.mustAlive()
	if len(c.entries) == 0 {
		if len(val) < MinTerms || len(val) > MaxTerms {
			return fmt.Errorf("%w: got %d components, want %d to %d",
				ErrBadDimension, len(val), MinTerms, MaxTerms)
		}
		c.terms = len(val)
	} else if len(val) != c.terms {
		return fmt.Errorf("%w: got %d components, spline has %d terms",
			ErrBadDimension, len(val), c.terms)
	}
	var v Vector
	copy(v[:], val)
	c.entries = append(c.entries, Entry{Par: par, Vec: v})
	c.ready.Store(false)
	return nil
}

// cloneInto deep-copies the shared state into dst and resets its lifecycle.
func (c *store) cloneInto(dst *store) {
	dst.kind = c.kind
	dst.terms = c.terms
	dst.entries = append([]Entry(nil), c.entries...)
	dst.refs.Store(1)
}

// evalCheck guards evaluation: it panics on destroyed splines and reports
// stores below the variant's minimum entry count.
func (c *store) evalCheck(minEntries int) error {
	c.mustAlive()
	n := len(c.entries)
	if n == 0 {
		return ErrNoEntries
	}
	if n > 1 && n < minEntries {
		return fmt.Errorf("%w: %s spline needs %d entries, has %d",
			ErrTooFewEntries, c.kind, minEntries, n)
	}
	return nil
}

// ensure runs build exactly once per store generation and publishes the
// result before any reader proceeds past the ready flag.
func (c *store) ensure(build func()) {
	if c.ready.Load() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready.Load() {
		build()
		c.ready.Store(true)
	}
}

// findSegment locates the segment bracketing p by scanning entries in
// insertion order; the first bracketing segment wins, so duplicate
// parameters resolve deterministically. Segments may run in either
// parameter direction. When p lies outside every segment, the boundary
// segment nearer to p is chosen and its local model extrapolates.
func (c *store) findSegment(p float64) int {
	e := c.entries
	n := len(e)
	for i := 0; i < n-1; i++ {
		lo, hi := e[i].Par, e[i+1].Par
		switch {
		case lo <= p && p < hi:
			return i
		case hi < p && p <= lo:
			return i
		case lo == p && p == hi:
			return i
		}
	}
	if math.Abs(p-e[0].Par) <= math.Abs(p-e[n-1].Par) {
		return 0
	}
	return n - 2
}

// teardown frees the store. A second teardown panics.
func (c *store) teardown() {
	if c.dead.Swap(true) {
		panic("spline: double destroy")
	}
	c.entries = nil
	c.ready.Store(false)
}
