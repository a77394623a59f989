package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(pars ...float64) *store {
	c := &store{terms: 2}
	for _, p := range pars {
		c.entries = append(c.entries, Entry{Par: p})
	}
	return c
}

func TestFindSegment(t *testing.T) {
	tests := []struct {
		name string
		pars []float64
		p    float64
		want int
	}{
		{"interior", []float64{0, 1, 2, 3}, 1.5, 1},
		{"at_lower_bound", []float64{0, 1, 2, 3}, 1, 1},
		{"at_last_entry_nearest", []float64{0, 1, 2, 3}, 3, 2},
		{"below_range", []float64{0, 1, 2, 3}, -5, 0},
		{"above_range", []float64{0, 1, 2, 3}, 9, 2},
		{"descending_interior", []float64{3, 2, 1, 0}, 1.5, 1},
		{"descending_at_upper_end", []float64{3, 2, 1, 0}, 2, 1},
		{"duplicate_first_match", []float64{0, 1, 1, 2}, 1, 1},
		{"all_equal", []float64{2, 2, 2}, 2, 0},
		{"two_entries_outside", []float64{0, 1}, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := storeWith(tt.pars...)
			assert.Equal(t, tt.want, c.findSegment(tt.p))
		})
	}
}

func TestStore_EnsureBuildsOncePerGeneration(t *testing.T) {
	c := storeWith(0, 1, 2)
	builds := 0
	build := func() { builds++ }

	c.ensure(build)
	c.ensure(build)
	assert.Equal(t, 1, builds)

	require.NoError(t, c.insert(3, []float64{0, 0}))
	c.ensure(build)
	assert.Equal(t, 2, builds)
}

func TestStore_InsertFixesTermsOnFirstEntry(t *testing.T) {
	c := &store{}
	require.NoError(t, c.insert(0, []float64{1, 2, 3, 4}))
	assert.Equal(t, 4, c.terms)

	err := c.insert(1, []float64{1, 2})
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestStore_CloneIntoResetsLifecycle(t *testing.T) {
	c := storeWith(0, 1)
	c.refs.Store(3)

	var dst store
	c.cloneInto(&dst)
	assert.Equal(t, int32(1), dst.refs.Load())
	assert.Equal(t, c.terms, dst.terms)
	require.Len(t, dst.entries, 2)

	// The entry slices are independent.
	dst.entries[0].Par = 99
	assert.Equal(t, 0.0, c.entries[0].Par)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Linear, "linear"},
		{CatmullRom, "catmull-rom"},
		{SOR, "sor"},
		{BasicX, "basic-x"},
		{GeneralX, "general-x"},
		{Kind(42), "kind(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestExtensionDeclarations(t *testing.T) {
	tests := []struct {
		kind Kind
		want ExtensionKind
	}{
		{Linear, ExtensionNone},
		{Quadratic, ExtensionNone},
		{Natural, ExtensionNone},
		{CatmullRom, ExtensionNone},
		{SOR, ExtensionNone},
		{Akima, ExtensionNone},
		{TCB, ExtensionTangentShape},
		{BasicX, ExtensionGlobalShape},
		{ExtendedX, ExtensionLocalShape},
		{GeneralX, ExtensionLocalShape},
	}
	for _, tt := range tests {
		s, err := New(tt.kind)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Extension(), "kind %s", tt.kind)
	}
}
