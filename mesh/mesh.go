// Package mesh triangulates UV-evaluable surfaces into lattice meshes.
//
// The package consumes any surface exposing the UV evaluation capability
// (a vertex per (u, v) pair plus the parameter bounds) and emits triangles
// over a regular lattice: each cell splits into two triangles along a
// diagonal whose direction alternates in a checkerboard pattern, and
// degenerate triangles are suppressed. [Lathe] adapts a spline profile into
// such a surface by revolving it around the vertical axis.
package mesh

import (
	"errors"
	"fmt"
)

// ErrBadSteps indicates a non-positive lattice step count.
var ErrBadSteps = errors.New("lattice steps must be positive")

// Point is a position in 3D space.
type Point [3]float64

// Triangle is three corner points in emission order.
type Triangle [3]Point

// UVSurface is the evaluation capability a meshable surface must provide.
// UVVertex must be defined over the whole rectangle spanned by UVMin and
// UVMax.
type UVSurface interface {
	UVVertex(u, v float64) Point
	UVMin() (u, v float64)
	UVMax() (u, v float64)
}

// Tessellate samples s on a (uSteps+1) x (vSteps+1) lattice across its UV
// bounds and maps every cell to two triangles. The cell diagonal direction
// follows the (u xor v) & 1 checkerboard parity, and any triangle whose
// three points are not pairwise distinct is skipped.
func Tessellate(s UVSurface, uSteps, vSteps int) ([]Triangle, error) {
	if uSteps < 1 || vSteps < 1 {
		return nil, fmt.Errorf("%w: got %d x %d", ErrBadSteps, uSteps, vSteps)
	}
	u0, v0 := s.UVMin()
	u1, v1 := s.UVMax()
	du := (u1 - u0) / float64(uSteps)
	dv := (v1 - v0) / float64(vSteps)

	grid := make([]Point, (uSteps+1)*(vSteps+1))
	idx := func(u, v int) int { return v*(uSteps+1) + u }
	for v := 0; v <= vSteps; v++ {
		for u := 0; u <= uSteps; u++ {
			grid[idx(u, v)] = s.UVVertex(u0+float64(u)*du, v0+float64(v)*dv)
		}
	}

	tris := make([]Triangle, 0, 2*uSteps*vSteps)
	for v := 0; v < vSteps; v++ {
		for u := 0; u < uSteps; u++ {
			a := grid[idx(u, v)]
			b := grid[idx(u+1, v)]
			c := grid[idx(u+1, v+1)]
			d := grid[idx(u, v+1)]
			if (u^v)&1 == 0 {
				tris = appendTriangle(tris, a, b, c)
				tris = appendTriangle(tris, a, c, d)
			} else {
				tris = appendTriangle(tris, b, c, d)
				tris = appendTriangle(tris, b, d, a)
			}
		}
	}
	return tris, nil
}

// appendTriangle drops degenerate triangles: all three corners must be
// pairwise distinct.
func appendTriangle(tris []Triangle, a, b, c Point) []Triangle {
	if a == b || b == c || a == c {
		return tris
	}
	return append(tris, Triangle{a, b, c})
}
