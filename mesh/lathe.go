package mesh

import (
	"fmt"
	"math"

	spline "github.com/tphakala/go-spline"
)

// Lathe is a surface of revolution built from a spline profile. The
// profile's first term is the radius and its second term the height; the
// profile is revolved around the Y axis. u in [0, 1] is the fraction of the
// full revolution, v spans [VMin, VMax] of the profile parameter.
type Lathe struct {
	Profile    spline.Spline
	VMin, VMax float64
}

// NewLathe validates the profile by evaluating both ends of the parameter
// range and returns the surface. A profile below its variant's minimum entry
// count is rejected here instead of collapsing vertices mid-tessellation.
func NewLathe(profile spline.Spline, vMin, vMax float64) (*Lathe, error) {
	if _, _, err := profile.Evaluate(vMin); err != nil {
		return nil, fmt.Errorf("lathe profile at %g: %w", vMin, err)
	}
	if _, _, err := profile.Evaluate(vMax); err != nil {
		return nil, fmt.Errorf("lathe profile at %g: %w", vMax, err)
	}
	return &Lathe{Profile: profile, VMin: vMin, VMax: vMax}, nil
}

// UVMin returns the lower corner of the parameter rectangle.
func (l *Lathe) UVMin() (u, v float64) { return 0, l.VMin }

// UVMax returns the upper corner of the parameter rectangle.
func (l *Lathe) UVMax() (u, v float64) { return 1, l.VMax }

// UVVertex evaluates the profile at v and revolves the resulting
// (radius, height) pair by the angle u maps to. A profile that passed
// NewLathe cannot fail here (insertion only grows the entry count), so the
// origin fallback is unreachable for validated surfaces.
func (l *Lathe) UVVertex(u, v float64) Point {
	val, _, err := l.Profile.Evaluate(v)
	if err != nil {
		return Point{}
	}
	radius, height := val[0], val[1]
	angle := 2 * math.Pi * u
	return Point{
		radius * math.Cos(angle),
		height,
		radius * math.Sin(angle),
	}
}
