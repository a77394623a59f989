// Package curvefile loads YAML curve descriptions for the command line
// tools: the variant kind, the control points and whatever extension data
// the variant declares.
package curvefile

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	spline "github.com/tphakala/go-spline"
)

// Tangent mirrors one tension/continuity/bias triple in YAML.
type Tangent struct {
	Tension    any `yaml:"tension"`
	Continuity any `yaml:"continuity"`
	Bias       any `yaml:"bias"`
}

// Point is one control point. Scalar fields are decoded loosely (YAML may
// deliver ints, floats or strings) and coerced when the spline is built.
type Point struct {
	Par   any      `yaml:"par"`
	Value []any    `yaml:"value"`
	Shape any      `yaml:"shape"`
	In    *Tangent `yaml:"in"`
	Out   *Tangent `yaml:"out"`
}

// Scene is the YAML document root.
type Scene struct {
	Kind   string  `yaml:"kind"`
	Shape  any     `yaml:"shape"`
	Points []Point `yaml:"points"`
}

var kindNames = map[string]spline.Kind{
	"linear":      spline.Linear,
	"quadratic":   spline.Quadratic,
	"natural":     spline.Natural,
	"catmull-rom": spline.CatmullRom,
	"sor":         spline.SOR,
	"akima":       spline.Akima,
	"tcb":         spline.TCB,
	"basic-x":     spline.BasicX,
	"extended-x":  spline.ExtendedX,
	"general-x":   spline.GeneralX,
}

// Load reads and decodes a curve description.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a curve description from raw YAML.
func Parse(raw []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(raw, &scene); err != nil {
		return nil, err
	}
	if len(scene.Points) == 0 {
		return nil, fmt.Errorf("no control points")
	}
	return &scene, nil
}

// Build constructs the spline and inserts every control point with the
// extension data the variant declares.
func (sc *Scene) Build() (spline.Spline, error) {
	kind, ok := kindNames[sc.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", sc.Kind)
	}
	s, err := spline.New(kind)
	if err != nil {
		return nil, err
	}

	globalShape, err := optFloat(sc.Shape, 0)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}

	for i, pt := range sc.Points {
		par, err := cast.ToFloat64E(pt.Par)
		if err != nil {
			return nil, fmt.Errorf("point %d par: %w", i, err)
		}
		val := make([]float64, len(pt.Value))
		for j, raw := range pt.Value {
			if val[j], err = cast.ToFloat64E(raw); err != nil {
				return nil, fmt.Errorf("point %d value[%d]: %w", i, j, err)
			}
		}

		switch s.Extension() {
		case spline.ExtensionNone:
			err = spline.Insert(s, par, val)
		case spline.ExtensionTangentShape:
			var in, out spline.TangentShape
			if in, err = toTangent(pt.In); err != nil {
				return nil, fmt.Errorf("point %d in: %w", i, err)
			}
			if out, err = toTangent(pt.Out); err != nil {
				return nil, fmt.Errorf("point %d out: %w", i, err)
			}
			err = spline.InsertTangent(s, par, val, in, out)
		case spline.ExtensionGlobalShape:
			err = spline.InsertShaped(s, par, val, globalShape)
		case spline.ExtensionLocalShape:
			var shape float64
			if shape, err = optFloat(pt.Shape, globalShape); err != nil {
				return nil, fmt.Errorf("point %d shape: %w", i, err)
			}
			err = spline.InsertShaped(s, par, val, shape)
		}
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return s, nil
}

// ParameterRange returns the lowest and highest control point parameter.
func (sc *Scene) ParameterRange() (lo, hi float64) {
	for i, pt := range sc.Points {
		p, err := cast.ToFloat64E(pt.Par)
		if err != nil {
			continue
		}
		if i == 0 || p < lo {
			lo = p
		}
		if i == 0 || p > hi {
			hi = p
		}
	}
	return lo, hi
}

func toTangent(src *Tangent) (spline.TangentShape, error) {
	if src == nil {
		return spline.TangentShape{}, nil
	}
	var ts spline.TangentShape
	var err error
	if ts.Tension, err = optFloat(src.Tension, 0); err != nil {
		return ts, err
	}
	if ts.Continuity, err = optFloat(src.Continuity, 0); err != nil {
		return ts, err
	}
	if ts.Bias, err = optFloat(src.Bias, 0); err != nil {
		return ts, err
	}
	return ts, nil
}

func optFloat(raw any, fallback float64) (float64, error) {
	if raw == nil {
		return fallback, nil
	}
	return cast.ToFloat64E(raw)
}
