// Package scene defines the value type produced by the script engine and
// consumed by the sampling and preview layers, plus its tiered
// validation.
package scene

import (
	"github.com/mhollis/hyperlattice/pkg/geometry"
	"github.com/mhollis/hyperlattice/pkg/math4"
)

// Scene is one complete, self-contained evaluation request: a geometry
// variant, a rotation state, parameter knobs, an explicit time, and an
// optional set of 4D sample points. Scenes are plain values with no
// lifecycle; evaluating the same scene twice gives identical results.
type Scene struct {
	Name     string               `json:"name"`
	Geometry int                  `json:"geometry"`
	Angles   math4.RotationAngles `json:"angles"`
	Params   geometry.Params      `json:"params"`
	Time     float64              `json:"time"`
	Samples  []math4.Vec4         `json:"samples,omitempty"`
}

// New returns a scene with the reference parameter set and no samples.
func New(name string) *Scene {
	return &Scene{
		Name:   name,
		Params: geometry.DefaultParams(),
	}
}

// Distances evaluates the scene's field at every sample point, in order.
func (s *Scene) Distances() []float64 {
	out := make([]float64, len(s.Samples))
	for i, p := range s.Samples {
		out[i] = geometry.Distance(p, s.Geometry, s.Angles, s.Params, s.Time)
	}
	return out
}

// DistanceAt evaluates the scene's field at a single point.
func (s *Scene) DistanceAt(p math4.Vec4) float64 {
	return geometry.Distance(p, s.Geometry, s.Angles, s.Params, s.Time)
}
