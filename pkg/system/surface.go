// Package system defines the optical-system data model for rayplot:
// the ordered surface sequence, traced rays, and validation over both.
package system

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Interaction enumerates what a surface does to a ray that reaches it.
type Interaction int

const (
	Refraction Interaction = iota // refracting lens face
	Reflection                    // mirror
	Stop                          // aperture stop / baffle
)

func (i Interaction) String() string {
	switch i {
	case Refraction:
		return "refraction"
	case Reflection:
		return "reflection"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Surface is one optical element in the system sequence. Shape parameters
// describe the surface in its own local frame; Pos and Rot place that frame
// in the lab frame. Surfaces are immutable for the duration of a plot.
type Surface struct {
	Name      string      `json:"name,omitempty"`
	Diam      float64     `json:"diam"`                 // full aperture diameter; sampling spans [-Diam/2, Diam/2]
	InnerDiam float64     `json:"inner_diam,omitempty"` // clear-aperture hole diameter (stops)
	Curv      float64     `json:"curv"`                 // vertex curvature, 1/radius
	Conic     float64     `json:"conic"`                // conic constant K
	Dir       v3.Vec      `json:"dir"`                  // direction angles of a tilted flat, radians
	Inter     Interaction `json:"inter"`
	Pos       v3.Vec      `json:"pos"` // vertex position, lab frame
	Rot       v3.Vec      `json:"rot"` // Euler pose angles, radians
}

// Refracting reports whether the surface bends rays by refraction. This is
// the single predicate behind lens pairing; the clipper and the stitcher
// both go through System.LensPair so they cannot disagree on the test.
func (s *Surface) Refracting() bool {
	return s.Inter == Refraction
}
