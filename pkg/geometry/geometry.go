// Package geometry provides the analytic surface models and the local-to-lab
// frame transform consumed by the plot pipeline. Heights outside a surface's
// real-valued domain are reported as NaN, never as an error; the pipeline is
// built to carry NaN through.
package geometry

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mkrell/rayplot/pkg/system"
)

// Model evaluates surface sag heights in the surface's local frame. It
// handles conic sections, tilted flats and annular stop plates; a plain
// flat surface has zero height everywhere inside its aperture.
type Model struct{}

// NewModel returns a new analytic surface model.
func NewModel() *Model {
	return &Model{}
}

// Height returns the surface sag z at each local (x, y) sample. The output
// slice always has the same length as pts; out-of-domain samples are NaN.
func (m *Model) Height(s *system.Surface, pts []v2.Vec) []float64 {
	zs := make([]float64, len(pts))

	switch {
	case s.Curv != 0:
		conicSag(s, pts, zs)
	case tilted(s.Dir):
		planeSag(s, pts, zs)
	default:
		for i := range zs {
			zs[i] = 0
		}
	}

	// Stops with a clear-aperture hole have no material inside it.
	if s.InnerDiam > 0 {
		hole := s.InnerDiam / 2
		for i, p := range pts {
			if p.Length() < hole {
				zs[i] = math.NaN()
			}
		}
	}

	return zs
}

// conicSag evaluates the standard conic sag equation
//
//	z = c r² / (1 + sqrt(1 - (1+K) c² r²))
//
// writing NaN where the radicand is negative (beyond the real-valued
// extent of the conic).
func conicSag(s *system.Surface, pts []v2.Vec, zs []float64) {
	c := s.Curv
	k := s.Conic
	for i, p := range pts {
		r2 := p.X*p.X + p.Y*p.Y
		rad := 1 - (1+k)*c*c*r2
		if rad < 0 {
			zs[i] = math.NaN()
			continue
		}
		zs[i] = c * r2 / (1 + math.Sqrt(rad))
	}
}

// planeSag evaluates a flat surface tilted by the direction angles Dir:
// the plane through the vertex whose normal is the rotated local z axis.
func planeSag(s *system.Surface, pts []v2.Vec, zs []float64) {
	n := EulerRotation(s.Dir).MulPosition(v3.Vec{Z: 1})
	if n.Z == 0 {
		// Plane parallel to the local z axis; height is undefined.
		for i := range zs {
			zs[i] = math.NaN()
		}
		return
	}
	for i, p := range pts {
		zs[i] = -(n.X*p.X + n.Y*p.Y) / n.Z
	}
}

// tilted reports whether any direction angle is a non-trivial rotation,
// i.e. not a multiple of pi.
func tilted(dir v3.Vec) bool {
	for _, a := range []float64{dir.X, dir.Y, dir.Z} {
		if math.Mod(a/math.Pi, 1) != 0 {
			return true
		}
	}
	return false
}

// EulerRotation builds the Rz·Ry·Rx rotation for the given Euler angles
// in radians.
func EulerRotation(rot v3.Vec) sdf.M44 {
	return sdf.RotateZ(rot.Z).Mul(sdf.RotateY(rot.Y)).Mul(sdf.RotateX(rot.X))
}
