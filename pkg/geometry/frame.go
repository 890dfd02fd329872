package geometry

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mkrell/rayplot/pkg/system"
)

// LabFrame transforms points from a surface's local frame into the lab
// frame: rotate by the Euler pose angles, then translate to the surface
// vertex. NaN coordinates pass through untouched, so masked samples stay
// masked after the transform.
func LabFrame(rot v3.Vec, s *system.Surface, pts []v3.Vec) []v3.Vec {
	m := sdf.Translate3d(s.Pos).Mul(EulerRotation(rot))
	out := make([]v3.Vec, len(pts))
	for i, p := range pts {
		out[i] = m.MulPosition(p)
	}
	return out
}
