package system

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Ray is a pre-traced ray: one lab-frame position and one direction per
// optical event, aligned index for index. Rays are immutable; the plot
// pipeline only reads them.
type Ray struct {
	PHist []v3.Vec `json:"p_hist"` // positions, start through final propagation point
	DHist []v3.Vec `json:"d_hist"` // unit directions, same length as PHist
}

// Terminated reports whether the ray has a defined final position. Rays
// that were vignetted or escaped the system carry NaN in their terminal
// entry and are excluded from plotting.
func (r *Ray) Terminated() bool {
	if len(r.PHist) == 0 {
		return false
	}
	last := r.PHist[len(r.PHist)-1]
	return !math.IsNaN(last.X) && !math.IsNaN(last.Y) && !math.IsNaN(last.Z)
}
