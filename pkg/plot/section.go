package plot

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mkrell/rayplot/pkg/system"
)

// StitchState carries the outline endpoints of a lens's first face to its
// paired face during one pass over the surfaces. Side toggles on every
// surface whose predecessor is also refracting; the stored endpoints are
// spliced in on the toggle-to-1 transition, which pairs faces
// (1,2), (3,4), ... in a chain of refracting surfaces.
type StitchState struct {
	Start v2.Vec
	End   v2.Vec
	Ok    bool // endpoints stored
	Side  int  // 0 or 1
}

// crossSection extracts surface idx's 2D section curve for the given plot
// axes and advances the stitch state. Curve points are (F, G) pairs:
// F is the axes[0] lab coordinate, G the axes[1] coordinate. The curve is
// returned as one run per contiguous stretch of finite samples; masked
// samples break the curve so a clipped or holed region is never bridged
// by a drawn segment.
func (p *Plotter) crossSection(idx int, axes [2]int, st StitchState) ([][]v2.Vec, StitchState) {
	s := p.sys.Surfaces[idx]
	cloud := p.clouds[idx]

	// Flat zero-diameter surfaces with a tilted symmetry axis need the
	// orthogonal-axis zero crossing; everything else selects against the
	// cross-hair line of the viewing plane. Selection is exact equality:
	// only the cross-hair samples emitted by mesh generation land on
	// zero, and NaN compares false, excluding masked samples.
	axis := 1 - axes[0]
	if tiltedFlat(s) {
		axis = axes[1]
	}
	var sel []v3.Vec
	for _, q := range cloud {
		if math.Abs(coord(q, axis)) == 0 {
			sel = append(sel, q)
		}
	}

	lab := p.frame(s.Rot, s, sel)

	// Masked samples stay in sequence as break markers: every contiguous
	// finite stretch becomes its own run.
	var runs [][]v2.Vec
	var run []v2.Vec
	for _, q := range lab {
		f, g := coord(q, axes[0]), coord(q, axes[1])
		if math.IsNaN(f) || math.IsNaN(g) {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
			continue
		}
		run = append(run, v2.Vec{X: f, Y: g})
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}

	// Close the outline of a lens: splice the first face's endpoints into
	// the second face's curve.
	if idx > 0 && p.sys.LensPair(idx-1, idx) && st.Ok {
		st.Side = 1 - st.Side
		if st.Side == 1 && len(runs) > 0 {
			runs = stitch(runs, st.Start, st.End)
		}
	}

	// First face of a lens: remember this curve's outermost endpoints for
	// the pair.
	if p.sys.LensPair(idx, idx+1) && len(runs) > 0 {
		first := runs[0]
		last := runs[len(runs)-1]
		st.Start = first[0]
		st.End = last[len(last)-1]
		st.Ok = true
	}

	return runs, st
}

// stitch splices the stored endpoints (start, end) of the previous face's
// curve into the outermost runs of this face's curve, choosing the
// insertion order that minimizes the connecting distance from start to the
// nearer free end. On a tie, start leads. For an unbroken curve the result
// interleaves exactly like the two candidate layouts
//
//	[start, c0 .. cn-2, end, cn-1]
//	[end,   c0 .. cn-2, start, cn-1]
//
// so the lens outline closes without a crossing; interior run breaks stay
// breaks.
func stitch(runs [][]v2.Vec, start, end v2.Vec) [][]v2.Vec {
	first := runs[0][0]
	lastRun := runs[len(runs)-1]
	last := lastRun[len(lastRun)-1]
	d1 := start.Sub(first).Length()
	d2 := start.Sub(last).Length()

	a, b := start, end
	if d1 > d2 {
		a, b = end, start
	}

	out := make([][]v2.Vec, len(runs))
	copy(out, runs)
	out[0] = append([]v2.Vec{a}, out[0]...)

	lastRun = out[len(out)-1]
	tail := make([]v2.Vec, 0, len(lastRun)+1)
	tail = append(tail, lastRun[:len(lastRun)-1]...)
	tail = append(tail, b, lastRun[len(lastRun)-1])
	out[len(out)-1] = tail

	return out
}

// tiltedFlat reports whether the surface is a flat, zero-inner-diameter
// element whose direction angles are not multiples of pi. Such surfaces
// have no rotationally symmetric cross-hair in the viewing plane and take
// the orthogonal-axis selection branch.
func tiltedFlat(s *system.Surface) bool {
	if s.Curv != 0 || s.InnerDiam != 0 {
		return false
	}
	for _, a := range []float64{s.Dir.X, s.Dir.Y, s.Dir.Z} {
		if math.Mod(a/math.Pi, 1) != 0 {
			return true
		}
	}
	return false
}
