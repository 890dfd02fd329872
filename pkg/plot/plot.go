// Package plot renders 2D cross-section diagrams of an optical system:
// every surface outline and every traced ray projected onto a viewing
// plane. The pipeline samples each surface into a local-frame point cloud,
// clips lens pairs at their mutual intersection, extracts the cross-section
// curve along the viewing plane and stitches paired lens faces into one
// continuous outline.
package plot

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mkrell/rayplot/pkg/render"
	"github.com/mkrell/rayplot/pkg/system"
)

// Geometry evaluates a surface's height (sag) at local 2D sample points.
// Out-of-domain samples are reported as NaN and carried through the
// pipeline, never treated as an error.
type Geometry interface {
	Height(s *system.Surface, pts []v2.Vec) []float64
}

// FrameTransform maps points from a surface's local frame into the lab
// frame. It must preserve point count and pass NaN through.
type FrameTransform func(rot v3.Vec, s *system.Surface, pts []v3.Vec) []v3.Vec

// surfaceStyle is the stroke used for surface outlines.
var surfaceStyle = render.Style{Color: "black"}

// DefaultRayStyle is the ray stroke used when the prescription does not
// set one.
var DefaultRayStyle = render.Style{Color: "red", Alpha: 0.5}

// Plotter draws cross-section views of one optical system. It owns the
// per-surface point clouds for the duration of a view pass; every pass
// regenerates them so that clip masks from one view never leak into the
// next.
type Plotter struct {
	sys    *system.System
	geom   Geometry
	frame  FrameTransform
	rays   []*system.Ray
	style  render.Style
	clouds []PointCloud
}

// New creates a Plotter for the given system. Rays without a defined
// terminal position are dropped here, before any processing.
func New(sys *system.System, geom Geometry, frame FrameTransform, rayStyle render.Style) *Plotter {
	p := &Plotter{
		sys:   sys,
		geom:  geom,
		frame: frame,
		style: rayStyle,
	}
	for _, r := range sys.Rays {
		if r.Terminated() {
			p.rays = append(p.rays, r)
		}
	}
	return p
}

// PlotXZ renders the x-z view onto the canvas.
func (p *Plotter) PlotXZ(c render.Canvas) {
	p.plotView(c, [2]int{0, 2}, "Z", "X")
}

// PlotYZ renders the y-z view onto the canvas.
func (p *Plotter) PlotYZ(c render.Canvas) {
	p.plotView(c, [2]int{1, 2}, "Z", "Y")
}

// Plot2D renders both views stacked on one figure.
func (p *Plotter) Plot2D(f *render.Figure) {
	p.PlotXZ(f.AddView())
	p.PlotYZ(f.AddView())
}

// plotView runs one full pipeline pass for a pair of plot axes.
func (p *Plotter) plotView(c render.Canvas, axes [2]int, xlabel, ylabel string) {
	p.genPoints()
	p.plotRays(c, axes)
	p.plotSurfaces(c, axes)
	c.Labels(xlabel, ylabel)
}

// plotRays draws every ray's history as connected segments plus one final
// segment along its last propagation direction. Curve coordinates follow
// the plotting convention: horizontal is the axes[1] component (the
// optical axis), vertical is the axes[0] component. Segments touching a
// non-finite history entry are skipped, so a vignetted intermediate event
// breaks the ray's line instead of emitting NaN coordinates.
func (p *Plotter) plotRays(c render.Canvas, axes [2]int) {
	for _, r := range p.rays {
		n := len(r.PHist)
		if n < 2 || len(r.DHist) != n {
			continue
		}
		for idx := 0; idx < n-1; idx++ {
			f := coord(r.PHist[idx], axes[0])
			g := coord(r.PHist[idx], axes[1])
			fn := coord(r.PHist[idx+1], axes[0])
			gn := coord(r.PHist[idx+1], axes[1])
			if !finite(f, g, fn, gn) {
				continue
			}
			c.Polyline([]v2.Vec{{X: g, Y: f}, {X: gn, Y: fn}}, p.style)
		}
		// Direction after the last surface.
		fp := coord(r.PHist[n-1], axes[0])
		gp := coord(r.PHist[n-1], axes[1])
		hp := coord(r.DHist[n-1], axes[0])
		ip := coord(r.DHist[n-1], axes[1])
		if finite(fp, gp, hp, ip) {
			c.Polyline([]v2.Vec{{X: gp, Y: fp}, {X: gp + ip, Y: fp + hp}}, p.style)
		}
	}
}

// plotSurfaces clips lens pairs and draws every surface's stitched
// cross-section curve, one polyline per contiguous run so masked gaps
// (clipped lens regions, stop holes) stay gaps. The stitch state threads
// through the loop as an explicit accumulator.
func (p *Plotter) plotSurfaces(c render.Canvas, axes [2]int) {
	var st StitchState
	for idx := range p.sys.Surfaces {
		if p.sys.LensPair(idx, idx+1) {
			p.clipLens(idx)
		}
		var runs [][]v2.Vec
		runs, st = p.crossSection(idx, axes, st)
		for _, curve := range runs {
			pts := make([]v2.Vec, len(curve))
			for k, q := range curve {
				pts[k] = v2.Vec{X: q.Y, Y: q.X} // horizontal G, vertical F
			}
			c.Polyline(pts, surfaceStyle)
		}
	}
}

// finite reports whether every value is a usable plot coordinate.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// coord returns the component of p selected by axis index 0, 1 or 2.
func coord(p v3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
