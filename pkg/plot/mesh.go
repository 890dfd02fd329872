package plot

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// gridRes is the sample resolution per grid axis. Each surface cloud has
// gridRes*gridRes grid samples followed by two cross-hair lines of gridRes
// samples each; the cross-section step selects against those lines.
const gridRes = 200

// PointCloud is one surface's sampled shape in its local frame. The lens
// clipper masks samples by writing NaN into Z; the cloud never changes
// length.
type PointCloud []v3.Vec

// linspace returns n evenly spaced values from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	// Pin the endpoint: accumulated rounding must not shorten the span.
	out[n-1] = b
	return out
}

// samplePoints builds the 2D sample layout for an aperture bound b: a
// gridRes×gridRes grid over [-b, b]×[-b, b] with the y axis sign-flipped,
// then the x cross-hair line at y=0, then the y cross-hair line at x=0.
// Cross-section selection relies on the cross-hair coordinates being
// exactly zero.
func samplePoints(b float64) []v2.Vec {
	lin := linspace(-b, b, gridRes)
	pts := make([]v2.Vec, 0, gridRes*gridRes+2*gridRes)
	for i := 0; i < gridRes; i++ {
		for j := 0; j < gridRes; j++ {
			pts = append(pts, v2.Vec{X: lin[j], Y: -lin[i]})
		}
	}
	for k := 0; k < gridRes; k++ {
		pts = append(pts, v2.Vec{X: lin[k], Y: 0})
	}
	for k := 0; k < gridRes; k++ {
		pts = append(pts, v2.Vec{X: 0, Y: lin[k]})
	}
	return pts
}

// genPoints regenerates every surface's point cloud from its descriptor.
// Heights come from the geometry collaborator; NaN heights (out-of-domain
// samples) are preserved.
func (p *Plotter) genPoints() {
	p.clouds = make([]PointCloud, len(p.sys.Surfaces))
	for i, s := range p.sys.Surfaces {
		pts := samplePoints(s.Diam / 2)
		zs := p.geom.Height(s, pts)
		cloud := make(PointCloud, len(pts))
		for k, q := range pts {
			cloud[k] = v3.Vec{X: q.X, Y: q.Y, Z: zs[k]}
		}
		p.clouds[i] = cloud
	}
}
