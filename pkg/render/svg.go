package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// viewMargin is the padding around each view's content, in SVG units.
const viewMargin = 12

// Figure is an SVG figure holding one or more views stacked vertically.
// Views buffer world-space polylines; the world-to-SVG mapping is computed
// per view when the figure is written, with equal aspect ratio so optical
// cross sections are not distorted.
type Figure struct {
	width  float64
	height float64
	views  []*view
}

// view is one Canvas-backed subplot of a Figure.
type view struct {
	lines  []polyline
	xlabel string
	ylabel string
}

type polyline struct {
	pts []v2.Vec
	st  Style
}

// NewFigure creates an empty figure with the given pixel dimensions.
func NewFigure(width, height float64) *Figure {
	return &Figure{width: width, height: height}
}

// AddView appends a new view below any existing ones and returns its
// drawing surface.
func (f *Figure) AddView() Canvas {
	v := &view{}
	f.views = append(f.views, v)
	return v
}

// ViewCount returns the number of views added so far.
func (f *Figure) ViewCount() int {
	return len(f.views)
}

// Polyline buffers a world-space polyline for later rendering.
func (v *view) Polyline(pts []v2.Vec, st Style) {
	if len(pts) < 2 {
		return
	}
	cp := make([]v2.Vec, len(pts))
	copy(cp, pts)
	v.lines = append(v.lines, polyline{pts: cp, st: st})
}

// Labels sets the view's axis labels.
func (v *view) Labels(x, y string) {
	v.xlabel = x
	v.ylabel = y
}

// WriteSVG renders the figure to w as a standalone SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(f.width, f.height)

	if n := len(f.views); n > 0 {
		bandH := f.height / float64(n)
		for i, v := range f.views {
			v.render(canvas, f.width, bandH, float64(i)*bandH)
		}
	}

	canvas.End()
	return ew.err
}

// render draws one view into its horizontal band of the figure.
func (v *view) render(canvas *svg.SVG, width, height, offsetY float64) {
	minX, minY, maxX, maxY, ok := v.bounds()
	if ok {
		dx := maxX - minX
		dy := maxY - minY
		scale := math.Min(
			(width-2*viewMargin)/nonZero(dx),
			(height-2*viewMargin)/nonZero(dy),
		)
		// Center the content in the band; flip y so world up is SVG up.
		ox := (width - dx*scale) / 2
		oy := offsetY + (height-dy*scale)/2
		for _, pl := range v.lines {
			xs := make([]float64, len(pl.pts))
			ys := make([]float64, len(pl.pts))
			for k, p := range pl.pts {
				xs[k] = ox + (p.X-minX)*scale
				ys[k] = oy + (maxY-p.Y)*scale
			}
			canvas.Polyline(xs, ys, styleAttr(pl.st))
		}
	}

	if v.xlabel != "" {
		canvas.Text(width/2, offsetY+height-2,
			v.xlabel, "text-anchor:middle;font-size:10px;fill:black")
	}
	if v.ylabel != "" {
		canvas.Text(10, offsetY+height/2,
			v.ylabel, "text-anchor:middle;font-size:10px;fill:black")
	}
}

// bounds returns the world-space bounding box of all finite polyline
// points, and whether any were found.
func (v *view) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pl := range v.lines {
		for _, p := range pl.pts {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

// nonZero guards degenerate extents so a flat or single-line view still
// gets a finite scale.
func nonZero(d float64) float64 {
	if d == 0 {
		return 1
	}
	return d
}

// styleAttr converts a Style to an SVG style attribute string.
func styleAttr(st Style) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%g;stroke-width:%g",
		st.stroke(), st.opacity(), st.strokeWidth())
}

// errWriter remembers the first write error so WriteSVG can report it;
// svgo itself ignores write failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
