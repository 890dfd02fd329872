package render

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// Drawing is a DXF-backed canvas. World coordinates pass straight through
// to the DXF entities; CAD consumers handle scaling and viewing, so there
// is no fitting step and axis labels do not apply.
type Drawing struct {
	d   *drawing.Drawing
	err error
}

// NewDrawing creates an empty DXF drawing canvas.
func NewDrawing() *Drawing {
	return &Drawing{d: dxf.NewDrawing()}
}

// Polyline draws the points as consecutive LINE entities. Style is not
// representable in bare DXF line entities and is ignored.
func (d *Drawing) Polyline(pts []v2.Vec, st Style) {
	for i := 0; i+1 < len(pts); i++ {
		_, err := d.d.Line(pts[i].X, pts[i].Y, 0, pts[i+1].X, pts[i+1].Y, 0)
		if err != nil && d.err == nil {
			d.err = fmt.Errorf("dxf line: %w", err)
		}
	}
}

// Labels is a no-op: DXF output has no figure-level axis annotations.
func (d *Drawing) Labels(x, y string) {}

// SaveAs writes the drawing to a DXF file, reporting the first drawing
// error if any occurred.
func (d *Drawing) SaveAs(path string) error {
	if d.err != nil {
		return d.err
	}
	return d.d.SaveAs(path)
}
