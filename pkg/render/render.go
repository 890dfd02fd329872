// Package render provides the output surfaces the plot pipeline draws
// onto. The pipeline emits world-space polylines and axis labels through
// the Canvas interface; this package implements that interface for SVG
// figures (with stacked equal-aspect views) and DXF drawings.
package render

import v2 "github.com/deadsy/sdfx/vec/v2"

// Style controls the stroke appearance of a polyline.
type Style struct {
	Color string  // SVG color name or #rrggbb; empty means black
	Alpha float64 // stroke opacity in (0, 1]; 0 means opaque
	Width float64 // stroke width in output units; 0 means 1
}

// Canvas is a 2D drawing surface in world coordinates. Implementations
// decide how world space maps onto the output medium.
type Canvas interface {
	// Polyline draws a connected line through the points. Fewer than two
	// points draw nothing.
	Polyline(pts []v2.Vec, st Style)
	// Labels sets the horizontal and vertical axis labels.
	Labels(x, y string)
}

// opacity returns the effective stroke opacity for a style.
func (s Style) opacity() float64 {
	if s.Alpha == 0 {
		return 1
	}
	return s.Alpha
}

// strokeWidth returns the effective stroke width for a style.
func (s Style) strokeWidth() float64 {
	if s.Width == 0 {
		return 1
	}
	return s.Width
}

// stroke returns the effective stroke color for a style.
func (s Style) stroke() string {
	if s.Color == "" {
		return "black"
	}
	return s.Color
}
