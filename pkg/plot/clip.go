package plot

import "math"

// clipMask computes the visibility mask for a lens formed by two surface
// clouds separated by axial distance d. Sample k is masked when the back
// face's height, shifted by d into the front face's frame, does not sit
// strictly in front of the front face's height there: the sample lies
// inside the solid lens body rather than on its boundary. Incoming NaN
// heights are treated as 0 for the comparison only, so a previously
// masked or out-of-domain sample cannot poison the ordering test.
func clipMask(front, back PointCloud, d float64) []bool {
	mask := make([]bool, len(front))
	for k := range front {
		z1 := front[k].Z
		if math.IsNaN(z1) {
			z1 = 0
		}
		z2 := back[k].Z
		if math.IsNaN(z2) {
			z2 = 0
		}
		mask[k] = (z2+d)-z1 <= 0
	}
	return mask
}

// applyMask writes NaN into the height of every masked sample.
func applyMask(cloud PointCloud, mask []bool) {
	for k, hidden := range mask {
		if hidden {
			cloud[k].Z = math.NaN()
		}
	}
}

// clipLens clips the lens pair starting at surface idx: the same mask is
// applied to both clouds, so the pair's masked index sets are identical.
func (p *Plotter) clipLens(idx int) {
	s1, s2 := p.sys.Surfaces[idx], p.sys.Surfaces[idx+1]
	d := s1.Pos.Sub(s2.Pos).Length()
	mask := clipMask(p.clouds[idx], p.clouds[idx+1], d)
	applyMask(p.clouds[idx], mask)
	applyMask(p.clouds[idx+1], mask)
}
