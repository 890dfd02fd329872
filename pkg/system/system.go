package system

import "fmt"

// System is the ordered optical system description consumed by the plot
// pipeline. Surface order is significant: lens pairing, clipping and
// stitching all work on consecutive surfaces.
type System struct {
	Name     string     `json:"name,omitempty"`
	Surfaces []*Surface `json:"surfaces"`
	Rays     []*Ray     `json:"rays,omitempty"`

	nameIndex map[string]int
}

// New creates an empty System.
func New() *System {
	return &System{
		nameIndex: make(map[string]int),
	}
}

// AddSurface appends a surface to the system sequence. The name index is
// created on demand so a zero-value System (a struct literal, or one
// decoded from JSON) behaves the same as one from New.
func (s *System) AddSurface(surf *Surface) {
	s.Surfaces = append(s.Surfaces, surf)
	if surf.Name != "" {
		if s.nameIndex == nil {
			s.nameIndex = make(map[string]int)
		}
		s.nameIndex[surf.Name] = len(s.Surfaces) - 1
	}
}

// AddRay appends a traced ray.
func (s *System) AddRay(r *Ray) {
	s.Rays = append(s.Rays, r)
}

// Lookup returns the surface with the given user-assigned name, or nil.
func (s *System) Lookup(name string) *Surface {
	idx, ok := s.nameIndex[name]
	if !ok {
		return nil
	}
	return s.Surfaces[idx]
}

// MustLookup returns the surface with the given name, or panics.
func (s *System) MustLookup(name string) *Surface {
	surf := s.Lookup(name)
	if surf == nil {
		panic(fmt.Sprintf("system: no surface named %q", name))
	}
	return surf
}

// SurfaceCount returns the number of surfaces in the sequence.
func (s *System) SurfaceCount() int {
	return len(s.Surfaces)
}

// LensPair reports whether surfaces i and j are the two consecutive
// refracting faces of a lens element. It is false unless j == i+1, both
// indices are in range, and both surfaces refract.
func (s *System) LensPair(i, j int) bool {
	if j != i+1 || i < 0 || j >= len(s.Surfaces) {
		return false
	}
	return s.Surfaces[i].Refracting() && s.Surfaces[j].Refracting()
}
