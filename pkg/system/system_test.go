package system

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestNewSystem(t *testing.T) {
	s := New()
	if s.SurfaceCount() != 0 {
		t.Errorf("empty system should have 0 surfaces, got %d", s.SurfaceCount())
	}
	if len(s.Rays) != 0 {
		t.Errorf("empty system should have 0 rays, got %d", len(s.Rays))
	}
}

func TestAddSurfaceAndLookup(t *testing.T) {
	s := New()
	s.AddSurface(&Surface{Name: "front", Diam: 25, Curv: 0.02, Inter: Refraction})
	s.AddSurface(&Surface{Name: "back", Diam: 25, Curv: -0.02, Inter: Refraction})

	if s.SurfaceCount() != 2 {
		t.Fatalf("surface count = %d, want 2", s.SurfaceCount())
	}

	found := s.Lookup("front")
	if found == nil {
		t.Fatal("Lookup(front) returned nil")
	}
	if found.Curv != 0.02 {
		t.Errorf("lookup returned wrong surface, curv = %g", found.Curv)
	}

	if s.Lookup("nonexistent") != nil {
		t.Error("Lookup of unknown name should return nil")
	}

	must := s.MustLookup("back")
	if must.Curv != -0.02 {
		t.Errorf("MustLookup returned wrong surface")
	}
}

func TestAddSurfaceToZeroValueSystem(t *testing.T) {
	// A System built as a struct literal (or decoded from JSON) has no
	// name index yet; adding a named surface must still register it.
	var s System
	s.AddSurface(&Surface{Name: "stop", Diam: 10, Inter: Stop})

	found := s.Lookup("stop")
	if found == nil {
		t.Fatal("Lookup(stop) returned nil")
	}
	if found.Diam != 10 {
		t.Errorf("lookup returned wrong surface, diam = %g", found.Diam)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLookup of unknown name should panic")
		}
	}()
	New().MustLookup("missing")
}

func TestInteractionString(t *testing.T) {
	tests := []struct {
		inter Interaction
		want  string
	}{
		{Refraction, "refraction"},
		{Reflection, "reflection"},
		{Stop, "stop"},
		{Interaction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.inter.String(); got != tt.want {
			t.Errorf("Interaction(%d).String() = %q, want %q", int(tt.inter), got, tt.want)
		}
	}
}

func TestLensPair(t *testing.T) {
	s := New()
	s.AddSurface(&Surface{Inter: Stop})       // 0
	s.AddSurface(&Surface{Inter: Refraction}) // 1
	s.AddSurface(&Surface{Inter: Refraction}) // 2
	s.AddSurface(&Surface{Inter: Reflection}) // 3

	tests := []struct {
		i, j int
		want bool
	}{
		{0, 1, false}, // stop + refraction
		{1, 2, true},  // the lens
		{2, 3, false}, // refraction + mirror
		{2, 1, false}, // not consecutive forward
		{1, 3, false}, // not adjacent
		{3, 4, false}, // j out of range
		{-1, 0, false},
	}
	for _, tt := range tests {
		if got := s.LensPair(tt.i, tt.j); got != tt.want {
			t.Errorf("LensPair(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestRayTerminated(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		ray  Ray
		want bool
	}{
		{
			name: "finite terminal",
			ray:  Ray{PHist: []v3.Vec{{}, {X: 0, Y: 0, Z: 10}}},
			want: true,
		},
		{
			name: "NaN terminal",
			ray:  Ray{PHist: []v3.Vec{{}, {X: nan, Y: nan, Z: nan}}},
			want: false,
		},
		{
			name: "single NaN component",
			ray:  Ray{PHist: []v3.Vec{{}, {X: 0, Y: nan, Z: 10}}},
			want: false,
		},
		{
			name: "empty history",
			ray:  Ray{},
			want: false,
		},
	}
	for _, tt := range tests {
		if got := tt.ray.Terminated(); got != tt.want {
			t.Errorf("%s: Terminated() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
