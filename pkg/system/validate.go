package system

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ValidationSeverity indicates whether a validation finding blocks plotting
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks plotting
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Index    int    // surface or ray index the finding refers to; -1 if system-level
	Ray      bool   // true if Index refers to a ray rather than a surface
	Message  string // human-readable description
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	case e.Ray:
		return fmt.Sprintf("[%s] ray %d: %s", e.Severity, e.Index, e.Message)
	default:
		return fmt.Sprintf("[%s] surface %d: %s", e.Severity, e.Index, e.Message)
	}
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Index   int
	Ray     bool
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs the structural checks on a system and returns blocking
// errors only. An empty slice means the system can be plotted. The
// function is read-only and never mutates the system.
func Validate(s *System) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateSurfaces(s)...)
	errs = append(errs, validateRays(s)...)
	return errs
}

// ValidateAll runs structural checks plus the advisory geometric checks
// and returns a ValidationResult with separated errors and warnings.
func ValidateAll(s *System) ValidationResult {
	var result ValidationResult
	result.Errors = Validate(s)
	result.Warnings = append(result.Warnings, adviseGeometry(s)...)
	return result
}

// validateSurfaces checks per-surface shape parameters.
func validateSurfaces(s *System) []ValidationError {
	var errs []ValidationError
	for i, surf := range s.Surfaces {
		if surf.Diam < 0 {
			errs = append(errs, ValidationError{
				Index:    i,
				Message:  fmt.Sprintf("negative aperture diameter %g", surf.Diam),
				Severity: SeverityError,
			})
		}
		if surf.InnerDiam < 0 {
			errs = append(errs, ValidationError{
				Index:    i,
				Message:  fmt.Sprintf("negative inner diameter %g", surf.InnerDiam),
				Severity: SeverityError,
			})
		}
		if surf.InnerDiam > 0 && surf.InnerDiam >= surf.Diam {
			errs = append(errs, ValidationError{
				Index: i,
				Message: fmt.Sprintf("inner diameter %g must be smaller than aperture diameter %g",
					surf.InnerDiam, surf.Diam),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateRays checks that ray histories are well formed: positions and
// directions aligned index for index, with at least a start and an end.
func validateRays(s *System) []ValidationError {
	var errs []ValidationError
	for i, r := range s.Rays {
		if len(r.PHist) != len(r.DHist) {
			errs = append(errs, ValidationError{
				Index: i,
				Ray:   true,
				Message: fmt.Sprintf("position history length %d does not match direction history length %d",
					len(r.PHist), len(r.DHist)),
				Severity: SeverityError,
			})
			continue
		}
		if len(r.PHist) < 2 {
			errs = append(errs, ValidationError{
				Index:    i,
				Ray:      true,
				Message:  fmt.Sprintf("history has %d events, need at least 2", len(r.PHist)),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// adviseGeometry produces advisory warnings about configurations that are
// legal but usually indicate a prescription mistake.
func adviseGeometry(s *System) []ValidationWarning {
	var warnings []ValidationWarning
	if len(s.Surfaces) == 0 {
		warnings = append(warnings, ValidationWarning{
			Index:   -1,
			Message: "system has no surfaces",
		})
	}
	for i, surf := range s.Surfaces {
		if surf.Refracting() && surf.Curv == 0 && surf.Dir == (v3.Vec{}) {
			warnings = append(warnings, ValidationWarning{
				Index:   i,
				Message: "refracting surface with zero curvature draws as a flat plate face",
			})
		}
	}
	for i := 0; i+1 < len(s.Surfaces); i++ {
		if s.LensPair(i, i+1) {
			d := s.Surfaces[i].Pos.Sub(s.Surfaces[i+1].Pos).Length()
			if d == 0 {
				warnings = append(warnings, ValidationWarning{
					Index:   i,
					Message: fmt.Sprintf("lens pair %d/%d has zero separation; clipping will mask both faces entirely", i, i+1),
				})
			}
		}
	}
	return warnings
}
