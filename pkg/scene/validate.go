package scene

import (
	"fmt"
	"math"
)

// ValidationSeverity indicates whether a validation finding blocks
// evaluation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
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

// ValidationError describes a single blocking validation finding.
type ValidationError struct {
	Field    string             // which scene field has the problem
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Field, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether no blocking errors were found.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs all validation tiers on a scene and returns the
// separated findings. Blocking errors cover the inputs the kernel cannot
// absorb (non-finite values, a non-positive grid density); advisory
// warnings cover inputs the kernel degrades gracefully on (wrapped
// geometry index, out-of-range chaos). The scene is never mutated.
func Validate(s *Scene) ValidationResult {
	var result ValidationResult

	// Tier 1: values the evaluation pipeline cannot absorb.
	if !s.Angles.IsFinite() {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "angles",
			Message:  "rotation angles must be finite",
			Severity: SeverityError,
		})
	}
	if !s.Params.IsFinite() {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "params",
			Message:  "parameters must be finite",
			Severity: SeverityError,
		})
	} else if s.Params.GridDensity <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "params.gridDensity",
			Message:  fmt.Sprintf("grid density must be positive, got %v", s.Params.GridDensity),
			Severity: SeverityError,
		})
	}
	if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "time",
			Message:  "time must be finite",
			Severity: SeverityError,
		})
	}
	for i, p := range s.Samples {
		if !p.IsFinite() {
			result.Errors = append(result.Errors, ValidationError{
				Field:    fmt.Sprintf("samples[%d]", i),
				Message:  "sample point must be finite",
				Severity: SeverityError,
			})
		}
	}

	// Tier 2: values the kernel handles but the author likely did not
	// intend.
	if s.Geometry < 0 || s.Geometry > 23 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "geometry",
			Message: fmt.Sprintf("index %d outside [0,23], wraps to %d", s.Geometry, wrap24(s.Geometry)),
		})
	}
	if s.Params.IsFinite() && (s.Params.Chaos < 0 || s.Params.Chaos > 1) {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "params.chaos",
			Message: fmt.Sprintf("chaos %v outside [0,1]", s.Params.Chaos),
		})
	}

	return result
}

func wrap24(i int) int {
	f := float64(i)
	return int(f - math.Floor(f/24)*24)
}
