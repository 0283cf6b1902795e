package params

import (
	"fmt"

	"github.com/chazu/lathe/pkg/kernel"
)

// ShellPlan is the resolved geometry of one shell.
type ShellPlan struct {
	Kind          kernel.ShellKind
	OuterRadius   float64
	InnerRadius   float64 // 0 with HasInner means an on-axis ring
	HasInner      bool
	HalfThickness float64
}

// Plan lists the shells to build, in build order, and the shared
// angular resolution.
type Plan struct {
	Segments int
	Shells   []ShellPlan
}

// IsEmpty reports whether no shell is enabled.
func (p Plan) IsEmpty() bool { return len(p.Shells) == 0 }

// Resolve validates p and decides which shells to build. Every fatal
// problem is reported together, wrapped around ErrInvalidParameter, and
// no plan is returned. Advisories never block the plan.
//
// Presence rules: the main shell is enabled when thickness is supplied
// (zero included); its inner ring exists only for a non-zero
// inner_radius. The flange needs both flange_radius and
// flange_thickness non-zero. A missing or zero center_bore_radius gives
// the flange a degenerate on-axis inner ring.
func Resolve(p Parameters) (Plan, []Warning, error) {
	var errs ParameterErrors
	var warnings []Warning

	segments := p.segments()
	switch {
	case segments < 1:
		errs = append(errs, &ParameterError{Option: "segments", Value: segments, Reason: "must be at least 1"})
	case segments > MaxSegments:
		errs = append(errs, &ParameterError{Option: "segments", Value: segments, Reason: fmt.Sprintf("must be at most %d", MaxSegments)})
	}
	if p.Thickness != nil && p.OuterRadius == nil {
		errs = append(errs, &ParameterError{Option: "outer_radius", Reason: "required when thickness is set"})
	}
	if len(errs) > 0 {
		return Plan{}, nil, fmt.Errorf("params: %w", errs)
	}

	plan := Plan{Segments: segments}

	if p.Thickness != nil {
		main := ShellPlan{
			Kind:          kernel.ShellMain,
			OuterRadius:   *p.OuterRadius,
			InnerRadius:   value(p.InnerRadius),
			HasInner:      nonZero(p.InnerRadius),
			HalfThickness: *p.Thickness / 2,
		}
		plan.Shells = append(plan.Shells, main)
		warnings = append(warnings, degenerate(main, "outer_radius", "inner_radius", "thickness")...)
	}

	switch {
	case nonZero(p.FlangeRadius) && nonZero(p.FlangeThickness):
		flange := ShellPlan{
			Kind:          kernel.ShellFlange,
			OuterRadius:   *p.FlangeRadius,
			InnerRadius:   value(p.CenterBoreRadius),
			HasInner:      true,
			HalfThickness: *p.FlangeThickness / 2,
		}
		plan.Shells = append(plan.Shells, flange)
		warnings = append(warnings, degenerate(flange, "flange_radius", "center_bore_radius", "flange_thickness")...)
	case nonZero(p.FlangeRadius):
		warnings = append(warnings, Warning{
			Code:    WarnPartialFlange,
			Option:  "flange_thickness",
			Message: "flange_radius set without flange_thickness, flange not built",
		})
	case nonZero(p.FlangeThickness):
		warnings = append(warnings, Warning{
			Code:    WarnPartialFlange,
			Option:  "flange_radius",
			Message: "flange_thickness set without flange_radius, flange not built",
		})
	}

	for _, name := range p.Reserved.supplied() {
		warnings = append(warnings, Warning{
			Code:    WarnReservedOption,
			Option:  name,
			Message: "accepted but has no effect on the mesh",
		})
	}

	return plan, warnings, nil
}

// degenerate collects advisories for a shell whose dimensions produce
// zero-area or self-intersecting triangles.
func degenerate(s ShellPlan, outerName, innerName, thicknessName string) []Warning {
	var out []Warning
	warn := func(option, format string, args ...any) {
		out = append(out, Warning{
			Code:    WarnDegenerateGeometry,
			Option:  option,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if s.OuterRadius <= 0 {
		warn(outerName, "radius %g is not positive", s.OuterRadius)
	}
	if s.HalfThickness <= 0 {
		warn(thicknessName, "thickness %g is not positive, walls have zero area", s.HalfThickness*2)
	}
	if !s.HasInner {
		return out
	}
	switch {
	case s.InnerRadius < 0:
		warn(innerName, "radius %g is negative", s.InnerRadius)
	case s.InnerRadius == s.OuterRadius:
		warn(innerName, "radius %g coincides with %s, caps have zero area", s.InnerRadius, outerName)
	case s.InnerRadius > s.OuterRadius:
		warn(innerName, "radius %g exceeds %s %g", s.InnerRadius, outerName, s.OuterRadius)
	}
	return out
}
