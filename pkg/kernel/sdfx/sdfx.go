// Package sdfx builds analytic reference solids for planned shells using
// the github.com/deadsy/sdfx SDF-based CAD library. Every sampled ring
// vertex lies on the surface of its shell's reference solid, which makes
// the signed distance a direct check of the sampler.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/lathe/pkg/kernel"
	"github.com/chazu/lathe/pkg/params"
	"github.com/deadsy/sdfx/sdf"
)

// Reference returns the solid a shell approximates: a Z-axis cylinder
// centered at the origin, minus a bore cylinder when the shell has a
// positive inner radius. The tessellated shell is open, so only its
// vertices, not its faces, are expected to lie on this surface.
func Reference(sp params.ShellPlan) (sdf.SDF3, error) {
	if sp.OuterRadius <= 0 || sp.HalfThickness <= 0 {
		return nil, fmt.Errorf("sdfx: %s: radius %g and thickness %g must be positive",
			sp.Kind, sp.OuterRadius, 2*sp.HalfThickness)
	}
	height := 2 * sp.HalfThickness
	body, err := sdf.Cylinder3D(height, sp.OuterRadius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: %s body: %w", sp.Kind, err)
	}
	if !sp.HasInner || sp.InnerRadius <= 0 {
		return body, nil
	}
	bore, err := sdf.Cylinder3D(height, sp.InnerRadius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: %s bore: %w", sp.Kind, err)
	}
	return sdf.Difference3D(body, bore), nil
}

// MaxDeviation returns the largest absolute signed distance from any of
// the vertices to the surface of s.
func MaxDeviation(vertices []kernel.Vertex, s sdf.SDF3) float64 {
	var worst float64
	for _, v := range vertices {
		worst = math.Max(worst, math.Abs(s.Evaluate(v)))
	}
	return worst
}
