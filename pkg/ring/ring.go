// Package ring samples the vertex rings of a rotationally symmetric
// shell. Each angular segment contributes one ring whose members always
// appear in the same role order: outer-top, outer-bottom, then
// inner-top, inner-bottom when the shell has an inner radius.
package ring

import (
	"math"

	"github.com/chazu/lathe/pkg/kernel"
)

// Layout describes the rings of one shell.
type Layout struct {
	OuterRadius   float64
	InnerRadius   float64
	HasInner      bool
	HalfThickness float64
	Segments      int
}

// Stride is the number of vertices each ring contributes.
func (l Layout) Stride() int {
	if l.HasInner {
		return 4
	}
	return 2
}

// Ring names the global vertex index of each role for one segment.
// Inner roles are meaningful only when HasInner is set.
type Ring struct {
	Segment     int
	OuterTop    int
	OuterBottom int
	InnerTop    int
	InnerBottom int
	HasInner    bool
}

// Sample produces the vertex block of a shell and its role-indexed
// rings. Ring indices are offset by the caller-supplied start of the
// block in the global vertex sequence. Segment s sits at angle
// 2*pi*s/Segments; a non-positive segment count yields nothing.
func Sample(l Layout, offset int) ([]kernel.Vertex, []Ring) {
	if l.Segments < 1 {
		return nil, nil
	}
	stride := l.Stride()
	vertices := make([]kernel.Vertex, 0, l.Segments*stride)
	rings := make([]Ring, 0, l.Segments)

	for s := 0; s < l.Segments; s++ {
		theta := 2 * math.Pi * float64(s) / float64(l.Segments)
		sin, cos := math.Sincos(theta)

		base := offset + len(vertices)
		r := Ring{
			Segment:     s,
			OuterTop:    base,
			OuterBottom: base + 1,
			HasInner:    l.HasInner,
		}
		ox, oy := l.OuterRadius*cos, l.OuterRadius*sin
		vertices = append(vertices,
			kernel.Vertex{X: ox, Y: oy, Z: l.HalfThickness},
			kernel.Vertex{X: ox, Y: oy, Z: -l.HalfThickness},
		)

		if l.HasInner {
			r.InnerTop = base + 2
			r.InnerBottom = base + 3
			ix, iy := l.InnerRadius*cos, l.InnerRadius*sin
			vertices = append(vertices,
				kernel.Vertex{X: ix, Y: iy, Z: l.HalfThickness},
				kernel.Vertex{X: ix, Y: iy, Z: -l.HalfThickness},
			)
		}
		rings = append(rings, r)
	}
	return vertices, rings
}
