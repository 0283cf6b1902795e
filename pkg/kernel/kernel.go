// Package kernel defines the buffers produced by the geometry kernel.
// A mesh is a flat vertex sequence plus triangles that index into it.
// Shells are appended as contiguous vertex blocks and never share
// vertices; only index offsets relate them.
package kernel

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vertex is a point in the shared Cartesian frame. Coincident vertices
// are never merged.
type Vertex = v3.Vec

// Face is one triangle as three indices into the global vertex sequence.
// Index order encodes winding.
type Face [3]int

// ShellKind identifies an independently built surface.
type ShellKind int

const (
	ShellMain   ShellKind = iota // main annular body
	ShellFlange                  // secondary flange ring
)

func (k ShellKind) String() string {
	switch k {
	case ShellMain:
		return "main"
	case ShellFlange:
		return "flange"
	default:
		return "unknown"
	}
}
