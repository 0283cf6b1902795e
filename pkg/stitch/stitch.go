// Package stitch connects adjacent rings of a shell with triangles.
// Ring s is always paired with ring (s+1) mod N, so every shell closes
// into a loop around the rotation axis. The stitcher reads ring roles,
// never positional offsets, and does not compute normals: the corner
// order of each triangle alone fixes its outward side.
package stitch

import (
	"fmt"

	"github.com/chazu/lathe/pkg/kernel"
	"github.com/chazu/lathe/pkg/ring"
)

// FaceSet selects which face types a shell emits.
type FaceSet uint8

const (
	OuterWall FaceSet = 1 << iota
	InnerWall
	TopCap
	BottomCap
)

// Annulus is every face type: a shell with both walls and both caps.
const Annulus = OuterWall | InnerWall | TopCap | BottomCap

// needsInner is the set of face types that read inner ring roles.
const needsInner = InnerWall | TopCap | BottomCap

// Has reports whether all face types in f are selected.
func (s FaceSet) Has(f FaceSet) bool { return s&f == f }

// PerSegment returns the number of triangles emitted per segment.
func (s FaceSet) PerSegment() int {
	n := 0
	for _, f := range []FaceSet{OuterWall, InnerWall, TopCap, BottomCap} {
		if s.Has(f) {
			n += 2
		}
	}
	return n
}

// Stitch emits the triangles of a shell. For each segment the faces
// come out in a fixed order: outer wall, inner wall, top cap, bottom
// cap, two triangles each, skipping types not in set. Selecting a face
// type that needs inner roles on rings without them is an error.
func Stitch(rings []ring.Ring, set FaceSet) ([]kernel.Face, error) {
	n := len(rings)
	if n == 0 {
		return nil, nil
	}
	if set&needsInner != 0 && !rings[0].HasInner {
		return nil, fmt.Errorf("stitch: face set %04b needs inner rings, shell has none", set)
	}

	faces := make([]kernel.Face, 0, n*set.PerSegment())
	for s := 0; s < n; s++ {
		cur, next := rings[s], rings[(s+1)%n]

		if set.Has(OuterWall) {
			faces = append(faces,
				kernel.Face{cur.OuterTop, next.OuterTop, next.OuterBottom},
				kernel.Face{cur.OuterTop, next.OuterBottom, cur.OuterBottom},
			)
		}
		if set.Has(InnerWall) {
			faces = append(faces,
				kernel.Face{cur.InnerTop, next.InnerTop, next.InnerBottom},
				kernel.Face{cur.InnerTop, next.InnerBottom, cur.InnerBottom},
			)
		}
		if set.Has(TopCap) {
			faces = append(faces,
				kernel.Face{cur.OuterTop, cur.InnerTop, next.InnerTop},
				kernel.Face{cur.OuterTop, next.InnerTop, next.OuterTop},
			)
		}
		if set.Has(BottomCap) {
			faces = append(faces,
				kernel.Face{cur.OuterBottom, next.OuterBottom, next.InnerBottom},
				kernel.Face{cur.OuterBottom, next.InnerBottom, cur.InnerBottom},
			)
		}
	}
	return faces, nil
}
