// Package assemble builds every planned shell and concatenates them
// into one mesh. Shells are built in a fixed order (main body, then
// flange); each shell's face indices are offset by the number of
// vertices already in the mesh when it is built.
package assemble

import (
	"fmt"
	"log/slog"

	"github.com/chazu/lathe/pkg/kernel"
	"github.com/chazu/lathe/pkg/params"
	"github.com/chazu/lathe/pkg/ring"
	"github.com/chazu/lathe/pkg/stitch"
)

// ShellInfo locates one built shell inside the assembled mesh.
type ShellInfo struct {
	Kind        kernel.ShellKind
	VertexStart int
	VertexCount int
	FaceStart   int
	FaceCount   int
}

// Result is the assembled mesh plus a record of each built shell in
// build order and the advisories raised while resolving parameters.
type Result struct {
	Mesh     *kernel.Mesh
	Shells   []ShellInfo
	Warnings []params.Warning
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger routes build logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// Assembler holds no geometry state; a single Assembler may be shared
// by concurrent builds.
type Assembler struct {
	logger *slog.Logger
}

// New returns an Assembler. Without WithLogger it logs nothing.
func New(opts ...Option) *Assembler {
	a := &Assembler{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("component", "assemble")
	return a
}

// Build resolves p and builds the resulting plan. Invalid parameters
// fail before any geometry is produced.
func (a *Assembler) Build(p params.Parameters) (*Result, error) {
	plan, warnings, err := params.Resolve(p)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	for _, w := range warnings {
		a.logger.Warn("parameter advisory", "code", w.Code, "option", w.Option, "message", w.Message)
	}
	res, err := a.BuildPlan(plan)
	if err != nil {
		return nil, err
	}
	res.Warnings = warnings
	return res, nil
}

// BuildPlan builds each shell in plan order. Either every shell is
// built or an error is returned and no mesh escapes.
func (a *Assembler) BuildPlan(plan params.Plan) (*Result, error) {
	if len(plan.Shells) > 0 && (plan.Segments < 1 || plan.Segments > params.MaxSegments) {
		return nil, fmt.Errorf("assemble: %w: segments=%d out of range [1, %d]",
			params.ErrInvalidParameter, plan.Segments, params.MaxSegments)
	}

	mesh := kernel.NewMesh()
	res := &Result{Mesh: mesh}

	for _, sp := range plan.Shells {
		info, err := a.buildShell(mesh, sp, plan.Segments)
		if err != nil {
			return nil, fmt.Errorf("assemble: %s shell: %w", sp.Kind, err)
		}
		res.Shells = append(res.Shells, info)
	}

	if err := mesh.CheckIndices(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	return res, nil
}

// buildShell samples and stitches one shell and appends it to mesh.
func (a *Assembler) buildShell(mesh *kernel.Mesh, sp params.ShellPlan, segments int) (ShellInfo, error) {
	offset := mesh.VertexCount()
	vertices, rings := ring.Sample(ring.Layout{
		OuterRadius:   sp.OuterRadius,
		InnerRadius:   sp.InnerRadius,
		HasInner:      sp.HasInner,
		HalfThickness: sp.HalfThickness,
		Segments:      segments,
	}, offset)

	faces, err := stitch.Stitch(rings, faceSet(sp))
	if err != nil {
		return ShellInfo{}, err
	}

	info := ShellInfo{
		Kind:        sp.Kind,
		VertexStart: offset,
		VertexCount: len(vertices),
		FaceStart:   mesh.TriangleCount(),
		FaceCount:   len(faces),
	}
	mesh.AppendBlock(vertices, faces)

	a.logger.Debug("shell built",
		"shell", sp.Kind.String(),
		"offset", offset,
		"vertices", info.VertexCount,
		"faces", info.FaceCount,
	)
	return info, nil
}

// faceSet picks the faces a shell emits. The main body is an open tube
// without an inner radius and a full annulus with one. The flange only
// ever gets its outer wall; its inner ring is sampled but left
// unreferenced.
func faceSet(sp params.ShellPlan) stitch.FaceSet {
	switch {
	case sp.Kind == kernel.ShellFlange:
		return stitch.OuterWall
	case sp.HasInner:
		return stitch.Annulus
	default:
		return stitch.OuterWall
	}
}

// Build is a convenience wrapper around New().Build.
func Build(p params.Parameters) (*Result, error) {
	return New().Build(p)
}
