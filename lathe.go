// Package lathe generates triangle meshes for rotationally symmetric
// parts: tubes, washers, hubs and flanged bodies. Generate is the single
// entry point for one part; Pipeline evaluates a design written in the
// lathe language into one mesh per part.
package lathe

import (
	"github.com/chazu/lathe/pkg/assemble"
	"github.com/chazu/lathe/pkg/kernel"
	"github.com/chazu/lathe/pkg/params"
)

// Generate builds the mesh for one parameter set. Options absent from p
// take their defaults. Invalid parameters produce an error wrapping
// params.ErrInvalidParameter and no mesh; advisories are returned
// alongside a successful mesh.
func Generate(p params.Parameters, opts ...assemble.Option) (*kernel.Mesh, []params.Warning, error) {
	res, err := assemble.New(opts...).Build(p)
	if err != nil {
		return nil, nil, err
	}
	return res.Mesh, res.Warnings, nil
}

// GenerateMap is Generate for loosely typed option maps such as decoded
// JSON. Unknown option names are rejected.
func GenerateMap(m map[string]any, opts ...assemble.Option) (*kernel.Mesh, []params.Warning, error) {
	p, err := params.FromMap(m)
	if err != nil {
		return nil, nil, err
	}
	return Generate(p, opts...)
}
