// Package tessellate turns a design into triangle meshes, one per part.
// Parts are independent invocations of the assembler with no shared
// mutable state, so they are built concurrently.
package tessellate

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/chazu/lathe/pkg/assemble"
	"github.com/chazu/lathe/pkg/design"
	"github.com/chazu/lathe/pkg/kernel"
	"golang.org/x/sync/errgroup"
)

// Option configures Tessellate.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	parallelism int
}

// WithLogger routes tessellation and assembly logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallelism bounds the number of parts built at once. Values
// below 1 mean GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}

// Tessellate builds one mesh per part of d, in definition order, with
// PartName set. If any part fails, or ctx is cancelled, no meshes are
// returned.
func Tessellate(ctx context.Context, d *design.Design, opts ...Option) ([]*kernel.Mesh, error) {
	if d == nil {
		return nil, nil
	}
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.parallelism < 1 {
		cfg.parallelism = runtime.GOMAXPROCS(0)
	}

	asm := assemble.New(assemble.WithLogger(cfg.logger))
	meshes := make([]*kernel.Mesh, len(d.Parts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for i, part := range d.Parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := asm.BuildPlan(part.Plan)
			if err != nil {
				return fmt.Errorf("tessellate: part %q: %w", part.Name, err)
			}
			res.Mesh.PartName = part.Name
			meshes[i] = res.Mesh
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.logger.Debug("design tessellated", "component", "tessellate", "parts", len(meshes))
	return meshes, nil
}
