package lathe

import (
	"context"
	"log/slog"

	"github.com/chazu/lathe/pkg/engine"
	"github.com/chazu/lathe/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to parts.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// Pipeline runs lathe source through the engine and tessellator.
type Pipeline struct {
	engine *engine.Engine
	logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the logger for evaluation failures and for the
// tessellator underneath.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithEngine replaces the default engine.
func WithEngine(e *engine.Engine) PipelineOption {
	return func(p *Pipeline) {
		if e != nil {
			p.engine = e
		}
	}
}

// MeshData is the JSON-serializable mesh format handed to viewers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or advisory.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating one source.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewPipeline creates a Pipeline with its own engine.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		engine: engine.NewEngine(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate takes lathe source and returns mesh data, errors and
// advisories. Any error leaves Meshes empty. Cancelling ctx stops both
// evaluation and tessellation.
func (p *Pipeline) Evaluate(ctx context.Context, source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	d, evalErrs, err := p.engine.EvaluateContext(ctx, source)
	if err != nil {
		p.logger.Error("evaluate failed", "component", "pipeline", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	for _, w := range d.Warnings() {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Message: w.Part + ": " + w.String(),
		})
	}

	meshes, err := tessellate.Tessellate(ctx, d, tessellate.WithLogger(p.logger))
	if err != nil {
		p.logger.Error("tessellate failed", "component", "pipeline", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	for i, m := range meshes {
		vertices, indices := m.Buffers()
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: vertices,
			Indices:  indices,
			PartName: m.PartName,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}
	return result
}
