package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/chazu/lathe/pkg/design"
)

// EvalTimeout is the default hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// evalResult carries an evaluation's outcome out of its goroutine.
type evalResult struct {
	design *design.Design
	errors []EvalError
	err    error
}

// wait blocks for the evaluation started as generation gen. It fails
// when the engine's timeout elapses first, when ctx is done, or when a
// newer Evaluate call has started in the meantime.
//
// On timeout the goroutine may still be running; ch is buffered so it
// can finish and be collected without a reader.
func (e *Engine) wait(ctx context.Context, ch <-chan evalResult, gen uint64) (*design.Design, []EvalError, error) {
	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.design, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", e.timeout)

	case <-ctx.Done():
		return nil, nil, fmt.Errorf("evaluation cancelled: %w", ctx.Err())
	}
}
