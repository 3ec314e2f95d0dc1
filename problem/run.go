package problem

import (
	"context"
	"fmt"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
)

// Run solves one input with p, attaching a run log context when ctx has none.
func Run(ctx context.Context, logger log.Logger, p adapter.Problem, r io.Reader, w io.Writer) error {
	if adapter.LoadLogContext(ctx) == nil {
		ctx = adapter.SaveLogContext(ctx, adapter.NewRunLogContext())
	}
	logger.DebugfContext(ctx, "solve start: %s (%s)", p.Tag(), p.Type())
	err := p.Solve(ctx, r, w)
	if err != nil {
		logger.ErrorfContext(ctx, "solve failed: %s, error: %s", p.Tag(), err)
		return fmt.Errorf("solve %s failed: %w", p.Tag(), err)
	}
	logger.DebugfContext(ctx, "solve done: %s", p.Tag())
	return nil
}
