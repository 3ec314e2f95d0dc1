package adapter

import (
	"context"
	"io"
)

// Problem is a named solver instance. Solve keeps all run state local, so one
// Problem may serve concurrent runs.
type Problem interface {
	Tag() string
	Type() string
	Solve(ctx context.Context, r io.Reader, w io.Writer) error
}
