package stackcommand

import (
	"context"
	"fmt"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
	"github.com/rnetx/judge/stack"
)

const Type = "stack-command"

func init() {
	problem.RegisterProblem(Type, NewStackCommand)
}

type Args struct {
	// Sentinel is printed for pop and top on an empty stack.
	Sentinel *int `json:"sentinel,omitempty"`
}

var _ adapter.Problem = (*StackCommand)(nil)

// StackCommand runs N stack commands and prints the result of every query.
type StackCommand struct {
	tag    string
	logger log.Logger

	sentinel int
}

func NewStackCommand(_ context.Context, logger log.Logger, tag string, args any) (adapter.Problem, error) {
	s := &StackCommand{
		tag:      tag,
		logger:   logger,
		sentinel: stack.DefaultSentinel,
	}
	var a Args
	err := problem.DecodeArgs(args, &a)
	if err != nil {
		return nil, err
	}
	if a.Sentinel != nil {
		s.sentinel = *a.Sentinel
	}
	return s, nil
}

func (s *StackCommand) Tag() string {
	return s.tag
}

func (s *StackCommand) Type() string {
	return Type
}

func (s *StackCommand) Solve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	n, err := in.Count()
	if err != nil {
		return err
	}
	d := stack.NewDispatcher(s.sentinel)
	out := problem.NewWriter(w)
	for i := 0; i < n; i++ {
		line, err := in.ReadLine()
		if err != nil {
			return err
		}
		cmd, err := stack.ParseCommand(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", in.LastLine(), err)
		}
		if v, ok := d.Apply(cmd); ok {
			out.Int(v)
		}
	}
	s.logger.DebugfContext(ctx, "%d commands applied, %d values left", n, d.Stack().Size())
	return out.Flush()
}
