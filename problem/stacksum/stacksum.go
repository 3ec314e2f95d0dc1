package stacksum

import (
	"context"
	"fmt"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
	"github.com/rnetx/judge/stack"
)

const Type = "stack-sum"

func init() {
	problem.RegisterProblem(Type, NewStackSum)
}

type Args struct {
	// Lenient ignores a zero read while the stack is empty instead of failing.
	Lenient bool `json:"lenient"`
}

var _ adapter.Problem = (*StackSum)(nil)

// StackSum reads N integers. A non-zero value is pushed and added to the total,
// a zero pops the last value and subtracts it. The final total is printed.
type StackSum struct {
	tag    string
	logger log.Logger

	lenient bool
}

func NewStackSum(_ context.Context, logger log.Logger, tag string, args any) (adapter.Problem, error) {
	s := &StackSum{
		tag:    tag,
		logger: logger,
	}
	var a Args
	err := problem.DecodeArgs(args, &a)
	if err != nil {
		return nil, err
	}
	s.lenient = a.Lenient
	return s, nil
}

func (s *StackSum) Tag() string {
	return s.tag
}

func (s *StackSum) Type() string {
	return Type
}

func (s *StackSum) Solve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	n, err := in.Count()
	if err != nil {
		return err
	}
	st := stack.NewIntegerStack(0)
	total := 0
	for i := 0; i < n; i++ {
		v, err := in.Int()
		if err != nil {
			return err
		}
		if v != 0 {
			st.Push(v)
			total += v
			continue
		}
		top, err := st.MustPop()
		if err != nil {
			if s.lenient {
				s.logger.DebugfContext(ctx, "value %d: zero on empty stack ignored", i+1)
				continue
			}
			return fmt.Errorf("value %d: %w", i+1, err)
		}
		total -= top
	}
	s.logger.DebugfContext(ctx, "%d values kept", st.Size())
	out := problem.NewWriter(w)
	out.Int(total)
	return out.Flush()
}
