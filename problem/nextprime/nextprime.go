package nextprime

import (
	"context"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/prime"
	"github.com/rnetx/judge/problem"
)

const Type = "next-prime"

func init() {
	problem.RegisterProblem(Type, NewNextPrime)
}

var _ adapter.Problem = (*NextPrime)(nil)

// NextPrime answers T queries with the smallest prime not less than each value.
type NextPrime struct {
	tag    string
	logger log.Logger
}

func NewNextPrime(_ context.Context, logger log.Logger, tag string, _ any) (adapter.Problem, error) {
	return &NextPrime{
		tag:    tag,
		logger: logger,
	}, nil
}

func (p *NextPrime) Tag() string {
	return p.tag
}

func (p *NextPrime) Type() string {
	return Type
}

func (p *NextPrime) Solve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	n, err := in.Count()
	if err != nil {
		return err
	}
	out := problem.NewWriter(w)
	for i := 0; i < n; i++ {
		v, err := in.Int()
		if err != nil {
			return err
		}
		out.Int(prime.Next(v))
	}
	p.logger.DebugfContext(ctx, "%d queries answered", n)
	return out.Flush()
}
