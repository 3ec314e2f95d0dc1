package primerange

import (
	"context"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/prime"
	"github.com/rnetx/judge/problem"
)

const Type = "prime-range"

func init() {
	problem.RegisterProblem(Type, NewPrimeRange)
}

var _ adapter.Problem = (*PrimeRange)(nil)

// PrimeRange prints every prime in [N, M], one per line.
type PrimeRange struct {
	tag    string
	logger log.Logger
}

func NewPrimeRange(_ context.Context, logger log.Logger, tag string, _ any) (adapter.Problem, error) {
	return &PrimeRange{
		tag:    tag,
		logger: logger,
	}, nil
}

func (p *PrimeRange) Tag() string {
	return p.tag
}

func (p *PrimeRange) Type() string {
	return Type
}

func (p *PrimeRange) Solve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	n, err := in.Int()
	if err != nil {
		return err
	}
	m, err := in.Int()
	if err != nil {
		return err
	}
	primes := prime.Range(n, m)
	p.logger.DebugfContext(ctx, "%d primes in [%d, %d]", len(primes), n, m)
	out := problem.NewWriter(w)
	for _, v := range primes {
		out.Int(v)
	}
	return out.Flush()
}
