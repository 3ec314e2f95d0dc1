package wine

import (
	"context"
	"fmt"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
)

const Type = "wine"

func init() {
	problem.RegisterProblem(Type, NewWine)
}

var _ adapter.Problem = (*Wine)(nil)

// Wine picks glasses from a row to maximize the total amount, never taking
// three adjacent glasses.
type Wine struct {
	tag    string
	logger log.Logger
}

func NewWine(_ context.Context, logger log.Logger, tag string, _ any) (adapter.Problem, error) {
	return &Wine{
		tag:    tag,
		logger: logger,
	}, nil
}

func (p *Wine) Tag() string {
	return p.tag
}

func (p *Wine) Type() string {
	return Type
}

func (p *Wine) Solve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	n, err := in.Count()
	if err != nil {
		return err
	}
	var glasses []int
	for i := 0; i < n; i++ {
		v, err := in.Int()
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("glass %d: negative amount: %d", i+1, v)
		}
		glasses = append(glasses, v)
	}
	best := MaxDrink(glasses)
	p.logger.DebugfContext(ctx, "%d glasses, best %d", n, best)
	out := problem.NewWriter(w)
	out.Int(best)
	return out.Flush()
}

// MaxDrink returns the largest sum of glasses with no three consecutive picks.
func MaxDrink(glasses []int) int {
	// drink[k] is the answer for the first k glasses.
	drink := make([]int, len(glasses)+1)
	at := func(k int) int {
		if k < 0 {
			return 0
		}
		return drink[k]
	}
	for i, g := range glasses {
		best := max(drink[i], at(i-1)+g)
		if i >= 1 {
			best = max(best, at(i-2)+glasses[i-1]+g)
		}
		drink[i+1] = best
	}
	return drink[len(glasses)]
}
