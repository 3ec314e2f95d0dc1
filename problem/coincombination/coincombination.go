package coincombination

import (
	"context"
	"fmt"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
)

const Type = "coin-combination"

const (
	MaxCoins  = 100
	MaxTarget = 100000
)

func init() {
	problem.RegisterProblem(Type, NewCoinCombination)
}

var _ adapter.Problem = (*CoinCombination)(nil)

// CoinCombination counts the ways to reach k with an unlimited supply of n coin values.
// Order does not matter.
type CoinCombination struct {
	tag    string
	logger log.Logger
}

func NewCoinCombination(_ context.Context, logger log.Logger, tag string, _ any) (adapter.Problem, error) {
	return &CoinCombination{
		tag:    tag,
		logger: logger,
	}, nil
}

func (p *CoinCombination) Tag() string {
	return p.tag
}

func (p *CoinCombination) Type() string {
	return Type
}

func (p *CoinCombination) Solve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	n, err := in.Count()
	if err != nil {
		return err
	}
	k, err := in.Count()
	if err != nil {
		return err
	}
	if n > MaxCoins {
		return fmt.Errorf("too many coins: %d > %d", n, MaxCoins)
	}
	if k > MaxTarget {
		return fmt.Errorf("target too large: %d > %d", k, MaxTarget)
	}
	coins := make([]int, n)
	for i := range coins {
		coins[i], err = in.Int()
		if err != nil {
			return err
		}
		if coins[i] <= 0 {
			return fmt.Errorf("coin %d: value must be positive: %d", i+1, coins[i])
		}
	}
	ways := Count(coins, k)
	p.logger.DebugfContext(ctx, "%d coins, target %d, %d ways", n, k, ways)
	out := problem.NewWriter(w)
	out.Int(ways)
	return out.Flush()
}

// Count returns the number of multisets of coins summing to k.
func Count(coins []int, k int) int {
	if k < 0 {
		return 0
	}
	dp := make([]int, k+1)
	dp[0] = 1
	for _, c := range coins {
		for v := c; v <= k; v++ {
			dp[v] += dp[v-c]
		}
	}
	return dp[k]
}
