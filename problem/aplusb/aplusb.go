package aplusb

import (
	"context"
	"io"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
)

const Type = "a-plus-b"

func init() {
	problem.RegisterProblem(Type, NewAPlusB)
}

var _ adapter.Problem = (*APlusB)(nil)

type APlusB struct {
	tag    string
	logger log.Logger
}

func NewAPlusB(_ context.Context, logger log.Logger, tag string, _ any) (adapter.Problem, error) {
	return &APlusB{
		tag:    tag,
		logger: logger,
	}, nil
}

func (p *APlusB) Tag() string {
	return p.tag
}

func (p *APlusB) Type() string {
	return Type
}

func (p *APlusB) Solve(_ context.Context, r io.Reader, w io.Writer) error {
	in := problem.NewReader(r)
	a, err := in.Float()
	if err != nil {
		return err
	}
	b, err := in.Float()
	if err != nil {
		return err
	}
	out := problem.NewWriter(w)
	out.Float(a + b)
	return out.Flush()
}
