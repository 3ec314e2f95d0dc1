package problem

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/utils"
)

var ErrUnknownType = errors.New("unknown problem type")

type Options struct {
	Tag     string                 `yaml:"tag"`
	Type    string                 `yaml:"type"`
	Aliases utils.Listable[string] `yaml:"aliases,omitempty"`
	Args    any                    `yaml:"args,omitempty"`
}

var problemMap sync.Map

type Factory func(ctx context.Context, logger log.Logger, tag string, args any) (adapter.Problem, error)

func RegisterProblem(_type string, factory Factory) {
	problemMap.Store(_type, factory)
}

func NewProblem(ctx context.Context, logger log.Logger, tag string, _type string, args any) (adapter.Problem, error) {
	v, ok := problemMap.Load(_type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, _type)
	}
	f := v.(Factory)
	return f(ctx, logger, tag, args)
}

func ProblemTypes() []string {
	var types []string
	problemMap.Range(func(key any, _ any) bool {
		types = append(types, key.(string))
		return true
	})
	sort.Strings(types)
	return types
}

// DecodeArgs decodes yaml or json supplied args into out. Nil args leave out untouched.
func DecodeArgs(args any, out any) error {
	if args == nil {
		return nil
	}
	err := utils.JsonDecode(args, out)
	if err != nil {
		return fmt.Errorf("parse args failed: %w", err)
	}
	return nil
}
